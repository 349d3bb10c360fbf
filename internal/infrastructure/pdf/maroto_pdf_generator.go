// Package pdf implementa la impresión de documentos de almacén en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tipo de documento + N° │ Fecha                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Comentario (si hay)                                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Unidad | Cant | Cant. real | Total        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Cantidad / Discrepancia / Monto / Margen           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/reports"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Títulos por tipo de documento para el encabezado impreso.
var titleByType = map[string]string{
	"incoming":  "DOCUMENTO DE ENTRADA",
	"outgoing":  "DOCUMENTO DE SALIDA",
	"transfer":  "TRASLADO ENTRE ZONAS",
	"inventory": "ACTA DE INVENTARIO",
	"write_off": "ACTA DE BAJA",
}

var _ reports.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// DocumentPDF genera el PDF del documento y devuelve sus bytes.
func (g *MarotoPDFGenerator) DocumentPDF(detail *dto.DocumentDetailResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Documento de almacén", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(detail.Document))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if detail.Document.Comment != "" {
		m.AddRows(commentRow(detail.Document.Comment))
	}

	m.AddRows(tableHeaderRow(detail.Totals))
	for _, r := range tableLineRows(detail.Lines, detail.Totals) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(detail.Totals))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del tipo + consecutivo (izq) y fecha + estado (der).
func headerRow(d dto.DocumentResponse) core.Row {
	title := titleByType[d.Type]
	if title == "" {
		title = "DOCUMENTO DE ALMACÉN"
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+d.Number, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 9,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+d.Date.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Estado: "+d.Status, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// commentRow: comentario libre de la cabecera.
func commentRow(comment string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Comentario: "+comment, props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de renglones. La columna de cantidad real
// solo aparece en documentos de conciliación.
func tableHeaderRow(totals dto.TotalsResponse) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	if totals.Discrepancy != nil {
		return row.New(8).Add(
			h("Producto", 5, align.Left),
			h("Unidad", 2, align.Center),
			h("Cant.", 1, align.Right),
			h("Cant. real", 2, align.Right),
			h("Total", 2, align.Right),
		)
	}
	return row.New(8).Add(
		h("Producto", 6, align.Left),
		h("Unidad", 2, align.Center),
		h("Cant.", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// tableLineRows: una fila por renglón.
func tableLineRows(lines []dto.LineResponse, totals dto.TotalsResponse) []core.Row {
	withActual := totals.Discrepancy != nil
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		name := l.ProductName
		if name == "" {
			name = l.ProductID
		}
		cells := []core.Col{}
		if withActual {
			actual := "—"
			if l.ActualQuantity != nil {
				actual = *l.ActualQuantity
			}
			cells = append(cells,
				cell(name, 5, align.Left),
				cell(l.Unit, 2, align.Center),
				cell(l.Quantity, 1, align.Right),
				cell(actual, 2, align.Right),
				cell(l.LineTotal, 2, align.Right),
			)
		} else {
			cells = append(cells,
				cell(name, 6, align.Left),
				cell(l.Unit, 2, align.Center),
				cell(l.Quantity, 2, align.Right),
				cell(l.LineTotal, 2, align.Right),
			)
		}
		result = append(result, row.New(7).Add(cells...))
	}
	return result
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

// totalsRow: bloque de totales alineado a la derecha; solo los que aplican al tipo.
func totalsRow(t dto.TotalsResponse) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	labels := []core.Component{label("Cantidad total:")}
	values := []core.Component{value(t.TotalQuantity)}
	if t.TotalActualQuantity != nil {
		labels = append(labels, label("Cantidad real:"))
		values = append(values, value(*t.TotalActualQuantity))
	}
	if t.Discrepancy != nil {
		labels = append(labels, label("Discrepancia:"))
		values = append(values, value(*t.Discrepancy))
	}
	if t.TotalAmount != nil {
		labels = append(labels, label("Monto total:"))
		values = append(values, value(*t.TotalAmount))
	}
	if t.Profit != nil {
		labels = append(labels, label("Margen:"))
		values = append(values, value(*t.Profit))
	}

	height := float64(6 * len(labels))
	return row.New(height).Add(
		col.New(6),
		col.New(3).Add(labels...),
		col.New(3).Add(values...),
	)
}
