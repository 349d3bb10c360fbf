package document

import (
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain/document"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

func toLineResponse(ledger *document.Ledger, line *entity.DocumentLine) *dto.LineResponse {
	if line == nil {
		return nil
	}
	out := &dto.LineResponse{
		ID:                line.ID,
		DocumentID:        line.DocumentID,
		ProductID:         line.ProductID,
		Quantity:          line.Quantity.String(),
		UnitPurchasePrice: line.UnitPurchasePrice.String(),
		UnitSellPrice:     line.UnitSellPrice.String(),
		SenderZoneID:      line.SenderZoneID,
		ReceiverZoneID:    line.ReceiverZoneID,
		LineTotal:         ledger.LineTotal(line).String(),
	}
	if info, err := ledger.ProductInfo(line.ProductID); err == nil {
		out.ProductName = info.Name
		out.Unit = info.Unit
	}
	if line.ActualQuantity != nil {
		s := line.ActualQuantity.String()
		out.ActualQuantity = &s
	}
	return out
}

func toTotalsResponse(t document.Totals) dto.TotalsResponse {
	out := dto.TotalsResponse{
		TotalQuantity: t.TotalQuantity.String(),
	}
	if t.HasDiscrepancy {
		actual := t.TotalActualQuantity.String()
		disc := t.Discrepancy.String()
		out.TotalActualQuantity = &actual
		out.Discrepancy = &disc
	}
	if t.HasAmount {
		amount := t.TotalAmount.String()
		out.TotalAmount = &amount
	}
	if t.HasProfit {
		profit := t.Profit.String()
		out.Profit = &profit
	}
	return out
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	if d == nil {
		return nil
	}
	return &dto.DocumentResponse{
		ID:         d.ID,
		TypeID:     d.TypeID,
		Type:       document.Type(d.TypeID).String(),
		Number:     d.Number,
		Date:       d.Date,
		Comment:    d.Comment,
		Status:     d.Status,
		SupplierID: d.SupplierID,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
