package dto

// ZoneStockReportRow fila del reporte de stock por zona.
type ZoneStockReportRow struct {
	ZoneID      string `json:"zone_id"`
	ZoneName    string `json:"zone_name"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Unit        string `json:"unit"`
	Quantity    string `json:"quantity"`
}

// DocumentTotalsReportRow fila del reporte de documentos por tipo y período.
type DocumentTotalsReportRow struct {
	TypeID        int    `json:"type_id"`
	Type          string `json:"type"`
	DocumentCount int64  `json:"document_count"`
	TotalQuantity string `json:"total_quantity"`
	TotalAmount   string `json:"total_amount"`
}

// LowStockReportRow fila del reporte de productos con stock bajo.
type LowStockReportRow struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Unit        string `json:"unit"`
	Stock       string `json:"stock"`
}
