package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP. Para rechazos de stock, Available y Unit
// llevan los datos del mensaje correctivo.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Available string `json:"available,omitempty"`
	Max       string `json:"max,omitempty"`
	Unit      string `json:"unit,omitempty"`
}
