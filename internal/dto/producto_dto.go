package dto

import (
	"time"

	"gestor/internal/model"

	"github.com/shopspring/decimal"
)

// ProductoFormData is the raw product form submission. Precio, costo and
// stock arrive as text exactly as typed; parsing them is an explicit
// validation step, never a silent coercion.
type ProductoFormData struct {
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
	Marca       string `json:"marca"`
	Precio      string `json:"precio"`
	Costo       string `json:"costo"`
	Stock       string `json:"stock"`
}

// ProductoResponse is the catalog read model: the record plus the derived
// profit margin percentage.
type ProductoResponse struct {
	ID          string          `json:"id"`
	Codigo      string          `json:"codigo"`
	Descripcion string          `json:"descripcion"`
	Marca       string          `json:"marca"`
	Precio      decimal.Decimal `json:"precio"`
	Costo       decimal.Decimal `json:"costo"`
	Stock       int             `json:"stock"`
	MargenPct   decimal.Decimal `json:"margenPct"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewProductoResponse builds the read model from a catalog record.
func NewProductoResponse(p model.Producto) ProductoResponse {
	return ProductoResponse{
		ID:          p.ID,
		Codigo:      p.Codigo,
		Descripcion: p.Descripcion,
		Marca:       p.Marca,
		Precio:      p.Precio,
		Costo:       p.Costo,
		Stock:       p.Stock,
		MargenPct:   p.MargenPct(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// NewProductoResponseList maps a slice of catalog records.
func NewProductoResponseList(productos []model.Producto) []ProductoResponse {
	out := make([]ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, NewProductoResponse(p))
	}
	return out
}
