package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is one catalog entry. Codigo is a free-text business code,
// upper-cased at input time. Precio and Costo are unit sale price and unit
// cost; both must be > 0 for a valid record.
type Producto struct {
	ID          string          `json:"id"`
	Codigo      string          `json:"codigo"`
	Descripcion string          `json:"descripcion"`
	Marca       string          `json:"marca"`
	Precio      decimal.Decimal `json:"precio"`
	Costo       decimal.Decimal `json:"costo"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// MargenPct returns the profit margin (precio - costo) / precio as a
// percentage, rounded to two decimals. A zero precio yields zero so
// degenerate records never divide by zero.
func (p Producto) MargenPct() decimal.Decimal {
	if p.Precio.IsZero() {
		return decimal.Zero
	}
	return p.Precio.Sub(p.Costo).
		Div(p.Precio).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

// Disponible reports whether the product can be offered in the purchase
// form's product selector.
func (p Producto) Disponible() bool {
	return p.Stock > 0
}
