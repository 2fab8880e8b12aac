package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado values for a Compra. A new purchase always starts as pending and
// only changes through the explicit status-update operation.
const (
	EstadoPendiente  = "pending"
	EstadoConfirmada = "confirmed"
	EstadoCancelada  = "cancelled"
)

// EstadoValido reports whether s is one of the three known purchase states.
func EstadoValido(s string) bool {
	return s == EstadoPendiente || s == EstadoConfirmada || s == EstadoCancelada
}

// CompraItem is one line item inside a purchase. UnitPrice is a snapshot of
// the product's precio at the moment the items were computed — later catalog
// changes never alter it. Subtotal is always Quantity * UnitPrice.
type CompraItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Compra is one purchase. Items is ordered, non-empty, and holds at most one
// line per product. Subtotal, Tax and Total are derived from Items and the
// flat tax rate; they are never edited independently.
//
// References to the customer and to products are held by id value only, so
// each collection persists and loads on its own. A referenced record may no
// longer exist; readers must treat failed lookups as "not found", not as
// an error.
type Compra struct {
	ID                string          `json:"id"`
	CustomerContactID string          `json:"customerContactId"`
	Items             []CompraItem    `json:"items"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Tax               decimal.Decimal `json:"tax"`
	Total             decimal.Decimal `json:"total"`
	Status            string          `json:"status"`
	Notes             string          `json:"notes"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}
