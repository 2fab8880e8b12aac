package dto

import "gestor/internal/model"

// CompraItemFormData is one raw line of the purchase form. Quantity arrives
// as text; entries may be blank (the form keeps empty rows around).
type CompraItemFormData struct {
	ProductID string `json:"productId"`
	Quantity  string `json:"quantity"`
}

// CompraFormData is the raw purchase form submission.
type CompraFormData struct {
	CustomerContactID string               `json:"customerContactId"`
	Items             []CompraItemFormData `json:"items"`
	Notes             string               `json:"notes"`
}

// ActualizarEstadoRequest drives the explicit status-update operation.
type ActualizarEstadoRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

// CompraItemDetalle pairs a line item with its product, resolved against the
// current catalog. Producto is nil when the reference dangles (the product
// was deleted after the purchase) — renderers show a placeholder instead.
type CompraItemDetalle struct {
	model.CompraItem
	Producto *model.Producto `json:"product"`
}

// CompraDetalle is the fully-resolved purchase view. Customer is nil when
// the contact reference dangles.
type CompraDetalle struct {
	model.Compra
	Customer *model.Contacto     `json:"customer"`
	Detalle  []CompraItemDetalle `json:"itemsWithDetails"`
}
