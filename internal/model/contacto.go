package model

import "time"

// Contacto is one entry in the customer agenda. Only FirstName, LastName,
// Email and Phone are required; Company and Notes may be blank.
type Contacto struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NombreCompleto is the display name used in listings and receipts.
func (c Contacto) NombreCompleto() string {
	return c.FirstName + " " + c.LastName
}
