package dto

// ContactoFormData is the raw contact form submission. Field-level rules
// (required fields, email shape) run in the service layer and come back as a
// field-keyed error map, so no validate tags here.
type ContactoFormData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Notes     string `json:"notes"`
}
