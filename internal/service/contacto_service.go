package service

import (
	"context"
	"regexp"
	"strings"

	"gestor/internal/dto"
	"gestor/internal/model"
	"gestor/internal/repository"
)

// emailRe is the same simple local@domain.tld shape the contact form checks.
// Deliberately loose — presence of an @ and a dotted domain, nothing more.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactoService is the business logic contract for contacts.
type ContactoService interface {
	Crear(ctx context.Context, form dto.ContactoFormData) (*model.Contacto, error)
	Actualizar(ctx context.Context, id string, form dto.ContactoFormData) (*model.Contacto, error)
	Eliminar(ctx context.Context, id string) bool
	ObtenerPorID(ctx context.Context, id string) (*model.Contacto, error)
	Buscar(ctx context.Context, term string) []model.Contacto
}

type contactoService struct {
	repo *repository.ContactoRepository
}

func NewContactoService(repo *repository.ContactoRepository) ContactoService {
	return &contactoService{repo: repo}
}

// ValidarContacto returns the field-keyed error map for a contact form.
// An empty map means the form passes.
func ValidarContacto(form dto.ContactoFormData) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(form.FirstName) == "" {
		fields["firstName"] = "El nombre es obligatorio"
	}
	if strings.TrimSpace(form.LastName) == "" {
		fields["lastName"] = "El apellido es obligatorio"
	}
	if strings.TrimSpace(form.Email) == "" {
		fields["email"] = "El email es obligatorio"
	} else if !emailRe.MatchString(form.Email) {
		fields["email"] = "El email no es válido"
	}
	if strings.TrimSpace(form.Phone) == "" {
		fields["phone"] = "El teléfono es obligatorio"
	}

	return fields
}

func (s *contactoService) Crear(ctx context.Context, form dto.ContactoFormData) (*model.Contacto, error) {
	if fields := ValidarContacto(form); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	c := s.repo.Create(ctx, model.Contacto{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		Company:   form.Company,
		Notes:     form.Notes,
	})
	return &c, nil
}

func (s *contactoService) Actualizar(ctx context.Context, id string, form dto.ContactoFormData) (*model.Contacto, error) {
	if fields := ValidarContacto(form); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	updated, ok := s.repo.Update(ctx, id, model.Contacto{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		Company:   form.Company,
		Notes:     form.Notes,
	})
	if !ok {
		return nil, ErrNoEncontrado
	}
	return updated, nil
}

func (s *contactoService) Eliminar(ctx context.Context, id string) bool {
	return s.repo.Delete(ctx, id)
}

func (s *contactoService) ObtenerPorID(_ context.Context, id string) (*model.Contacto, error) {
	c, ok := s.repo.FindByID(id)
	if !ok {
		return nil, ErrNoEncontrado
	}
	return c, nil
}

func (s *contactoService) Buscar(_ context.Context, term string) []model.Contacto {
	return s.repo.Search(term)
}
