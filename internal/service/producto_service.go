package service

import (
	"context"
	"strconv"
	"strings"

	"gestor/internal/dto"
	"gestor/internal/model"
	"gestor/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductoService is the business logic contract for the product catalog.
type ProductoService interface {
	Crear(ctx context.Context, form dto.ProductoFormData) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id string, form dto.ProductoFormData) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id string) bool
	ObtenerPorID(ctx context.Context, id string) (*dto.ProductoResponse, error)
	Buscar(ctx context.Context, term string) []dto.ProductoResponse
	Disponibles(ctx context.Context) []dto.ProductoResponse
}

type productoService struct {
	repo *repository.ProductoRepository
}

func NewProductoService(repo *repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

// ValidarProducto returns the field-keyed error map for a product form.
// Numeric fields arrive as text; a failed parse is a validation error, never
// a silent zero.
func ValidarProducto(form dto.ProductoFormData) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(form.Codigo) == "" {
		fields["codigo"] = "El código es obligatorio"
	}
	if strings.TrimSpace(form.Descripcion) == "" {
		fields["descripcion"] = "La descripción es obligatoria"
	}
	if strings.TrimSpace(form.Marca) == "" {
		fields["marca"] = "La marca es obligatoria"
	}

	if strings.TrimSpace(form.Precio) == "" {
		fields["precio"] = "El precio es obligatorio"
	} else if precio, err := decimal.NewFromString(strings.TrimSpace(form.Precio)); err != nil || !precio.IsPositive() {
		fields["precio"] = "El precio debe ser un número mayor a 0"
	}

	if strings.TrimSpace(form.Costo) == "" {
		fields["costo"] = "El costo es obligatorio"
	} else if costo, err := decimal.NewFromString(strings.TrimSpace(form.Costo)); err != nil || !costo.IsPositive() {
		fields["costo"] = "El costo debe ser un número mayor a 0"
	}

	if strings.TrimSpace(form.Stock) == "" {
		fields["stock"] = "El stock es obligatorio"
	} else if stock, err := strconv.Atoi(strings.TrimSpace(form.Stock)); err != nil || stock < 0 {
		fields["stock"] = "El stock debe ser un número entero mayor o igual a 0"
	}

	return fields
}

// parseProducto converts a validated form into record fields. Codigo follows
// the upper-cased-at-input convention.
func parseProducto(form dto.ProductoFormData) model.Producto {
	precio, _ := decimal.NewFromString(strings.TrimSpace(form.Precio))
	costo, _ := decimal.NewFromString(strings.TrimSpace(form.Costo))
	stock, _ := strconv.Atoi(strings.TrimSpace(form.Stock))
	return model.Producto{
		Codigo:      strings.ToUpper(strings.TrimSpace(form.Codigo)),
		Descripcion: form.Descripcion,
		Marca:       form.Marca,
		Precio:      precio,
		Costo:       costo,
		Stock:       stock,
	}
}

func (s *productoService) Crear(ctx context.Context, form dto.ProductoFormData) (*dto.ProductoResponse, error) {
	if fields := ValidarProducto(form); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	p := s.repo.Create(ctx, parseProducto(form))
	resp := dto.NewProductoResponse(p)
	return &resp, nil
}

func (s *productoService) Actualizar(ctx context.Context, id string, form dto.ProductoFormData) (*dto.ProductoResponse, error) {
	if fields := ValidarProducto(form); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	updated, ok := s.repo.Update(ctx, id, parseProducto(form))
	if !ok {
		return nil, ErrNoEncontrado
	}
	resp := dto.NewProductoResponse(*updated)
	return &resp, nil
}

func (s *productoService) Eliminar(ctx context.Context, id string) bool {
	return s.repo.Delete(ctx, id)
}

func (s *productoService) ObtenerPorID(_ context.Context, id string) (*dto.ProductoResponse, error) {
	p, ok := s.repo.FindByID(id)
	if !ok {
		return nil, ErrNoEncontrado
	}
	resp := dto.NewProductoResponse(*p)
	return &resp, nil
}

func (s *productoService) Buscar(_ context.Context, term string) []dto.ProductoResponse {
	return dto.NewProductoResponseList(s.repo.Search(term))
}

func (s *productoService) Disponibles(_ context.Context) []dto.ProductoResponse {
	return dto.NewProductoResponseList(s.repo.Disponibles())
}
