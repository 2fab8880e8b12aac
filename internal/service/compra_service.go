package service

import (
	"context"
	"strconv"
	"strings"

	"gestor/internal/dto"
	"gestor/internal/model"
	"gestor/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxRate is the flat IVA rate (21%) applied to every purchase subtotal.
// Not configurable per purchase.
var TaxRate = decimal.RequireFromString("0.21")

// CompraService is the business logic contract for purchases.
type CompraService interface {
	Crear(ctx context.Context, form dto.CompraFormData) (*model.Compra, error)
	Actualizar(ctx context.Context, id string, form dto.CompraFormData) (*model.Compra, error)
	ActualizarEstado(ctx context.Context, id, estado string) (*model.Compra, error)
	Eliminar(ctx context.Context, id string) bool
	ObtenerPorID(ctx context.Context, id string) (*model.Compra, error)
	ObtenerDetalle(ctx context.Context, id string) (*dto.CompraDetalle, error)
	Buscar(ctx context.Context, term string) []model.Compra
}

type compraService struct {
	compras   *repository.CompraRepository
	contactos *repository.ContactoRepository
	productos *repository.ProductoRepository
}

func NewCompraService(
	compras *repository.CompraRepository,
	contactos *repository.ContactoRepository,
	productos *repository.ProductoRepository,
) CompraService {
	return &compraService{
		compras:   compras,
		contactos: contactos,
		productos: productos,
	}
}

// ── Computation engine ───────────────────────────────────────────────────────

// parseCantidad parses a form quantity. ok is false for anything that is not
// a positive integer — invalid input stays visible to validation instead of
// being coerced to zero.
func parseCantidad(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// ComputeItems prices raw form entries against the current catalog and
// returns fully-formed line items, in input order, each with a fresh id.
// Entries missing a product or quantity are dropped. The unit price is
// snapshotted here — this is the only place a line item ever reads the
// catalog, so later precio changes never alter persisted purchases.
//
// A productId that no longer resolves prices at zero rather than failing:
// validation makes that reachable only when the product was deleted after
// being selected.
func ComputeItems(rawItems []dto.CompraItemFormData, catalog []model.Producto) []model.CompraItem {
	items := make([]model.CompraItem, 0, len(rawItems))
	for _, entry := range rawItems {
		if entry.ProductID == "" || entry.Quantity == "" {
			continue
		}
		cantidad, ok := parseCantidad(entry.Quantity)
		if !ok {
			continue
		}

		unitPrice := decimal.Zero
		for _, p := range catalog {
			if p.ID == entry.ProductID {
				unitPrice = p.Precio
				break
			}
		}

		items = append(items, model.CompraItem{
			ID:        uuid.NewString(),
			ProductID: entry.ProductID,
			Quantity:  cantidad,
			UnitPrice: unitPrice,
			Subtotal:  unitPrice.Mul(decimal.NewFromInt(int64(cantidad))),
		})
	}
	return items
}

// ComputeTotals derives subtotal, tax and total from line items. Pure and
// deterministic — callers re-invoke it whenever items change; nothing is
// cached.
func ComputeTotals(items []model.CompraItem) (subtotal, tax, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Subtotal)
	}
	tax = subtotal.Mul(TaxRate)
	total = subtotal.Add(tax)
	return subtotal, tax, total
}

// ── Validation ───────────────────────────────────────────────────────────────

// ValidarCompra returns the field-keyed error map for a purchase form.
// The customer check is presence-only: the selection UI offers existing
// contacts, so existence holds by construction.
func ValidarCompra(form dto.CompraFormData) map[string]string {
	fields := make(map[string]string)

	if form.CustomerContactID == "" {
		fields["customerContactId"] = "Debe seleccionar un cliente"
	}

	seen := make(map[string]bool)
	validos := 0
	duplicado := false
	for _, item := range form.Items {
		if item.ProductID == "" || item.Quantity == "" {
			continue
		}
		if _, ok := parseCantidad(item.Quantity); !ok {
			continue
		}
		validos++
		if seen[item.ProductID] {
			duplicado = true
		}
		seen[item.ProductID] = true
	}

	if validos == 0 {
		fields["items"] = "Debe agregar al menos un producto con cantidad válida"
	}
	if duplicado {
		fields["items"] = "No puede agregar el mismo producto múltiples veces"
	}

	return fields
}

// ── Operations ───────────────────────────────────────────────────────────────

func (s *compraService) Crear(ctx context.Context, form dto.CompraFormData) (*model.Compra, error) {
	if fields := ValidarCompra(form); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	items := ComputeItems(form.Items, s.productos.All())
	subtotal, tax, total := ComputeTotals(items)

	compra := s.compras.Create(ctx, model.Compra{
		CustomerContactID: form.CustomerContactID,
		Items:             items,
		Subtotal:          subtotal,
		Tax:               tax,
		Total:             total,
		Status:            model.EstadoPendiente,
		Notes:             form.Notes,
	})
	return &compra, nil
}

// Actualizar recomputes items and totals against the current catalog — the
// explicit recomputation path that editing requires under price
// snapshotting. Status is preserved; only ActualizarEstado changes it.
func (s *compraService) Actualizar(ctx context.Context, id string, form dto.CompraFormData) (*model.Compra, error) {
	if fields := ValidarCompra(form); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	items := ComputeItems(form.Items, s.productos.All())
	subtotal, tax, total := ComputeTotals(items)

	updated, ok := s.compras.Update(ctx, id, model.Compra{
		CustomerContactID: form.CustomerContactID,
		Items:             items,
		Subtotal:          subtotal,
		Tax:               tax,
		Total:             total,
		Notes:             form.Notes,
	})
	if !ok {
		return nil, ErrNoEncontrado
	}
	return updated, nil
}

func (s *compraService) ActualizarEstado(ctx context.Context, id, estado string) (*model.Compra, error) {
	if !model.EstadoValido(estado) {
		return nil, &ValidationError{Fields: map[string]string{
			"status": "Estado inválido",
		}}
	}
	updated, ok := s.compras.UpdateEstado(ctx, id, estado)
	if !ok {
		return nil, ErrNoEncontrado
	}
	return updated, nil
}

func (s *compraService) Eliminar(ctx context.Context, id string) bool {
	return s.compras.Delete(ctx, id)
}

func (s *compraService) ObtenerPorID(_ context.Context, id string) (*model.Compra, error) {
	c, ok := s.compras.FindByID(id)
	if !ok {
		return nil, ErrNoEncontrado
	}
	return c, nil
}

// ObtenerDetalle resolves the customer and product references of a purchase.
// Dangling references come back nil — a deleted contact or product renders
// as a placeholder, never as an error.
func (s *compraService) ObtenerDetalle(_ context.Context, id string) (*dto.CompraDetalle, error) {
	compra, ok := s.compras.FindByID(id)
	if !ok {
		return nil, ErrNoEncontrado
	}

	detalle := &dto.CompraDetalle{Compra: *compra}
	if customer, ok := s.contactos.FindByID(compra.CustomerContactID); ok {
		detalle.Customer = customer
	}
	detalle.Detalle = make([]dto.CompraItemDetalle, 0, len(compra.Items))
	for _, item := range compra.Items {
		d := dto.CompraItemDetalle{CompraItem: item}
		if producto, ok := s.productos.FindByID(item.ProductID); ok {
			d.Producto = producto
		}
		detalle.Detalle = append(detalle.Detalle, d)
	}
	return detalle, nil
}

func (s *compraService) Buscar(_ context.Context, term string) []model.Compra {
	return s.compras.Search(term)
}
