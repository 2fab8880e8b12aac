package service

import (
	"context"
	"testing"

	"gestor/internal/dto"
	"gestor/internal/model"
	"gestor/internal/repository"
	"gestor/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newCompraFixture(t *testing.T) (CompraService, *repository.ContactoRepository, *repository.ProductoRepository, *repository.CompraRepository) {
	t.Helper()
	st := storage.NewMemoryStore()
	contactos := repository.NewContactoRepository(st)
	productos := repository.NewProductoRepository(st)
	compras := repository.NewCompraRepository(st)
	return NewCompraService(compras, contactos, productos), contactos, productos, compras
}

// ── Computation engine ───────────────────────────────────────────────────────

func TestComputeItems(t *testing.T) {
	catalog := []model.Producto{
		{ID: "p1", Descripcion: "Laptop", Precio: dec("100.00")},
		{ID: "p2", Descripcion: "Mouse", Precio: dec("25.50")},
	}

	items := ComputeItems([]dto.CompraItemFormData{
		{ProductID: "p1", Quantity: "2"},
		{ProductID: "", Quantity: "3"},      // no product — dropped
		{ProductID: "p2", Quantity: ""},     // no quantity — dropped
		{ProductID: "p2", Quantity: "abc"},  // unparseable — dropped
		{ProductID: "p2", Quantity: "4"},
	}, catalog)

	require.Len(t, items, 2)

	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].UnitPrice.Equal(dec("100.00")))
	assert.True(t, items[0].Subtotal.Equal(dec("200.00")))

	assert.Equal(t, "p2", items[1].ProductID)
	assert.True(t, items[1].Subtotal.Equal(dec("102.00")))

	// Each line item gets its own identity
	assert.NotEmpty(t, items[0].ID)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestComputeItems_ProductoDesconocidoPreciaCero(t *testing.T) {
	items := ComputeItems([]dto.CompraItemFormData{
		{ProductID: "fantasma", Quantity: "3"},
	}, nil)

	require.Len(t, items, 1)
	assert.True(t, items[0].UnitPrice.IsZero())
	assert.True(t, items[0].Subtotal.IsZero())
}

func TestComputeItems_SnapshotDePrecio(t *testing.T) {
	catalog := []model.Producto{{ID: "p1", Precio: dec("100.00")}}
	items := ComputeItems([]dto.CompraItemFormData{{ProductID: "p1", Quantity: "1"}}, catalog)

	// A later catalog price change must not leak into already-computed items.
	catalog[0].Precio = dec("999.99")
	assert.True(t, items[0].UnitPrice.Equal(dec("100.00")))
}

func TestComputeTotals(t *testing.T) {
	items := []model.CompraItem{
		{Subtotal: dec("200.00")},
	}
	subtotal, tax, total := ComputeTotals(items)

	assert.True(t, subtotal.Equal(dec("200.00")), "subtotal: %s", subtotal)
	assert.True(t, tax.Equal(dec("42.00")), "tax: %s", tax)
	assert.True(t, total.Equal(dec("242.00")), "total: %s", total)
}

func TestComputeTotals_Vacio(t *testing.T) {
	subtotal, tax, total := ComputeTotals(nil)
	assert.True(t, subtotal.IsZero())
	assert.True(t, tax.IsZero())
	assert.True(t, total.IsZero())
}

// ── Validation ───────────────────────────────────────────────────────────────

func TestValidarCompra(t *testing.T) {
	tests := []struct {
		name   string
		form   dto.CompraFormData
		fields []string
	}{
		{
			name: "valida",
			form: dto.CompraFormData{
				CustomerContactID: "c1",
				Items:             []dto.CompraItemFormData{{ProductID: "p1", Quantity: "2"}},
			},
		},
		{
			name: "sin cliente",
			form: dto.CompraFormData{
				Items: []dto.CompraItemFormData{{ProductID: "p1", Quantity: "2"}},
			},
			fields: []string{"customerContactId"},
		},
		{
			name: "items vacios",
			form: dto.CompraFormData{
				CustomerContactID: "c1",
				Items:             []dto.CompraItemFormData{{ProductID: "", Quantity: ""}},
			},
			fields: []string{"items"},
		},
		{
			name: "cantidad no numerica",
			form: dto.CompraFormData{
				CustomerContactID: "c1",
				Items:             []dto.CompraItemFormData{{ProductID: "p1", Quantity: "dos"}},
			},
			fields: []string{"items"},
		},
		{
			name: "cantidad cero",
			form: dto.CompraFormData{
				CustomerContactID: "c1",
				Items:             []dto.CompraItemFormData{{ProductID: "p1", Quantity: "0"}},
			},
			fields: []string{"items"},
		},
		{
			name: "producto duplicado",
			form: dto.CompraFormData{
				CustomerContactID: "c1",
				Items: []dto.CompraItemFormData{
					{ProductID: "p1", Quantity: "1"},
					{ProductID: "p1", Quantity: "3"},
				},
			},
			fields: []string{"items"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields := ValidarCompra(tc.form)
			if len(tc.fields) == 0 {
				assert.Empty(t, fields)
				return
			}
			for _, f := range tc.fields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

// ── Operations ───────────────────────────────────────────────────────────────

func TestCompraService_Crear(t *testing.T) {
	ctx := context.Background()
	svc, _, productos, compras := newCompraFixture(t)

	p := productos.Create(ctx, model.Producto{Codigo: "LAP001", Descripcion: "Laptop", Precio: dec("100.00"), Costo: dec("60.00"), Stock: 5})

	compra, err := svc.Crear(ctx, dto.CompraFormData{
		CustomerContactID: "c1",
		Items:             []dto.CompraItemFormData{{ProductID: p.ID, Quantity: "2"}},
		Notes:             "equipo de oficina",
	})
	require.NoError(t, err)

	assert.Equal(t, model.EstadoPendiente, compra.Status)
	assert.True(t, compra.Subtotal.Equal(dec("200.00")))
	assert.True(t, compra.Tax.Equal(dec("42.00")))
	assert.True(t, compra.Total.Equal(dec("242.00")))
	assert.Equal(t, "equipo de oficina", compra.Notes)

	// Persisted exactly once
	stored, ok := compras.FindByID(compra.ID)
	require.True(t, ok)
	assert.True(t, stored.Total.Equal(dec("242.00")))
}

func TestCompraService_CrearRechazaDuplicados(t *testing.T) {
	ctx := context.Background()
	svc, _, productos, compras := newCompraFixture(t)

	p := productos.Create(ctx, model.Producto{Codigo: "LAP001", Precio: dec("100.00"), Costo: dec("60.00")})

	_, err := svc.Crear(ctx, dto.CompraFormData{
		CustomerContactID: "c1",
		Items: []dto.CompraItemFormData{
			{ProductID: p.ID, Quantity: "1"},
			{ProductID: p.ID, Quantity: "3"},
		},
	})
	ve, ok := AsValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)
	assert.Contains(t, ve.Fields, "items")

	// Failed validation must not mutate the store
	assert.Empty(t, compras.All())
}

func TestCompraService_ActualizarRecalculaYPreservaEstado(t *testing.T) {
	ctx := context.Background()
	svc, _, productos, _ := newCompraFixture(t)

	p := productos.Create(ctx, model.Producto{Codigo: "LAP001", Precio: dec("100.00"), Costo: dec("60.00")})

	compra, err := svc.Crear(ctx, dto.CompraFormData{
		CustomerContactID: "c1",
		Items:             []dto.CompraItemFormData{{ProductID: p.ID, Quantity: "1"}},
	})
	require.NoError(t, err)

	confirmada, err := svc.ActualizarEstado(ctx, compra.ID, model.EstadoConfirmada)
	require.NoError(t, err)
	assert.Equal(t, model.EstadoConfirmada, confirmada.Status)

	// The catalog price changes; editing the purchase re-snapshots it.
	_, ok := productos.Update(ctx, p.ID, model.Producto{Codigo: "LAP001", Precio: dec("150.00"), Costo: dec("60.00")})
	require.True(t, ok)

	updated, err := svc.Actualizar(ctx, compra.ID, dto.CompraFormData{
		CustomerContactID: "c1",
		Items:             []dto.CompraItemFormData{{ProductID: p.ID, Quantity: "2"}},
	})
	require.NoError(t, err)

	assert.True(t, updated.Items[0].UnitPrice.Equal(dec("150.00")))
	assert.True(t, updated.Subtotal.Equal(dec("300.00")))
	assert.True(t, updated.Tax.Equal(dec("63.00")))
	assert.Equal(t, model.EstadoConfirmada, updated.Status, "edit must not reset status")
	assert.Equal(t, compra.ID, updated.ID)
	assert.Equal(t, compra.CreatedAt, updated.CreatedAt)
}

func TestCompraService_ActualizarEstadoInvalido(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newCompraFixture(t)

	_, err := svc.ActualizarEstado(ctx, "x", "shipped")
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "status")

	_, err = svc.ActualizarEstado(ctx, "x", model.EstadoCancelada)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestCompraService_DetalleConReferenciasColgantes(t *testing.T) {
	ctx := context.Background()
	svc, _, productos, _ := newCompraFixture(t)

	p := productos.Create(ctx, model.Producto{Codigo: "LAP001", Descripcion: "Laptop", Precio: dec("100.00"), Costo: dec("60.00")})

	compra, err := svc.Crear(ctx, dto.CompraFormData{
		CustomerContactID: "c-borrado",
		Items:             []dto.CompraItemFormData{{ProductID: p.ID, Quantity: "1"}},
	})
	require.NoError(t, err)

	// Deleting the referenced product succeeds; the purchase keeps the id.
	require.True(t, productos.Delete(ctx, p.ID))

	detalle, err := svc.ObtenerDetalle(ctx, compra.ID)
	require.NoError(t, err)

	assert.Nil(t, detalle.Customer, "deleted contact resolves to nil, not an error")
	require.Len(t, detalle.Detalle, 1)
	assert.Nil(t, detalle.Detalle[0].Producto)
	// The frozen snapshot survives the product's deletion.
	assert.True(t, detalle.Detalle[0].UnitPrice.Equal(dec("100.00")))
}

func TestCompraService_Eliminar(t *testing.T) {
	ctx := context.Background()
	svc, _, productos, _ := newCompraFixture(t)

	p := productos.Create(ctx, model.Producto{Codigo: "X", Precio: dec("10"), Costo: dec("5")})
	compra, err := svc.Crear(ctx, dto.CompraFormData{
		CustomerContactID: "c1",
		Items:             []dto.CompraItemFormData{{ProductID: p.ID, Quantity: "1"}},
	})
	require.NoError(t, err)

	assert.True(t, svc.Eliminar(ctx, compra.ID))
	assert.False(t, svc.Eliminar(ctx, compra.ID), "second delete is a no-op")

	_, err = svc.ObtenerPorID(ctx, compra.ID)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}
