package repository

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"gestor/internal/model"
	"gestor/internal/storage"

	"github.com/google/uuid"
)

// ProductoRepository holds the authoritative in-memory product catalog.
type ProductoRepository struct {
	mu    sync.RWMutex
	store storage.Store
	items []model.Producto
}

func NewProductoRepository(store storage.Store) *ProductoRepository {
	return &ProductoRepository{store: store}
}

func (r *ProductoRepository) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = loadBlob(ctx, r.store, ProductosKey, seedProductos)
}

func (r *ProductoRepository) Create(ctx context.Context, p model.Producto) model.Producto {
	now := time.Now()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.Producto{p}, r.items...)
	saveBlob(ctx, r.store, ProductosKey, r.items)
	return p
}

func (r *ProductoRepository) Update(ctx context.Context, id string, p model.Producto) (*model.Producto, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		r.items[i].Codigo = p.Codigo
		r.items[i].Descripcion = p.Descripcion
		r.items[i].Marca = p.Marca
		r.items[i].Precio = p.Precio
		r.items[i].Costo = p.Costo
		r.items[i].Stock = p.Stock
		r.items[i].UpdatedAt = time.Now()
		saveBlob(ctx, r.store, ProductosKey, r.items)
		updated := r.items[i]
		return &updated, true
	}
	return nil, false
}

func (r *ProductoRepository) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			saveBlob(ctx, r.store, ProductosKey, r.items)
			return true
		}
	}
	return false
}

func (r *ProductoRepository) FindByID(id string) (*model.Producto, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			p := r.items[i]
			return &p, true
		}
	}
	return nil, false
}

func (r *ProductoRepository) All() []model.Producto {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Producto(nil), r.items...)
}

// Disponibles returns products with stock on hand — the selectable set for
// the purchase form.
func (r *ProductoRepository) Disponibles() []model.Producto {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Producto, 0, len(r.items))
	for _, p := range r.items {
		if p.Disponible() {
			out = append(out, p)
		}
	}
	return out
}

// Search matches codigo, descripcion and marca case-insensitively; precio
// and stock match the raw term against their string forms.
func (r *ProductoRepository) Search(term string) []model.Producto {
	if term == "" {
		return r.All()
	}
	lower := strings.ToLower(term)

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Producto, 0, len(r.items))
	for _, p := range r.items {
		if strings.Contains(strings.ToLower(p.Codigo), lower) ||
			strings.Contains(strings.ToLower(p.Descripcion), lower) ||
			strings.Contains(strings.ToLower(p.Marca), lower) ||
			strings.Contains(p.Precio.String(), term) ||
			strings.Contains(strconv.Itoa(p.Stock), term) {
			out = append(out, p)
		}
	}
	return out
}
