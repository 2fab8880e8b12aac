package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"gestor/internal/model"
	"gestor/internal/storage"

	"github.com/google/uuid"
)

// CompraRepository holds the authoritative in-memory purchase list.
type CompraRepository struct {
	mu    sync.RWMutex
	store storage.Store
	items []model.Compra
}

func NewCompraRepository(store storage.Store) *CompraRepository {
	return &CompraRepository{store: store}
}

func (r *CompraRepository) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = loadBlob(ctx, r.store, ComprasKey, seedCompras)
}

func (r *CompraRepository) Create(ctx context.Context, c model.Compra) model.Compra {
	now := time.Now()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.Compra{c}, r.items...)
	saveBlob(ctx, r.store, ComprasKey, r.items)
	return c
}

// Update replaces the recomputed fields of an existing purchase. Status is
// deliberately not touched here — it only changes through UpdateEstado.
func (r *CompraRepository) Update(ctx context.Context, id string, c model.Compra) (*model.Compra, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		r.items[i].CustomerContactID = c.CustomerContactID
		r.items[i].Items = c.Items
		r.items[i].Subtotal = c.Subtotal
		r.items[i].Tax = c.Tax
		r.items[i].Total = c.Total
		r.items[i].Notes = c.Notes
		r.items[i].UpdatedAt = time.Now()
		saveBlob(ctx, r.store, ComprasKey, r.items)
		updated := r.items[i]
		return &updated, true
	}
	return nil, false
}

// UpdateEstado is the explicit status-update operation.
func (r *CompraRepository) UpdateEstado(ctx context.Context, id, estado string) (*model.Compra, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		r.items[i].Status = estado
		r.items[i].UpdatedAt = time.Now()
		saveBlob(ctx, r.store, ComprasKey, r.items)
		updated := r.items[i]
		return &updated, true
	}
	return nil, false
}

func (r *CompraRepository) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			saveBlob(ctx, r.store, ComprasKey, r.items)
			return true
		}
	}
	return false
}

func (r *CompraRepository) FindByID(id string) (*model.Compra, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			c := r.items[i]
			return &c, true
		}
	}
	return nil, false
}

func (r *CompraRepository) All() []model.Compra {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Compra(nil), r.items...)
}

// Search matches id, status and notes case-insensitively; total matches the
// raw term against its string form.
func (r *CompraRepository) Search(term string) []model.Compra {
	if term == "" {
		return r.All()
	}
	lower := strings.ToLower(term)

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Compra, 0, len(r.items))
	for _, c := range r.items {
		if strings.Contains(strings.ToLower(c.ID), lower) ||
			strings.Contains(c.Total.String(), term) ||
			strings.Contains(strings.ToLower(c.Status), lower) ||
			strings.Contains(strings.ToLower(c.Notes), lower) {
			out = append(out, c)
		}
	}
	return out
}
