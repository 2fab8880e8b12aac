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

// ContactoRepository holds the authoritative in-memory contact list.
type ContactoRepository struct {
	mu    sync.RWMutex
	store storage.Store
	items []model.Contacto
}

func NewContactoRepository(store storage.Store) *ContactoRepository {
	return &ContactoRepository{store: store}
}

// Load reads the persisted collection, falling back to seed data.
// Called once at startup.
func (r *ContactoRepository) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = loadBlob(ctx, r.store, ContactosKey, seedContactos)
}

// Create assigns identity and timestamps, prepends the record (newest first)
// and persists the whole collection.
func (r *ContactoRepository) Create(ctx context.Context, c model.Contacto) model.Contacto {
	now := time.Now()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.Contacto{c}, r.items...)
	saveBlob(ctx, r.store, ContactosKey, r.items)
	return c
}

// Update replaces the mutable fields of the record with the given id.
// Identity and CreatedAt are preserved; a stale id returns (nil, false).
func (r *ContactoRepository) Update(ctx context.Context, id string, c model.Contacto) (*model.Contacto, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		r.items[i].FirstName = c.FirstName
		r.items[i].LastName = c.LastName
		r.items[i].Email = c.Email
		r.items[i].Phone = c.Phone
		r.items[i].Company = c.Company
		r.items[i].Notes = c.Notes
		r.items[i].UpdatedAt = time.Now()
		saveBlob(ctx, r.store, ContactosKey, r.items)
		updated := r.items[i]
		return &updated, true
	}
	return nil, false
}

// Delete removes the record with the given id. Returns false when there was
// nothing to delete.
func (r *ContactoRepository) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			saveBlob(ctx, r.store, ContactosKey, r.items)
			return true
		}
	}
	return false
}

// FindByID returns a copy of the record, or false for a stale id.
func (r *ContactoRepository) FindByID(id string) (*model.Contacto, bool) {
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

// All returns the full list in store order (newest first).
func (r *ContactoRepository) All() []model.Contacto {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Contacto(nil), r.items...)
}

// Search is a derived view: case-insensitive substring match over name
// parts, email and company; the phone field matches on the raw term.
// An empty term returns the full list. Nothing is persisted.
func (r *ContactoRepository) Search(term string) []model.Contacto {
	if term == "" {
		return r.All()
	}
	lower := strings.ToLower(term)

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Contacto, 0, len(r.items))
	for _, c := range r.items {
		if strings.Contains(strings.ToLower(c.FirstName), lower) ||
			strings.Contains(strings.ToLower(c.LastName), lower) ||
			strings.Contains(strings.ToLower(c.Email), lower) ||
			strings.Contains(c.Phone, term) ||
			strings.Contains(strings.ToLower(c.Company), lower) {
			out = append(out, c)
		}
	}
	return out
}
