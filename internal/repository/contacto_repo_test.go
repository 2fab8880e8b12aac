package repository

import (
	"context"
	"testing"
	"time"

	"gestor/internal/model"
	"gestor/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactoRepository_LoadSeedsOnFirstRun(t *testing.T) {
	repo := NewContactoRepository(storage.NewMemoryStore())
	repo.Load(context.Background())

	contactos := repo.All()
	require.Len(t, contactos, 2)
	assert.Equal(t, "Juan", contactos[0].FirstName)
	assert.Equal(t, "María", contactos[1].FirstName)
}

func TestContactoRepository_LoadRecoversFromCorruptBlob(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryStore()
	require.NoError(t, st.Set(ctx, ContactosKey, "{not json"))

	repo := NewContactoRepository(st)
	repo.Load(ctx)

	// Unparseable blob falls back to seed data, silently.
	assert.Len(t, repo.All(), 2)
}

func TestContactoRepository_CreatePrependsAndPersists(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryStore()
	repo := NewContactoRepository(st)
	repo.Load(ctx)

	before := repo.All()
	for _, c := range before {
		assert.NotEmpty(t, c.ID)
	}

	nuevo := repo.Create(ctx, model.Contacto{FirstName: "Ana", LastName: "López", Email: "ana@email.com", Phone: "600"})
	require.NotEmpty(t, nuevo.ID)
	for _, c := range before {
		assert.NotEqual(t, c.ID, nuevo.ID, "fresh id must not collide")
	}

	after := repo.All()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, nuevo.ID, after[0].ID, "newest record goes first")

	// The whole collection was rewritten
	raw, err := st.Get(ctx, ContactosKey)
	require.NoError(t, err)
	assert.Contains(t, raw, "ana@email.com")
}

func TestContactoRepository_UpdatePreservesIdentity(t *testing.T) {
	ctx := context.Background()
	repo := NewContactoRepository(storage.NewMemoryStore())
	repo.Load(ctx)

	creado := repo.Create(ctx, model.Contacto{FirstName: "Ana", LastName: "López", Email: "ana@email.com", Phone: "600"})

	time.Sleep(5 * time.Millisecond)
	actualizado, ok := repo.Update(ctx, creado.ID, model.Contacto{FirstName: "Ana María", LastName: "López", Email: "ana@email.com", Phone: "600"})
	require.True(t, ok)

	assert.Equal(t, creado.ID, actualizado.ID)
	assert.Equal(t, creado.CreatedAt, actualizado.CreatedAt)
	assert.True(t, actualizado.UpdatedAt.After(creado.UpdatedAt))
	assert.Equal(t, "Ana María", actualizado.FirstName)

	_, ok = repo.Update(ctx, "stale-id", model.Contacto{})
	assert.False(t, ok, "stale id is a tolerated no-op")
}

func TestContactoRepository_DeleteThenSearchNeverReturnsID(t *testing.T) {
	ctx := context.Background()
	repo := NewContactoRepository(storage.NewMemoryStore())
	repo.Load(ctx)

	creado := repo.Create(ctx, model.Contacto{FirstName: "Ana", LastName: "López", Email: "ana@email.com", Phone: "600"})
	require.True(t, repo.Delete(ctx, creado.ID))
	assert.False(t, repo.Delete(ctx, creado.ID))

	for _, term := range []string{"", "ana", "lópez", "600"} {
		for _, c := range repo.Search(term) {
			assert.NotEqual(t, creado.ID, c.ID)
		}
	}
}

func TestContactoRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := NewContactoRepository(storage.NewMemoryStore())
	repo.Load(ctx)

	// Case-insensitive over name, email, company
	assert.Len(t, repo.Search("JUAN"), 1)
	assert.Len(t, repo.Search("garcía"), 1)
	assert.Len(t, repo.Search("acme"), 1)
	assert.Len(t, repo.Search("email.com"), 2)
	// Phone matches the raw term
	assert.Len(t, repo.Search("600 123"), 1)
	// Empty term returns everything; search never mutates
	assert.Len(t, repo.Search(""), 2)
	assert.Len(t, repo.Search("no-match-xyz"), 0)
	assert.Len(t, repo.All(), 2)
}

func TestContactoRepository_EmptyCollectionIsNotPersisted(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryStore()
	repo := NewContactoRepository(st)
	repo.Load(ctx)

	for _, c := range repo.All() {
		require.True(t, repo.Delete(ctx, c.ID))
	}
	assert.Empty(t, repo.All())

	// The last delete left the collection empty — that state is deliberately
	// not written, so the last non-empty blob survives.
	raw, err := st.Get(ctx, ContactosKey)
	require.NoError(t, err)
	assert.Contains(t, raw, "María")
}

func TestContactoRepository_WriteFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryStore()
	st.FailWrites = assert.AnError

	repo := NewContactoRepository(st)
	repo.Load(ctx)

	nuevo := repo.Create(ctx, model.Contacto{FirstName: "Ana", LastName: "López", Email: "ana@email.com", Phone: "600"})

	// Persistence failed, but the in-memory list is still the source of truth.
	_, ok := repo.FindByID(nuevo.ID)
	assert.True(t, ok)
}
