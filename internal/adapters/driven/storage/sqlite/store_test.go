package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "lenscout-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

var (
	fiftyPrime = domain.Lens{
		Name: "Canon EF 50mm f/1.8 STM", Brand: "Canon", Mount: "Canon EF",
		FocalMin: 50, FocalMax: 50, DetailLink: "https://lens-db.com/canon-ef-50mm/",
	}
	standardZoom = domain.Lens{
		Name: "Canon EF 24-70mm f/2.8L II USM", Brand: "Canon", Mount: "Canon EF",
		FocalMin: 24, FocalMax: 70, DetailLink: "https://lens-db.com/canon-ef-24-70mm/",
	}
	sonyPrime = domain.Lens{
		Name: "Sony FE 50mm F1.8", Brand: "Sony", Mount: "Sony FE",
		FocalMin: 50, FocalMax: 50, DetailLink: "https://lens-db.com/sony-fe-50mm/",
	}
)

func seedCatalog(t *testing.T, store *Store, lenses ...domain.Lens) {
	t.Helper()
	ctx := context.Background()
	catalog := store.CatalogStore()

	dups, err := catalog.InsertLenses(ctx, lenses)
	require.NoError(t, err)
	require.Empty(t, dups)

	sets := make([]domain.ExamplePhotos, len(lenses))
	for i, l := range lenses {
		sets[i] = domain.NewExamplePhotos(l.Name, []string{"https://flickr.com/" + l.Name})
	}
	_, _, err = catalog.InsertExamples(ctx, sets)
	require.NoError(t, err)
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_CreatesDatabase(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.Equal(t, domain.DefaultCatalogFile, filepath.Base(store.Path()))
	_, err := os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	seedCatalog(t, store, fiftyPrime)
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	stats, err := reopened.CatalogStore().Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Lenses)
}

// ==================== Catalog Store Tests ====================

func TestCatalogStore_QueryLenses(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	seedCatalog(t, store, fiftyPrime, standardZoom, sonyPrime)
	ctx := context.Background()
	catalog := store.CatalogStore()

	rows, err := catalog.QueryLenses(ctx, "Canon", 50)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, standardZoom.Name, rows[0].Name)
	assert.Equal(t, fiftyPrime.Name, rows[1].Name)

	row := rows[1]
	assert.Equal(t, fiftyPrime, row.Lens)
	assert.Equal(t, [3]string{"https://flickr.com/" + fiftyPrime.Name, domain.NoExamplePhoto, domain.NoExamplePhoto}, row.Examples)

	rows, err = catalog.QueryLenses(ctx, "Canon", 24)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, standardZoom.Name, rows[0].Name)

	rows, err = catalog.QueryLenses(ctx, "Canon", 85)
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = catalog.QueryLenses(ctx, "canon", 50)
	require.NoError(t, err)
	assert.Empty(t, rows, "brand match is exact")
}

func TestCatalogStore_QueryRequiresExamples(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	catalog := store.CatalogStore()

	_, err := catalog.InsertLenses(ctx, []domain.Lens{fiftyPrime})
	require.NoError(t, err)

	rows, err := catalog.QueryLenses(ctx, "Canon", 50)
	require.NoError(t, err)
	assert.Empty(t, rows, "lenses without an example set are not joined")
}

func TestCatalogStore_InsertLensesRejectsDuplicates(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	catalog := store.CatalogStore()

	first, err := catalog.InsertLenses(ctx, []domain.Lens{fiftyPrime, standardZoom})
	require.NoError(t, err)
	assert.Empty(t, first)

	changed := fiftyPrime
	changed.Mount = "Something Else"
	dups, err := catalog.InsertLenses(ctx, []domain.Lens{changed, sonyPrime, sonyPrime})
	require.NoError(t, err)
	assert.Equal(t, []string{fiftyPrime.Name, sonyPrime.Name}, dups)

	_, _, err = catalog.InsertExamples(ctx, []domain.ExamplePhotos{domain.NewExamplePhotos(fiftyPrime.Name, nil)})
	require.NoError(t, err)
	rows, err := catalog.QueryLenses(ctx, "Canon", 50)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Canon EF", rows[0].Mount, "first insert wins")
}

func TestCatalogStore_InsertExamplesIgnoresRepeats(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	catalog := store.CatalogStore()

	_, err := catalog.InsertLenses(ctx, []domain.Lens{fiftyPrime})
	require.NoError(t, err)

	inserted, ignored, err := catalog.InsertExamples(ctx, []domain.ExamplePhotos{
		domain.NewExamplePhotos(fiftyPrime.Name, []string{"a"}),
		domain.NewExamplePhotos(fiftyPrime.Name, []string{"b"}),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
	assert.Equal(t, 1, ignored)

	rows, err := catalog.QueryLenses(ctx, "Canon", 50)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "a", rows[0].Examples[0])
}

func TestCatalogStore_Reset(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	seedCatalog(t, store, fiftyPrime, sonyPrime)
	ctx := context.Background()
	catalog := store.CatalogStore()

	require.NoError(t, catalog.Reset(ctx))

	stats, err := catalog.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Lenses)
	assert.Equal(t, 0, stats.ExampleSets)
	assert.Empty(t, stats.Brands)

	// Tables are usable after a reset.
	seedCatalog(t, store, fiftyPrime)
	rows, err := catalog.QueryLenses(ctx, "Canon", 50)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestCatalogStore_Stats(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	seedCatalog(t, store, fiftyPrime, standardZoom, sonyPrime)

	stats, err := store.CatalogStore().Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Lenses)
	assert.Equal(t, 3, stats.ExampleSets)
	assert.Equal(t, []string{"Canon", "Sony"}, stats.Brands)
}
