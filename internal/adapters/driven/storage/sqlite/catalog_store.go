package sqlite

import (
	"context"
	"fmt"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
	"github.com/lenscout/lenscout-cli/internal/core/ports/driven"
)

// CatalogStore returns a CatalogStore interface backed by this store.
func (s *Store) CatalogStore() driven.CatalogStore {
	return &catalogStore{store: s}
}

// catalogStore implements driven.CatalogStore.
type catalogStore struct {
	store *Store
}

var _ driven.CatalogStore = (*catalogStore)(nil)

// Reset drops and recreates both catalog tables in one transaction.
func (c *catalogStore) Reset(ctx context.Context) error {
	tx, err := c.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err := replaySchema(ctx, tx); err != nil {
		return fmt.Errorf("resetting catalog: %w", err)
	}

	return tx.Commit()
}

// InsertLenses inserts lenses, keeping the first row for any repeated name.
func (c *catalogStore) InsertLenses(ctx context.Context, lenses []domain.Lens) ([]string, error) {
	tx, err := c.store.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO lenses (name, brand, mount, focal_min, focal_max, detail_link)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO NOTHING
	`)
	if err != nil {
		return nil, fmt.Errorf("preparing lens insert: %w", err)
	}
	defer stmt.Close()

	var duplicates []string
	for _, l := range lenses {
		res, err := stmt.ExecContext(ctx, l.Name, l.Brand, l.Mount, l.FocalMin, l.FocalMax, l.DetailLink)
		if err != nil {
			return nil, fmt.Errorf("inserting lens %q: %w", l.Name, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("inserting lens %q: %w", l.Name, err)
		}
		if n == 0 {
			duplicates = append(duplicates, l.Name)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing lenses: %w", err)
	}
	return duplicates, nil
}

// InsertExamples inserts example sets; a second set for a lens is ignored.
func (c *catalogStore) InsertExamples(ctx context.Context, sets []domain.ExamplePhotos) (int, int, error) {
	tx, err := c.store.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO lens_example_photos (lens_name, example1, example2, example3)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, 0, fmt.Errorf("preparing example insert: %w", err)
	}
	defer stmt.Close()

	inserted, ignored := 0, 0
	for _, set := range sets {
		res, err := stmt.ExecContext(ctx, set.LensName, set.Examples[0], set.Examples[1], set.Examples[2])
		if err != nil {
			return 0, 0, fmt.Errorf("inserting examples for %q: %w", set.LensName, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, 0, fmt.Errorf("inserting examples for %q: %w", set.LensName, err)
		}
		if n == 0 {
			ignored++
		} else {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("committing examples: %w", err)
	}
	return inserted, ignored, nil
}

// QueryLenses joins lenses with their examples by brand and focal containment.
func (c *catalogStore) QueryLenses(ctx context.Context, brand string, focal int) ([]domain.LensRow, error) {
	rows, err := c.store.db.QueryContext(ctx, `
		SELECT l.name, l.brand, l.mount, l.focal_min, l.focal_max, l.detail_link,
		       p.example1, p.example2, p.example3
		FROM lenses l
		INNER JOIN lens_example_photos p ON p.lens_name = l.name
		WHERE l.brand = ? AND l.focal_min <= ? AND ? <= l.focal_max
		ORDER BY l.name
	`, brand, focal, focal)
	if err != nil {
		return nil, fmt.Errorf("querying lenses: %w", err)
	}
	defer rows.Close()

	var result []domain.LensRow
	for rows.Next() {
		var r domain.LensRow
		if err := rows.Scan(
			&r.Name, &r.Brand, &r.Mount, &r.FocalMin, &r.FocalMax, &r.DetailLink,
			&r.Examples[0], &r.Examples[1], &r.Examples[2],
		); err != nil {
			return nil, fmt.Errorf("scanning lens row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// Stats counts stored lenses and example sets and lists distinct brands.
func (c *catalogStore) Stats(ctx context.Context) (*domain.CatalogStats, error) {
	stats := &domain.CatalogStats{}

	if err := c.store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lenses`).Scan(&stats.Lenses); err != nil {
		return nil, fmt.Errorf("counting lenses: %w", err)
	}
	if err := c.store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lens_example_photos`).Scan(&stats.ExampleSets); err != nil {
		return nil, fmt.Errorf("counting example sets: %w", err)
	}

	rows, err := c.store.db.QueryContext(ctx, `SELECT DISTINCT brand FROM lenses ORDER BY brand`)
	if err != nil {
		return nil, fmt.Errorf("listing brands: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var brand string
		if err := rows.Scan(&brand); err != nil {
			return nil, fmt.Errorf("scanning brand: %w", err)
		}
		stats.Brands = append(stats.Brands, brand)
	}
	return stats, rows.Err()
}
