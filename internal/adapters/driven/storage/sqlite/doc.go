// Package sqlite provides the SQLite-backed catalog store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It holds two tables:
//
//   - lenses: One row per lens, keyed by name
//   - lens_example_photos: Three example photo links per lens
//
// # Schema
//
// The schema is managed by golang-migrate from versioned migrations embedded
// from the migrations/ directory. Each migration is a pair of .up.sql and
// .down.sql files. A catalog refresh replays the catalog migration pair to
// drop and recreate both tables.
//
// # Data Location
//
// By default, the database is stored at ~/.lenscout/data/catalog.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
