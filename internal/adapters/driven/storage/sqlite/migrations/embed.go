// Package migrations embeds SQL migration files for the SQLite catalog store.
// Files follow the golang-migrate naming scheme: NNNNNN_title.{up,down}.sql.
package migrations

import "embed"

// FS contains all SQL migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS

// Catalog schema files, also replayed by a full catalog reset.
const (
	CatalogUp   = "000001_catalog.up.sql"
	CatalogDown = "000001_catalog.down.sql"
)
