// Package migrations embeds the goose SQL migrations, one directory per
// dialect: "postgres" for pgx and "sqlite" for modernc.org/sqlite.
package migrations

import "embed"

// Directory names inside Migrations.
const (
	DirPostgres = "postgres"
	DirSQLite   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS
