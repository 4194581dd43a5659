// Package db embeds the goose migrations.
package db

import "embed"

// Migrations holds migrations/*.sql; pass it to pg.Migrate with
// MigrationsPath "migrations".
//
//go:embed migrations/*.sql
var Migrations embed.FS
