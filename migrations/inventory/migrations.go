// Package inventory embeds the goose migrations for the postgres storage slot.
package inventory

import "embed"

// FS holds the SQL migration files.
//
//go:embed *.sql
var FS embed.FS
