package migrations

import "embed"

// Files stores forward-only goose migrations, one directory per SQL dialect.
//
//go:embed sqlite/*.sql postgres/*.sql
var Files embed.FS
