// AngelaMos | 2026
// embed.go

// Package migrations embeds the goose SQL migrations applied at startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
