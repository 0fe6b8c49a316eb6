// Package migrations embeds the goose migration files for the slot store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
