// Package migrations embeds the goose SQL migrations that create the local
// cache schema (users and their commodity tags).
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
