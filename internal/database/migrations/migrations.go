// Package migrations embeds the store's forward schema migrations, applied
// with goose on startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
