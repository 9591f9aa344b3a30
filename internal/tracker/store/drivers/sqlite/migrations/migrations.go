// Package migrations embeds the sqlite schema migrations applied by
// golang-migrate at startup and by `tracker migrate`.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
