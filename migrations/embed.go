// Package migrations embeds the goose SQL migrations so schema
// initialization ships inside the binary and stays idempotent across
// restarts: goose records applied versions and skips them on the next run.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
