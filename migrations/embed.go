// Package migrations ships the schema files inside the binary so the
// CLI works from any working directory.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
