// Package leaft holds the assets compiled into the Leaft binaries.
package leaft

import "embed"

// EmailFS holds the email templates, one directory per template with an
// html.tmpl and a plaintext.tmpl.
//
//go:embed templates/emails
var EmailFS embed.FS

// MigrationsFS holds the SQL schema migrations applied by leaftctl migrate.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
