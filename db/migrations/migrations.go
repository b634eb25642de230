package migrations

import "embed"

// FS embeds the run log schema migrations. The golang-migrate library
// reads these files via the iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version main migrates to.
const Version = 1
