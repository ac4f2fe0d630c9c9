package locales

import "embed"

// FS holds the bundled UI translation dictionaries, one JSON file per language.
//
//go:embed *.json
var FS embed.FS
