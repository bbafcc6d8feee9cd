// Package assets embeds the case-study narrative and the dashboard page template.
package assets

import "embed"

//go:embed narrative.md
var Narrative string

//go:embed templates/*.html
var Templates embed.FS
