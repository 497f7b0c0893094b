// Package static embeds the web shell's client assets.
package static

import "embed"

//go:embed *.css *.js
var FS embed.FS
