// Package frontend embeds the static web UI served by the HTTP
// controller.
package frontend

import "embed"

//go:embed all:static
var StaticFiles embed.FS
