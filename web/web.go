// Package web holds the embedded page assets served by the forager binary.
package web

import "embed"

//go:embed index.html static
var Assets embed.FS
