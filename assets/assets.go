// Package assets embeds the authored level files.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:levels
var assetFS embed.FS

// FS exposes the embedded level files, rooted so that config.Level paths
// resolve as is.
func FS() fs.FS {
	return assetFS
}
