// Package assets embeds the bundled level maps.
package assets

import (
	"embed"
)

//go:embed all:maps
var mapFS embed.FS

// Maps returns the embedded filesystem holding the maps directory.
func Maps() embed.FS {
	return mapFS
}
