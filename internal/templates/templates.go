// Package templates provides embedded file templates.
package templates

import (
	"embed"
	"path"
)

//go:embed all:files
var content embed.FS

// Read returns the named template's content.
func Read(name string) ([]byte, error) {
	return content.ReadFile(path.Join("files", name))
}
