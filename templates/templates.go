package templates

import "embed"

//go:embed *.tmpl
var files embed.FS

// FS exposes the embedded template files.
func FS() embed.FS {
	return files
}
