package site

import (
	"embed"
	"io/fs"
)

//go:embed templates locales static
var assets embed.FS

// Templates holds layout.html, partials/ and pages/.
func Templates() fs.FS {
	sub, _ := fs.Sub(assets, "templates")
	return sub
}

// Locales holds the YAML translation files.
func Locales() fs.FS {
	sub, _ := fs.Sub(assets, "locales")
	return sub
}

// Static holds the public assets served under /static/.
func Static() fs.FS {
	sub, _ := fs.Sub(assets, "static")
	return sub
}
