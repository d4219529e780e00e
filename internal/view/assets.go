package view

import (
	"embed"
	"io/fs"
)

// StylesheetPath is where the server exposes static/app.css.
const StylesheetPath = "/static/app.css"

//go:embed static
var static embed.FS

// Assets returns the embedded static files, rooted at the static directory.
func Assets() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// "static" is a valid, embedded path.
		panic(err)
	}
	return sub
}
