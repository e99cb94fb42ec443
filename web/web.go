// Package web embeds the dashboard's static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Assets returns the stylesheet and other files served under /static.
func Assets() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic("web: static embed: " + err.Error())
	}
	return sub
}
