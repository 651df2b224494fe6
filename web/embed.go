// Package web embeds the mini-app front end so the binary serves it
// without any on-disk assets.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var assets embed.FS

// Handler serves the embedded front end at the site root.
func Handler() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// In practice this should not fail; fall back to empty FS.
		return http.FileServer(http.FS(embed.FS{}))
	}
	return http.FileServer(http.FS(sub))
}
