package rest

import (
	"net/http"
	"path/filepath"
)

// pages maps front-end routes to their HTML files.
var pages = map[string]string{
	"/":                "index.html",
	"/input":           "input.html",
	"/transition":      "transition.html",
	"/gallery":         "gallery.html",
	"/admin-login":     "admin-login.html",
	"/admin-dashboard": "admin-dashboard.html",
}

// StaticHandler serves the front-end pages and assets from dir.
func StaticHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if page, ok := pages[r.URL.Path]; ok {
			http.ServeFile(w, r, filepath.Join(dir, page))
			return
		}
		files.ServeHTTP(w, r)
	})
}
