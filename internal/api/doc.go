package api

import (
	_ "embed"
	"net/http"
)

//go:embed doc.html
var docPage []byte

// RootDoc serves the static API documentation page.
func RootDoc(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(docPage)
}
