// Package docs serves the embedded OpenAPI document and a ReDoc page.
package docs

import (
	"context"
	_ "embed"
	"net/http"
)

// openAPI contains the embedded OpenAPI YAML specification.
//
//go:embed openapi.yaml
var openAPI []byte

// Register attaches the API documentation routes to mux.
// Routes:
//
//	GET /docs              -> ReDoc HTML
//	GET /docs/openapi.yaml -> embedded OpenAPI document
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	// Serve ReDoc HTML at /docs
	mux.HandleFunc("/docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(indexHTML))
	})

	// Serve the OpenAPI document at /docs/openapi.yaml
	mux.HandleFunc("/docs/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		_, _ = w.Write(openAPI)
	})
}

// Minimal HTML that loads ReDoc and points it at the embedded document.
const indexHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Rubriq API Docs</title>
    <style>body{margin:0;padding:0}</style>
  </head>
  <body>
    <redoc id="redoc-container"></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
    <script>Redoc.init('/docs/openapi.yaml', { suppressWarnings: true }, document.getElementById('redoc-container'));</script>
  </body>
</html>`
