package handlers

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// GET /openapi.json
func OpenAPIDocument(doc *openapi3.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, doc)
	}
}
