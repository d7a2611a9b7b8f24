package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mark47B/iam-service/internal/infra/transport/rest/gen"
)

func newValidated(t *testing.T) (http.Handler, *[]byte) {
	t.Helper()
	doc, err := gen.GetSwagger()
	require.NoError(t, err)
	validate, err := OpenAPIValidator(doc)
	require.NoError(t, err)

	var seen []byte
	return validate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			seen, _ = io.ReadAll(r.Body)
		}
		w.WriteHeader(http.StatusNoContent)
	})), &seen
}

func TestOpenAPIValidator_ChangeStatusBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"valid", `{"ids":["u2"],"disabled":true}`, http.StatusNoContent},
		{"empty ids", `{"ids":[],"disabled":true}`, http.StatusBadRequest},
		{"missing disabled", `{"ids":["u2"]}`, http.StatusBadRequest},
		{"scalar ids", `{"ids":"u2","disabled":true}`, http.StatusBadRequest},
		{"disabled not bool", `{"ids":["u2"],"disabled":"yes"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, seen := newValidated(t)

			r := httptest.NewRequest(http.MethodPut, "/iam/status", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, r)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusBadRequest {
				assert.Contains(t, rec.Body.String(), `"VALIDATION_ERROR"`)
			} else {
				// тело должно дойти до хендлера целиком
				assert.JSONEq(t, tt.body, string(*seen))
			}
		})
	}
}

func TestOpenAPIValidator_QueryParam(t *testing.T) {
	h, _ := newValidated(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/iam/users?disabled=nope", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/iam/users?disabled=false", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestOpenAPIValidator_KeepsDocumentServers(t *testing.T) {
	doc, err := gen.GetSwagger()
	require.NoError(t, err)
	require.NotEmpty(t, doc.Servers)

	_, err = OpenAPIValidator(doc)
	require.NoError(t, err)

	assert.NotEmpty(t, doc.Servers)
}

func TestOpenAPIValidator_UnknownRoutePassesThrough(t *testing.T) {
	h, _ := newValidated(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
