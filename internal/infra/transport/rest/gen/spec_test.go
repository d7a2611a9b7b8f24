package gen

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Маршруты сгенерированного сервера должны совпадать с операциями документа
func TestRoutesMatchDocument(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	var want []string
	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			want = append(want, method+" "+path)
		}
	}

	router := chi.NewRouter()
	HandlerWithOptions(Unimplemented{}, ChiServerOptions{BaseRouter: router})

	var got []string
	err = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got = append(got, method+" "+route)
		return nil
	})
	require.NoError(t, err)

	sort.Strings(want)
	sort.Strings(got)
	assert.Equal(t, want, got)
}

func TestSecuredOperationsCarryScopes(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	router := chi.NewRouter()
	HandlerWithOptions(Unimplemented{}, ChiServerOptions{
		BaseRouter: router,
		Middlewares: []MiddlewareFunc{func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if _, secured := r.Context().Value(BearerAuthScopes).([]string); secured {
					w.Header().Set("X-Secured", "yes")
				}
				next.ServeHTTP(w, r)
			})
		}},
	})

	for path, item := range doc.Paths.Map() {
		for method, op := range item.Operations() {
			secured := op.Security == nil || len(*op.Security) > 0

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(method, strings.ReplaceAll(path, "{userId}", "u1"), nil))

			assert.Equal(t, secured, rec.Header().Get("X-Secured") == "yes", "%s %s", method, path)
		}
	}
}
