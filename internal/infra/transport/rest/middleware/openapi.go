package middleware

import (
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"

	"github.com/mark47B/iam-service/internal/infra/transport/rest/gen"
)

// OpenAPIValidator проверяет запросы по встроенному документу до хендлеров.
// Маршруты, которых нет в документе, пропускаются как есть.
func OpenAPIValidator(doc *openapi3.T) (func(http.Handler) http.Handler, error) {
	// серверы из документа не должны влиять на матчинг хоста;
	// сам документ не трогаем, он же отдаётся на /openapi.json
	routed := *doc
	routed.Servers = nil

	router, err := legacy.NewRouter(&routed)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	opts := &openapi3filter.Options{
		// аутентификацию делает Auth
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				// *routers.RouteError: путь или метод не описан
				next.ServeHTTP(w, r)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    opts,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				respondError(w, http.StatusBadRequest, gen.VALIDATIONERROR, err.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}
