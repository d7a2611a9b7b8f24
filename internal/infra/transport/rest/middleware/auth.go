package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mark47B/iam-service/internal/domain/entity"
	"github.com/mark47B/iam-service/internal/infra/token"
	"github.com/mark47B/iam-service/internal/infra/transport/rest/gen"
)

type actingUserKey struct{}

func WithActingUser(ctx context.Context, actor entity.ActingUser) context.Context {
	return context.WithValue(ctx, actingUserKey{}, actor)
}

func ActingUserFrom(ctx context.Context) (entity.ActingUser, bool) {
	actor, ok := ctx.Value(actingUserKey{}).(entity.ActingUser)
	return actor, ok
}

// Auth проверяет JWT только для операций с bearerAuth: сгенерированная
// обёртка кладёт gen.BearerAuthScopes в контекст именно для них.
func Auth(secret string) gen.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, secured := r.Context().Value(gen.BearerAuthScopes).([]string); !secured {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, http.StatusUnauthorized, gen.UNAUTHORIZED, "missing authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				respondError(w, http.StatusUnauthorized, gen.UNAUTHORIZED, "invalid authorization header format")
				return
			}

			claims, err := token.Parse(parts[1], secret)
			if err != nil {
				slog.Debug("rejected token", slog.Any("error", err))
				respondError(w, http.StatusUnauthorized, gen.UNAUTHORIZED, "invalid or expired token")
				return
			}

			ctx := WithActingUser(r.Context(), claims.ActingUser())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func respondError(w http.ResponseWriter, status int, code gen.ErrorResponseErrorCode, message string) {
	var body gen.ErrorResponse
	body.Error.Code = code
	body.Error.Message = message

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}
