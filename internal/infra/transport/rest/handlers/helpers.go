package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mark47B/iam-service/internal/domain/entity"
	"github.com/mark47B/iam-service/internal/infra/transport/rest/gen"
)

func WriteError(w http.ResponseWriter, code int, err gen.ErrorResponse) {
	WriteJSON(w, code, err)
}

func WriteJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}

func errorBody(code gen.ErrorResponseErrorCode, message string) gen.ErrorResponse {
	var resp gen.ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	return resp
}

// ParamErrorHandler — для ошибок биндинга параметров в сгенерированной обёртке
func ParamErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	WriteError(w, http.StatusBadRequest, errorBody(gen.VALIDATIONERROR, err.Error()))
}

func toGenUser(u entity.User) gen.User {
	resp := gen.User{
		UserId:    u.ID,
		Email:     u.Email,
		Disabled:  u.Disabled,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.FullName != "" {
		fullName := u.FullName
		resp.FullName = &fullName
	}
	if u.AuthenticationUID != "" {
		uid := u.AuthenticationUID
		resp.AuthenticationUid = &uid
	}
	return resp
}
