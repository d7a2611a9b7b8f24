package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mark47B/iam-service/internal/domain/entity"
	"github.com/mark47B/iam-service/internal/domain/usecase"
	"github.com/mark47B/iam-service/internal/infra/transport/rest/gen"
	"github.com/mark47B/iam-service/internal/infra/transport/rest/middleware"
)

// повторяет ограничения ChangeStatusRequest.ids из openapi.yaml
const idsRules = "required,min=1,dive,required,max=255"

// PUT /iam/status
func (h *Handlers) PutIamStatus(w http.ResponseWriter, r *http.Request, params gen.PutIamStatusParams) {
	lang := h.language(params.AcceptLanguage)

	actor, ok := middleware.ActingUserFrom(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, errorBody(gen.UNAUTHORIZED, "missing acting user"))
		return
	}

	// наличие disabled проверяет OpenAPIValidator
	var body gen.PutIamStatusJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, http.StatusBadRequest, errorBody(gen.VALIDATIONERROR, "invalid json body"))
		return
	}
	if err := h.validator.Var(body.Ids, idsRules); err != nil {
		WriteError(w, http.StatusBadRequest, errorBody(gen.VALIDATIONERROR,
			h.messages.Message(lang, "errors.validation.message")+": "+err.Error()))
		return
	}

	err := h.service.ChangeStatus(r.Context(), actor, lang, entity.StatusChangeRequest{
		IDs:      body.Ids,
		Disabled: body.Disabled,
	})
	if err != nil {
		var (
			validationErr *usecase.ValidationError
			syncErr       *usecase.SyncError
		)
		switch {
		case errors.As(err, &validationErr):
			WriteError(w, http.StatusUnprocessableEntity, errorBody(ruleCode(validationErr.Rule), validationErr.Error()))
		case errors.As(err, &syncErr):
			// база уже изменена, расхождение нужно разбирать вручную
			WriteError(w, http.StatusBadGateway, errorBody(gen.IDENTITYSYNCFAILED,
				h.messages.Message(lang, "iam.errors.identitySync")))
		case errors.Is(err, usecase.ErrInvariant):
			h.log.Error("status change contract violated", slog.Any("error", err))
			WriteError(w, http.StatusInternalServerError, errorBody(gen.INTERNAL, "internal error"))
		default:
			h.log.Error("status change failed", slog.String("actor_id", actor.ID), slog.Any("error", err))
			WriteError(w, http.StatusInternalServerError, errorBody(gen.INTERNAL, "internal error"))
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /iam/users
func (h *Handlers) GetIamUsers(w http.ResponseWriter, r *http.Request, params gen.GetIamUsersParams) {
	actor, ok := middleware.ActingUserFrom(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, errorBody(gen.UNAUTHORIZED, "missing acting user"))
		return
	}

	users, err := h.service.ListUsers(r.Context(), actor, entity.UserFilter{Disabled: params.Disabled})
	if err != nil {
		h.log.Error("list users failed", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, errorBody(gen.INTERNAL, "internal error"))
		return
	}

	resp := gen.UserList{Users: make([]gen.User, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, toGenUser(u))
	}
	WriteJSON(w, http.StatusOK, resp)
}

// GET /iam/users/{userId}
func (h *Handlers) GetIamUsersUserId(w http.ResponseWriter, r *http.Request, userId string, params gen.GetIamUsersUserIdParams) {
	actor, ok := middleware.ActingUserFrom(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, errorBody(gen.UNAUTHORIZED, "missing acting user"))
		return
	}

	user, err := h.service.FindUser(r.Context(), actor, userId)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			WriteError(w, http.StatusNotFound, errorBody(gen.NOTFOUND,
				h.messages.Message(h.language(params.AcceptLanguage), "iam.errors.userNotFound")))
			return
		}
		h.log.Error("find user failed", slog.String("user_id", userId), slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, errorBody(gen.INTERNAL, "internal error"))
		return
	}

	WriteJSON(w, http.StatusOK, gen.UserResponse{User: toGenUser(user)})
}

func ruleCode(rule usecase.Rule) gen.ErrorResponseErrorCode {
	switch rule {
	case usecase.RuleDisablingHimself:
		return gen.DISABLINGHIMSELF
	default:
		return gen.VALIDATIONERROR
	}
}
