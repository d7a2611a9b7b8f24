package handlers

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/mark47B/iam-service/internal/domain/usecase"
	"github.com/mark47B/iam-service/internal/i18n"
	"github.com/mark47B/iam-service/internal/infra/transport/rest/gen"
)

// compile-time proof
var _ gen.ServerInterface = (*Handlers)(nil)

type Handlers struct {
	gen.Unimplemented
	service         usecase.Service
	validator       *validator.Validate
	messages        i18n.Localizer
	defaultLanguage string
	log             *slog.Logger
}

func NewHandlers(
	service usecase.Service,
	validate *validator.Validate,
	messages i18n.Localizer,
	defaultLanguage string,
	log *slog.Logger,
) gen.ServerInterface {
	return &Handlers{
		service:         service,
		validator:       validate,
		messages:        messages,
		defaultLanguage: defaultLanguage,
		log:             log,
	}
}

func (h *Handlers) language(acceptLanguage *gen.AcceptLanguage) string {
	if acceptLanguage == nil || *acceptLanguage == "" {
		return h.defaultLanguage
	}
	return *acceptLanguage
}
