package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/internal/service"
	"github.com/samandr77/microservices/portal/pkg/i18n"
)

type ResponseError struct {
	Message string         `json:"message"`
	Error   string         `json:"error"`
	State   *service.State `json:"state,omitempty"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	sendErr(ctx, w, code, ResponseError{Message: msg, Error: err.Error()})
}

func sendErr(ctx context.Context, w http.ResponseWriter, code int, resp ResponseError) {
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", resp.Error, "code", code)
	} else {
		slog.WarnContext(ctx, "api error", "error", resp.Error, "code", code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(resp)
	if err != nil {
		slog.ErrorContext(ctx, "api error", "error", err, "code", http.StatusInternalServerError)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
		return
	}
}

func sendLocalized[T any](ctx context.Context, w http.ResponseWriter, code int, data T, message string) {
	l := entity.LocaleFromCtx(ctx)

	SendJSON(ctx, w, code, Localized[T]{
		Locale:  l,
		Dir:     l.Dir(),
		Data:    data,
		Message: message,
	})
}

var validationKeys = map[error]string{
	entity.ErrNameInvalidLen:     "validation.name",
	entity.ErrEmailInvalidFormat: "validation.email",
	entity.ErrPhoneInvalidFormat: "validation.phone",
	entity.ErrMessageRequired:    "validation.message",
	entity.ErrUnknownProgram:     "validation.program",
	entity.ErrInvalidInquiryKind: "validation.kind",
	entity.ErrChatTextInvalidLen: "validation.chat",
	entity.ErrInvalidRole:        "validation.role",
}

// handleError maps service errors to a status code and a message in the request locale.
func handleError(ctx context.Context, w http.ResponseWriter, c *i18n.Catalog, err error) {
	l := entity.LocaleFromCtx(ctx)

	switch {
	case entity.IsValidationErr(err):
		msg := c.Message(l, "error.validation")

		for target, key := range validationKeys {
			if errors.Is(err, target) {
				msg = c.Message(l, key)
				break
			}
		}

		SendErr(ctx, w, http.StatusUnprocessableEntity, err, msg)
	case errors.Is(err, entity.ErrNotFound):
		SendErr(ctx, w, http.StatusNotFound, err, c.Message(l, "error.not_found"))
	case errors.Is(err, entity.ErrForbidden):
		SendErr(ctx, w, http.StatusForbidden, err, c.Message(l, "error.forbidden"))
	case errors.Is(err, entity.ErrAlreadyExists):
		SendErr(ctx, w, http.StatusConflict, err, c.Message(l, "error.conflict"))
	case errors.Is(err, entity.ErrInvalidArgument), errors.Is(err, entity.ErrIncorrectRequestBody):
		SendErr(ctx, w, http.StatusBadRequest, err, c.Message(l, "error.bad_request"))
	case errors.Is(err, entity.ErrNetworkUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		state := service.State{Error: true}

		var loadErr *service.LoadError
		if errors.As(err, &loadErr) {
			state = loadErr.State
		}

		sendErr(ctx, w, http.StatusServiceUnavailable, ResponseError{
			Message: c.Message(l, "state.retry"),
			Error:   err.Error(),
			State:   &state,
		})
	default:
		SendErr(ctx, w, http.StatusInternalServerError, err, c.Message(l, "error.internal"))
	}
}
