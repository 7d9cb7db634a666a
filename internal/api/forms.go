package api

import (
	"encoding/json"
	"net/http"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/internal/service"
)

type InquiryRequest struct {
	Kind        entity.InquiryKind `json:"kind" example:"contact"`
	Name        string             `json:"name" example:"Sara Ahmed"`
	Email       string             `json:"email" example:"sara@example.com"`
	Phone       string             `json:"phone,omitempty" example:"+966 50 123 4567"`
	Subject     string             `json:"subject,omitempty"`
	Message     string             `json:"message,omitempty"`
	ProgramSlug string             `json:"programSlug,omitempty" example:"computer-science"`
}

type InquiryResponse struct {
	ID   string             `json:"id"`
	Kind entity.InquiryKind `json:"kind"`
}

// SubmitInquiry godoc
// @Summary      Contact, admission or newsletter form
// @Description  Validates the form and hands it to the admissions inbox. The message is a confirmation toast.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        lang    query string         false "ar or en"
// @Param        request body  InquiryRequest true  "Form fields"
// @Success      202 {object} Localized[InquiryResponse]
// @Failure      400 {object} ResponseError "Invalid JSON"
// @Failure      422 {object} ResponseError "Field message in the request locale"
// @Failure      503 {object} ResponseError
// @Router       /v1/inquiries [post]
func (h *Handler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := entity.LocaleFromCtx(ctx)

	var req InquiryRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, h.catalog.Message(l, "error.bad_request"))
		return
	}

	inquiry, err := h.s.SubmitInquiry(ctx, service.InquiryInput{
		Kind:        req.Kind,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     req.Subject,
		Message:     req.Message,
		ProgramSlug: req.ProgramSlug,
	})
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusAccepted, InquiryResponse{
		ID:   inquiry.ID.String(),
		Kind: inquiry.Kind,
	}, h.catalog.Message(l, "toast."+string(inquiry.Kind)))
}

type ChatRequest struct {
	SessionID string `json:"sessionId" example:"c0a8012e"`
	Text      string `json:"text" example:"What are the admission requirements?"`
}

// ChatHistory godoc
// @Summary      Chat history of a session
// @Description  An empty session starts with the greeting of the assistant.
// @Tags         chat
// @Produce      json
// @Param        lang    query string false "ar or en"
// @Param        session query string false "Chat session id"
// @Success      200 {object} Localized[[]ChatMessageView]
// @Failure      400 {object} ResponseError
// @Router       /v1/chat/messages [get]
func (h *Handler) ChatHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	messages, err := h.s.ChatHistory(ctx, r.URL.Query().Get("session"))
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK, mapViews(messages, chatMessageView), "")
}

// SendChatMessage godoc
// @Summary      Send a chat message
// @Description  Returns the visitor message followed by the reply of the assistant.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        lang    query string      false "ar or en"
// @Param        request body  ChatRequest true  "Message"
// @Success      201 {object} Localized[[]ChatMessageView]
// @Failure      400 {object} ResponseError
// @Failure      422 {object} ResponseError
// @Router       /v1/chat/messages [post]
func (h *Handler) SendChatMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := entity.LocaleFromCtx(ctx)

	var req ChatRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, h.catalog.Message(l, "error.bad_request"))
		return
	}

	messages, err := h.s.SendChatMessage(ctx, req.SessionID, req.Text)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusCreated, mapViews(messages, chatMessageView), "")
}
