package api

import (
	"encoding/json"
	"net/http"

	"github.com/samandr77/microservices/portal/internal/entity"
)

// Admin endpoints work on bilingual records as stored, so editors see and send both languages.

// Dashboard godoc
// @Summary      Dashboard figures
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} entity.DashboardStats
// @Failure      403 {object} ResponseError
// @Router       /v1/admin/stats [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.s.Dashboard(ctx)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, stats)
}

// CreateNews godoc
// @Summary      Publish a news article
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.NewsItem true "Article in both languages"
// @Success      201 {object} entity.NewsItem
// @Failure      400 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      409 {object} ResponseError "Slug already used"
// @Router       /v1/admin/news [post]
func (h *Handler) CreateNews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.NewsItem

	if !h.decode(w, r, &req) {
		return
	}

	item, err := h.s.CreateNews(ctx, req)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, item)
}

// UpdateNews godoc
// @Summary      Edit a news article
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int             true "Article id"
// @Param        request body entity.NewsItem true "Article in both languages"
// @Success      200 {object} entity.NewsItem
// @Failure      400 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /v1/admin/news/{id} [put]
func (h *Handler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	var req entity.NewsItem

	if !h.decode(w, r, &req) {
		return
	}

	item, err := h.s.UpdateNews(ctx, id, req)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, item)
}

// DeleteNews godoc
// @Summary      Delete a news article
// @Tags         admin
// @Security     BearerAuth
// @Param        id path int true "Article id"
// @Success      204
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /v1/admin/news/{id} [delete]
func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	err = h.s.DeleteNews(ctx, id)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateEvent godoc
// @Summary      Add an event
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.Event true "Event in both languages"
// @Success      201 {object} entity.Event
// @Failure      400 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      409 {object} ResponseError
// @Router       /v1/admin/events [post]
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.Event

	if !h.decode(w, r, &req) {
		return
	}

	event, err := h.s.CreateEvent(ctx, req)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary      Edit an event
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int          true "Event id"
// @Param        request body entity.Event true "Event in both languages"
// @Success      200 {object} entity.Event
// @Failure      400 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /v1/admin/events/{id} [put]
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	var req entity.Event

	if !h.decode(w, r, &req) {
		return
	}

	event, err := h.s.UpdateEvent(ctx, id, req)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary      Delete an event
// @Tags         admin
// @Security     BearerAuth
// @Param        id path int true "Event id"
// @Success      204
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /v1/admin/events/{id} [delete]
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	err = h.s.DeleteEvent(ctx, id)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Users godoc
// @Summary      Site users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        q query string false "Search in name and email"
// @Success      200 {array} entity.User
// @Failure      403 {object} ResponseError
// @Router       /v1/admin/users [get]
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.s.Users(ctx, r.URL.Query().Get("q"))
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, users)
}

type UpdateRoleRequest struct {
	Role string `json:"role" example:"editor"`
}

// UpdateUserRole godoc
// @Summary      Change the role of a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int               true "User id"
// @Param        request body UpdateRoleRequest true "New role"
// @Success      200 {object} entity.User
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      422 {object} ResponseError "Unknown role"
// @Router       /v1/admin/users/{id}/role [put]
func (h *Handler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	var req UpdateRoleRequest

	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.s.UpdateUserRole(ctx, id, req.Role)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

type UpdateStatusRequest struct {
	Status entity.UserStatus `json:"status" example:"blocked"`
}

// UpdateUserStatus godoc
// @Summary      Block or unblock a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                 true "User id"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200 {object} entity.User
// @Failure      400 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /v1/admin/users/{id}/status [put]
func (h *Handler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	var req UpdateStatusRequest

	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.s.UpdateUserStatus(ctx, id, req.Status)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         admin
// @Security     BearerAuth
// @Param        id path int true "User id"
// @Success      204
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /v1/admin/users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	err = h.s.DeleteUser(ctx, id)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Roles godoc
// @Summary      Roles and their permissions
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        lang query string false "ar or en"
// @Success      200 {object} Localized[[]RoleView]
// @Failure      403 {object} ResponseError
// @Router       /v1/admin/roles [get]
func (h *Handler) Roles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := entity.LocaleFromCtx(ctx)

	roles, err := h.s.Roles(ctx)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK, mapViews(roles, func(role entity.Role) RoleView {
		return roleView(l, role.Name)
	}), "")
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	ctx := r.Context()

	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, h.catalog.Message(entity.LocaleFromCtx(ctx), "error.bad_request"))
		return false
	}

	return true
}
