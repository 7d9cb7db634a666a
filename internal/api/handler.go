package api

import (
	"context"
	"net/http"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/internal/service"
	"github.com/samandr77/microservices/portal/pkg/i18n"
)

type Service interface {
	Home(ctx context.Context) (entity.HomePage, error)
	About(ctx context.Context) (entity.AboutPage, error)
	CollegePage(ctx context.Context, slug string) (entity.CollegePage, error)
	Dashboard(ctx context.Context) (entity.DashboardStats, error)
	Search(ctx context.Context, query string) (entity.SearchResults, error)

	News(ctx context.Context, f service.NewsFilter) ([]entity.NewsItem, error)
	NewsBySlug(ctx context.Context, slug string) (entity.NewsItem, error)
	Blog(ctx context.Context, f service.BlogFilter) ([]entity.BlogPost, error)
	BlogPostBySlug(ctx context.Context, slug string) (entity.BlogPost, error)
	Events(ctx context.Context, f service.EventFilter) ([]entity.Event, error)
	EventBySlug(ctx context.Context, slug string) (entity.Event, error)
	Faculty(ctx context.Context, f service.FacultyFilter) ([]entity.FacultyMember, error)
	FacultyMember(ctx context.Context, id int) (entity.FacultyMember, error)
	Colleges(ctx context.Context) ([]entity.College, error)
	Program(ctx context.Context, collegeSlug, programSlug string) (entity.College, entity.Program, error)
	Programs(ctx context.Context, degree entity.Degree) ([]entity.Program, error)
	Projects(ctx context.Context, status entity.ProjectStatus) ([]entity.Project, error)
	ActiveOffers(ctx context.Context) ([]entity.Offer, error)
	FAQs(ctx context.Context, category string) ([]entity.FAQ, error)

	SubmitInquiry(ctx context.Context, in service.InquiryInput) (entity.Inquiry, error)
	SendChatMessage(ctx context.Context, sessionID, text string) ([]entity.ChatMessage, error)
	ChatHistory(ctx context.Context, sessionID string) ([]entity.ChatMessage, error)

	CreateNews(ctx context.Context, item entity.NewsItem) (entity.NewsItem, error)
	UpdateNews(ctx context.Context, id int, item entity.NewsItem) (entity.NewsItem, error)
	DeleteNews(ctx context.Context, id int) error
	CreateEvent(ctx context.Context, event entity.Event) (entity.Event, error)
	UpdateEvent(ctx context.Context, id int, event entity.Event) (entity.Event, error)
	DeleteEvent(ctx context.Context, id int) error
	Users(ctx context.Context, query string) ([]entity.User, error)
	UpdateUserRole(ctx context.Context, id int, role string) (entity.User, error)
	UpdateUserStatus(ctx context.Context, id int, status entity.UserStatus) (entity.User, error)
	DeleteUser(ctx context.Context, id int) error
	Roles(ctx context.Context) ([]entity.Role, error)
}

// @title University Portal API
// @version 1.0
// @description Bilingual (Arabic/English) content of the university website.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s       Service
	catalog *i18n.Catalog
}

func NewHandler(s Service, catalog *i18n.Catalog) *Handler {
	return &Handler{
		s:       s,
		catalog: catalog,
	}
}

// Health godoc
// @Summary      Service health
// @Tags         health
// @Success      200 {string} string "ok"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("ok\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "service is not healthy")
	}
}

type LocaleResponse struct {
	Locale  i18n.Locale       `json:"locale"`
	Dir     string            `json:"dir"`
	Name    string            `json:"name"`
	Tagline string            `json:"tagline"`
	Options []i18n.Option     `json:"options"`
	Nav     map[string]string `json:"nav"`
	State   map[string]string `json:"state"`
}

// Locale godoc
// @Summary      Active language
// @Description  Active locale, text direction, language switch links and navigation labels.
// @Tags         locale
// @Produce      json
// @Param        lang query string false "ar or en"
// @Success      200 {object} LocaleResponse
// @Router       /v1/locale [get]
func (h *Handler) Locale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := entity.LocaleFromCtx(ctx)

	SendJSON(ctx, w, http.StatusOK, LocaleResponse{
		Locale:  l,
		Dir:     l.Dir(),
		Name:    h.catalog.Message(l, "site.name"),
		Tagline: h.catalog.Message(l, "site.tagline"),
		Options: i18n.Options(l, r.URL.Path, r.URL.RawQuery),
		Nav:     h.catalog.Section(l, "nav."),
		State:   h.catalog.Section(l, "state."),
	})
}

// Me godoc
// @Summary      Detected role
// @Description  The role read from the visitor token and the permissions it grants.
// @Tags         locale
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Localized[RoleView]
// @Router       /v1/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sendLocalized(ctx, w, http.StatusOK, roleView(entity.LocaleFromCtx(ctx), entity.RoleFromCtx(ctx)), "")
}
