package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/samandr77/microservices/portal/docs" //nolint:revive,nolintlint
	"github.com/samandr77/microservices/portal/internal/entity"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP, mw.Locale, mw.DetectRole)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
		})

		r.Route("/v1", func(r chi.Router) {
			r.Get("/locale", h.Locale)
			r.Get("/me", h.Me)

			r.Get("/pages/home", h.Home)
			r.Get("/pages/about", h.About)
			r.Get("/search", h.Search)

			r.Get("/news", h.ListNews)
			r.Get("/news/{slug}", h.NewsBySlug)
			r.Get("/blog", h.ListBlog)
			r.Get("/blog/{slug}", h.BlogPostBySlug)
			r.Get("/events", h.ListEvents)
			r.Get("/events/{slug}", h.EventBySlug)
			r.Get("/faculty", h.ListFaculty)
			r.Get("/faculty/{id}", h.FacultyMember)
			r.Get("/colleges", h.ListColleges)
			r.Get("/colleges/{slug}", h.College)
			r.Get("/colleges/{slug}/programs/{program}", h.Program)
			r.Get("/programs", h.ListPrograms)
			r.Get("/projects", h.ListProjects)
			r.Get("/offers", h.ListOffers)
			r.Get("/faqs", h.ListFAQs)

			r.Post("/inquiries", h.SubmitInquiry)

			r.Group(func(r chi.Router) {
				r.Use(mw.RequirePermission(entity.PermissionUseChat))

				r.Get("/chat/messages", h.ChatHistory)
				r.Post("/chat/messages", h.SendChatMessage)
			})

			r.Route("/admin", func(r chi.Router) {
				r.With(mw.RequirePermission(entity.PermissionViewDashboard)).Get("/stats", h.Dashboard)

				r.Group(func(r chi.Router) {
					r.Use(mw.RequirePermission(entity.PermissionManageContent))

					r.Post("/news", h.CreateNews)
					r.Put("/news/{id}", h.UpdateNews)
					r.Delete("/news/{id}", h.DeleteNews)
				})

				r.Group(func(r chi.Router) {
					r.Use(mw.RequirePermission(entity.PermissionManageEvents))

					r.Post("/events", h.CreateEvent)
					r.Put("/events/{id}", h.UpdateEvent)
					r.Delete("/events/{id}", h.DeleteEvent)
				})

				r.Group(func(r chi.Router) {
					r.Use(mw.RequirePermission(entity.PermissionManageUsers))

					r.Get("/users", h.Users)
					r.Put("/users/{id}/status", h.UpdateUserStatus)
					r.With(mw.RequirePermission(entity.PermissionDeleteUsers)).Delete("/users/{id}", h.DeleteUser)
				})

				r.Group(func(r chi.Router) {
					r.Use(mw.RequirePermission(entity.PermissionManageRoles))

					r.Get("/roles", h.Roles)
					r.Put("/users/{id}/role", h.UpdateUserRole)
				})
			})
		})
	})

	return router
}
