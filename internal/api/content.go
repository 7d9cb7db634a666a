package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/internal/repository"
	"github.com/samandr77/microservices/portal/internal/service"
	"github.com/samandr77/microservices/portal/pkg/i18n"
)

type HomeResponse struct {
	FeaturedNews   []NewsView       `json:"featuredNews"`
	UpcomingEvents []EventView      `json:"upcomingEvents"`
	Colleges       []CollegeView    `json:"colleges"`
	Offers         []OfferView      `json:"offers"`
	Stats          entity.SiteStats `json:"stats"`
}

// Home godoc
// @Summary      Home page
// @Description  Featured news, upcoming events, colleges, active offers and site figures, loaded together.
// @Tags         pages
// @Produce      json
// @Param        lang query string false "ar or en"
// @Success      200 {object} Localized[HomeResponse]
// @Failure      503 {object} ResponseError "Data could not be loaded, retry"
// @Router       /v1/pages/home [get]
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := entity.LocaleFromCtx(ctx)

	page, err := h.s.Home(ctx)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK, HomeResponse{
		FeaturedNews:   mapViews(page.FeaturedNews, func(n entity.NewsItem) NewsView { return newsView(l, n, false) }),
		UpcomingEvents: mapViews(page.UpcomingEvents, func(e entity.Event) EventView { return eventView(l, e) }),
		Colleges: mapViews(page.Colleges, func(c entity.College) CollegeView {
			return collegeView(l, h.catalog, c)
		}),
		Offers: mapViews(page.Offers, func(o entity.Offer) OfferView { return offerView(l, o) }),
		Stats:  page.Stats,
	}, "")
}

type AboutResponse struct {
	Mission      string           `json:"mission"`
	Vision       string           `json:"vision"`
	History      string           `json:"history"`
	Stats        entity.SiteStats `json:"stats"`
	CollegeCount int              `json:"collegeCount"`
	Phone        string           `json:"phone"`
	Email        string           `json:"email"`
	Address      string           `json:"address"`
	FAQs         []FAQView        `json:"faqs"`
}

// About godoc
// @Summary      About page
// @Tags         pages
// @Produce      json
// @Param        lang query string false "ar or en"
// @Success      200 {object} Localized[AboutResponse]
// @Failure      503 {object} ResponseError "Data could not be loaded, retry"
// @Router       /v1/pages/about [get]
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := entity.LocaleFromCtx(ctx)

	page, err := h.s.About(ctx)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK, AboutResponse{
		Mission:      page.Site.About.Mission.In(l),
		Vision:       page.Site.About.Vision.In(l),
		History:      page.Site.About.History.In(l),
		Stats:        page.Site.Stats,
		CollegeCount: page.CollegeCount,
		Phone:        page.Site.Contact.Phone,
		Email:        page.Site.Contact.Email,
		Address:      page.Site.Contact.Address.In(l),
		FAQs:         mapViews(page.FAQs, func(f entity.FAQ) FAQView { return faqView(l, f) }),
	}, "")
}

// ListNews godoc
// @Summary      News list
// @Tags         news
// @Produce      json
// @Param        lang     query string false "ar or en"
// @Param        category query string false "Category"
// @Param        q        query string false "Search in title and summary"
// @Success      200 {object} Localized[[]NewsView]
// @Failure      503 {object} ResponseError
// @Router       /v1/news [get]
func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := entity.LocaleFromCtx(ctx)
	q := r.URL.Query()

	news, err := h.s.News(ctx, service.NewsFilter{Category: q.Get("category"), Query: q.Get("q")})
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK,
		mapViews(news, func(n entity.NewsItem) NewsView { return newsView(l, n, false) }),
		h.listMessage(l, q.Get("q"), len(news)))
}

// NewsBySlug godoc
// @Summary      News article
// @Tags         news
// @Produce      json
// @Param        slug path  string true  "Article slug"
// @Param        lang query string false "ar or en"
// @Success      200 {object} Localized[NewsView]
// @Failure      404 {object} ResponseError
// @Router       /v1/news/{slug} [get]
func (h *Handler) NewsBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	item, err := h.s.NewsBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK, newsView(entity.LocaleFromCtx(ctx), item, true), "")
}

// ListBlog godoc
// @Summary      Blog posts
// @Tags         blog
// @Produce      json
// @Param        lang query string false "ar or en"
// @Param        tag  query string false "Tag"
// @Param        q    query string false "Search in title and excerpt"
// @Success      200 {object} Localized[[]BlogPostView]
// @Router       /v1/blog [get]
func (h *Handler) ListBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := entity.LocaleFromCtx(ctx)
	q := r.URL.Query()

	posts, err := h.s.Blog(ctx, service.BlogFilter{Tag: q.Get("tag"), Query: q.Get("q")})
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK,
		mapViews(posts, func(p entity.BlogPost) BlogPostView { return blogPostView(l, p, false) }),
		h.listMessage(l, q.Get("q"), len(posts)))
}

// BlogPostBySlug godoc
// @Summary      Blog post
// @Tags         blog
// @Produce      json
// @Param        slug path  string true  "Post slug"
// @Param        lang query string false "ar or en"
// @Success      200 {object} Localized[BlogPostView]
// @Failure      404 {object} ResponseError
// @Router       /v1/blog/{slug} [get]
func (h *Handler) BlogPostBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	post, err := h.s.BlogPostBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK, blogPostView(entity.LocaleFromCtx(ctx), post, true), "")
}

// ListEvents godoc
// @Summary      Events
// @Tags         events
// @Produce      json
// @Param        lang     query string false "ar or en"
// @Param        upcoming query bool   false "Only events that have not ended"
// @Param        q        query string false "Search in title and description"
// @Success      200 {object} Localized[[]EventView]
// @Failure      400 {object} ResponseError
// @Router       /v1/events [get]
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := entity.LocaleFromCtx(ctx)
	q := r.URL.Query()

	upcoming := false

	if raw := q.Get("upcoming"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			handleError(ctx, w, h.catalog, fmt.Errorf("upcoming %q: %w", raw, entity.ErrInvalidArgument))
			return
		}

		upcoming = v
	}

	events, err := h.s.Events(ctx, service.EventFilter{UpcomingOnly: upcoming, Query: q.Get("q")})
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK,
		mapViews(events, func(e entity.Event) EventView { return eventView(l, e) }),
		h.listMessage(l, q.Get("q"), len(events)))
}

// EventBySlug godoc
// @Summary      Event
// @Tags         events
// @Produce      json
// @Param        slug path  string true  "Event slug"
// @Param        lang query string false "ar or en"
// @Success      200 {object} Localized[EventView]
// @Failure      404 {object} ResponseError
// @Router       /v1/events/{slug} [get]
func (h *Handler) EventBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	event, err := h.s.EventBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK, eventView(entity.LocaleFromCtx(ctx), event), "")
}

// ListFaculty godoc
// @Summary      Faculty members
// @Tags         faculty
// @Produce      json
// @Param        lang    query string false "ar or en"
// @Param        college query string false "College slug"
// @Param        q       query string false "Search in name and specialization"
// @Success      200 {object} Localized[[]FacultyView]
// @Failure      404 {object} ResponseError "Unknown college"
// @Router       /v1/faculty [get]
func (h *Handler) ListFaculty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := entity.LocaleFromCtx(ctx)
	q := r.URL.Query()

	members, err := h.s.Faculty(ctx, service.FacultyFilter{CollegeSlug: q.Get("college"), Query: q.Get("q")})
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK,
		mapViews(members, func(f entity.FacultyMember) FacultyView { return facultyView(l, f) }),
		h.listMessage(l, q.Get("q"), len(members)))
}

// FacultyMember godoc
// @Summary      Faculty member
// @Tags         faculty
// @Produce      json
// @Param        id   path  int    true  "Faculty member id"
// @Param        lang query string false "ar or en"
// @Success      200 {object} Localized[FacultyView]
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /v1/faculty/{id} [get]
func (h *Handler) FacultyMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	member, err := h.s.FacultyMember(ctx, id)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK, facultyView(entity.LocaleFromCtx(ctx), member), "")
}

// ListColleges godoc
// @Summary      Colleges with their programs
// @Tags         colleges
// @Produce      json
// @Param        lang query string false "ar or en"
// @Success      200 {object} Localized[[]CollegeView]
// @Router       /v1/colleges [get]
func (h *Handler) ListColleges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := entity.LocaleFromCtx(ctx)

	colleges, err := h.s.Colleges(ctx)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK, mapViews(colleges, func(c entity.College) CollegeView {
		return collegeView(l, h.catalog, c)
	}), "")
}

type CollegeResponse struct {
	CollegeView
	Faculty  []FacultyView `json:"faculty"`
	Projects []ProjectView `json:"projects"`
}

// College godoc
// @Summary      College page
// @Description  The college with its programs, faculty and projects.
// @Tags         colleges
// @Produce      json
// @Param        slug path  string true  "College slug"
// @Param        lang query string false "ar or en"
// @Success      200 {object} Localized[CollegeResponse]
// @Failure      404 {object} ResponseError
// @Router       /v1/colleges/{slug} [get]
func (h *Handler) College(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := entity.LocaleFromCtx(ctx)

	page, err := h.s.CollegePage(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK, CollegeResponse{
		CollegeView: collegeView(l, h.catalog, page.College),
		Faculty:     mapViews(page.Faculty, func(f entity.FacultyMember) FacultyView { return facultyView(l, f) }),
		Projects:    mapViews(page.Projects, func(p entity.Project) ProjectView { return projectView(l, p) }),
	}, "")
}

type ProgramResponse struct {
	ProgramView
	College string `json:"college"`
}

// Program godoc
// @Summary      Program of a college
// @Tags         colleges
// @Produce      json
// @Param        slug    path  string true  "College slug"
// @Param        program path  string true  "Program slug"
// @Param        lang    query string false "ar or en"
// @Success      200 {object} Localized[ProgramResponse]
// @Failure      404 {object} ResponseError
// @Router       /v1/colleges/{slug}/programs/{program} [get]
func (h *Handler) Program(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := entity.LocaleFromCtx(ctx)

	college, program, err := h.s.Program(ctx, chi.URLParam(r, "slug"), chi.URLParam(r, "program"))
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK, ProgramResponse{
		ProgramView: programView(l, h.catalog, program),
		College:     college.Name.In(l),
	}, "")
}

// ListPrograms godoc
// @Summary      Programs of every college
// @Tags         colleges
// @Produce      json
// @Param        lang   query string false "ar or en"
// @Param        degree query string false "diploma, bachelor, master or phd"
// @Success      200 {object} Localized[[]ProgramView]
// @Failure      400 {object} ResponseError
// @Router       /v1/programs [get]
func (h *Handler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := entity.LocaleFromCtx(ctx)

	programs, err := h.s.Programs(ctx, entity.Degree(r.URL.Query().Get("degree")))
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK, mapViews(programs, func(p entity.Program) ProgramView {
		return programView(l, h.catalog, p)
	}), "")
}

// ListProjects godoc
// @Summary      Projects
// @Tags         projects
// @Produce      json
// @Param        lang   query string false "ar or en"
// @Param        status query string false "planned, active or completed"
// @Success      200 {object} Localized[[]ProjectView]
// @Failure      400 {object} ResponseError
// @Router       /v1/projects [get]
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := entity.LocaleFromCtx(ctx)

	projects, err := h.s.Projects(ctx, entity.ProjectStatus(r.URL.Query().Get("status")))
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK,
		mapViews(projects, func(p entity.Project) ProjectView { return projectView(l, p) }), "")
}

// ListOffers godoc
// @Summary      Active offers
// @Tags         offers
// @Produce      json
// @Param        lang query string false "ar or en"
// @Success      200 {object} Localized[[]OfferView]
// @Router       /v1/offers [get]
func (h *Handler) ListOffers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := entity.LocaleFromCtx(ctx)

	offers, err := h.s.ActiveOffers(ctx)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK,
		mapViews(offers, func(o entity.Offer) OfferView { return offerView(l, o) }), "")
}

// ListFAQs godoc
// @Summary      Frequently asked questions
// @Tags         faq
// @Produce      json
// @Param        lang     query string false "ar or en"
// @Param        category query string false "Category"
// @Success      200 {object} Localized[[]FAQView]
// @Router       /v1/faqs [get]
func (h *Handler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := entity.LocaleFromCtx(ctx)

	faqs, err := h.s.FAQs(ctx, r.URL.Query().Get("category"))
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	sendLocalized(ctx, w, http.StatusOK, mapViews(faqs, func(f entity.FAQ) FAQView { return faqView(l, f) }), "")
}

type SearchResponse struct {
	Query    string         `json:"query"`
	Total    int            `json:"total"`
	News     []NewsView     `json:"news"`
	Blog     []BlogPostView `json:"blog"`
	Events   []EventView    `json:"events"`
	Faculty  []FacultyView  `json:"faculty"`
	Programs []ProgramView  `json:"programs"`
}

// Search godoc
// @Summary      Site search
// @Description  Case-insensitive search across news, blog, events, faculty and programs in both languages.
// @Tags         search
// @Produce      json
// @Param        lang query string false "ar or en"
// @Param        q    query string true  "At least two characters"
// @Success      200 {object} Localized[SearchResponse]
// @Failure      503 {object} ResponseError
// @Router       /v1/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := entity.LocaleFromCtx(ctx)
	query := r.URL.Query().Get("q")

	res, err := h.s.Search(ctx, query)
	if err != nil {
		handleError(ctx, w, h.catalog, err)
		return
	}

	message := ""
	if _, ok := repository.NormalizeQuery(query); !ok {
		message = h.catalog.Message(l, "search.too_short")
	} else if res.Total() == 0 {
		message = h.catalog.Message(l, "search.no_results")
	}

	sendLocalized(ctx, w, http.StatusOK, SearchResponse{
		Query:   strings.TrimSpace(query),
		Total:   res.Total(),
		News:    mapViews(res.News, func(n entity.NewsItem) NewsView { return newsView(l, n, false) }),
		Blog:    mapViews(res.Blog, func(b entity.BlogPost) BlogPostView { return blogPostView(l, b, false) }),
		Events:  mapViews(res.Events, func(e entity.Event) EventView { return eventView(l, e) }),
		Faculty: mapViews(res.Faculty, func(f entity.FacultyMember) FacultyView { return facultyView(l, f) }),
		Programs: mapViews(res.Programs, func(p entity.Program) ProgramView {
			return programView(l, h.catalog, p)
		}),
	}, message)
}

// listMessage explains an empty list: a too short query, no match, or no content at all.
func (h *Handler) listMessage(l i18n.Locale, query string, n int) string {
	switch {
	case strings.TrimSpace(query) != "":
		if _, ok := repository.NormalizeQuery(query); !ok {
			return h.catalog.Message(l, "search.too_short")
		}

		if n == 0 {
			return h.catalog.Message(l, "search.no_results")
		}
	case n == 0:
		return h.catalog.Message(l, "state.empty")
	}

	return ""
}

func pathID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id %q: %w", raw, entity.ErrInvalidArgument)
	}

	return id, nil
}
