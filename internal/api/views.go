package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/pkg/i18n"
)

// Localized wraps every public payload with the locale it was rendered in.
type Localized[T any] struct {
	Locale  i18n.Locale `json:"locale"`
	Dir     string      `json:"dir"`
	Data    T           `json:"data"`
	Message string      `json:"message,omitempty"`
}

type NewsView struct {
	ID          int       `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content,omitempty"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	PublishedAt time.Time `json:"publishedAt"`
	PublishedOn string    `json:"publishedOn"`
	Featured    bool      `json:"featured"`
}

func newsView(l i18n.Locale, n entity.NewsItem, full bool) NewsView {
	v := NewsView{
		ID:          n.ID,
		Slug:        n.Slug,
		Title:       n.Title.In(l),
		Summary:     n.Summary.In(l),
		Category:    n.Category,
		Image:       n.Image,
		PublishedAt: n.PublishedAt,
		PublishedOn: i18n.FormatDate(l, n.PublishedAt),
		Featured:    n.Featured,
	}

	if full {
		v.Content = n.Content.In(l)
	}

	return v
}

type BlogPostView struct {
	ID          int       `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content,omitempty"`
	Author      string    `json:"author"`
	Tags        []string  `json:"tags"`
	Image       string    `json:"image"`
	PublishedAt time.Time `json:"publishedAt"`
	PublishedOn string    `json:"publishedOn"`
	ReadMinutes int       `json:"readMinutes"`
}

func blogPostView(l i18n.Locale, b entity.BlogPost, full bool) BlogPostView {
	v := BlogPostView{
		ID:          b.ID,
		Slug:        b.Slug,
		Title:       b.Title.In(l),
		Excerpt:     b.Excerpt.In(l),
		Author:      b.Author.In(l),
		Tags:        b.Tags,
		Image:       b.Image,
		PublishedAt: b.PublishedAt,
		PublishedOn: i18n.FormatDate(l, b.PublishedAt),
		ReadMinutes: b.ReadMinutes,
	}

	if full {
		v.Content = b.Content.In(l)
	}

	return v
}

type EventView struct {
	ID              int       `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	Category        string    `json:"category"`
	StartsAt        time.Time `json:"startsAt"`
	EndsAt          time.Time `json:"endsAt"`
	Date            string    `json:"date"`
	RegistrationURL string    `json:"registrationUrl,omitempty"`
}

func eventView(l i18n.Locale, e entity.Event) EventView {
	return EventView{
		ID:              e.ID,
		Slug:            e.Slug,
		Title:           e.Title.In(l),
		Description:     e.Description.In(l),
		Location:        e.Location.In(l),
		Category:        e.Category,
		StartsAt:        e.StartsAt,
		EndsAt:          e.EndsAt,
		Date:            i18n.FormatDate(l, e.StartsAt),
		RegistrationURL: e.RegistrationURL,
	}
}

type ProgramView struct {
	ID            int             `json:"id"`
	Slug          string          `json:"slug"`
	CollegeID     int             `json:"collegeId"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Degree        entity.Degree   `json:"degree"`
	DegreeLabel   string          `json:"degreeLabel"`
	DurationYears int             `json:"durationYears"`
	Credits       int             `json:"credits"`
	TuitionFee    decimal.Decimal `json:"tuitionFee"`
	Currency      string          `json:"currency"`
	TuitionLabel  string          `json:"tuitionLabel"`
}

func programView(l i18n.Locale, c *i18n.Catalog, p entity.Program) ProgramView {
	return ProgramView{
		ID:            p.ID,
		Slug:          p.Slug,
		CollegeID:     p.CollegeID,
		Name:          p.Name.In(l),
		Description:   p.Description.In(l),
		Degree:        p.Degree,
		DegreeLabel:   c.Message(l, "degree."+string(p.Degree)),
		DurationYears: p.DurationYears,
		Credits:       p.Credits,
		TuitionFee:    p.TuitionFee,
		Currency:      entity.CurrencySAR,
		TuitionLabel:  c.FormatAmount(l, p.TuitionFee, entity.CurrencySAR),
	}
}

type CollegeView struct {
	ID          int           `json:"id"`
	Slug        string        `json:"slug"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Dean        string        `json:"dean"`
	Image       string        `json:"image"`
	Programs    []ProgramView `json:"programs"`
}

func collegeView(l i18n.Locale, c *i18n.Catalog, college entity.College) CollegeView {
	return CollegeView{
		ID:          college.ID,
		Slug:        college.Slug,
		Name:        college.Name.In(l),
		Description: college.Description.In(l),
		Dean:        college.Dean.In(l),
		Image:       college.Image,
		Programs: mapViews(college.Programs, func(p entity.Program) ProgramView {
			return programView(l, c, p)
		}),
	}
}

type FacultyView struct {
	ID             int    `json:"id"`
	CollegeID      int    `json:"collegeId"`
	Name           string `json:"name"`
	Title          string `json:"title"`
	Department     string `json:"department"`
	Specialization string `json:"specialization"`
	Email          string `json:"email"`
	Image          string `json:"image"`
}

func facultyView(l i18n.Locale, f entity.FacultyMember) FacultyView {
	return FacultyView{
		ID:             f.ID,
		CollegeID:      f.CollegeID,
		Name:           f.Name.In(l),
		Title:          f.Title.In(l),
		Department:     f.Department.In(l),
		Specialization: f.Specialization.In(l),
		Email:          f.Email,
		Image:          f.Image,
	}
}

type ProjectView struct {
	ID          int                  `json:"id"`
	Slug        string               `json:"slug"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	CollegeID   int                  `json:"collegeId"`
	Status      entity.ProjectStatus `json:"status"`
	Image       string               `json:"image"`
}

func projectView(l i18n.Locale, p entity.Project) ProjectView {
	return ProjectView{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title.In(l),
		Description: p.Description.In(l),
		CollegeID:   p.CollegeID,
		Status:      p.Status,
		Image:       p.Image,
	}
}

type OfferView struct {
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	ValidUntil      time.Time       `json:"validUntil"`
	ValidUntilOn    string          `json:"validUntilOn"`
}

func offerView(l i18n.Locale, o entity.Offer) OfferView {
	return OfferView{
		ID:              o.ID,
		Title:           o.Title.In(l),
		Description:     o.Description.In(l),
		DiscountPercent: o.DiscountPercent,
		ValidUntil:      o.ValidUntil,
		ValidUntilOn:    i18n.FormatDate(l, o.ValidUntil),
	}
}

type FAQView struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

func faqView(l i18n.Locale, f entity.FAQ) FAQView {
	return FAQView{
		ID:       f.ID,
		Question: f.Question.In(l),
		Answer:   f.Answer.In(l),
		Category: f.Category,
	}
}

type ChatMessageView struct {
	ID        string            `json:"id,omitempty"`
	SessionID string            `json:"sessionId"`
	Author    entity.ChatAuthor `json:"author"`
	Text      string            `json:"text"`
	CreatedAt time.Time         `json:"createdAt"`
}

func chatMessageView(m entity.ChatMessage) ChatMessageView {
	v := ChatMessageView{
		SessionID: m.SessionID,
		Author:    m.Author,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}

	if !m.ID.IsNil() {
		v.ID = m.ID.String()
	}

	return v
}

type RoleView struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Permissions []string `json:"permissions"`
}

func roleView(l i18n.Locale, role string) RoleView {
	for _, r := range entity.Roles() {
		if r.Name == role {
			return RoleView{Name: r.Name, Label: r.Label.In(l), Permissions: r.Permissions}
		}
	}

	return RoleView{Name: role, Label: role, Permissions: entity.GetPermissionsByRole(role)}
}

func mapViews[T, V any](items []T, view func(T) V) []V {
	out := make([]V, 0, len(items))

	for _, item := range items {
		out = append(out, view(item))
	}

	return out
}
