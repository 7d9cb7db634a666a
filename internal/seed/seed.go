// Package seed holds the static content the mock data services start from.
package seed

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/pkg/i18n"
)

//go:embed data/*.yaml
var embedded embed.FS

type Data struct {
	News     []entity.NewsItem
	Blog     []entity.BlogPost
	Events   []entity.Event
	Colleges []entity.College
	Faculty  []entity.FacultyMember
	Projects []entity.Project
	Offers   []entity.Offer
	FAQs     []entity.FAQ
	Users    []entity.User
	Site     entity.SiteInfo
}

// Load decodes the seed data compiled into the binary.
func Load() (Data, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return Data{}, fmt.Errorf("open embedded seed: %w", err)
	}

	return LoadFS(sub)
}

// LoadFS decodes one YAML file per collection from the root of fsys.
func LoadFS(fsys fs.FS) (Data, error) {
	var d Data

	files := []struct {
		name string
		out  any
	}{
		{name: "news.yaml", out: &d.News},
		{name: "blog.yaml", out: &d.Blog},
		{name: "events.yaml", out: &d.Events},
		{name: "colleges.yaml", out: &d.Colleges},
		{name: "faculty.yaml", out: &d.Faculty},
		{name: "projects.yaml", out: &d.Projects},
		{name: "offers.yaml", out: &d.Offers},
		{name: "faqs.yaml", out: &d.FAQs},
		{name: "users.yaml", out: &d.Users},
		{name: "site.yaml", out: &d.Site},
	}

	for _, f := range files {
		raw, err := fs.ReadFile(fsys, f.name)
		if err != nil {
			return Data{}, fmt.Errorf("read %s: %w", f.name, err)
		}

		if err := yaml.Unmarshal(raw, f.out); err != nil {
			return Data{}, fmt.Errorf("decode %s: %w", f.name, err)
		}
	}

	return d, nil
}

// Programs flattens the programs of every college.
func (d Data) Programs() []entity.Program {
	var programs []entity.Program

	for _, c := range d.Colleges {
		programs = append(programs, c.Programs...)
	}

	return programs
}

// Validate reports every inconsistency found in the data at once.
func (d Data) Validate() error {
	var errs []error

	errs = append(errs, checkRecords("news", d.News, func(n entity.NewsItem) []i18n.Text {
		return []i18n.Text{n.Title, n.Summary, n.Content}
	})...)
	errs = append(errs, checkRecords("blog", d.Blog, func(b entity.BlogPost) []i18n.Text {
		return []i18n.Text{b.Title, b.Excerpt, b.Content, b.Author}
	})...)
	errs = append(errs, checkRecords("events", d.Events, func(e entity.Event) []i18n.Text {
		return []i18n.Text{e.Title, e.Description, e.Location}
	})...)
	errs = append(errs, checkRecords("colleges", d.Colleges, func(c entity.College) []i18n.Text {
		return []i18n.Text{c.Name, c.Description, c.Dean}
	})...)
	errs = append(errs, checkRecords("faculty", d.Faculty, func(f entity.FacultyMember) []i18n.Text {
		return []i18n.Text{f.Name, f.Title, f.Department, f.Specialization}
	})...)
	errs = append(errs, checkRecords("projects", d.Projects, func(p entity.Project) []i18n.Text {
		return []i18n.Text{p.Title, p.Description}
	})...)
	errs = append(errs, checkRecords("offers", d.Offers, func(o entity.Offer) []i18n.Text {
		return []i18n.Text{o.Title, o.Description}
	})...)
	errs = append(errs, checkRecords("faqs", d.FAQs, func(f entity.FAQ) []i18n.Text {
		return []i18n.Text{f.Question, f.Answer}
	})...)
	errs = append(errs, checkRecords("users", d.Users, func(u entity.User) []i18n.Text {
		return []i18n.Text{u.Name}
	})...)

	colleges := make(map[int]bool, len(d.Colleges))
	for _, c := range d.Colleges {
		colleges[c.ID] = true
	}

	programIDs := make(map[int]bool)
	programSlugs := make(map[string]bool)

	for _, p := range d.Programs() {
		switch {
		case programIDs[p.ID]:
			errs = append(errs, fmt.Errorf("programs: duplicate id %d", p.ID))
		case programSlugs[p.Slug]:
			errs = append(errs, fmt.Errorf("programs: duplicate slug %q", p.Slug))
		case !p.Degree.IsValid():
			errs = append(errs, fmt.Errorf("programs %q: invalid degree %q", p.Slug, p.Degree))
		case !colleges[p.CollegeID]:
			errs = append(errs, fmt.Errorf("programs %q: unknown college %d", p.Slug, p.CollegeID))
		case p.TuitionFee.IsNegative():
			errs = append(errs, fmt.Errorf("programs %q: negative tuition fee", p.Slug))
		}

		if p.Name.Ar == "" || p.Name.En == "" {
			errs = append(errs, fmt.Errorf("programs %q: name must have both languages", p.Slug))
		}

		programIDs[p.ID] = true
		programSlugs[p.Slug] = true
	}

	for _, f := range d.Faculty {
		if !colleges[f.CollegeID] {
			errs = append(errs, fmt.Errorf("faculty %d: unknown college %d", f.ID, f.CollegeID))
		}
	}

	for _, p := range d.Projects {
		if !p.Status.IsValid() {
			errs = append(errs, fmt.Errorf("projects %q: invalid status %q", p.Slug, p.Status))
		}

		if !colleges[p.CollegeID] {
			errs = append(errs, fmt.Errorf("projects %q: unknown college %d", p.Slug, p.CollegeID))
		}
	}

	for _, u := range d.Users {
		if !entity.IsValidRole(u.Role) {
			errs = append(errs, fmt.Errorf("users %d: invalid role %q", u.ID, u.Role))
		}
	}

	for _, e := range d.Events {
		if !e.EndsAt.IsZero() && e.EndsAt.Before(e.StartsAt) {
			errs = append(errs, fmt.Errorf("events %q: ends before it starts", e.Slug))
		}
	}

	if d.Site.About.Mission.IsZero() {
		errs = append(errs, errors.New("site: mission is required"))
	}

	return errors.Join(errs...)
}

type record interface {
	RecordID() int
	RecordSlug() string
}

func checkRecords[T record](name string, items []T, texts func(T) []i18n.Text) []error {
	var errs []error

	ids := make(map[int]bool, len(items))
	slugs := make(map[string]bool, len(items))

	for _, item := range items {
		id := item.RecordID()
		if id <= 0 {
			errs = append(errs, fmt.Errorf("%s: id must be positive, got %d", name, id))
		}

		if ids[id] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %d", name, id))
		}

		ids[id] = true

		if slug := item.RecordSlug(); slug != "" {
			if slugs[slug] {
				errs = append(errs, fmt.Errorf("%s: duplicate slug %q", name, slug))
			}

			slugs[slug] = true
		}

		for _, text := range texts(item) {
			if text.Ar == "" || text.En == "" {
				errs = append(errs, fmt.Errorf("%s %d: every text needs both languages", name, id))
				break
			}
		}
	}

	return errs
}
