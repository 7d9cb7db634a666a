package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/internal/repository"
)

type NewsFilter struct {
	Category string
	Query    string
}

func (s *Service) News(ctx context.Context, f NewsFilter) ([]entity.NewsItem, error) {
	news, err := listOrSearch(ctx, s.store.News, f.Query)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}

	if f.Category == "" {
		return news, nil
	}

	return filter(news, func(n entity.NewsItem) bool { return n.Category == f.Category }), nil
}

func (s *Service) NewsBySlug(ctx context.Context, slug string) (entity.NewsItem, error) {
	return s.store.News.BySlug(ctx, slug)
}

type BlogFilter struct {
	Tag   string
	Query string
}

func (s *Service) Blog(ctx context.Context, f BlogFilter) ([]entity.BlogPost, error) {
	posts, err := listOrSearch(ctx, s.store.Blog, f.Query)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}

	if f.Tag == "" {
		return posts, nil
	}

	return filter(posts, func(p entity.BlogPost) bool { return p.HasTag(f.Tag) }), nil
}

func (s *Service) BlogPostBySlug(ctx context.Context, slug string) (entity.BlogPost, error) {
	return s.store.Blog.BySlug(ctx, slug)
}

type EventFilter struct {
	UpcomingOnly bool
	Query        string
}

func (s *Service) Events(ctx context.Context, f EventFilter) ([]entity.Event, error) {
	events, err := listOrSearch(ctx, s.store.Events, f.Query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	if !f.UpcomingOnly {
		return events, nil
	}

	now := s.now()

	return filter(events, func(e entity.Event) bool { return e.IsUpcoming(now) }), nil
}

func (s *Service) EventBySlug(ctx context.Context, slug string) (entity.Event, error) {
	return s.store.Events.BySlug(ctx, slug)
}

type FacultyFilter struct {
	CollegeSlug string
	Query       string
}

func (s *Service) Faculty(ctx context.Context, f FacultyFilter) ([]entity.FacultyMember, error) {
	collegeID := 0

	if f.CollegeSlug != "" {
		college, err := s.store.Colleges.BySlug(ctx, f.CollegeSlug)
		if err != nil {
			return nil, fmt.Errorf("get college %q: %w", f.CollegeSlug, err)
		}

		collegeID = college.ID
	}

	members, err := listOrSearch(ctx, s.store.Faculty, f.Query)
	if err != nil {
		return nil, fmt.Errorf("list faculty: %w", err)
	}

	if collegeID == 0 {
		return members, nil
	}

	return filter(members, func(m entity.FacultyMember) bool { return m.CollegeID == collegeID }), nil
}

func (s *Service) FacultyMember(ctx context.Context, id int) (entity.FacultyMember, error) {
	return s.store.Faculty.ByID(ctx, id)
}

func (s *Service) Colleges(ctx context.Context) ([]entity.College, error) {
	return s.store.Colleges.All(ctx)
}

func (s *Service) Program(ctx context.Context, collegeSlug, programSlug string) (entity.College, entity.Program, error) {
	college, err := s.store.Colleges.BySlug(ctx, collegeSlug)
	if err != nil {
		return entity.College{}, entity.Program{}, fmt.Errorf("get college %q: %w", collegeSlug, err)
	}

	program, ok := college.Program(programSlug)
	if !ok {
		return entity.College{}, entity.Program{}, fmt.Errorf("program %q: %w", programSlug, entity.ErrNotFound)
	}

	return college, program, nil
}

// Programs lists the programs of every college, optionally only those of one degree.
func (s *Service) Programs(ctx context.Context, degree entity.Degree) ([]entity.Program, error) {
	if degree != "" && !degree.IsValid() {
		return nil, fmt.Errorf("degree %q: %w", degree, entity.ErrInvalidArgument)
	}

	colleges, err := s.store.Colleges.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list colleges: %w", err)
	}

	programs := make([]entity.Program, 0)

	for _, c := range colleges {
		for _, p := range c.Programs {
			if degree == "" || p.Degree == degree {
				programs = append(programs, p)
			}
		}
	}

	return programs, nil
}

func (s *Service) Projects(ctx context.Context, status entity.ProjectStatus) ([]entity.Project, error) {
	if status == "" {
		return s.store.Projects.All(ctx)
	}

	if !status.IsValid() {
		return nil, fmt.Errorf("project status %q: %w", status, entity.ErrInvalidArgument)
	}

	return s.store.Projects.Filter(ctx, func(p entity.Project) bool { return p.Status == status })
}

// ActiveOffers lists offers that are switched on and still valid.
func (s *Service) ActiveOffers(ctx context.Context) ([]entity.Offer, error) {
	now := s.now()

	return s.store.Offers.Filter(ctx, func(o entity.Offer) bool { return o.Active && !o.IsExpired(now) })
}

func (s *Service) FAQs(ctx context.Context, category string) ([]entity.FAQ, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return s.store.FAQs.All(ctx)
	}

	return s.store.FAQs.Filter(ctx, func(f entity.FAQ) bool { return f.Category == category })
}

func listOrSearch[T repository.Record[T]](ctx context.Context, c *repository.Collection[T], query string) ([]T, error) {
	if strings.TrimSpace(query) == "" {
		return c.All(ctx)
	}

	return c.Search(ctx, query)
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))

	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}

	return out
}
