package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samandr77/microservices/portal/internal/entity"
)

const (
	homeFeaturedNews   = 3
	homeUpcomingEvents = 3
)

func (s *Service) Home(ctx context.Context) (entity.HomePage, error) {
	var (
		page entity.HomePage
		site entity.SiteInfo
	)

	now := s.now()

	err := NewLoader().Run(ctx,
		fetch(&page.FeaturedNews, func(ctx context.Context) ([]entity.NewsItem, error) {
			news, err := s.store.News.Filter(ctx, func(n entity.NewsItem) bool { return n.Featured })
			return firstN(news, homeFeaturedNews), err
		}),
		fetch(&page.UpcomingEvents, func(ctx context.Context) ([]entity.Event, error) {
			events, err := s.store.Events.Filter(ctx, func(e entity.Event) bool { return e.IsUpcoming(now) })
			return firstN(events, homeUpcomingEvents), err
		}),
		fetch(&page.Colleges, s.store.Colleges.All),
		fetch(&page.Offers, s.ActiveOffers),
		fetch(&site, s.store.SiteInfo),
	)
	if err != nil {
		slog.WarnContext(ctx, "home page load failed", "error", err)
		return entity.HomePage{}, fmt.Errorf("load home page: %w", err)
	}

	page.Stats = site.Stats

	return page, nil
}

func (s *Service) About(ctx context.Context) (entity.AboutPage, error) {
	var page entity.AboutPage

	err := NewLoader().Run(ctx,
		fetch(&page.Site, s.store.SiteInfo),
		fetch(&page.CollegeCount, s.store.Colleges.Count),
		fetch(&page.FAQs, s.store.FAQs.All),
	)
	if err != nil {
		slog.WarnContext(ctx, "about page load failed", "error", err)
		return entity.AboutPage{}, fmt.Errorf("load about page: %w", err)
	}

	return page, nil
}

// CollegePage loads a college first, then its faculty and projects side by side.
func (s *Service) CollegePage(ctx context.Context, slug string) (entity.CollegePage, error) {
	college, err := s.store.Colleges.BySlug(ctx, slug)
	if err != nil {
		return entity.CollegePage{}, fmt.Errorf("get college %q: %w", slug, err)
	}

	page := entity.CollegePage{College: college}

	err = NewLoader().Run(ctx,
		fetch(&page.Faculty, func(ctx context.Context) ([]entity.FacultyMember, error) {
			return s.store.Faculty.Filter(ctx, func(f entity.FacultyMember) bool { return f.CollegeID == college.ID })
		}),
		fetch(&page.Projects, func(ctx context.Context) ([]entity.Project, error) {
			return s.store.Projects.Filter(ctx, func(p entity.Project) bool { return p.CollegeID == college.ID })
		}),
	)
	if err != nil {
		slog.WarnContext(ctx, "college page load failed", "college", slug, "error", err)
		return entity.CollegePage{}, fmt.Errorf("load college page: %w", err)
	}

	return page, nil
}

func (s *Service) Dashboard(ctx context.Context) (entity.DashboardStats, error) {
	var (
		stats    entity.DashboardStats
		programs []entity.Program
	)

	err := NewLoader().Run(ctx,
		fetch(&stats.News, s.store.News.Count),
		fetch(&stats.Blog, s.store.Blog.Count),
		fetch(&stats.Events, s.store.Events.Count),
		fetch(&stats.Colleges, s.store.Colleges.Count),
		fetch(&programs, func(ctx context.Context) ([]entity.Program, error) { return s.Programs(ctx, "") }),
		fetch(&stats.Faculty, s.store.Faculty.Count),
		fetch(&stats.Projects, s.store.Projects.Count),
		fetch(&stats.Offers, s.store.Offers.Count),
		fetch(&stats.FAQs, s.store.FAQs.Count),
		fetch(&stats.Users, s.store.Users.Count),
		fetch(&stats.Chat, s.store.Chat.Count),
	)
	if err != nil {
		return entity.DashboardStats{}, fmt.Errorf("load dashboard: %w", err)
	}

	stats.Programs = len(programs)

	return stats, nil
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}

	return items
}
