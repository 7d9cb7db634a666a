package service

import (
	"context"
	"fmt"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/internal/repository"
)

// Search looks the query up in news, blog, events, faculty and programs at once.
// Queries shorter than repository.MinQueryLen give empty results without touching the data.
func (s *Service) Search(ctx context.Context, query string) (entity.SearchResults, error) {
	res := entity.SearchResults{
		Query:    query,
		News:     []entity.NewsItem{},
		Blog:     []entity.BlogPost{},
		Events:   []entity.Event{},
		Faculty:  []entity.FacultyMember{},
		Programs: []entity.Program{},
	}

	normalized, ok := repository.NormalizeQuery(query)
	if !ok {
		return res, nil
	}

	err := NewLoader().Run(ctx,
		fetch(&res.News, func(ctx context.Context) ([]entity.NewsItem, error) { return s.store.News.Search(ctx, query) }),
		fetch(&res.Blog, func(ctx context.Context) ([]entity.BlogPost, error) { return s.store.Blog.Search(ctx, query) }),
		fetch(&res.Events, func(ctx context.Context) ([]entity.Event, error) { return s.store.Events.Search(ctx, query) }),
		fetch(&res.Faculty, func(ctx context.Context) ([]entity.FacultyMember, error) {
			return s.store.Faculty.Search(ctx, query)
		}),
		fetch(&res.Programs, func(ctx context.Context) ([]entity.Program, error) {
			programs, err := s.Programs(ctx, "")
			if err != nil {
				return nil, err
			}

			return filter(programs, func(p entity.Program) bool {
				return repository.Matches(p.SearchFields(), normalized)
			}), nil
		}),
	)
	if err != nil {
		return entity.SearchResults{}, fmt.Errorf("search %q: %w", query, err)
	}

	return res, nil
}
