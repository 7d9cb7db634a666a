package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/pkg/i18n"
)

func (s *Service) CreateNews(ctx context.Context, item entity.NewsItem) (entity.NewsItem, error) {
	if err := s.authorize(ctx, entity.PermissionManageContent); err != nil {
		return entity.NewsItem{}, err
	}

	if err := validateSlugged(item.Slug, item.Title); err != nil {
		return entity.NewsItem{}, err
	}

	if item.PublishedAt.IsZero() {
		item.PublishedAt = s.now().UTC()
	}

	created, err := s.store.News.AddUniqueSlug(ctx, item)
	if err != nil {
		return entity.NewsItem{}, fmt.Errorf("add news: %w", err)
	}

	slog.InfoContext(ctx, "news created", "news_id", created.ID)

	return created, nil
}

func (s *Service) UpdateNews(ctx context.Context, id int, item entity.NewsItem) (entity.NewsItem, error) {
	if err := s.authorize(ctx, entity.PermissionManageContent); err != nil {
		return entity.NewsItem{}, err
	}

	if err := validateSlugged(item.Slug, item.Title); err != nil {
		return entity.NewsItem{}, err
	}

	updated, err := s.store.News.UpdateUniqueSlug(ctx, id, func(n *entity.NewsItem) {
		publishedAt := n.PublishedAt
		*n = item

		if n.PublishedAt.IsZero() {
			n.PublishedAt = publishedAt
		}
	})
	if err != nil {
		return entity.NewsItem{}, fmt.Errorf("update news: %w", err)
	}

	return updated, nil
}

func (s *Service) DeleteNews(ctx context.Context, id int) error {
	if err := s.authorize(ctx, entity.PermissionManageContent); err != nil {
		return err
	}

	if err := s.store.News.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete news: %w", err)
	}

	slog.InfoContext(ctx, "news deleted", "news_id", id)

	return nil
}

func (s *Service) CreateEvent(ctx context.Context, event entity.Event) (entity.Event, error) {
	if err := s.authorize(ctx, entity.PermissionManageEvents); err != nil {
		return entity.Event{}, err
	}

	if err := validateEvent(event); err != nil {
		return entity.Event{}, err
	}

	created, err := s.store.Events.AddUniqueSlug(ctx, event)
	if err != nil {
		return entity.Event{}, fmt.Errorf("add event: %w", err)
	}

	slog.InfoContext(ctx, "event created", "event_id", created.ID)

	return created, nil
}

func (s *Service) UpdateEvent(ctx context.Context, id int, event entity.Event) (entity.Event, error) {
	if err := s.authorize(ctx, entity.PermissionManageEvents); err != nil {
		return entity.Event{}, err
	}

	if err := validateEvent(event); err != nil {
		return entity.Event{}, err
	}

	updated, err := s.store.Events.UpdateUniqueSlug(ctx, id, func(e *entity.Event) { *e = event })
	if err != nil {
		return entity.Event{}, fmt.Errorf("update event: %w", err)
	}

	return updated, nil
}

func (s *Service) DeleteEvent(ctx context.Context, id int) error {
	if err := s.authorize(ctx, entity.PermissionManageEvents); err != nil {
		return err
	}

	if err := s.store.Events.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	slog.InfoContext(ctx, "event deleted", "event_id", id)

	return nil
}

// Users lists users, or searches them by name and e-mail when query is set.
func (s *Service) Users(ctx context.Context, query string) ([]entity.User, error) {
	if err := s.authorize(ctx, entity.PermissionManageUsers); err != nil {
		return nil, err
	}

	return listOrSearch(ctx, s.store.Users, query)
}

func (s *Service) UpdateUserRole(ctx context.Context, id int, role string) (entity.User, error) {
	if err := s.authorize(ctx, entity.PermissionManageRoles); err != nil {
		return entity.User{}, err
	}

	if !entity.IsValidRole(role) {
		return entity.User{}, fmt.Errorf("role %q: %w", role, entity.ErrInvalidRole)
	}

	user, err := s.store.Users.Update(ctx, id, func(u *entity.User) { u.Role = role })
	if err != nil {
		return entity.User{}, fmt.Errorf("update user role: %w", err)
	}

	slog.InfoContext(ctx, "user role changed", "user_id", id, "new_role", role)

	return user, nil
}

func (s *Service) UpdateUserStatus(ctx context.Context, id int, status entity.UserStatus) (entity.User, error) {
	if err := s.authorize(ctx, entity.PermissionManageUsers); err != nil {
		return entity.User{}, err
	}

	if status != entity.UserStatusActive && status != entity.UserStatusBlocked {
		return entity.User{}, fmt.Errorf("user status %q: %w", status, entity.ErrInvalidArgument)
	}

	user, err := s.store.Users.Update(ctx, id, func(u *entity.User) { u.Status = status })
	if err != nil {
		return entity.User{}, fmt.Errorf("update user status: %w", err)
	}

	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int) error {
	if err := s.authorize(ctx, entity.PermissionDeleteUsers); err != nil {
		return err
	}

	if err := s.store.Users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	slog.InfoContext(ctx, "user deleted", "user_id", id)

	return nil
}

func (s *Service) Roles(ctx context.Context) ([]entity.Role, error) {
	if err := s.authorize(ctx, entity.PermissionManageRoles); err != nil {
		return nil, err
	}

	return entity.Roles(), nil
}

func (s *Service) authorize(ctx context.Context, permission string) error {
	role := entity.RoleFromCtx(ctx)

	if !entity.HasPermission(role, permission) {
		slog.WarnContext(ctx, "Permission denied", "role", role, "permission", permission)
		return entity.ErrForbidden
	}

	return nil
}

func validateSlugged(slug string, title i18n.Text) error {
	if strings.TrimSpace(slug) == "" || title.Ar == "" || title.En == "" {
		return fmt.Errorf("slug and bilingual title are required: %w", entity.ErrInvalidArgument)
	}

	return nil
}

func validateEvent(e entity.Event) error {
	if err := validateSlugged(e.Slug, e.Title); err != nil {
		return err
	}

	if e.StartsAt.IsZero() {
		return fmt.Errorf("start time is required: %w", entity.ErrInvalidArgument)
	}

	if !e.EndsAt.IsZero() && e.EndsAt.Before(e.StartsAt) {
		return fmt.Errorf("event ends before it starts: %w", entity.ErrInvalidArgument)
	}

	return nil
}
