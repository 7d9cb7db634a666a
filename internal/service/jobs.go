package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samandr77/microservices/portal/internal/entity"
)

// ExpireOffers switches off active offers whose validity ended.
func (s *Service) ExpireOffers(ctx context.Context) error {
	now := s.now()

	expired, err := s.store.Offers.Filter(ctx, func(o entity.Offer) bool { return o.Active && o.IsExpired(now) })
	if err != nil {
		return fmt.Errorf("list expired offers: %w", err)
	}

	for _, o := range expired {
		_, err = s.store.Offers.Update(ctx, o.ID, func(offer *entity.Offer) { offer.Active = false })
		if err != nil {
			return fmt.Errorf("deactivate offer %d: %w", o.ID, err)
		}

		slog.InfoContext(ctx, "offer expired", "offer_id", o.ID, "valid_until", o.ValidUntil)
	}

	return nil
}

// TrimChat drops chat messages older than the configured retention.
func (s *Service) TrimChat(ctx context.Context) error {
	if s.cfg.ChatRetention <= 0 {
		return nil
	}

	removed := s.store.Chat.TrimBefore(s.now().Add(-s.cfg.ChatRetention))
	if removed > 0 {
		slog.InfoContext(ctx, "chat trimmed", "removed", removed)
	}

	return nil
}
