package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/portal/internal/entity"
)

type Service interface {
	NotifyInquiry(ctx context.Context, env entity.Envelope) error
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

// OnInquirySubmitted forwards submitted forms to the admissions inbox.
func (h *EventHandler) OnInquirySubmitted(ctx context.Context, msg kafka.Message) error {
	var env entity.Envelope

	err := json.Unmarshal(msg.Value, &env)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	err = h.s.NotifyInquiry(ctx, env)
	if err != nil {
		return fmt.Errorf("notify inquiry: %w", err)
	}

	return nil
}
