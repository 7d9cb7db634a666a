package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/portal/internal/api/events"
	"github.com/samandr77/microservices/portal/internal/entity"
)

type notifier struct {
	got []entity.Envelope
	err error
}

func (n *notifier) NotifyInquiry(_ context.Context, env entity.Envelope) error {
	n.got = append(n.got, env)
	return n.err
}

func TestEventHandler_OnInquirySubmitted(t *testing.T) {
	t.Parallel()

	env := entity.Envelope{
		Type:       entity.EventInquirySubmitted,
		OccurredAt: time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC),
		Inquiry: &entity.Inquiry{
			ID:    uuid.Must(uuid.NewV4()),
			Kind:  entity.InquiryContact,
			Name:  "Sara",
			Email: "sara@example.com",
		},
	}

	payload, err := json.Marshal(env)
	require.NoError(t, err)

	t.Run("forwards envelope", func(t *testing.T) {
		t.Parallel()

		n := &notifier{}
		err := events.NewEventHandler(n).OnInquirySubmitted(context.Background(), kafka.Message{Value: payload})
		require.NoError(t, err)
		require.Len(t, n.got, 1)
		require.Equal(t, env.Inquiry.ID, n.got[0].Inquiry.ID)
		require.Equal(t, "sara@example.com", n.got[0].Inquiry.Email)
	})

	t.Run("broken payload", func(t *testing.T) {
		t.Parallel()

		n := &notifier{}
		err := events.NewEventHandler(n).OnInquirySubmitted(context.Background(), kafka.Message{Value: []byte("{")})
		require.Error(t, err)
		require.Empty(t, n.got)
	})

	t.Run("notify error", func(t *testing.T) {
		t.Parallel()

		n := &notifier{err: errors.New("smtp down")}
		err := events.NewEventHandler(n).OnInquirySubmitted(context.Background(), kafka.Message{Value: payload})
		require.ErrorContains(t, err, "smtp down")
	})
}
