package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/samandr77/microservices/portal/internal/entity"
)

// ChatLog is the single chat transcript shared by every visitor session.
type ChatLog struct {
	net      *Network
	mu       sync.RWMutex
	messages []entity.ChatMessage
}

func NewChatLog(net *Network) *ChatLog {
	return &ChatLog{net: net}
}

func (l *ChatLog) Append(ctx context.Context, messages ...entity.ChatMessage) error {
	if err := l.net.RoundTrip(ctx); err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, messages...)

	return nil
}

// BySession returns the messages of one session in the order they were written.
func (l *ChatLog) BySession(ctx context.Context, sessionID string) ([]entity.ChatMessage, error) {
	if err := l.net.RoundTrip(ctx); err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	found := make([]entity.ChatMessage, 0)

	for _, m := range l.messages {
		if m.SessionID == sessionID {
			found = append(found, m)
		}
	}

	return found, nil
}

// TrimBefore drops messages created before cutoff and returns how many were removed.
// It is called by a background job and does not pay the simulated latency.
func (l *ChatLog) TrimBefore(cutoff time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.messages[:0]

	for _, m := range l.messages {
		if !m.CreatedAt.Before(cutoff) {
			kept = append(kept, m)
		}
	}

	removed := len(l.messages) - len(kept)
	clear(l.messages[len(kept):])
	l.messages = kept

	return removed
}

func (l *ChatLog) Count(ctx context.Context) (int, error) {
	if err := l.net.RoundTrip(ctx); err != nil {
		return 0, fmt.Errorf("chat: %w", err)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.messages), nil
}
