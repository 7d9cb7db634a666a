package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}

// LogPublisher stands in for Kafka when no brokers are configured: events are only logged.
type LogPublisher struct {
	l *slog.Logger
}

func NewLogPublisher(l *slog.Logger) *LogPublisher {
	return &LogPublisher{l: l.WithGroup("events")}
}

func (p *LogPublisher) Publish(ctx context.Context, topic, key string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	p.l.InfoContext(ctx, "event published", "topic", topic, "key", key, "payload", string(b))

	return nil
}
