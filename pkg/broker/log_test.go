package broker_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/portal/pkg/broker"
)

func TestLogPublisher_Publish(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	p := broker.NewLogPublisher(slog.New(slog.NewJSONHandler(buf, nil)))

	err := p.Publish(context.Background(), "portal.inquiries", "key-1", map[string]string{"kind": "contact"})
	require.NoError(t, err)

	var record struct {
		Msg    string `json:"msg"`
		Events struct {
			Topic   string `json:"topic"`
			Key     string `json:"key"`
			Payload string `json:"payload"`
		} `json:"events"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	require.Equal(t, "event published", record.Msg)
	require.Equal(t, "portal.inquiries", record.Events.Topic)
	require.Equal(t, "key-1", record.Events.Key)
	require.JSONEq(t, `{"kind":"contact"}`, record.Events.Payload)
}

func TestLogPublisher_PublishUnencodable(t *testing.T) {
	t.Parallel()

	p := broker.NewLogPublisher(slog.New(slog.NewJSONHandler(new(bytes.Buffer), nil)))

	err := p.Publish(context.Background(), "t", "k", make(chan int))
	require.Error(t, err)
}
