package mailer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/portal/pkg/config"
)

func TestClient_newMessage(t *testing.T) {
	t.Parallel()

	c := New(config.Mailer{
		Host:     "smtp.example.edu",
		Port:     587,
		From:     "no-reply@example.edu",
		FromName: "Portal",
	})

	tests := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{name: "explicit plain", contentType: "text/plain", body: "<b>kept as text</b>", want: "text/plain"},
		{name: "detected html", body: "<p>Hello</p>", want: "text/html"},
		{name: "detected plain", body: "Hello", want: "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			_, err := c.newMessage("New inquiry", tt.body, []string{"inbox@example.edu"}, tt.contentType).WriteTo(&buf)
			require.NoError(t, err)

			raw := buf.String()
			require.Contains(t, raw, "Subject: New inquiry")
			require.Contains(t, raw, "To: inbox@example.edu")
			require.Contains(t, raw, `From: "Portal" <no-reply@example.edu>`)
			require.Contains(t, raw, "Content-Type: "+tt.want+"; charset=UTF-8")
		})
	}
}
