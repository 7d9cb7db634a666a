package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/portal/pkg/i18n"
)

type ChatAuthor string

const (
	ChatAuthorVisitor ChatAuthor = "visitor"
	ChatAuthorBot     ChatAuthor = "bot"
)

type ChatMessage struct {
	ID        uuid.UUID   `json:"id"`
	SessionID string      `json:"sessionId"`
	Author    ChatAuthor  `json:"author"`
	Text      string      `json:"text"`
	Locale    i18n.Locale `json:"locale"`
	CreatedAt time.Time   `json:"createdAt"`
}
