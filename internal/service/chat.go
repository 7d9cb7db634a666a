package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/pkg/i18n"
)

// minKeywordLen drops short words such as "is", "of" or "في" when matching FAQs.
const minKeywordLen = 3

// SendChatMessage stores a visitor message together with the bot reply and returns both.
// An empty sessionID starts a new session.
func (s *Service) SendChatMessage(ctx context.Context, sessionID, text string) ([]entity.ChatMessage, error) {
	text = strings.TrimSpace(text)

	err := ValidateChatText(text)
	if err != nil {
		return nil, err
	}

	if sessionID == "" {
		sessionID = uuid.Must(uuid.NewV4()).String()
	}

	l := entity.LocaleFromCtx(ctx)
	now := s.now().UTC()

	reply, err := s.botReply(ctx, l, text)
	if err != nil {
		return nil, fmt.Errorf("bot reply: %w", err)
	}

	messages := []entity.ChatMessage{
		{
			ID:        uuid.Must(uuid.NewV4()),
			SessionID: sessionID,
			Author:    entity.ChatAuthorVisitor,
			Text:      text,
			Locale:    l,
			CreatedAt: now,
		},
		{
			ID:        uuid.Must(uuid.NewV4()),
			SessionID: sessionID,
			Author:    entity.ChatAuthorBot,
			Text:      reply,
			Locale:    l,
			CreatedAt: now,
		},
	}

	err = s.store.Chat.Append(ctx, messages...)
	if err != nil {
		return nil, fmt.Errorf("append chat messages: %w", err)
	}

	err = s.publisher.Publish(ctx, s.cfg.ChatTopic, sessionID, entity.Envelope{
		Type:       entity.EventChatMessage,
		OccurredAt: now,
		Chat:       &messages[0],
	})
	if err != nil {
		slog.ErrorContext(ctx, "publish chat message", "error", err, "session_id", sessionID)
	}

	return messages, nil
}

// ChatHistory returns the session transcript, opened by the greeting for new sessions.
func (s *Service) ChatHistory(ctx context.Context, sessionID string) ([]entity.ChatMessage, error) {
	messages := make([]entity.ChatMessage, 0)

	if sessionID != "" {
		var err error

		messages, err = s.store.Chat.BySession(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("chat history: %w", err)
		}
	}

	if len(messages) > 0 {
		return messages, nil
	}

	l := entity.LocaleFromCtx(ctx)

	return []entity.ChatMessage{{
		SessionID: sessionID,
		Author:    entity.ChatAuthorBot,
		Text:      s.catalog.Message(l, "chat.greeting"),
		Locale:    l,
		CreatedAt: s.now().UTC(),
	}}, nil
}

// botReply answers with the FAQ sharing the most keywords with text, or the fallback message.
func (s *Service) botReply(ctx context.Context, l i18n.Locale, text string) (string, error) {
	faqs, err := s.store.FAQs.All(ctx)
	if err != nil {
		return "", err
	}

	keywords := keywords(text)

	best, bestScore := -1, 0

	for i, faq := range faqs {
		score := 0

		for _, k := range keywords {
			if faq.Question.ContainsFold(k) {
				score += 2
			} else if faq.Answer.ContainsFold(k) {
				score++
			}
		}

		if score > bestScore {
			best, bestScore = i, score
		}
	}

	if best < 0 {
		return s.catalog.Message(l, "chat.fallback"), nil
	}

	return faqs[best].Answer.In(l), nil
}

func keywords(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	out := make([]string, 0, len(words))

	for _, w := range words {
		if utf8.RuneCountInString(w) >= minKeywordLen {
			out = append(out, w)
		}
	}

	return out
}
