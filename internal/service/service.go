package service

import (
	"context"
	"time"

	"github.com/samandr77/microservices/portal/internal/repository"
	"github.com/samandr77/microservices/portal/pkg/i18n"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload any) error
}

type Mailer interface {
	SendMessage(subject, message string, recipients []string, contentType string) error
}

type Config struct {
	InquiryTopic  string
	ChatTopic     string
	Inbox         string
	ChatRetention time.Duration
}

type Service struct {
	store     *repository.Store
	catalog   *i18n.Catalog
	publisher Publisher
	mailer    Mailer
	cfg       Config
	now       func() time.Time
}

// New builds the service. mailer may be nil, inquiries are then only logged.
func New(store *repository.Store, catalog *i18n.Catalog, publisher Publisher, mailer Mailer, cfg Config) *Service {
	return &Service{
		store:     store,
		catalog:   catalog,
		publisher: publisher,
		mailer:    mailer,
		cfg:       cfg,
		now:       time.Now,
	}
}

// WithClock replaces the time source, used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Catalog() *i18n.Catalog {
	return s.catalog
}
