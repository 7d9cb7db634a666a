package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/portal/internal/entity"
)

type InquiryInput struct {
	Kind        entity.InquiryKind
	Name        string
	Email       string
	Phone       string
	Subject     string
	Message     string
	ProgramSlug string
}

// SubmitInquiry validates a form submission and publishes it. Nothing is stored.
func (s *Service) SubmitInquiry(ctx context.Context, in InquiryInput) (entity.Inquiry, error) {
	inquiry := entity.Inquiry{
		Kind:        in.Kind,
		Name:        strings.TrimSpace(in.Name),
		Email:       NormalizeEmail(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Subject:     strings.TrimSpace(in.Subject),
		Message:     strings.TrimSpace(in.Message),
		ProgramSlug: strings.TrimSpace(in.ProgramSlug),
		Locale:      entity.LocaleFromCtx(ctx),
	}

	err := s.validateInquiry(ctx, inquiry)
	if err != nil {
		return entity.Inquiry{}, err
	}

	inquiry.ID = uuid.Must(uuid.NewV4())
	inquiry.CreatedAt = s.now().UTC()

	err = s.publisher.Publish(ctx, s.cfg.InquiryTopic, inquiry.ID.String(), entity.Envelope{
		Type:       entity.EventInquirySubmitted,
		OccurredAt: inquiry.CreatedAt,
		Inquiry:    &inquiry,
	})
	if err != nil {
		return entity.Inquiry{}, fmt.Errorf("publish inquiry: %w", err)
	}

	slog.InfoContext(ctx, "inquiry submitted", "inquiry_id", inquiry.ID, "kind", inquiry.Kind)

	return inquiry, nil
}

func (s *Service) validateInquiry(ctx context.Context, in entity.Inquiry) error {
	if !in.Kind.IsValid() {
		return fmt.Errorf("kind %q: %w", in.Kind, entity.ErrInvalidInquiryKind)
	}

	if in.Kind != entity.InquiryNewsletter {
		if err := ValidateName(in.Name); err != nil {
			return err
		}
	}

	if err := ValidateEmail(in.Email); err != nil {
		return err
	}

	if err := ValidatePhone(in.Phone); err != nil {
		return err
	}

	switch in.Kind {
	case entity.InquiryContact:
		if in.Message == "" || utf8.RuneCountInString(in.Message) > MessageMaxLen {
			return entity.ErrMessageRequired
		}
	case entity.InquiryAdmission:
		_, err := s.programBySlug(ctx, in.ProgramSlug)
		if errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("program %q: %w", in.ProgramSlug, entity.ErrUnknownProgram)
		}

		if err != nil {
			return fmt.Errorf("check program: %w", err)
		}
	case entity.InquiryNewsletter:
	}

	return nil
}

func (s *Service) programBySlug(ctx context.Context, slug string) (entity.Program, error) {
	if slug == "" {
		return entity.Program{}, entity.ErrNotFound
	}

	programs, err := s.Programs(ctx, "")
	if err != nil {
		return entity.Program{}, err
	}

	for _, p := range programs {
		if p.Slug == slug {
			return p, nil
		}
	}

	return entity.Program{}, entity.ErrNotFound
}

// NotifyInquiry e-mails the admissions inbox about a published inquiry.
func (s *Service) NotifyInquiry(ctx context.Context, env entity.Envelope) error {
	if env.Type != entity.EventInquirySubmitted || env.Inquiry == nil {
		slog.WarnContext(ctx, "unexpected event skipped", "type", env.Type)
		return nil
	}

	inquiry := env.Inquiry

	if s.mailer == nil || s.cfg.Inbox == "" {
		slog.InfoContext(ctx, "mailer disabled, inquiry not e-mailed", "inquiry_id", inquiry.ID)
		return nil
	}

	subject := fmt.Sprintf("[%s] %s", inquiry.Kind, inquiry.Name)
	if inquiry.Subject != "" {
		subject += ": " + inquiry.Subject
	}

	err := s.mailer.SendMessage(subject, inquiryBody(*inquiry), []string{s.cfg.Inbox}, "text/plain")
	if err != nil {
		return fmt.Errorf("send inquiry %s: %w", inquiry.ID, err)
	}

	slog.InfoContext(ctx, "inquiry e-mailed", "inquiry_id", inquiry.ID)

	return nil
}

func inquiryBody(in entity.Inquiry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Kind: %s\n", in.Kind)
	fmt.Fprintf(&b, "Name: %s\n", in.Name)
	fmt.Fprintf(&b, "Email: %s\n", in.Email)

	if in.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", in.Phone)
	}

	if in.ProgramSlug != "" {
		fmt.Fprintf(&b, "Program: %s\n", in.ProgramSlug)
	}

	fmt.Fprintf(&b, "Language: %s\n", in.Locale)
	fmt.Fprintf(&b, "Received: %s\n", in.CreatedAt.Format("2006-01-02 15:04 MST"))

	if in.Message != "" {
		fmt.Fprintf(&b, "\n%s\n", in.Message)
	}

	return b.String()
}
