package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/portal/pkg/i18n"
)

type InquiryKind string

const (
	InquiryContact    InquiryKind = "contact"
	InquiryAdmission  InquiryKind = "admission"
	InquiryNewsletter InquiryKind = "newsletter"
)

func (k InquiryKind) IsValid() bool {
	switch k {
	case InquiryContact, InquiryAdmission, InquiryNewsletter:
		return true
	default:
		return false
	}
}

// Inquiry is a submitted contact, admission or newsletter form. It is published, never stored.
type Inquiry struct {
	ID          uuid.UUID   `json:"id"`
	Kind        InquiryKind `json:"kind"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone,omitempty"`
	Subject     string      `json:"subject,omitempty"`
	Message     string      `json:"message,omitempty"`
	ProgramSlug string      `json:"programSlug,omitempty"`
	Locale      i18n.Locale `json:"locale"`
	CreatedAt   time.Time   `json:"createdAt"`
}

const (
	EventInquirySubmitted = "inquiry.submitted"
	EventChatMessage      = "chat.message"
)

// Envelope is the payload written to the message broker.
type Envelope struct {
	Type       string       `json:"type"`
	OccurredAt time.Time    `json:"occurredAt"`
	Inquiry    *Inquiry     `json:"inquiry,omitempty"`
	Chat       *ChatMessage `json:"chat,omitempty"`
}
