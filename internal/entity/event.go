package entity

import (
	"time"

	"github.com/samandr77/microservices/portal/pkg/i18n"
)

type Event struct {
	ID              int       `json:"id" yaml:"id"`
	Slug            string    `json:"slug" yaml:"slug"`
	Title           i18n.Text `json:"title" yaml:"title"`
	Description     i18n.Text `json:"description" yaml:"description"`
	Location        i18n.Text `json:"location" yaml:"location"`
	Category        string    `json:"category" yaml:"category"`
	StartsAt        time.Time `json:"startsAt" yaml:"startsAt"`
	EndsAt          time.Time `json:"endsAt" yaml:"endsAt"`
	RegistrationURL string    `json:"registrationUrl,omitempty" yaml:"registrationUrl"`
}

func (e Event) RecordID() int      { return e.ID }
func (e Event) RecordSlug() string { return e.Slug }

func (e Event) WithID(id int) Event {
	e.ID = id
	return e
}

func (e Event) SearchFields() []i18n.Text {
	return []i18n.Text{e.Title, e.Description}
}

// IsUpcoming reports whether the event has not ended at now.
func (e Event) IsUpcoming(now time.Time) bool {
	end := e.EndsAt
	if end.IsZero() {
		end = e.StartsAt
	}

	return end.After(now)
}
