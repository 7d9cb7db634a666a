package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/portal/pkg/i18n"
)

type Offer struct {
	ID              int             `json:"id" yaml:"id"`
	Title           i18n.Text       `json:"title" yaml:"title"`
	Description     i18n.Text       `json:"description" yaml:"description"`
	DiscountPercent decimal.Decimal `json:"discountPercent" yaml:"discountPercent"`
	ValidUntil      time.Time       `json:"validUntil" yaml:"validUntil"`
	Active          bool            `json:"active" yaml:"active"`
}

func (o Offer) RecordID() int    { return o.ID }
func (Offer) RecordSlug() string { return "" }

func (o Offer) WithID(id int) Offer {
	o.ID = id
	return o
}

func (o Offer) SearchFields() []i18n.Text {
	return []i18n.Text{o.Title, o.Description}
}

// IsExpired reports whether the offer validity ended before now. Offers without an end date never expire.
func (o Offer) IsExpired(now time.Time) bool {
	return !o.ValidUntil.IsZero() && o.ValidUntil.Before(now)
}

type FAQ struct {
	ID       int       `json:"id" yaml:"id"`
	Question i18n.Text `json:"question" yaml:"question"`
	Answer   i18n.Text `json:"answer" yaml:"answer"`
	Category string    `json:"category" yaml:"category"`
}

func (f FAQ) RecordID() int    { return f.ID }
func (FAQ) RecordSlug() string { return "" }

func (f FAQ) WithID(id int) FAQ {
	f.ID = id
	return f
}

func (f FAQ) SearchFields() []i18n.Text {
	return []i18n.Text{f.Question, f.Answer}
}
