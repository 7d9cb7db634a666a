package entity

import (
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/portal/pkg/i18n"
)

type Degree string

const (
	DegreeDiploma  Degree = "diploma"
	DegreeBachelor Degree = "bachelor"
	DegreeMaster   Degree = "master"
	DegreePhD      Degree = "phd"
)

func (d Degree) IsValid() bool {
	switch d {
	case DegreeDiploma, DegreeBachelor, DegreeMaster, DegreePhD:
		return true
	default:
		return false
	}
}

// CurrencySAR is the currency every tuition fee is quoted in.
const CurrencySAR = "SAR"

type College struct {
	ID          int       `json:"id" yaml:"id"`
	Slug        string    `json:"slug" yaml:"slug"`
	Name        i18n.Text `json:"name" yaml:"name"`
	Description i18n.Text `json:"description" yaml:"description"`
	Dean        i18n.Text `json:"dean" yaml:"dean"`
	Image       string    `json:"image" yaml:"image"`
	Programs    []Program `json:"programs" yaml:"programs"`
}

func (c College) RecordID() int      { return c.ID }
func (c College) RecordSlug() string { return c.Slug }

func (c College) WithID(id int) College {
	c.ID = id
	c.Programs = append([]Program(nil), c.Programs...)

	for i := range c.Programs {
		c.Programs[i].CollegeID = id
	}

	return c
}

func (c College) SearchFields() []i18n.Text {
	return []i18n.Text{c.Name, c.Description}
}

// Program returns the college program with the given slug.
func (c College) Program(slug string) (Program, bool) {
	for _, p := range c.Programs {
		if p.Slug == slug {
			return p, true
		}
	}

	return Program{}, false
}

type Program struct {
	ID            int             `json:"id" yaml:"id"`
	Slug          string          `json:"slug" yaml:"slug"`
	CollegeID     int             `json:"collegeId" yaml:"collegeId"`
	Name          i18n.Text       `json:"name" yaml:"name"`
	Description   i18n.Text       `json:"description" yaml:"description"`
	Degree        Degree          `json:"degree" yaml:"degree"`
	DurationYears int             `json:"durationYears" yaml:"durationYears"`
	Credits       int             `json:"credits" yaml:"credits"`
	TuitionFee    decimal.Decimal `json:"tuitionFee" yaml:"tuitionFee"`
}

func (p Program) SearchFields() []i18n.Text {
	return []i18n.Text{p.Name, p.Description}
}
