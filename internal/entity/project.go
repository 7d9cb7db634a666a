package entity

import "github.com/samandr77/microservices/portal/pkg/i18n"

type ProjectStatus string

const (
	ProjectPlanned   ProjectStatus = "planned"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectPlanned, ProjectActive, ProjectCompleted:
		return true
	default:
		return false
	}
}

type Project struct {
	ID          int           `json:"id" yaml:"id"`
	Slug        string        `json:"slug" yaml:"slug"`
	Title       i18n.Text     `json:"title" yaml:"title"`
	Description i18n.Text     `json:"description" yaml:"description"`
	CollegeID   int           `json:"collegeId" yaml:"collegeId"`
	Status      ProjectStatus `json:"status" yaml:"status"`
	Image       string        `json:"image" yaml:"image"`
}

func (p Project) RecordID() int      { return p.ID }
func (p Project) RecordSlug() string { return p.Slug }

func (p Project) WithID(id int) Project {
	p.ID = id
	return p
}

func (p Project) SearchFields() []i18n.Text {
	return []i18n.Text{p.Title, p.Description}
}
