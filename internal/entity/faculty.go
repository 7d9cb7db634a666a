package entity

import "github.com/samandr77/microservices/portal/pkg/i18n"

type FacultyMember struct {
	ID             int       `json:"id" yaml:"id"`
	CollegeID      int       `json:"collegeId" yaml:"collegeId"`
	Name           i18n.Text `json:"name" yaml:"name"`
	Title          i18n.Text `json:"title" yaml:"title"`
	Department     i18n.Text `json:"department" yaml:"department"`
	Specialization i18n.Text `json:"specialization" yaml:"specialization"`
	Email          string    `json:"email" yaml:"email"`
	Image          string    `json:"image" yaml:"image"`
}

func (f FacultyMember) RecordID() int    { return f.ID }
func (FacultyMember) RecordSlug() string { return "" }

func (f FacultyMember) WithID(id int) FacultyMember {
	f.ID = id
	return f
}

func (f FacultyMember) SearchFields() []i18n.Text {
	return []i18n.Text{f.Name, f.Specialization}
}
