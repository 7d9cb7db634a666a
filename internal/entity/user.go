package entity

import "github.com/samandr77/microservices/portal/pkg/i18n"

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	ID     int        `json:"id" yaml:"id"`
	Name   i18n.Text  `json:"name" yaml:"name"`
	Email  string     `json:"email" yaml:"email"`
	Role   string     `json:"role" yaml:"role"`
	Status UserStatus `json:"status" yaml:"status"`
}

func (u User) RecordID() int    { return u.ID }
func (User) RecordSlug() string { return "" }

func (u User) WithID(id int) User {
	u.ID = id
	return u
}

func (u User) SearchFields() []i18n.Text {
	return []i18n.Text{u.Name, {Ar: u.Email, En: u.Email}}
}
