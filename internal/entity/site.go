package entity

import "github.com/samandr77/microservices/portal/pkg/i18n"

type SiteInfo struct {
	About   About     `json:"about" yaml:"about"`
	Stats   SiteStats `json:"stats" yaml:"stats"`
	Contact Contact   `json:"contact" yaml:"contact"`
}

type About struct {
	Mission i18n.Text `json:"mission" yaml:"mission"`
	Vision  i18n.Text `json:"vision" yaml:"vision"`
	History i18n.Text `json:"history" yaml:"history"`
}

type SiteStats struct {
	Students int `json:"students" yaml:"students"`
	Faculty  int `json:"faculty" yaml:"faculty"`
	Colleges int `json:"colleges" yaml:"colleges"`
	Programs int `json:"programs" yaml:"programs"`
	Founded  int `json:"founded" yaml:"founded"`
}

type Contact struct {
	Phone   string    `json:"phone" yaml:"phone"`
	Email   string    `json:"email" yaml:"email"`
	Address i18n.Text `json:"address" yaml:"address"`
}

// DashboardStats counts the records of every collection.
type DashboardStats struct {
	News     int `json:"news"`
	Blog     int `json:"blog"`
	Events   int `json:"events"`
	Colleges int `json:"colleges"`
	Programs int `json:"programs"`
	Faculty  int `json:"faculty"`
	Projects int `json:"projects"`
	Offers   int `json:"offers"`
	FAQs     int `json:"faqs"`
	Users    int `json:"users"`
	Chat     int `json:"chatMessages"`
}
