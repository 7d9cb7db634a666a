package entity

import (
	"time"

	"github.com/samandr77/microservices/portal/pkg/i18n"
)

type NewsItem struct {
	ID          int       `json:"id" yaml:"id"`
	Slug        string    `json:"slug" yaml:"slug"`
	Title       i18n.Text `json:"title" yaml:"title"`
	Summary     i18n.Text `json:"summary" yaml:"summary"`
	Content     i18n.Text `json:"content" yaml:"content"`
	Category    string    `json:"category" yaml:"category"`
	Image       string    `json:"image" yaml:"image"`
	PublishedAt time.Time `json:"publishedAt" yaml:"publishedAt"`
	Featured    bool      `json:"featured" yaml:"featured"`
}

func (n NewsItem) RecordID() int      { return n.ID }
func (n NewsItem) RecordSlug() string { return n.Slug }

func (n NewsItem) WithID(id int) NewsItem {
	n.ID = id
	return n
}

func (n NewsItem) SearchFields() []i18n.Text {
	return []i18n.Text{n.Title, n.Summary}
}

type BlogPost struct {
	ID          int       `json:"id" yaml:"id"`
	Slug        string    `json:"slug" yaml:"slug"`
	Title       i18n.Text `json:"title" yaml:"title"`
	Excerpt     i18n.Text `json:"excerpt" yaml:"excerpt"`
	Content     i18n.Text `json:"content" yaml:"content"`
	Author      i18n.Text `json:"author" yaml:"author"`
	Tags        []string  `json:"tags" yaml:"tags"`
	Image       string    `json:"image" yaml:"image"`
	PublishedAt time.Time `json:"publishedAt" yaml:"publishedAt"`
	ReadMinutes int       `json:"readMinutes" yaml:"readMinutes"`
}

func (b BlogPost) RecordID() int      { return b.ID }
func (b BlogPost) RecordSlug() string { return b.Slug }

func (b BlogPost) WithID(id int) BlogPost {
	b.ID = id
	return b
}

func (b BlogPost) SearchFields() []i18n.Text {
	return []i18n.Text{b.Title, b.Excerpt}
}

func (b BlogPost) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}

	return false
}
