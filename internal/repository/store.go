package repository

import (
	"context"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/internal/seed"
)

// Store groups the mock data services of every section of the site.
type Store struct {
	Net      *Network
	News     *Collection[entity.NewsItem]
	Blog     *Collection[entity.BlogPost]
	Events   *Collection[entity.Event]
	Colleges *Collection[entity.College]
	Faculty  *Collection[entity.FacultyMember]
	Projects *Collection[entity.Project]
	Offers   *Collection[entity.Offer]
	FAQs     *Collection[entity.FAQ]
	Users    *Collection[entity.User]
	Chat     *ChatLog

	site entity.SiteInfo
}

func NewStore(net *Network, data seed.Data) *Store {
	return &Store{
		Net:      net,
		News:     NewCollection("news", net, data.News),
		Blog:     NewCollection("blog", net, data.Blog),
		Events:   NewCollection("events", net, data.Events),
		Colleges: NewCollection("colleges", net, data.Colleges),
		Faculty:  NewCollection("faculty", net, data.Faculty),
		Projects: NewCollection("projects", net, data.Projects),
		Offers:   NewCollection("offers", net, data.Offers),
		FAQs:     NewCollection("faqs", net, data.FAQs),
		Users:    NewCollection("users", net, data.Users),
		Chat:     NewChatLog(net),
		site:     data.Site,
	}
}

func (s *Store) SiteInfo(ctx context.Context) (entity.SiteInfo, error) {
	if err := s.Net.RoundTrip(ctx); err != nil {
		return entity.SiteInfo{}, err
	}

	return s.site, nil
}
