package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/internal/repository"
	"github.com/samandr77/microservices/portal/internal/seed"
	"github.com/samandr77/microservices/portal/pkg/i18n"
)

type CollectionTestSuite struct {
	suite.Suite
	store *repository.Store
}

func (ts *CollectionTestSuite) SetupTest() {
	data, err := seed.Load()
	ts.Require().NoError(err)

	ts.store = repository.NewStore(repository.NewNetwork(0, false), data)
}

func TestCollectionTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CollectionTestSuite))
}

func (ts *CollectionTestSuite) TestAllReturnsCopy() {
	ctx := context.Background()

	news, err := ts.store.News.All(ctx)
	ts.Require().NoError(err)
	ts.Require().Len(news, 5)

	news[0].Title = i18n.Text{Ar: "x", En: "x"}

	again, err := ts.store.News.All(ctx)
	ts.Require().NoError(err)
	ts.Require().NotEqual("x", again[0].Title.En)
}

func (ts *CollectionTestSuite) TestByIDAndSlug() {
	ctx := context.Background()

	item, err := ts.store.News.BySlug(ctx, "debate-team-wins")
	ts.Require().NoError(err)
	ts.Require().Equal(4, item.ID)

	item, err = ts.store.News.ByID(ctx, 2)
	ts.Require().NoError(err)
	ts.Require().Equal("research-grant-ai-health", item.Slug)

	_, err = ts.store.News.ByID(ctx, 404)
	ts.Require().ErrorIs(err, entity.ErrNotFound)

	_, err = ts.store.News.BySlug(ctx, "missing")
	ts.Require().ErrorIs(err, entity.ErrNotFound)

	_, err = ts.store.Faculty.BySlug(ctx, "")
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *CollectionTestSuite) TestSearch() {
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "empty", query: "", want: []int{}},
		{name: "blank", query: " ", want: []int{}},
		{name: "single rune", query: " a ", want: []int{}},
		{name: "english case insensitive", query: "LIBRARY", want: []int{5}},
		{name: "arabic", query: "مختبرات", want: []int{1}},
		{name: "summary match keeps order", query: "the", want: []int{1, 3, 4, 5}},
		{name: "content is not searched", query: "thirty teams", want: []int{}},
		{name: "trimmed", query: "  debate  ", want: []int{4}},
	}

	for _, tt := range tests {
		ts.Run(tt.name, func() {
			found, err := ts.store.News.Search(ctx, tt.query)
			ts.Require().NoError(err)
			ts.Require().NotNil(found)

			ids := make([]int, 0, len(found))
			for _, n := range found {
				ids = append(ids, n.ID)
			}

			ts.Require().Equal(tt.want, ids)
		})
	}
}

func (ts *CollectionTestSuite) TestAdd() {
	ctx := context.Background()

	added, err := ts.store.News.Add(ctx, entity.NewsItem{ID: 1, Slug: "fresh"})
	ts.Require().NoError(err)
	ts.Require().Equal(6, added.ID)

	count, err := ts.store.News.Count(ctx)
	ts.Require().NoError(err)
	ts.Require().Equal(6, count)

	err = ts.store.News.Delete(ctx, 6)
	ts.Require().NoError(err)

	added, err = ts.store.News.Add(ctx, entity.NewsItem{Slug: "after delete"})
	ts.Require().NoError(err)
	ts.Require().Equal(7, added.ID)
}

func (ts *CollectionTestSuite) TestUniqueSlug() {
	ctx := context.Background()

	_, err := ts.store.News.AddUniqueSlug(ctx, entity.NewsItem{Slug: "debate-team-wins"})
	ts.Require().ErrorIs(err, entity.ErrAlreadyExists)

	added, err := ts.store.News.AddUniqueSlug(ctx, entity.NewsItem{Slug: "fresh"})
	ts.Require().NoError(err)
	ts.Require().Equal(6, added.ID)

	_, err = ts.store.News.UpdateUniqueSlug(ctx, added.ID, func(n *entity.NewsItem) { n.Slug = "debate-team-wins" })
	ts.Require().ErrorIs(err, entity.ErrAlreadyExists)

	kept, err := ts.store.News.ByID(ctx, added.ID)
	ts.Require().NoError(err)
	ts.Require().Equal("fresh", kept.Slug)

	updated, err := ts.store.News.UpdateUniqueSlug(ctx, added.ID, func(n *entity.NewsItem) { n.Featured = true })
	ts.Require().NoError(err)
	ts.Require().True(updated.Featured)

	_, err = ts.store.News.UpdateUniqueSlug(ctx, 404, func(*entity.NewsItem) {})
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *CollectionTestSuite) TestUpdateTouchesOnlyTarget() {
	ctx := context.Background()

	before, err := ts.store.Offers.All(ctx)
	ts.Require().NoError(err)

	updated, err := ts.store.Offers.Update(ctx, 2, func(o *entity.Offer) {
		o.ID = 99
		o.Active = false
	})
	ts.Require().NoError(err)
	ts.Require().Equal(2, updated.ID)
	ts.Require().False(updated.Active)

	after, err := ts.store.Offers.All(ctx)
	ts.Require().NoError(err)
	ts.Require().Len(after, len(before))

	for i := range after {
		if after[i].ID == 2 {
			continue
		}

		ts.Require().Equal(before[i], after[i])
	}

	_, err = ts.store.Offers.Update(ctx, 404, func(*entity.Offer) {})
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *CollectionTestSuite) TestDeleteTouchesOnlyTarget() {
	ctx := context.Background()

	before, err := ts.store.FAQs.All(ctx)
	ts.Require().NoError(err)

	ts.Require().NoError(ts.store.FAQs.Delete(ctx, 3))

	after, err := ts.store.FAQs.All(ctx)
	ts.Require().NoError(err)
	ts.Require().Len(after, len(before)-1)

	want := append(append([]entity.FAQ{}, before[:2]...), before[3:]...)
	ts.Require().Equal(want, after)

	ts.Require().ErrorIs(ts.store.FAQs.Delete(ctx, 3), entity.ErrNotFound)
}

func (ts *CollectionTestSuite) TestFilter() {
	ctx := context.Background()

	found, err := ts.store.Faculty.Filter(ctx, func(f entity.FacultyMember) bool { return f.CollegeID == 2 })
	ts.Require().NoError(err)
	ts.Require().Len(found, 2)

	found, err = ts.store.Faculty.Filter(ctx, func(entity.FacultyMember) bool { return false })
	ts.Require().NoError(err)
	ts.Require().NotNil(found)
	ts.Require().Empty(found)
}

func (ts *CollectionTestSuite) TestOffline() {
	ctx := context.Background()

	ts.store.Net.SetOffline(true)

	_, err := ts.store.News.All(ctx)
	ts.Require().ErrorIs(err, entity.ErrNetworkUnavailable)

	_, err = ts.store.News.Search(ctx, "library")
	ts.Require().ErrorIs(err, entity.ErrNetworkUnavailable)

	_, err = ts.store.SiteInfo(ctx)
	ts.Require().ErrorIs(err, entity.ErrNetworkUnavailable)

	ts.store.Net.SetOffline(false)

	_, err = ts.store.News.All(ctx)
	ts.Require().NoError(err)
}

func TestCollection_AddUniqueSlugConcurrent(t *testing.T) {
	t.Parallel()

	news := repository.NewCollection("news", repository.NewNetwork(20*time.Millisecond, false), []entity.NewsItem{})

	const writers = 8

	var wg sync.WaitGroup

	errs := make([]error, writers)

	for i := range writers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, errs[i] = news.AddUniqueSlug(context.Background(), entity.NewsItem{Slug: "dup"})
		}()
	}

	wg.Wait()

	created := 0

	for _, err := range errs {
		if err == nil {
			created++
			continue
		}

		require.ErrorIs(t, err, entity.ErrAlreadyExists)
	}

	require.Equal(t, 1, created)

	all, err := news.Filter(context.Background(), func(n entity.NewsItem) bool { return n.Slug == "dup" })
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestNetwork_RoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("waits for latency", func(t *testing.T) {
		t.Parallel()

		n := repository.NewNetwork(20*time.Millisecond, false)

		start := time.Now()
		require.NoError(t, n.RoundTrip(context.Background()))
		require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		t.Parallel()

		n := repository.NewNetwork(time.Hour, false)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		require.ErrorIs(t, n.RoundTrip(ctx), context.DeadlineExceeded)
	})

	t.Run("offline", func(t *testing.T) {
		t.Parallel()

		n := repository.NewNetwork(0, true)
		require.True(t, n.Offline())
		require.ErrorIs(t, n.RoundTrip(context.Background()), entity.ErrNetworkUnavailable)
	})
}

func TestChatLog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC)
	log := repository.NewChatLog(repository.NewNetwork(0, false))

	require.NoError(t, log.Append(ctx,
		entity.ChatMessage{SessionID: "a", Text: "old", CreatedAt: now.Add(-2 * time.Hour)},
		entity.ChatMessage{SessionID: "b", Text: "other", CreatedAt: now},
		entity.ChatMessage{SessionID: "a", Text: "new", CreatedAt: now},
	))

	msgs, err := log.BySession(ctx, "a")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, "old", msgs[0].Text)

	require.Equal(t, 1, log.TrimBefore(now.Add(-time.Hour)))

	msgs, err = log.BySession(ctx, "a")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, "new", msgs[0].Text)

	count, err := log.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}
