package seed_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/internal/seed"
	"github.com/samandr77/microservices/portal/pkg/i18n"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	d, err := seed.Load()
	require.NoError(t, err)
	require.NoError(t, d.Validate())

	require.Len(t, d.News, 5)
	require.Len(t, d.Colleges, 3)
	require.Len(t, d.Programs(), 9)
	require.Equal(t, d.Site.Stats.Programs, len(d.Programs()))

	cs, ok := d.Colleges[1].Program("computer-science")
	require.True(t, ok)
	require.Equal(t, entity.DegreeBachelor, cs.Degree)
	require.Equal(t, "38500", cs.TuitionFee.String())

	require.Equal(t, 2026, d.News[0].PublishedAt.Year())
	require.Equal(t, "15", d.Offers[0].DiscountPercent.String())
}

func TestLoadFS_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := seed.LoadFS(fstest.MapFS{})
	require.ErrorContains(t, err, "news.yaml")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	text := i18n.Text{Ar: "نص", En: "text"}

	d := seed.Data{
		News: []entity.NewsItem{
			{ID: 1, Slug: "a", Title: text, Summary: text, Content: text},
			{ID: 1, Slug: "a", Title: i18n.Text{En: "only english"}, Summary: text, Content: text},
		},
		Colleges: []entity.College{{
			ID: 1, Slug: "c", Name: text, Description: text, Dean: text,
			Programs: []entity.Program{{ID: 1, Slug: "p", CollegeID: 1, Name: text, Degree: "unknown"}},
		}},
		Faculty:  []entity.FacultyMember{{ID: 1, CollegeID: 9, Name: text, Title: text, Department: text, Specialization: text}},
		Projects: []entity.Project{{ID: 1, Slug: "x", Title: text, Description: text, CollegeID: 1, Status: "paused"}},
		Users:    []entity.User{{ID: 1, Name: text, Role: "root"}},
	}

	err := d.Validate()
	require.Error(t, err)

	for _, want := range []string{
		"news: duplicate id 1",
		`news: duplicate slug "a"`,
		"news 1: every text needs both languages",
		`programs "p": invalid degree "unknown"`,
		"faculty 1: unknown college 9",
		`projects "x": invalid status "paused"`,
		`users 1: invalid role "root"`,
		"site: mission is required",
	} {
		require.ErrorContains(t, err, want)
	}
}
