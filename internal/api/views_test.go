package api

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/internal/seed"
	"github.com/samandr77/microservices/portal/pkg/i18n"
)

func TestViews_EveryFieldFollowsLocale(t *testing.T) {
	t.Parallel()

	data, err := seed.Load()
	require.NoError(t, err)

	catalog := i18n.DefaultCatalog()

	for _, tt := range []struct {
		locale i18n.Locale
		half   func(i18n.Text) string
	}{
		{locale: i18n.Arabic, half: func(x i18n.Text) string { return x.Ar }},
		{locale: i18n.English, half: func(x i18n.Text) string { return x.En }},
	} {
		t.Run(tt.locale.String(), func(t *testing.T) {
			t.Parallel()

			l, half := tt.locale, tt.half

			for _, n := range data.News {
				want := NewsView{
					ID:          n.ID,
					Slug:        n.Slug,
					Title:       half(n.Title),
					Summary:     half(n.Summary),
					Content:     half(n.Content),
					Category:    n.Category,
					Image:       n.Image,
					PublishedAt: n.PublishedAt,
					PublishedOn: i18n.FormatDate(l, n.PublishedAt),
					Featured:    n.Featured,
				}
				require.Empty(t, cmp.Diff(want, newsView(l, n, true)), n.Slug)
			}

			for _, b := range data.Blog {
				want := BlogPostView{
					ID:          b.ID,
					Slug:        b.Slug,
					Title:       half(b.Title),
					Excerpt:     half(b.Excerpt),
					Content:     half(b.Content),
					Author:      half(b.Author),
					Tags:        b.Tags,
					Image:       b.Image,
					PublishedAt: b.PublishedAt,
					PublishedOn: i18n.FormatDate(l, b.PublishedAt),
					ReadMinutes: b.ReadMinutes,
				}
				require.Empty(t, cmp.Diff(want, blogPostView(l, b, true)), b.Slug)
			}

			for _, e := range data.Events {
				want := EventView{
					ID:              e.ID,
					Slug:            e.Slug,
					Title:           half(e.Title),
					Description:     half(e.Description),
					Location:        half(e.Location),
					Category:        e.Category,
					StartsAt:        e.StartsAt,
					EndsAt:          e.EndsAt,
					Date:            i18n.FormatDate(l, e.StartsAt),
					RegistrationURL: e.RegistrationURL,
				}
				require.Empty(t, cmp.Diff(want, eventView(l, e)), e.Slug)
			}

			for _, c := range data.Colleges {
				programs := make([]ProgramView, 0, len(c.Programs))
				for _, p := range c.Programs {
					programs = append(programs, ProgramView{
						ID:            p.ID,
						Slug:          p.Slug,
						CollegeID:     p.CollegeID,
						Name:          half(p.Name),
						Description:   half(p.Description),
						Degree:        p.Degree,
						DegreeLabel:   catalog.Message(l, "degree."+string(p.Degree)),
						DurationYears: p.DurationYears,
						Credits:       p.Credits,
						TuitionFee:    p.TuitionFee,
						Currency:      entity.CurrencySAR,
						TuitionLabel:  catalog.FormatAmount(l, p.TuitionFee, entity.CurrencySAR),
					})
				}

				want := CollegeView{
					ID:          c.ID,
					Slug:        c.Slug,
					Name:        half(c.Name),
					Description: half(c.Description),
					Dean:        half(c.Dean),
					Image:       c.Image,
					Programs:    programs,
				}
				require.Empty(t, cmp.Diff(want, collegeView(l, catalog, c)), c.Slug)
			}

			for _, f := range data.Faculty {
				want := FacultyView{
					ID:             f.ID,
					CollegeID:      f.CollegeID,
					Name:           half(f.Name),
					Title:          half(f.Title),
					Department:     half(f.Department),
					Specialization: half(f.Specialization),
					Email:          f.Email,
					Image:          f.Image,
				}
				require.Empty(t, cmp.Diff(want, facultyView(l, f)), f.Email)
			}

			for _, p := range data.Projects {
				want := ProjectView{
					ID:          p.ID,
					Slug:        p.Slug,
					Title:       half(p.Title),
					Description: half(p.Description),
					CollegeID:   p.CollegeID,
					Status:      p.Status,
					Image:       p.Image,
				}
				require.Empty(t, cmp.Diff(want, projectView(l, p)), p.Slug)
			}

			for _, o := range data.Offers {
				want := OfferView{
					ID:              o.ID,
					Title:           half(o.Title),
					Description:     half(o.Description),
					DiscountPercent: o.DiscountPercent,
					ValidUntil:      o.ValidUntil,
					ValidUntilOn:    i18n.FormatDate(l, o.ValidUntil),
				}
				require.Empty(t, cmp.Diff(want, offerView(l, o)), half(o.Title))
			}

			for _, f := range data.FAQs {
				want := FAQView{
					ID:       f.ID,
					Question: half(f.Question),
					Answer:   half(f.Answer),
					Category: f.Category,
				}
				require.Empty(t, cmp.Diff(want, faqView(l, f)), half(f.Question))
			}
		})
	}
}

func TestViews_SummaryOmitsContent(t *testing.T) {
	t.Parallel()

	data, err := seed.Load()
	require.NoError(t, err)
	require.NotEmpty(t, data.News)
	require.NotEmpty(t, data.Blog)

	require.Empty(t, newsView(i18n.Arabic, data.News[0], false).Content)
	require.Empty(t, blogPostView(i18n.English, data.Blog[0], false).Content)
}
