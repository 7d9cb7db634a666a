package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/internal/repository"
	"github.com/samandr77/microservices/portal/internal/seed"
	"github.com/samandr77/microservices/portal/internal/service"
	"github.com/samandr77/microservices/portal/pkg/broker"
	"github.com/samandr77/microservices/portal/pkg/i18n"
)

func newSearchCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the seed content the way the site search does",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, ok := i18n.Parse(lang)
			if !ok {
				return fmt.Errorf("unsupported language %q", lang)
			}

			return runSearch(cmd.Context(), cmd.OutOrStdout(), l, args[0])
		},
	}

	cmd.Flags().StringVar(&lang, "lang", string(i18n.Arabic), "result language, ar or en")

	return cmd
}

func runSearch(ctx context.Context, w io.Writer, l i18n.Locale, query string) error {
	data, err := seed.Load()
	if err != nil {
		return fmt.Errorf("load seed data: %w", err)
	}

	catalog := i18n.DefaultCatalog()
	store := repository.NewStore(repository.NewNetwork(0, false), data)
	s := service.New(store, catalog, broker.NewLogPublisher(slog.Default()), nil, service.Config{})

	res, err := s.Search(entity.CtxWithLocale(ctx, l), query)
	if err != nil {
		return err
	}

	if _, ok := repository.NormalizeQuery(query); !ok {
		_, err = fmt.Fprintln(w, catalog.Message(l, "search.too_short"))
		return err
	}

	if res.Total() == 0 {
		_, err = fmt.Fprintln(w, catalog.Message(l, "search.no_results"))
		return err
	}

	lines := make([]string, 0, res.Total())

	for _, n := range res.News {
		lines = append(lines, fmt.Sprintf("news\t%s\t%s", n.Slug, n.Title.In(l)))
	}

	for _, b := range res.Blog {
		lines = append(lines, fmt.Sprintf("blog\t%s\t%s", b.Slug, b.Title.In(l)))
	}

	for _, e := range res.Events {
		lines = append(lines, fmt.Sprintf("event\t%s\t%s", e.Slug, e.Title.In(l)))
	}

	for _, f := range res.Faculty {
		lines = append(lines, fmt.Sprintf("faculty\t%d\t%s", f.ID, f.Name.In(l)))
	}

	for _, p := range res.Programs {
		lines = append(lines, fmt.Sprintf("program\t%s\t%s", p.Slug, p.Name.In(l)))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
