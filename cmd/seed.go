package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/portal/internal/seed"
	"github.com/samandr77/microservices/portal/pkg/i18n"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Inspect the bundled content",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate seed records and the message catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := seed.Load()
			if err != nil {
				return fmt.Errorf("load seed data: %w", err)
			}

			var errs []error

			if err := data.Validate(); err != nil {
				errs = append(errs, err)
			}

			for _, key := range i18n.DefaultCatalog().MissingKeys() {
				errs = append(errs, fmt.Errorf("message %s is not translated", key))
			}

			if err := errors.Join(errs...); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"ok: %d news, %d blog posts, %d events, %d colleges, %d programs, %d faculty, %d projects, %d offers, %d faqs, %d users\n",
				len(data.News), len(data.Blog), len(data.Events), len(data.Colleges), len(data.Programs()),
				len(data.Faculty), len(data.Projects), len(data.Offers), len(data.FAQs), len(data.Users))

			return err
		},
	})

	return cmd
}
