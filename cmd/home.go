package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/abjc/jellyfin"
)

type homeRow struct {
	Title string          `json:"title"`
	Items []jellyfin.Item `json:"items"`
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show continue watching, next up and latest rows",
	Args:  cobra.NoArgs,
	RunE:  runHome,
}

func init() {
	addListFlags(homeCmd)
	rootCmd.AddCommand(homeCmd)
}

func runHome(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	mt, err := parseMediaType()
	if err != nil {
		return err
	}

	rows := []homeRow{
		{Title: "Continue Watching"},
		{Title: "Next Up"},
		{Title: "Latest"},
	}
	fetchers := []listFunc{client.GetResumable, client.GetNextUp, client.GetLatest}

	g, ctx := errgroup.WithContext(cmd.Context())
	for i, fetch := range fetchers {
		g.Go(func() error {
			items, err := fetch(ctx, mt)
			if err != nil {
				return fmt.Errorf("failed to get %s: %w", rows[i].Title, err)
			}
			rows[i].Items = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range rows {
		if rows[i].Items, err = applyFilter(cmd.Context(), rows[i].Items); err != nil {
			return err
		}
	}

	if outputFormat == "json" {
		return printJSON(rows)
	}
	for _, row := range rows {
		if err := printItems(row.Title, row.Items); err != nil {
			return err
		}
	}
	return nil
}
