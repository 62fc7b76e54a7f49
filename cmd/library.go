package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/abjc/jellyfin"
)

// listFunc fetches one library row for a media type
type listFunc func(ctx context.Context, mediaType jellyfin.MediaType) ([]jellyfin.Item, error)

// newListCommand builds a command that fetches, filters and prints a row
func newListCommand(use, short, title string, fetch func() listFunc) *cobra.Command {
	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			mt, err := parseMediaType()
			if err != nil {
				return err
			}

			items, err := fetch()(cmd.Context(), mt)
			if err != nil {
				return fmt.Errorf("failed to get %s: %w", use, err)
			}

			items, err = applyFilter(cmd.Context(), items)
			if err != nil {
				return err
			}
			return printItems(title, items)
		},
	}
	addListFlags(c)
	return c
}

func addListFlags(c *cobra.Command) {
	c.Flags().StringVarP(&mediaType, "type", "t", "", "media type (movie|series|season|episode)")
	c.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	c.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

var itemsCmd = newListCommand("items", "List the library", "Items",
	func() listFunc { return client.GetItems })

var latestCmd = newListCommand("latest", "List recently added items", "Latest",
	func() listFunc { return client.GetLatest })

var resumeCmd = newListCommand("resume", "List items in progress", "Continue Watching",
	func() listFunc { return client.GetResumable })

var favoritesCmd = newListCommand("favorites", "List favorite items", "Favorites",
	func() listFunc { return client.GetFavorites })

var nextUpCmd = newListCommand("nextup", "List the next episode of each series in progress", "Next Up",
	func() listFunc { return client.GetNextUp })

var similarCmd = &cobra.Command{
	Use:   "similar <item-id>",
	Short: "List items similar to an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := client.GetSimilar(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get similar items: %w", err)
		}
		items, err = applyFilter(cmd.Context(), items)
		if err != nil {
			return err
		}
		return printItems("Similar", items)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search movies and series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info().Str("term", args[0]).Msg("Searching")

		items, err := client.SearchItems(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		items, err = applyFilter(cmd.Context(), items)
		if err != nil {
			return err
		}
		return printItems("Results", items)
	},
}

var peopleCmd = &cobra.Command{
	Use:   "people <term>",
	Short: "Search cast and crew",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		people, err := client.SearchPeople(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if outputFormat == "json" {
			return printJSON(people)
		}
		if len(people) == 0 {
			fmt.Fprintln(stdout, "No people found.")
			return nil
		}
		for _, p := range people {
			fmt.Fprintf(stdout, "• %s %s\n", p.Name, p.ID)
		}
		return nil
	},
}

func init() {
	similarCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	similarCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	searchCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")

	rootCmd.AddCommand(itemsCmd, latestCmd, resumeCmd, favoritesCmd, nextUpCmd, similarCmd, searchCmd, peopleCmd)
}
