package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	artworkLocale string
	artworkWidth  int
	artworkHeight int
)

var artworkCmd = &cobra.Command{
	Use:   "artwork <title>",
	Short: "Look up cover art and logo for a title",
	Long: `Search the external artwork catalog for a title and print the cover and
logo URLs of the first match.`,
	Args:              cobra.MinimumNArgs(1),
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to create artwork resolver: %w", err)
		}

		title := strings.Join(args, " ")
		obj, err := resolver.Fetch(cmd.Context(), title, artworkLocale)
		if err != nil {
			return fmt.Errorf("failed to fetch artwork: %w", err)
		}

		cover := obj.Cover.URL(artworkWidth, artworkHeight).String()
		var logo string
		if obj.Logo != nil {
			logo = obj.Logo.URL(artworkWidth, artworkHeight).String()
		}

		if outputFormat == "json" {
			return printJSON(struct {
				Title string `json:"title"`
				Type  string `json:"type"`
				Cover string `json:"cover"`
				Logo  string `json:"logo,omitempty"`
			}{title, obj.Type.String(), cover, logo})
		}

		fmt.Fprintf(stdout, "%s [%s]\n", title, obj.Type)
		fmt.Fprintf(stdout, "  Cover: %s\n", cover)
		if logo != "" {
			fmt.Fprintf(stdout, "  Logo:  %s\n", logo)
		}
		return nil
	},
}

func init() {
	artworkCmd.Flags().StringVar(&artworkLocale, "locale", "", "catalog locale (defaults to artwork.locale)")
	artworkCmd.Flags().IntVar(&artworkWidth, "width", 1920, "image width")
	artworkCmd.Flags().IntVar(&artworkHeight, "height", 1080, "image height")

	rootCmd.AddCommand(artworkCmd)
}
