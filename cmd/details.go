package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/abjc/jellyfin"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show server information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(stdout, "Connecting to %s...\n", client.BaseURL())

		info, err := client.GetSystemInfo(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get server info: %w", err)
		}
		if outputFormat == "json" {
			return printJSON(info)
		}

		fmt.Fprintln(stdout, "✓ Connection successful!")
		fmt.Fprintf(stdout, "\nServer: %s\n", info.ServerName)
		fmt.Fprintf(stdout, "- Product: %s %s\n", info.ProductName, info.Version)
		fmt.Fprintf(stdout, "- OS: %s\n", info.OperatingSystem)
		fmt.Fprintf(stdout, "- ID: %s\n", info.ID)
		if info.HasUpdateAvailable {
			fmt.Fprintln(stdout, "- Update available")
		}
		if u := client.CurrentUser(); u != nil {
			fmt.Fprintf(stdout, "\nLogged in as %s (%s)\n", u.Name, u.ID)
		}
		return nil
	},
}

var movieCmd = &cobra.Command{
	Use:   "movie <item-id>",
	Short: "Show a movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		movie, err := client.GetMovie(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get movie: %w", err)
		}
		if outputFormat == "json" {
			return printJSON(movie)
		}

		fmt.Fprintln(stdout, formatItem(movie.Item))
		if movie.RunTimeTicks > 0 {
			fmt.Fprintf(stdout, "  Runtime: %d min\n", movie.RuntimeMinutes())
		}
		printPeople(movie.People)
		printSources(movie.MediaSources)
		return nil
	},
}

var seriesCmd = &cobra.Command{
	Use:   "series <item-id>",
	Short: "Show a series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		series, err := client.GetSeries(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get series: %w", err)
		}
		if outputFormat == "json" {
			return printJSON(series)
		}

		fmt.Fprintln(stdout, formatItem(series.Item))
		if series.Status != "" {
			fmt.Fprintf(stdout, "  Status: %s\n", series.Status)
		}
		if series.Overview != "" {
			fmt.Fprintf(stdout, "  %s\n", series.Overview)
		}
		printPeople(series.People)
		return nil
	},
}

var seasonsCmd = &cobra.Command{
	Use:   "seasons <series-id>",
	Short: "List the seasons of a series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seasons, err := client.GetSeasons(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get seasons: %w", err)
		}
		if outputFormat == "json" {
			return printJSON(seasons)
		}
		for _, s := range seasons {
			fmt.Fprintf(stdout, "• %s %s\n", s.Name, s.ID)
		}
		return nil
	},
}

var episodesCmd = &cobra.Command{
	Use:   "episodes <series-id>",
	Short: "List the episodes of a series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		episodes, err := client.GetEpisodes(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get episodes: %w", err)
		}
		if outputFormat == "json" {
			return printJSON(episodes)
		}
		for _, e := range episodes {
			watched := ""
			if e.Played() {
				watched = " [WATCHED]"
			}
			fmt.Fprintf(stdout, "S%02dE%02d %s %s%s\n", e.ParentIndexNumber, e.IndexNumber, e.Name, e.ID, watched)
		}
		return nil
	},
}

var imagesCmd = &cobra.Command{
	Use:   "images <item-id>",
	Short: "List the images of an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		images, err := client.GetImages(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get images: %w", err)
		}
		if outputFormat == "json" {
			return printJSON(images)
		}
		for _, img := range images {
			fmt.Fprintf(stdout, "• %-10s %dx%d %s\n", img.ImageType, img.Width, img.Height, img.ImageTag)
		}
		return nil
	},
}

func printPeople(people []jellyfin.Person) {
	if len(people) == 0 {
		return
	}
	names := make([]string, 0, len(people))
	for _, p := range people {
		if p.Role != "" {
			names = append(names, fmt.Sprintf("%s as %s", p.Name, p.Role))
		} else {
			names = append(names, p.Name)
		}
	}
	fmt.Fprintf(stdout, "  People: %s\n", strings.Join(names, ", "))
}

func printSources(sources []jellyfin.MediaSource) {
	for _, src := range sources {
		fmt.Fprintf(stdout, "  Source %s: %s (%d streams)\n", src.ID, src.Container, len(src.MediaStreams))
	}
}

func init() {
	rootCmd.AddCommand(infoCmd, movieCmd, seriesCmd, seasonsCmd, episodesCmd, imagesCmd)
}
