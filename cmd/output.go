package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/s0up4200/abjc/filter"
	"github.com/s0up4200/abjc/jellyfin"
)

var stdout io.Writer = os.Stdout

// printJSON writes v as indented JSON
func printJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printItems renders a list of items in the selected output format
func printItems(title string, items []jellyfin.Item) error {
	if outputFormat == "json" {
		return printJSON(items)
	}

	if len(items) == 0 {
		fmt.Fprintf(stdout, "No %s found.\n", strings.ToLower(title))
		return nil
	}

	fmt.Fprintf(stdout, "\n%s (%d):\n", title, len(items))
	fmt.Fprintln(stdout, strings.Repeat("-", 80))
	for _, item := range items {
		fmt.Fprintln(stdout, formatItem(item))
	}
	return nil
}

func formatItem(item jellyfin.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "• %s", item.Name)
	if item.ProductionYear > 0 {
		fmt.Fprintf(&b, " (%d)", item.ProductionYear)
	}
	fmt.Fprintf(&b, " [%s] %s", item.Type, item.ID)
	if item.Played() {
		b.WriteString(" [WATCHED]")
	}
	if item.Favorite() {
		b.WriteString(" ★")
	}
	if len(item.Genres) > 0 {
		fmt.Fprintf(&b, "\n  Genres: %s", strings.Join(item.Genres, ", "))
	}
	return b.String()
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if p, ok := cfg.Filter.Presets[preset]; ok {
			return p.Expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", nil
}

// applyFilter narrows items with --filter or --preset when given
func applyFilter(ctx context.Context, items []jellyfin.Item) ([]jellyfin.Item, error) {
	expression, err := getFilterExpression()
	if err != nil || expression == "" {
		return items, err
	}

	f, err := compiler.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	matched, err := filter.Apply(ctx, f, items)
	if err != nil {
		logger.Warn().Err(err).Str("filter", expression).Msg("Some items could not be evaluated")
	}

	logger.Debug().
		Str("filter", expression).
		Int("before", len(items)).
		Int("after", len(matched)).
		Msg("Applied filter")

	return matched, nil
}
