package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/abjc/artwork"
	"github.com/s0up4200/abjc/config"
	"github.com/s0up4200/abjc/filter"
	"github.com/s0up4200/abjc/jellyfin"
	"github.com/s0up4200/abjc/metrics"
)

var (
	cfgFile  string
	cfg      *config.Config
	logger   zerolog.Logger
	client   *jellyfin.Client
	compiler filter.CachingCompiler

	// Command flags
	outputFormat string
	mediaType    string
	filterExpr   string
	preset       string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "abjc",
	Short: "A command-line client for Jellyfin and Emby servers",
	Long: `abjc talks to a Jellyfin or Emby server: log in, browse and search the
library, report playback, build stream and image URLs, and look up
supplemental artwork for a title.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if werr := writeMetrics(os.Stderr); werr != nil {
		logger.Warn().Err(werr).Msg("Failed to write metrics")
	}
	if err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// writeMetrics prints the request metrics collected during the command
// when metrics.enabled is set
func writeMetrics(w io.Writer) error {
	if cfg == nil || !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.WriteText(w, prometheus.DefaultGatherer)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format (text|json)")
}

// loadConfig loads the configuration and sets up logging
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("invalid output format: %s (must be 'text' or 'json')", outputFormat)
	}
	return nil
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd, args); err != nil {
		return err
	}
	if err := cfg.RequireServer(); err != nil {
		return err
	}

	var err error
	client, err = newClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create Jellyfin client: %w", err)
	}

	compiler = filter.NewExprCompiler(filter.WithCache(cfg.Filter.CacheSize))

	return nil
}

// newClient builds a server client from configuration, restoring a saved session
func newClient(cfg *config.Config, logger zerolog.Logger) (*jellyfin.Client, error) {
	opts := []jellyfin.Option{
		jellyfin.WithClientInfo(cfg.Server.ClientName, cfg.Server.DeviceName, cfg.Server.ClientVersion),
		jellyfin.WithTimeout(cfg.Server.ParsedTimeout()),
		jellyfin.WithMetrics(cfg.Metrics.Enabled),
	}

	if s := cfg.Session; s.Token != "" {
		opts = append(opts, jellyfin.WithUser(&jellyfin.AuthUser{
			ID:       s.UserID,
			Name:     s.UserName,
			ServerID: s.ServerID,
			DeviceID: cfg.Server.DeviceID,
			Token:    s.Token,
		}))
	}

	return jellyfin.NewClient(jellyfin.Config{
		Host:     cfg.Server.Host,
		Port:     cfg.Server.Port,
		HTTPS:    cfg.Server.HTTPS,
		DeviceID: cfg.Server.DeviceID,
	}, logger, opts...)
}

// newResolver builds the artwork resolver from configuration
func newResolver(cfg *config.Config, logger zerolog.Logger) (*artwork.Resolver, error) {
	return artwork.NewResolver(logger,
		artwork.WithBaseURL(cfg.Artwork.BaseURL),
		artwork.WithStorefront(cfg.Artwork.Storefront),
		artwork.WithLocale(cfg.Artwork.Locale),
		artwork.WithToken(cfg.Artwork.Token),
		artwork.WithMetrics(cfg.Metrics.Enabled),
	)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Colour only when stderr is a terminal
	noColor := !cfg.Color || !(isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// requireSession fails early for commands that need a logged-in user
func requireSession() error {
	if client.CurrentUser() == nil {
		return fmt.Errorf("not logged in: run 'abjc login' first")
	}
	return nil
}

// parseMediaType parses the --type flag
func parseMediaType() (jellyfin.MediaType, error) {
	return jellyfin.ParseMediaType(mediaType)
}
