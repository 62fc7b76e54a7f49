package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/s0up4200/abjc/config"
)

const repoSlug = "s0up4200/abjc"

var (
	appVersion = "dev"
	appBuilt   = "unknown"
	checkOnly  bool
)

// SetVersion records the build information injected at link time
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuilt = buildTime
	rootCmd.Version = version
}

// noInit skips config loading for commands that work without a server
func noInit(cmd *cobra.Command, args []string) error {
	logger = setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true})
	return nil
}

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	Args:              cobra.NoArgs,
	PersistentPreRunE: noInit,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(stdout, "abjc %s (built %s, %s/%s, %s)\n",
			appVersion, appBuilt, runtime.GOOS, runtime.GOARCH, runtime.Version())
	},
}

var selfUpdateCmd = &cobra.Command{
	Use:               "self-update",
	Short:             "Update abjc to the latest release",
	Args:              cobra.NoArgs,
	PersistentPreRunE: noInit,
	RunE:              runSelfUpdate,
}

func init() {
	selfUpdateCmd.Flags().BoolVar(&checkOnly, "check", false, "only check for a newer release")
	rootCmd.AddCommand(versionCmd, selfUpdateCmd)
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	current, err := semver.ParseTolerant(appVersion)
	if err != nil {
		return fmt.Errorf("cannot update a development build (version %q)", appVersion)
	}

	ctx := cmd.Context()
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Fprintf(stdout, "✓ abjc %s is up to date\n", current)
		return nil
	}

	if checkOnly {
		fmt.Fprintf(stdout, "A new release is available: %s (current %s)\n", latest.Version(), current)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	logger.Info().Str("from", current.String()).Str("to", latest.Version()).Msg("Updating")
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Fprintf(stdout, "✓ Updated to %s\n", latest.Version())
	return nil
}
