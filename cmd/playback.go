package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/abjc/jellyfin"
)

var (
	position  time.Duration
	imageType string
	maxWidth  int
	quality   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Report playback state to the server",
}

var playStartCmd = &cobra.Command{
	Use:   "start <item-id>",
	Short: "Report that playback started",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if err := client.StartPlayback(cmd.Context(), args[0], toTicks(position)); err != nil {
			return fmt.Errorf("failed to report playback start: %w", err)
		}
		fmt.Fprintf(stdout, "✓ Started %s at %s\n", args[0], position)
		return nil
	},
}

var playProgressCmd = &cobra.Command{
	Use:   "progress <item-id>",
	Short: "Report the current playback position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if err := client.ReportPlayback(cmd.Context(), args[0], toTicks(position)); err != nil {
			return fmt.Errorf("failed to report playback progress: %w", err)
		}
		fmt.Fprintf(stdout, "✓ Reported %s at %s\n", args[0], position)
		return nil
	},
}

var playStopCmd = &cobra.Command{
	Use:   "stop <item-id>",
	Short: "Report that playback stopped and end active transcodes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		result := client.StopPlayback(cmd.Context(), args[0], toTicks(position))
		printOutcome("Stop report", result.Session)
		printOutcome("Transcode teardown", result.Encoding)

		if err := result.Err(); err != nil {
			return fmt.Errorf("failed to stop playback: %w", err)
		}
		return nil
	},
}

func printOutcome(label string, err error) {
	if err != nil {
		fmt.Fprintf(stdout, "✗ %s: %v\n", label, err)
		return
	}
	fmt.Fprintf(stdout, "✓ %s\n", label)
}

// toTicks converts a duration to server ticks (100ns units)
func toTicks(d time.Duration) int64 {
	return d.Nanoseconds() / (int64(time.Second) / jellyfin.TicksPerSecond)
}

var streamURLCmd = &cobra.Command{
	Use:   "stream-url <item-id> <media-source-id>",
	Short: "Print the HLS stream URL for a media source",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		u, err := client.StreamURL(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, u.String())
		return nil
	},
}

var imageURLCmd = &cobra.Command{
	Use:   "image-url <item-id>",
	Short: "Print the URL of an item image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		it, err := jellyfin.ParseImageType(imageType)
		if err != nil {
			return err
		}
		u, err := client.ImageURL(args[0], it, maxWidth, quality)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, u.String())
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{playStartCmd, playProgressCmd, playStopCmd} {
		c.Flags().DurationVar(&position, "position", 0, "playback position (e.g. 42m10s)")
		playCmd.AddCommand(c)
	}

	imageURLCmd.Flags().StringVar(&imageType, "image-type", string(jellyfin.ImageTypePrimary), "image type (Primary, Backdrop, Logo, Thumb...)")
	imageURLCmd.Flags().IntVar(&maxWidth, "max-width", jellyfin.DefaultImageMaxWidth, "maximum image width")
	imageURLCmd.Flags().IntVar(&quality, "quality", jellyfin.DefaultImageQuality, "JPEG quality")

	rootCmd.AddCommand(playCmd, streamURLCmd, imageURLCmd)
}
