package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/s0up4200/abjc/config"
)

var (
	username    string
	password    string
	saveSession bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the server",
	Long: `Authenticate with a username and password. On success the session is
saved to the config file so later commands run as this user.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&username, "username", "u", "", "username")
	loginCmd.Flags().StringVar(&password, "password", "", "password (read from stdin when omitted)")
	loginCmd.Flags().BoolVar(&saveSession, "save", true, "save the session to the config file")

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	scanner := bufio.NewScanner(os.Stdin)

	if username == "" {
		fmt.Fprint(stdout, "Username: ")
		if !scanner.Scan() {
			return fmt.Errorf("failed to read username: %w", scanner.Err())
		}
		username = strings.TrimSpace(scanner.Text())
	}

	if !cmd.Flags().Changed("password") {
		fmt.Fprint(stdout, "Password: ")
		var err error
		if password, err = readPassword(os.Stdin.Fd(), scanner); err != nil {
			return err
		}
	}

	resp, err := client.Authorize(cmd.Context(), username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Fprintf(stdout, "✓ Logged in as %s on %s\n", resp.User.Name, client.BaseURL())

	if !saveSession {
		return nil
	}

	user := client.CurrentUser()
	err = config.SaveSession(cfg.Path, config.SessionConfig{
		UserID:   user.ID,
		UserName: user.Name,
		ServerID: user.ServerID,
		Token:    user.Token,
	}, user.DeviceID)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	logger.Info().Str("path", cfg.Path).Msg("Saved session")
	return nil
}

var (
	isTerminal           = isatty.IsTerminal
	readTerminalPassword = term.ReadPassword
)

// readPassword reads without echo when fd is a terminal and falls back to a
// plain line from scanner for piped input
func readPassword(fd uintptr, scanner *bufio.Scanner) (string, error) {
	if isTerminal(fd) {
		b, err := readTerminalPassword(int(fd))
		fmt.Fprintln(stdout)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(b), nil
	}

	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return "", nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client.Logout()
		if err := config.SaveSession(cfg.Path, config.SessionConfig{}, ""); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		fmt.Fprintln(stdout, "✓ Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user := client.CurrentUser()
		if user == nil {
			fmt.Fprintln(stdout, "Not logged in")
			return nil
		}
		if outputFormat == "json" {
			u := *user
			u.Token = ""
			return printJSON(u)
		}
		fmt.Fprintf(stdout, "User: %s (%s)\n", user.Name, user.ID)
		fmt.Fprintf(stdout, "Server: %s (%s)\n", client.BaseURL(), user.ServerID)
		fmt.Fprintf(stdout, "Device: %s\n", user.DeviceID)
		return nil
	},
}
