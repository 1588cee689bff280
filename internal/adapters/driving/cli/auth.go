package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// tokenKeys maps each supported provider to its config key.
var tokenKeys = map[string]string{
	"github": "github.token",
	"notion": "notion.token",
	"drive":  "drive.token",
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage source credentials",
	Long: `Store and inspect the access tokens used to reach workspace sources.

Tokens are kept in the worklens config file with restricted permissions.

Examples:
  # Prompt for a GitHub personal access token
  worklens auth set github

  # Provide the token non-interactively
  worklens auth set notion --token secret_xxx

  # Show which providers have credentials
  worklens auth status`,
}

var authSetCmd = &cobra.Command{
	Use:   "set [provider]",
	Short: "Store an access token for a provider",
	Long: `Stores an access token for github, notion or drive.

Without --token the token is read from the terminal without echo.`,
	Args: cobra.ExactArgs(1),
	RunE: runAuthSet,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which providers have credentials",
	RunE:  runAuthStatus,
}

var authClearCmd = &cobra.Command{
	Use:   "clear [provider]",
	Short: "Remove the stored token for a provider",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuthClear,
}

var authSetToken string

func init() {
	authSetCmd.Flags().StringVar(
		&authSetToken, "token", "", "token value (prompts without echo if omitted)")

	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authClearCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	provider := strings.ToLower(args[0])
	key, ok := tokenKeys[provider]
	if !ok {
		return fmt.Errorf("unknown provider: %s (expected github, notion or drive)", provider)
	}

	token := authSetToken
	if token == "" {
		cmd.Printf("Enter %s token: ", provider)
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		cmd.Println()
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		token = strings.TrimSpace(string(raw))
	}
	if token == "" {
		return errors.New("token must not be empty")
	}

	if err := configStore.Set(key, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	cmd.Printf("Stored %s token.\n", provider)
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Credentials:")
	for _, provider := range []string{"github", "notion", "drive"} {
		state := "not configured"
		if configStore.GetString(tokenKeys[provider]) != "" {
			state = "configured"
		}
		cmd.Printf("  %-8s %s\n", provider, state)
	}
	return nil
}

func runAuthClear(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	provider := strings.ToLower(args[0])
	key, ok := tokenKeys[provider]
	if !ok {
		return fmt.Errorf("unknown provider: %s (expected github, notion or drive)", provider)
	}

	if err := configStore.Set(key, ""); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}

	cmd.Printf("Cleared %s token.\n", provider)
	return nil
}
