package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voicecal/voicecal/internal/google"
)

func newAuthCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize voicecal to access your Google Calendar",
		Long: `Runs the Google OAuth authorization flow. Open the printed URL in a
browser, grant calendar access, and paste the authorization code back here.
The token is stored in the user cache directory and refreshed automatically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Visit this URL to authorize calendar access:\n\n  %s\n\n", google.GetAuthURLForAccount(account))
			fmt.Print("Enter the authorization code: ")

			reader := bufio.NewReader(os.Stdin)
			code, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}
			code = strings.TrimSpace(code)
			if code == "" {
				return fmt.Errorf("no authorization code provided")
			}

			if err := google.SaveTokenForAccount(cmd.Context(), account, code); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			fmt.Println("Authorization complete. Token saved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use (default: 'default')")
	return cmd
}
