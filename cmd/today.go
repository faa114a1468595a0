package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/voicecal/voicecal/internal/assistant"
	"github.com/voicecal/voicecal/internal/calendar"
	"github.com/voicecal/voicecal/internal/intent"
)

func newTodayCmd() *cobra.Command {
	var (
		account    string
		calendarID string
		timezone   string
	)

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print today's agenda as the assistant would speak it",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := time.LoadLocation(timezone)
			if err != nil {
				return fmt.Errorf("invalid timezone %q: %w", timezone, err)
			}

			ctx := cmd.Context()
			client, err := calendar.NewClientForAccount(ctx, account)
			if err != nil {
				return fmt.Errorf("failed to create Calendar client for account %s: %w", account, err)
			}

			a := assistant.New(assistant.Config{
				CalendarID:    calendarID,
				Timezone:      loc,
				TimezoneLabel: timezone,
			}, client, intent.NewParser(), nil, nil)

			outcome := a.Today(ctx)
			if outcome.Err != nil {
				return outcome.Err
			}

			fmt.Println(outcome.Spoken)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use (default: 'default')")
	cmd.Flags().StringVar(&calendarID, "calendar", "primary", "Calendar ID to query")
	cmd.Flags().StringVar(&timezone, "timezone", "America/New_York", "Display timezone (IANA name)")
	return cmd
}
