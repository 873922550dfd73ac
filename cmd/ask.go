package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/vehicle-assistant-cli/internal/calendar"
	"github.com/bnema/vehicle-assistant-cli/internal/domain"
	"github.com/bnema/vehicle-assistant-cli/internal/ports"
)

func newAskCmd(app *app) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "ask <mensaje>",
		Short: "Ask the assistant one question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.TrimSpace(strings.Join(args, " "))
			if message == "" {
				return domain.ErrEmptyMessage
			}

			clock, err := clockAt(at)
			if err != nil {
				return err
			}

			answer := app.assistant(cmd.Context(), clock).Answer(cmd.Context(), message)
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), answer); err != nil {
				return err
			}

			if n := app.narrator(); n != nil {
				n.Say(answer)
				n.Wait()
				n.Close()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Answer as of this instant (RFC3339 or YYYY-MM-DD)")

	return cmd
}

// clockAt returns the system clock for an empty value and a fixed clock otherwise.
func clockAt(raw string) (ports.Clock, error) {
	if strings.TrimSpace(raw) == "" {
		return ports.SystemClock{}, nil
	}

	at, err := parseInstant(raw)
	if err != nil {
		return nil, err
	}

	return ports.FixedClock{At: at}, nil
}

func parseInstant(raw string) (time.Time, error) {
	at, ok := calendar.ToDate(strings.TrimSpace(raw), time.Local)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid instant %q: use RFC3339 or YYYY-MM-DD", raw)
	}

	return at, nil
}
