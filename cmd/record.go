package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

func newRecordCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Write app state the way the screens do",
	}

	cmd.AddCommand(
		newRecordActionCmd(app),
		newRecordJournalCmd(app),
		newRecordScreenCmd(app),
		newRecordProfileCmd(app),
	)

	return cmd
}

func newRecordActionCmd(app *app) *cobra.Command {
	var screen, data string

	cmd := &cobra.Command{
		Use:   "action <action>",
		Short: "Append an entry to the action history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := domain.ParseScreen(screen)
			if err != nil {
				return err
			}

			var raw json.RawMessage
			if strings.TrimSpace(data) != "" {
				raw = json.RawMessage(data)
			}

			item, err := app.recorder().RecordAction(cmd.Context(), args[0], s, raw)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "recorded action %s (%s)\n", item.Action, item.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&screen, "screen", "", "Screen the action happened on")
	cmd.Flags().StringVar(&data, "data", "", "JSON payload of the action")
	_ = cmd.MarkFlagRequired("screen")

	return cmd
}

func newRecordJournalCmd(app *app) *cobra.Command {
	var screen, text, image, at string

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Add an entry to a screen's bitácora",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := domain.ParseScreen(screen)
			if err != nil {
				return err
			}

			var when time.Time
			if strings.TrimSpace(at) != "" {
				when, err = parseInstant(at)
				if err != nil {
					return err
				}
			}

			entry, err := app.recorder().AddJournalEntry(cmd.Context(), s, text, image, when)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "recorded journal entry %s on %s\n", entry.ID, entry.Date)
			return err
		},
	}

	cmd.Flags().StringVar(&screen, "screen", "", "Screen owning the journal (Preventive, General, Emergency, Route)")
	cmd.Flags().StringVar(&text, "text", "", "Entry text")
	cmd.Flags().StringVar(&image, "image", "", "Image URI attached to the entry")
	cmd.Flags().StringVar(&at, "at", "", "Entry date (RFC3339 or YYYY-MM-DD), defaults to now")
	_ = cmd.MarkFlagRequired("screen")

	return cmd
}

func newRecordScreenCmd(app *app) *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "screen <screen> [field=value...]",
		Short: "Merge fields into a screen's published state",
		Long:  "Each value is stored as JSON when it parses as JSON and as a string otherwise. --file merges a JSON object read from a file first.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := domain.ParseScreen(args[0])
			if err != nil {
				return err
			}

			fields := map[string]json.RawMessage{}
			if fromFile != "" {
				content, err := os.ReadFile(fromFile)
				if err != nil {
					return fmt.Errorf("read %s: %w", fromFile, err)
				}
				if err := json.Unmarshal(content, &fields); err != nil {
					return fmt.Errorf("decode %s: %w", fromFile, err)
				}
			}

			for _, pair := range args[1:] {
				key, value, err := parseField(pair)
				if err != nil {
					return err
				}
				fields[key] = value
			}
			if len(fields) == 0 {
				return fmt.Errorf("no fields to record for %s", s)
			}

			if err := app.recorder().UpdateScreen(cmd.Context(), s, fields); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "updated %s (%d field(s))\n", s, len(fields))
			return err
		},
	}

	cmd.Flags().StringVar(&fromFile, "file", "", "JSON object with the fields to merge")

	return cmd
}

func parseField(pair string) (string, json.RawMessage, error) {
	key, value, ok := strings.Cut(pair, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", nil, fmt.Errorf("invalid field %q: want key=value", pair)
	}

	if json.Valid([]byte(value)) {
		return key, json.RawMessage(value), nil
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return "", nil, fmt.Errorf("encode field %q: %w", key, err)
	}

	return key, encoded, nil
}

func newRecordProfileCmd(app *app) *cobra.Command {
	var data domain.TabData

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Save the profile form (SOAT, Técnico Mecánica, Pico y Placa)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if data == (domain.TabData{}) {
				return fmt.Errorf("set at least one of --soat, --tecnico, --picoyplaca")
			}
			if err := app.recorder().SaveProfileForm(cmd.Context(), data); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "profile saved")
			return err
		},
	}

	cmd.Flags().StringVar(&data.Soat, "soat", "", "SOAT expiry date")
	cmd.Flags().StringVar(&data.Tecnico, "tecnico", "", "Técnico Mecánica expiry date")
	cmd.Flags().StringVar(&data.PicoYPlaca, "picoyplaca", "", "Pico y Placa day")

	return cmd
}
