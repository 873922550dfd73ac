package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	statusadapter "github.com/bnema/vehicle-assistant-cli/internal/adapters/render/status"
	"github.com/bnema/vehicle-assistant-cli/internal/application"
	"github.com/bnema/vehicle-assistant-cli/internal/domain"
	"github.com/bnema/vehicle-assistant-cli/internal/ports"
)

type statusOutput struct {
	Snapshot domain.ScreenStateSnapshot `json:"snapshot"`
	Digests  []application.Digest       `json:"digests"`
}

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool
	var staleAfter time.Duration
	var screenNames []string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show a summary of every screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			screens := make([]domain.Screen, 0, len(screenNames))
			for _, name := range screenNames {
				screen, err := domain.ParseScreen(name)
				if err != nil {
					return err
				}
				screens = append(screens, screen)
			}

			assistant := app.newAssistant(ports.SystemClock{})
			refresh := assistant.Refresh
			if !asJSON {
				refresh = func(ctx context.Context) error {
					return runLoadSteps(ctx, cmd.ErrOrStderr(), "Cargando", loadStep{label: "estado de pantallas", run: assistant.Refresh})
				}
			}
			if err := refresh(cmd.Context()); err != nil {
				return fmt.Errorf("load app state: %w", err)
			}

			digests := assistant.Digests()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(statusOutput{Snapshot: assistant.Snapshot(), Digests: digests})
			}

			rendered, err := app.statusRenderer(digests, statusadapter.RenderOptions{
				Now:        app.now(),
				StaleAfter: staleAfter,
				Screens:    screens,
			})
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the snapshot and digests as JSON")
	cmd.Flags().StringSliceVar(&screenNames, "screen", nil, "Only show these screens (repeatable)")
	cmd.Flags().DurationVar(&staleAfter, "stale-after", defaultStaleAfter, "Flag screens not updated within this duration")

	return cmd
}
