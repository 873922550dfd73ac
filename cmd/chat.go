package cmd

import (
	"github.com/spf13/cobra"

	chatadapter "github.com/bnema/vehicle-assistant-cli/internal/adapters/render/chat"
	"github.com/bnema/vehicle-assistant-cli/internal/application"
	"github.com/bnema/vehicle-assistant-cli/internal/catalog"
	"github.com/bnema/vehicle-assistant-cli/internal/ports"
)

func newChatCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Open an interactive conversation with the assistant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := chatadapter.Options{
				Answerer:    app.assistant(cmd.Context(), ports.SystemClock{}),
				Welcome:     application.WelcomeMessage,
				Suggestions: catalog.FrequentQuestions(),
				Now:         app.now,
				Input:       cmd.InOrStdin(),
				Output:      cmd.OutOrStdout(),
			}
			if n := app.narrator(); n != nil {
				defer n.Close()
				opts.Sayer = n
			}

			return chatadapter.Run(cmd.Context(), opts)
		},
	}
}
