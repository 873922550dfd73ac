package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bnema/vehicle-assistant-cli/internal/adapters/telegram"
	"github.com/bnema/vehicle-assistant-cli/internal/application"
	"github.com/bnema/vehicle-assistant-cli/internal/catalog"
	"github.com/bnema/vehicle-assistant-cli/internal/ports"
)

func newTelegramCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "telegram",
		Short: "Serve the assistant through a Telegram bot until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			assistant := app.assistant(cmd.Context(), ports.SystemClock{})

			var bot *telegram.Bot
			connect := loadStep{label: "conexión con Telegram", run: func(context.Context) error {
				var err error
				bot, err = newTelegramBot(app, assistant)
				return err
			}}
			if err := runLoadSteps(cmd.Context(), cmd.ErrOrStderr(), "Iniciando", connect); err != nil {
				return err
			}

			app.logger.Info("telegram bot started")
			return bot.Run(cmd.Context())
		},
	}
}

func newTelegramBot(app *app, answerer telegram.Answerer) (*telegram.Bot, error) {
	return telegram.New(telegram.Config{
		Token:        app.cfg.Telegram.Token,
		AllowedChats: app.cfg.Telegram.AllowedChats,
		Welcome:      application.WelcomeMessage,
		Suggestions:  catalog.FrequentQuestions(),
	}, answerer, app.logger.Named("telegram"))
}
