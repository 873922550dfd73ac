package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/vehicle-assistant-cli/internal/ports"
	"github.com/bnema/vehicle-assistant-cli/internal/reminder"
)

func newRemindCmd(app *app) *cobra.Command {
	var once bool
	var schedule string

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Deliver the daily briefing now or on a cron schedule",
		Long:  "The briefing lists overdue preventive tasks, SOAT and Técnico Mecánica expiry and today's agenda. It is printed, spoken when speech is enabled and sent to remind.chats when a Telegram token is configured.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			assistant := app.assistant(cmd.Context(), ports.SystemClock{})
			sinks := []reminder.Sink{reminder.WriterSink(cmd.OutOrStdout())}

			if n := app.narrator(); n != nil {
				defer n.Close()
				sinks = append(sinks, reminder.SinkFunc(func(_ context.Context, text string) error {
					n.Say(text)
					if once {
						n.Wait()
					}
					return nil
				}))
			}

			if app.cfg.Telegram.Token != "" && len(app.cfg.Remind.Chats) > 0 {
				bot, err := newTelegramBot(app, assistant)
				if err != nil {
					return err
				}
				chats := app.cfg.Remind.Chats
				sinks = append(sinks, reminder.SinkFunc(func(ctx context.Context, text string) error {
					return bot.Deliver(ctx, chats, text)
				}))
			}

			if schedule == "" {
				schedule = app.cfg.Remind.Schedule
			}
			scheduler, err := reminder.New(schedule, time.Local, assistant, app.logger.Named("reminder"), sinks...)
			if err != nil {
				return err
			}

			if once {
				return scheduler.RunOnce(cmd.Context())
			}

			if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "next reminder at %s\n", scheduler.Next(app.now()).Format(time.RFC3339)); err != nil {
				return err
			}
			return scheduler.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Deliver one briefing and exit")
	cmd.Flags().StringVar(&schedule, "schedule", "", "Cron expression overriding remind.schedule")

	return cmd
}
