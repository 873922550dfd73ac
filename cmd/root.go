package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "va",
		Short:         "Vehicle assistant (va): ask about your vehicle from the terminal",
		Long:          "va answers Spanish questions about documents, preventive maintenance, agenda, routes and emergencies using the data saved by the vehicle app, and can serve the same assistant over Telegram or as a scheduled reminder.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}
	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.Close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAskCmd(app),
		newChatCmd(app),
		newStatusCmd(app),
		newFAQCmd(app),
		newRecordCmd(app),
		newStoreCmd(app),
		newTelegramCmd(app),
		newRemindCmd(app),
	)

	return rootCmd
}
