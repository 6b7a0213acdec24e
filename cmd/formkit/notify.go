package main

import (
	"formkit/internal/toolkit"
	"formkit/pkg/dialogs"

	"github.com/spf13/cobra"
)

// NewNotifyCmd creates the notify command
func NewNotifyCmd() *cobra.Command {
	var title, button string

	cmd := &cobra.Command{
		Use:   "notify [message]",
		Short: "Show a notification dialog",
		Long:  `Show a message with a single dismiss button and wait until the user acknowledges it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := dialogs.NewNotify(cfg, dialogs.NotifyConfig{
				Title:      title,
				Message:    args[0],
				ButtonText: button,
			})
			if err != nil {
				return err
			}
			app, err := toolkit.App()
			if err != nil {
				return err
			}

			n.OnDismiss = app.Quit
			n.Show()
			app.Run()
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "Notification", "window title")
	cmd.Flags().StringVar(&button, "button", "", "dismiss button text (default from config)")

	return cmd
}
