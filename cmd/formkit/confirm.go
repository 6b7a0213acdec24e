package main

import (
	"fmt"

	"formkit/internal/toolkit"
	"formkit/pkg/dialogs"
	"formkit/pkg/types"

	"github.com/spf13/cobra"
)

// NewConfirmCmd creates the confirm command
func NewConfirmCmd() *cobra.Command {
	var title, yes, no string

	cmd := &cobra.Command{
		Use:   "confirm [question]",
		Short: "Ask the user a yes/no question",
		Long: `Show a confirm/deny dialog. Prints "accepted" or "declined" to stdout
and exits non-zero when the user declines, so it slots into shell
conditionals.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := dialogs.NewConfirm(cfg, dialogs.ConfirmConfig{
				Title:       title,
				Message:     args[0],
				ConfirmText: yes,
				DenyText:    no,
			})
			if err != nil {
				return err
			}
			app, err := toolkit.App()
			if err != nil {
				return err
			}

			outcome := types.Declined
			c.OnResult = func(o types.Outcome) {
				outcome = o
				app.Quit()
			}
			c.Show()
			app.Run()

			fmt.Fprintln(cmd.OutOrStdout(), outcome)
			if outcome == types.Declined {
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return fmt.Errorf("declined")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "Confirm", "window title")
	cmd.Flags().StringVar(&yes, "yes", "", "confirm button text (default from config)")
	cmd.Flags().StringVar(&no, "no", "", "deny button text (default from config)")

	return cmd
}
