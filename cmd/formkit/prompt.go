package main

import (
	"fmt"

	"formkit/internal/toolkit"
	"formkit/pkg/dialogs"

	"github.com/spf13/cobra"
)

// NewPromptCmd creates the prompt command
func NewPromptCmd() *cobra.Command {
	var title, placeholder, initial, button string

	cmd := &cobra.Command{
		Use:   "prompt [message]",
		Short: "Ask the user for a line of text",
		Long:  `Show a text prompt and print the user's answer to stdout. An untouched field prints an empty line.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := dialogs.NewPrompt(cfg, dialogs.PromptConfig{
				Title:       title,
				Message:     args[0],
				Placeholder: placeholder,
				Initial:     initial,
				ButtonText:  button,
			})
			if err != nil {
				return err
			}
			app, err := toolkit.App()
			if err != nil {
				return err
			}

			var answer string
			p.OnSubmit = func(text string) {
				answer = text
				app.Quit()
			}
			p.Show()
			app.Run()

			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "Input", "window title")
	cmd.Flags().StringVar(&placeholder, "placeholder", "", "placeholder shown in the empty field")
	cmd.Flags().StringVar(&initial, "value", "", "initial field content")
	cmd.Flags().StringVar(&button, "button", "", "confirm button text (default from config)")

	return cmd
}
