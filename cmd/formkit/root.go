package main

import (
	"fmt"

	"formkit/internal/config"
	"formkit/internal/log"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	logFile string
	debug   bool
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "formkit",
		Short: "Quick desktop dialogs from the command line",
		Long: `Formkit pops up small desktop dialogs and reports what the user did:
a notification to acknowledge, a prompt to type into, or a question to
confirm or deny. Results are printed to stdout so they compose with
shell scripts.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var configErr error
			if cfgFile != "" {
				cfg, configErr = config.LoadConfigFile(cfgFile)
			} else {
				cfg, configErr = config.LoadConfig()
			}

			if configErr != nil {
				fmt.Printf("Warning: %v\n", configErr)
				fmt.Println("Using default settings.")
				cfg = config.New()
			}

			if logFile != "" {
				log.Configure(log.WithFile(logFile))
			}
			if debug || cfg.Settings.Debug {
				log.SetDebug(true)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/formkit/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "mirror log output to this file")

	// Add subcommands
	rootCmd.AddCommand(NewNotifyCmd())
	rootCmd.AddCommand(NewPromptCmd())
	rootCmd.AddCommand(NewConfirmCmd())

	return rootCmd
}
