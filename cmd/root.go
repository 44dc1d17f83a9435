package cmd

import (
	"fmt"
	"os"

	"coursehub/config"
	"coursehub/logger"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	LogLevel string
	LogJSON  bool
}

// NewRootCommand creates the coursehub command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "coursehub",
		Short: "CourseHub online course marketplace API",
		Long:  "Backend for an online course marketplace: catalog, enrollments, progress tracking and reviews.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadConfig()
			if cmd.Flags().Changed("log-level") {
				config.AppConfig.LogLevel = opts.LogLevel
			}
			if cmd.Flags().Changed("log-json") {
				config.AppConfig.LogJSON = opts.LogJSON
			}
			logger.Init(&logger.Config{
				Level:      config.AppConfig.LogLevel,
				Output:     os.Stderr,
				JSON:       config.AppConfig.LogJSON,
				TimeFormat: "15:04:05",
			})
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().BoolVar(&opts.LogJSON, "log-json", false, "emit logs as JSON")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
