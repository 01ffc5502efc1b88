package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &flagValues{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "recipes",
		Short:         "Search TheMealDB recipes from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.baseURL, "base-url", "", "TheMealDB API base URL")
	pf.DurationVar(&flags.timeout, "timeout", 0, "Per-request timeout (e.g. 5s)")
	pf.StringVar(&flags.sortOrder, "sort", "", "Sort order: codepoint or locale")
	pf.BoolVar(&flags.json, "json", false, "Emit JSON instead of tables")
	pf.BoolVar(&flags.debug, "debug", false, "Log requests to stderr")

	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newAllCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
