package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	cc := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "treetag",
		Short:         "Tag text with the external TreeTagger part-of-speech tagger",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newTagCommand(cc))
	rootCmd.AddCommand(newLanguagesCommand())
	rootCmd.AddCommand(newCheckCommand(cc))
	rootCmd.AddCommand(newConfigCommand(cc))

	return rootCmd
}
