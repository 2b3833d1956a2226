package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"treetag/internal/language"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported language/encoding pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(language.All()))
			for _, profile := range language.All() {
				marker := ""
				if profile.Language() == language.DefaultLanguage {
					marker = "default"
				}
				rows = append(rows, []string{
					profile.Language(),
					profile.Encoding(),
					profile.BinaryName(),
					marker,
				})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Language", "Encoding", "Binary", ""}, rows))
			return err
		},
	}
}
