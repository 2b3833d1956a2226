package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"treetag/internal/deps"
)

func newCheckCommand(cc *commandContext) *cobra.Command {
	var pathFlag string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report which per-language tagger binaries are installed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cc.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.Check(firstNonEmpty(pathFlag, cfg.Tagger.Home))

			rows := make([][]string, 0, len(statuses))
			available := 0
			for _, st := range statuses {
				state := "missing"
				detail := st.Detail
				if st.Available {
					state = "ok"
					detail = st.Path
					available++
				}
				rows = append(rows, []string{st.Language, st.Encoding, st.Binary, state, detail})
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, renderTable([]string{"Language", "Encoding", "Binary", "Status", "Detail"}, rows)); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "%d of %d tagger binaries available\n", available, len(statuses))
			return err
		},
	}

	cmd.Flags().StringVarP(&pathFlag, "path", "p", "", "TreeTagger install directory to check")
	return cmd
}
