package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"treetag/internal/config"
	"treetag/internal/treetagger"
)

func newTagCommand(cc *commandContext) *cobra.Command {
	var (
		languageFlag string
		encodingFlag string
		pathFlag     string
		abbrevFlag   string
		inputFlag    string
		rawFlag      bool
		tableFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "tag [tokens...]",
		Short: "Tag tokens with the configured TreeTagger model",
		Long: `Tag runs the external TreeTagger binary over the given tokens and prints
one tab-separated record per token: surface form, POS tag, lemma.

Tokens come from the arguments, from --input, or from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cc.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cc.logger(cfg)
			if err != nil {
				return err
			}

			tokens, err := gatherTokens(args, strings.TrimSpace(inputFlag), cmd.InOrStdin())
			if err != nil {
				return err
			}
			if len(tokens) == 0 {
				return errors.New("no input tokens")
			}

			tagger, err := treetagger.New(
				treetagger.WithLanguage(firstNonEmpty(languageFlag, cfg.Tagger.Language)),
				treetagger.WithEncoding(firstNonEmpty(encodingFlag, cfg.Tagger.Encoding)),
				treetagger.WithPath(firstNonEmpty(pathFlag, cfg.Tagger.Home)),
				treetagger.WithAbbreviationList(firstNonEmpty(abbrevFlag, cfg.Tagger.AbbreviationList)),
				treetagger.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			records, err := tagger.Tag(cmd.Context(), tokens)
			if err != nil {
				return err
			}

			return writeRecords(cmd.OutOrStdout(), records, outputMode(cfg, rawFlag, tableFlag))
		},
	}

	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Model language (overrides config)")
	cmd.Flags().StringVarP(&encodingFlag, "encoding", "e", "", "Model charset: utf-8 or latin-1 (overrides config)")
	cmd.Flags().StringVarP(&pathFlag, "path", "p", "", "Tagger binary or TreeTagger install directory")
	cmd.Flags().StringVarP(&abbrevFlag, "abbreviations", "a", "", "Abbreviation file passed to the binary")
	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Read tokens from a file (- for stdin)")
	cmd.Flags().BoolVar(&rawFlag, "raw", false, "Force tab-separated output")
	cmd.Flags().BoolVar(&tableFlag, "table", false, "Force table output")

	return cmd
}

func outputMode(cfg *config.Config, raw, tableForced bool) string {
	switch {
	case raw:
		return "tsv"
	case tableForced:
		return "table"
	}
	mode := cfg.Output.Format
	if mode == "auto" || mode == "" {
		if stdoutIsTerminal() {
			return "table"
		}
		return "tsv"
	}
	return mode
}

func writeRecords(w io.Writer, records []treetagger.TaggedToken, mode string) error {
	if mode == "table" {
		rows := make([][]string, 0, len(records))
		for _, rec := range records {
			rows = append(rows, []string{rec.Word(), rec.Tag(), rec.Lemma()})
		}
		_, err := fmt.Fprintln(w, renderTable([]string{"Token", "Tag", "Lemma"}, rows))
		return err
	}
	for _, rec := range records {
		if _, err := fmt.Fprintln(w, strings.Join(rec, "\t")); err != nil {
			return err
		}
	}
	return nil
}
