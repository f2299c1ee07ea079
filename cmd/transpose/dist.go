package main

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transpose/alphabet"
	"github.com/katalvlaran/transpose/ngram"
)

func newDistCmd(a *app) *cobra.Command {
	var (
		window string
		filter bool
		sorted bool
	)
	cmd := &cobra.Command{
		Use:   "dist [flags] <in> <out>",
		Short: "Compute an n-gram frequency distribution",
		Long: `Dist counts every overlapping n-gram of <in> and writes one "sequence: count"
line per distinct n-gram to <out>. Use "-" for standard input or output.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := ngram.ParseWindow(window)
			if err != nil {
				return err
			}
			in, err := readInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			text := string(in)
			if filter {
				alpha := alphabet.Latin
				if a.cfg.Alphabet != "" {
					if alpha, err = alphabet.New(a.cfg.Alphabet); err != nil {
						return err
					}
				}
				text = alpha.Filter(text, a.cfg.KeepSpaces)
			}

			table, err := ngram.Count(text, n)
			if err != nil {
				return err
			}
			a.log.Info("distribution", "in", args[0], "n", n, "distinct", len(table), "total", table.Total())

			var buf bytes.Buffer
			if sorted {
				for _, e := range table.ByCount() {
					buf.WriteString(e.String())
					buf.WriteByte('\n')
				}
			} else if _, err = table.WriteTo(&buf); err != nil {
				return err
			}
			return writeOutput(args[1], cmd.OutOrStdout(), buf.Bytes())
		},
	}
	cmd.Flags().StringVarP(&window, "dist", "d", ngram.Mono, "window: mono, di, tri or a positive length")
	cmd.Flags().BoolVar(&filter, "filter", false, "filter the input through the alphabet first")
	cmd.Flags().BoolVar(&sorted, "by-count", false, "order by descending count instead of by sequence")
	return cmd
}
