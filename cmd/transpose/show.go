package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transpose/transposition"
)

func newShowCmd(a *app) *cobra.Command {
	var f cipherFlags
	cmd := &cobra.Command{
		Use:   "show [flags]",
		Short: "Print the permutation a cipher key derives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, g, err := a.generator(f, false)
			if err != nil {
				return err
			}
			p := g.Permutation()

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "cipher:      %s\n", entry.Name)
			if s, ok := g.(fmt.Stringer); ok {
				fmt.Fprintf(w, "key:         %s\n", s)
			}
			fmt.Fprintf(w, "block size:  %d\n", g.BlockSize())
			fmt.Fprintf(w, "permutation: %s\n", p)
			fmt.Fprintf(w, "inverse:     %s\n", p.Invert())
			fmt.Fprintf(w, "cycles:      %d\n", len(p.Cycles()))
			fmt.Fprintf(w, "order:       %s\n", p.Order())
			if l, ok := g.(transposition.Layout); ok {
				fmt.Fprintf(w, "grid:\n%s\n", l.Grid())
			}
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
