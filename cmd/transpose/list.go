package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transpose/transposition"
)

func newListCmd(a *app) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the supported ciphers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := transposition.List()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "The following %d ciphers are supported:\n", len(entries))
			for _, e := range entries {
				fmt.Fprintf(w, "    %s - %s\n", e.Name, e.Family)
				if !verbose {
					continue
				}
				fmt.Fprintf(w, "        %s\n", e.Description)
				if e.NeedsKey {
					fmt.Fprintf(w, "        key: %s\n", e.KeyHint)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show descriptions and key formats")
	return cmd
}
