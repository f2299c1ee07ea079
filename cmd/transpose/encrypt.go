package main

import (
	"github.com/spf13/cobra"
)

func newEncryptCmd(a *app) *cobra.Command {
	var f cipherFlags
	cmd := &cobra.Command{
		Use:   "encrypt [flags] <in> <out>",
		Short: "Encrypt a file",
		Long: `Encrypt reads plain text from <in>, keeps only alphabet symbols (upper-cased),
pads the last block with random symbols and writes the cipher text followed by
a newline to <out>. Use "-" for standard input or output.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.cipher(f, true)
			if err != nil {
				return err
			}
			in, err := readInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			out := c.Encrypt(string(in))
			a.log.Info("encrypted", "in", args[0], "out", args[1], "symbols", len([]rune(out)))
			return writeOutput(args[1], cmd.OutOrStdout(), []byte(out+"\n"))
		},
	}
	f.register(cmd)
	return cmd
}
