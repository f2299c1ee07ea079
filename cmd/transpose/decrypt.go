package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newDecryptCmd(a *app) *cobra.Command {
	var f cipherFlags
	cmd := &cobra.Command{
		Use:   "decrypt [flags] <in> <out>",
		Short: "Decrypt a file",
		Long: `Decrypt reads cipher text from <in>, drops trailing line terminators and
writes the plain text, padding included, followed by a newline to <out>.
Use "-" for standard input or output.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.cipher(f, false)
			if err != nil {
				return err
			}
			in, err := readInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			out, err := c.Decrypt(strings.TrimRight(string(in), "\r\n"))
			if err != nil {
				return err
			}
			a.log.Info("decrypted", "in", args[0], "out", args[1], "symbols", len([]rune(out)))
			return writeOutput(args[1], cmd.OutOrStdout(), []byte(out+"\n"))
		},
	}
	f.register(cmd)
	return cmd
}
