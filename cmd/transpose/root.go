package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transpose/internal/config"
	"github.com/katalvlaran/transpose/internal/logging"
)

// app carries state shared by every subcommand for one invocation.
type app struct {
	cfg config.Config
	log *slog.Logger

	configPath string
	logLevel   string
	seed       int64

	// prompt reads a key interactively; replaced in tests.
	prompt func(label string, confirm bool) (string, error)
}

func newApp() *app {
	return &app{
		log:    logging.Discard(),
		prompt: promptKey,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "transpose",
		Short:         "Encrypt or decrypt files using classical transposition ciphers",
		Long:          `A tool to encrypt or decrypt files with historic block transposition ciphers and to compute n-gram frequency distributions of their output.`,
		Version:       "0.2.0",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "configuration file (default ./"+config.DefaultFile+" when present)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().Int64Var(&a.seed, "seed", 0, "padding seed (0 picks a fresh seed)")

	root.AddCommand(
		newEncryptCmd(a),
		newDecryptCmd(a),
		newListCmd(a),
		newDistCmd(a),
		newShowCmd(a),
	)
	return root
}

// setup resolves configuration and builds the logger. Flags beat the
// environment, which beats the configuration file.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log.With("command", cmd.Name())
	return nil
}
