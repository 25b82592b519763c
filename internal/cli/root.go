// SPDX-License-Identifier: MIT

// Package cli implements the lvhom command-line interface.
//
// Commands:
//   - homology / cohomology: groups (and optionally generators) of a complex
//     read from a YAML file, stdin or a named built-in fixture.
//   - snf: Smith normal form of a single integer matrix.
//   - builtins: the named fixtures with their f-vectors.
//
// Settings come from config.Load (TOML file, then LVHOM_* variables) and are
// overridden by explicitly given flags. --verbose (-v) switches logging to
// debug level; loggers travel through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvhom/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// app carries the resolved settings from the root command to subcommands.
type app struct {
	configPath string
	verbose    bool
	cfg        config.Config
}

// Execute runs the lvhom CLI with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Output goes to the command's Out
// and Err writers, so callers may redirect both.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: config.Default()}

	root := &cobra.Command{
		Use:           "lvhom",
		Short:         "lvhom computes integer homology of chain complexes",
		Long:          `lvhom computes integer homology and cohomology groups, with optional explicit generators, of simplicial complexes and chain complexes given by boundary matrices.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("lvhom %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "TOML config file (default $"+config.EnvConfigPath+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newHomologyCmd(a, false))
	root.AddCommand(newHomologyCmd(a, true))
	root.AddCommand(newSNFCmd(a))
	root.AddCommand(newBuiltinsCmd(a))

	return root
}

// setup loads the configuration and attaches the logger to the context.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = a.verbose
	}
	a.cfg = cfg

	level := charmlog.InfoLevel
	if cfg.Verbose {
		level = charmlog.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)
	logger.Debug("config", "path", path, "format", cfg.Format, "cycles", cfg.Cycles, "no_elim", cfg.NoElim, "verify", cfg.Verify)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	return nil
}

// format returns the --format flag when given, else the configured format.
func (a *app) format(cmd *cobra.Command, flag string) (string, error) {
	if !cmd.Flags().Changed("format") {
		return a.cfg.Format, nil
	}
	c := a.cfg
	c.Format = flag
	if err := c.Validate(); err != nil {
		return "", err
	}

	return flag, nil
}

// boolSetting returns the flag value when it was given explicitly, else def.
func boolSetting(cmd *cobra.Command, name string, flag, def bool) bool {
	if cmd.Flags().Changed(name) {
		return flag
	}

	return def
}
