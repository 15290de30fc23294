package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/lintcfg/internal/config"
	"github.com/dshills/lintcfg/internal/logging"
)

const version = "0.1.0"

// Exit codes.
const (
	ExitSuccess      = 0
	ExitFindings     = 1
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

// runtimeError marks a failure that is not the caller's fault.
type runtimeError struct {
	err error
}

func (e *runtimeError) Error() string { return e.err.Error() }
func (e *runtimeError) Unwrap() error { return e.err }

func runtimeErr(format string, args ...any) error {
	return &runtimeError{err: fmt.Errorf(format, args...)}
}

// app is the state shared by one command tree.
type app struct {
	cfgFile  string
	cfg      config.Config
	exitCode int
}

// skipConfig lists commands that run without loading configuration.
var skipConfig = map[string]bool{
	"help":       true,
	"completion": true,
	"version":    true,
	"flavors":    true,
}

// newRootCmd creates the root command with every subcommand attached.
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lintcfg",
		Short: "Generate layered ESLint configurations",
		Long:  "lintcfg composes eslintrc override tables for Ember, Node and cross-platform projects from layered rulesets.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipConfig[cmd.Name()] {
				return nil
			}
			cfg, err := config.Load(a.cfgFile, cmd.Flags())
			if err != nil {
				return runtimeErr("loading config: %w", err)
			}
			a.cfg = cfg
			logging.Init(logging.Config{
				Level:  logging.ParseLevel(cfg.LogLevel),
				Output: cmd.ErrOrStderr(),
				Pretty: true,
			})
			if cfg.File != "" {
				logging.Debug().Str("file", cfg.File).Msg("using config file")
			}
			logging.Debug().Str("root", cfg.ProjectRoot).Msg("project root")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config file (default: lintcfg.yaml searched upward)")
	rootCmd.PersistentFlags().String("root", "", "Project root (default: nearest directory with package.json)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newFlavorsCmd())
	rootCmd.AddCommand(newProbeCmd(a))
	rootCmd.AddCommand(newRulesetsCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Run executes the command line and returns an exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		var rt *runtimeError
		if errors.As(err, &rt) {
			return ExitRuntimeError
		}
		return ExitUsageError
	}

	return a.exitCode
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print lintcfg version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lintcfg version %s\n", version)
		},
	}
}
