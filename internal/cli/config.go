package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dshills/lintcfg/internal/config"
)

// configPath is the file config init and config set write: --config, the
// loaded file, or lintcfg.yaml in the project root.
func (a *app) configPath() string {
	if a.cfgFile != "" {
		return a.cfgFile
	}
	if a.cfg.File != "" {
		return a.cfg.File
	}
	return filepath.Join(a.cfg.ProjectRoot, config.FileNames[0])
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage lintcfg configuration",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath()

			if _, err := os.Stat(path); err == nil && !force {
				fmt.Fprintf(cmd.ErrOrStderr(), "Config file already exists at %s\n", path)
				return nil
			}

			if err := config.Save(path, config.Default()); err != nil {
				return runtimeErr("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Config file created at %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath()

			cfg := config.Default()
			if _, err := os.Stat(path); err == nil {
				cfg, err = config.LoadFile(path)
				if err != nil {
					return runtimeErr("%w", err)
				}
			}

			if err := config.SetField(&cfg, args[0], args[1]); err != nil {
				return err
			}

			if err := config.Save(path, cfg); err != nil {
				return runtimeErr("saving config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return runtimeErr("marshaling config: %w", err)
			}

			out := cmd.OutOrStdout()
			file := a.cfg.File
			if file == "" {
				file = "(none)"
			}
			fmt.Fprintf(out, "# project root: %s\n# config file: %s\n", a.cfg.ProjectRoot, file)
			fmt.Fprint(out, string(data))
			return nil
		},
	}

	cmd.AddCommand(initCmd, setCmd, showCmd)
	return cmd
}
