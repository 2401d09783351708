package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/riordanpawley/weekplan/internal/config"
)

func newConfigCmd(st *state) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect weekplan configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show merged configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := st.loadConfig()
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			out := cmd.OutOrStdout()
			if path == "" {
				fmt.Fprintln(out, "# Defaults (no config file found) with environment overrides")
			} else {
				fmt.Fprintf(out, "# Merged configuration (%s + defaults + environment)\n", path)
			}
			fmt.Fprint(out, string(data))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file paths",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if st.configPath != "" {
				fmt.Fprintf(out, "%s (from --config)\n", st.configPath)
				return
			}
			dir := config.ConfigDir()
			for _, name := range []string{config.JSONFile, config.TOMLFile} {
				path := filepath.Join(dir, name)
				marker := "missing"
				if _, err := os.Stat(path); err == nil {
					marker = "found"
				}
				fmt.Fprintf(out, "%s (%s)\n", path, marker)
			}
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := st.configPath
			if path == "" {
				path = filepath.Join(config.ConfigDir(), config.JSONFile)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(initCmd)

	return configCmd
}
