// Package cli wires configuration, storage and the TUI behind the
// weekplan command line.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/riordanpawley/weekplan/internal/config"
)

// state is shared by every command of one invocation
type state struct {
	configPath string
	verbose    bool
}

// NewRootCommand builds the weekplan command tree
func NewRootCommand() *cobra.Command {
	st := &state{}

	rootCmd := &cobra.Command{
		Use:   "weekplan",
		Short: "Weekly task planner",
		Long: `weekplan keeps a week of timed tasks on a seven-column board.

Run without a subcommand to open the board. The subcommands work on the
same task store from scripts and the shell.`,
		RunE:          func(cmd *cobra.Command, args []string) error { return runTUI(cmd, st) },
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&st.configPath, "config", "", "Config file (JSON or TOML)")
	rootCmd.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(newListCmd(st))
	rootCmd.AddCommand(newAddCmd(st))
	rootCmd.AddCommand(newEditCmd(st))
	rootCmd.AddCommand(newDoneCmd(st))
	rootCmd.AddCommand(newMoveCmd(st))
	rootCmd.AddCommand(newRemoveCmd(st))
	rootCmd.AddCommand(newThemeCmd(st))
	rootCmd.AddCommand(newConfigCmd(st))

	return rootCmd
}

// Execute runs the root command
func Execute(version string) error {
	if err := config.LoadDotEnv(dotEnvFiles()...); err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}

	rootCmd := NewRootCommand()
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// dotEnvFiles lists the .env files read at startup, nearest first
func dotEnvFiles() []string {
	return []string{".env", filepath.Join(config.ConfigDir(), ".env")}
}

// loadConfig reads and validates the configuration
func (st *state) loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.Load(st.configPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, path, nil
}

// withDeps opens storage, runs fn and closes storage again
func (st *state) withDeps(fn func(*Dependencies) error) (err error) {
	cfg, path, err := st.loadConfig()
	if err != nil {
		return err
	}
	deps, err := NewDependencies(cfg, path, st.verbose)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := deps.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(deps)
}
