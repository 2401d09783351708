package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/riordanpawley/weekplan/internal/app"
)

// runTUI opens the board
func runTUI(cmd *cobra.Command, st *state) error {
	return st.withDeps(func(deps *Dependencies) error {
		cfg := deps.Config
		model := app.New(app.Options{
			Store:          deps.Store,
			Themes:         deps.Themes,
			Theme:          deps.Theme(),
			NotifyDuration: time.Duration(cfg.UI.NotificationMs) * time.Millisecond,
			Mouse:          !cfg.UI.DisableMouse,
			Logger:         deps.Logger,
		})

		opts := []tea.ProgramOption{
			tea.WithAltScreen(), // Use alternate screen buffer
			tea.WithContext(cmd.Context()),
		}
		if !cfg.UI.DisableMouse {
			opts = append(opts, tea.WithMouseCellMotion()) // press, drag and release events
		}

		deps.Logger.Info("board opened", "tasks", deps.Store.Len(), "theme", deps.Theme())
		_, err := tea.NewProgram(model, opts...).Run()
		return err
	})
}
