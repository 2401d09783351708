package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riordanpawley/weekplan/internal/types"
)

func newThemeCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Show or set the board theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(types.ThemeLight), string(types.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.withDeps(func(deps *Dependencies) error {
				if len(args) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), deps.Theme())
					return nil
				}
				theme := types.Theme(args[0])
				if !theme.Valid() {
					return fmt.Errorf("unknown theme %q (want light or dark)", args[0])
				}
				if err := deps.Themes.Save(theme); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", theme)
				return nil
			})
		},
	}
}
