package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemeCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Toggle between light and dark theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := d.app.UI.ToggleDarkMode(); err != nil {
				return err
			}
			theme := "light"
			if d.app.UI.DarkMode() {
				theme = "dark"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "theme set to %s\n", theme)
			return nil
		},
	}
}
