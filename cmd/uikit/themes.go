package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newThemesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, _, err := newFactory(cmd, flags)
			if err != nil {
				return err
			}
			active, _ := f.Theme()

			for _, name := range f.Themes() {
				line := "  " + inactiveStyle.Render(name)
				if name == active.Name() {
					line = "* " + activeStyle.Render(name)
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
