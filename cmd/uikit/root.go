package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pthm/uikit"
	"github.com/pthm/uikit/lib/logging"
	"github.com/pthm/uikit/themes"
)

type rootFlags struct {
	verbose    int
	theme      string
	themeFiles []string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "uikit",
		Short:         "uikit renders themed HTML widgets from properties",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().CountVarP(&flags.verbose, "verbose", "v", "Increase log verbosity (repeatable)")
	cmd.PersistentFlags().StringVarP(&flags.theme, "theme", "t", "plain", "Theme to build with")
	cmd.PersistentFlags().StringArrayVar(&flags.themeFiles, "theme-file", nil, "Load an extra theme from a YAML or TOML file (repeatable)")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newFactory registers the built-in themes and any theme files, then
// activates flags.theme.
func newFactory(cmd *cobra.Command, flags *rootFlags, opts ...uikit.FactoryOption) (*uikit.Factory, zerolog.Logger, error) {
	logging.Setup(flags.verbose, cmd.ErrOrStderr())
	log := logging.Component("cli")

	opts = append([]uikit.FactoryOption{
		uikit.WithFactoryLogger(logging.Component("factory")),
		uikit.WithFactoryOutput(cmd.OutOrStdout()),
	}, opts...)
	f := uikit.NewFactory(opts...)

	for _, t := range themes.Builtin() {
		f.AddTheme(t, false)
	}
	for _, path := range flags.themeFiles {
		t, err := themes.LoadFile(path)
		if err != nil {
			return nil, log, err
		}
		log.Info().Str("theme", t.Name()).Str("path", path).Msg("loaded theme file")
		f.AddTheme(t, false)
	}

	if err := f.UseTheme(flags.theme); err != nil {
		return nil, log, err
	}
	return f, log, nil
}
