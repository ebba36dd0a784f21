package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/uikit"
)

// maxCount is the largest --count accepted.
const maxCount = 1000

type renderFlags struct {
	props    []string
	classes  []string
	content  string
	count    int
	validate bool
	seal     bool
	key      string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render KIND",
		Short: "Render a widget (button, form, text_field) to stdout",
		Example: `  uikit render button --prop label=Save --prop type=submit
  uikit render text_field -t bootstrap --prop name=email --prop label=Email --count 3
  uikit render form --prop action=/save --content '<button>Go</button>'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, flags, uikit.Kind(args[0]))
		},
	}

	cmd.Flags().StringArrayVarP(&flags.props, "prop", "p", nil, "Property as key=value (repeatable); true/false become booleans")
	cmd.Flags().StringArrayVar(&flags.classes, "class", nil, "Extra CSS class (repeatable)")
	cmd.Flags().StringVarP(&flags.content, "content", "c", "", "Inner content (not escaped)")
	cmd.Flags().IntVarP(&flags.count, "count", "n", 1, "Number of repetitions (at most 1000)")
	cmd.Flags().BoolVar(&flags.validate, "validate", false, "Enforce property rules")
	cmd.Flags().BoolVar(&flags.seal, "seal", false, "Embed signed properties in a data-props attribute")
	cmd.Flags().StringVar(&flags.key, "key", os.Getenv("UIKIT_KEY"), "Signing key for --seal (default $UIKIT_KEY)")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, flags *renderFlags, kind uikit.Kind) error {
	if flags.count > maxCount {
		return fmt.Errorf("--count %d exceeds the maximum of %d", flags.count, maxCount)
	}

	props, err := parseProps(flags.props)
	if err != nil {
		return err
	}

	var fopts []uikit.FactoryOption
	if flags.seal {
		if flags.key == "" {
			return fmt.Errorf("--seal requires --key or UIKIT_KEY")
		}
		enc, err := uikit.NewEncoder([]byte(flags.key))
		if err != nil {
			return err
		}
		fopts = append(fopts, uikit.WithEncoder(enc))
	}

	f, log, err := newFactory(cmd, root, fopts...)
	if err != nil {
		return err
	}

	comp, err := f.Make(kind, props,
		uikit.WithAutoRender(false),
		uikit.WithConfig(uikit.OptPropValidation, flags.validate),
		uikit.WithClass(flags.classes...),
	)
	if err != nil {
		return err
	}
	comp.SetContent(flags.content)

	if flags.seal {
		sealed, err := f.Seal(comp, false)
		if err != nil {
			return err
		}
		comp.SetAttr("data-props", sealed)
	}

	log.Debug().Str("kind", string(kind)).Int("count", flags.count).Msg("rendering")
	if err := comp.Output(cmd.Context(), flags.count); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout())
	return err
}

// parseProps turns key=value pairs into properties.
func parseProps(pairs []string) (uikit.Props, error) {
	props := uikit.Props{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid property %q: want key=value", pair)
		}
		switch value {
		case "true":
			props[key] = true
		case "false":
			props[key] = false
		default:
			props[key] = value
		}
	}
	return props, nil
}
