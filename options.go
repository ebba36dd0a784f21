package uikit

import (
	"io"

	"github.com/rs/zerolog"
)

// Option configures a Component at construction.
type Option func(*options)

type options struct {
	out         io.Writer
	log         zerolog.Logger
	autoRender  bool
	renderCount int
	required    []string
	rules       map[string]Rule
	config      map[string]any
	class       []string
	attrs       map[string]any
}

// Require declares properties that must be set before rendering.
func Require(names ...string) Option {
	return func(o *options) {
		o.required = append(o.required, names...)
	}
}

// WithRule declares a validation rule for a property.
func WithRule(name string, rule Rule) Option {
	return func(o *options) {
		o.rules[name] = rule
	}
}

// WithRules declares validation rules for several properties.
func WithRules(rules map[string]Rule) Option {
	return func(o *options) {
		for name, rule := range rules {
			o.rules[name] = rule
		}
	}
}

// WithConfig sets a config option before the initial properties are
// assigned, so WithConfig(OptPropValidation, true) validates them.
func WithConfig(name string, value any) Option {
	return func(o *options) {
		o.config[name] = value
	}
}

// WithOutput sets the sink written by Output. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithAutoRender controls whether New renders the component and writes it
// to the output sink. Defaults to true.
func WithAutoRender(on bool) Option {
	return func(o *options) {
		o.autoRender = on
	}
}

// WithRenderCount sets the repetition count used by the automatic render
// in New. Defaults to 1.
func WithRenderCount(n int) Option {
	return func(o *options) {
		o.renderCount = n
	}
}

// WithClass adds CSS classes before the automatic render.
func WithClass(classes ...string) Option {
	return func(o *options) {
		o.class = append(o.class, classes...)
	}
}

// WithAttr sets an HTML attribute before the automatic render. See
// Component.SetAttr.
func WithAttr(name string, value any) Option {
	return func(o *options) {
		if o.attrs == nil {
			o.attrs = make(map[string]any)
		}
		o.attrs[name] = value
	}
}
