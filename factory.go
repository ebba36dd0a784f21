package uikit

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

// Kind names a component kind a theme can build.
type Kind string

const (
	KindButton    Kind = "button"
	KindForm      Kind = "form"
	KindTextField Kind = "text_field"
)

// Widget is a theme's blueprint for one component kind: the template that
// produces markup plus the properties and rules every instance declares.
type Widget struct {
	Template Template
	Required []string
	Rules    map[string]Rule
}

// Theme is a named collection of widget blueprints.
type Theme interface {
	Name() string
	Widget(kind Kind) (Widget, bool)
}

// Factory keeps a named set of themes with one active theme and builds
// components through it.
//
//	f := uikit.NewFactory()
//	f.AddTheme(themes.Bootstrap(), true)
//	btn, err := f.Button(uikit.Props{"label": "Save"}, uikit.WithAutoRender(false))
//
// The theme registry is safe for concurrent use. Components it returns are
// not.
type Factory struct {
	mu     sync.RWMutex
	themes map[string]Theme
	active string

	log     zerolog.Logger
	out     io.Writer
	encoder *Encoder
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithFactoryLogger sets the logger used by the factory and passed to
// every component it builds.
func WithFactoryLogger(log zerolog.Logger) FactoryOption {
	return func(f *Factory) {
		f.log = log
	}
}

// WithFactoryOutput sets the output sink passed to every component it
// builds. Defaults to os.Stdout.
func WithFactoryOutput(w io.Writer) FactoryOption {
	return func(f *Factory) {
		if w != nil {
			f.out = w
		}
	}
}

// WithEncoder sets the encoder used by Seal and Restore.
func WithEncoder(enc *Encoder) FactoryOption {
	return func(f *Factory) {
		f.encoder = enc
	}
}

// NewFactory creates a factory with no themes.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		themes: make(map[string]Theme),
		log:    zerolog.Nop(),
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AddTheme registers theme under its name, replacing any theme with the
// same name. When use is true the theme becomes active.
func (f *Factory) AddTheme(theme Theme, use bool) *Factory {
	f.mu.Lock()
	defer f.mu.Unlock()

	name := theme.Name()
	f.themes[name] = theme
	f.log.Debug().Str("theme", name).Bool("use", use).Msg("theme added")
	if use {
		f.active = name
	}
	return f
}

// UseTheme makes a registered theme active.
func (f *Factory) UseTheme(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.themes[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	f.active = name
	f.log.Debug().Str("theme", name).Msg("theme activated")
	return nil
}

// Theme returns the active theme.
func (f *Factory) Theme() (Theme, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	t, ok := f.themes[f.active]
	return t, ok
}

// Themes returns the registered theme names, sorted.
func (f *Factory) Themes() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return slices.Sorted(maps.Keys(f.themes))
}

// Encoder returns the factory's encoder, or nil.
func (f *Factory) Encoder() *Encoder {
	return f.encoder
}

// Make builds a component of the given kind with the active theme.
//
// The theme's required properties and rules are declared first, then the
// factory's output sink and logger, then opts, so callers can override
// them. Errors from New are returned together with the component.
func (f *Factory) Make(kind Kind, props Props, opts ...Option) (*Component, error) {
	theme, ok := f.Theme()
	if !ok {
		return nil, ErrNoActiveTheme
	}
	w, ok := theme.Widget(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnsupportedKind, theme.Name(), kind)
	}

	base := []Option{
		Require(w.Required...),
		WithRules(w.Rules),
		WithOutput(f.out),
		WithLogger(f.log),
	}
	f.log.Debug().Str("theme", theme.Name()).Str("kind", string(kind)).Msg("make component")
	return New(string(kind), w.Template, props, append(base, opts...)...)
}

// Button builds a button with the active theme.
func (f *Factory) Button(props Props, opts ...Option) (*Component, error) {
	return f.Make(KindButton, props, opts...)
}

// Form builds a form with the active theme.
func (f *Factory) Form(props Props, opts ...Option) (*Component, error) {
	return f.Make(KindForm, props, opts...)
}

// TextField builds a text field with the active theme.
func (f *Factory) TextField(props Props, opts ...Option) (*Component, error) {
	return f.Make(KindTextField, props, opts...)
}
