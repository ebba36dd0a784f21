// Package themes provides the built-in uikit themes and a class-mapping
// theme that can be loaded from YAML or TOML files.
//
// Every theme here shares the same markup; themes differ in the classes
// and attributes they put on each element.
package themes

import (
	"maps"
	"slices"
	"sync/atomic"

	"github.com/pthm/uikit"
)

// Style is the per-kind styling of a ClassTheme.
type Style struct {
	Class        []string          `yaml:"class" toml:"class"`
	Attrs        map[string]string `yaml:"attrs" toml:"attrs"`
	LabelClass   []string          `yaml:"label_class" toml:"label_class"`
	WrapperClass []string          `yaml:"wrapper_class" toml:"wrapper_class"`
}

// Definition is the file representation of a ClassTheme.
type Definition struct {
	Name    string           `yaml:"name" toml:"name"`
	Widgets map[string]Style `yaml:"widgets" toml:"widgets"`
}

// ClassTheme is a uikit.Theme that renders the standard markup decorated
// with classes and attributes from a Definition.
type ClassTheme struct {
	name    string
	styles  map[uikit.Kind]Style
	widgets map[uikit.Kind]uikit.Widget
	fieldID atomic.Int64
}

// New creates a ClassTheme from a definition. Kinds missing from
// def.Widgets are still supported, unstyled.
func New(def Definition) *ClassTheme {
	t := &ClassTheme{
		name:   def.Name,
		styles: make(map[uikit.Kind]Style, len(def.Widgets)),
	}
	for kind, style := range def.Widgets {
		t.styles[uikit.Kind(kind)] = style
	}
	t.widgets = map[uikit.Kind]uikit.Widget{
		uikit.KindButton: {
			Template: buttonTemplate{theme: t},
			Required: []string{"label"},
			Rules: map[string]uikit.Rule{
				"label": uikit.Type[string](),
				"type":  uikit.In("button", "submit", "reset"),
			},
		},
		uikit.KindTextField: {
			Template: textFieldTemplate{theme: t},
			Required: []string{"name"},
			Rules: map[string]uikit.Rule{
				"name": uikit.Tag("required,max=64"),
				"type": uikit.NotIn("hidden", "file"),
			},
		},
		uikit.KindForm: {
			Template: formTemplate{theme: t},
			Required: []string{"action"},
			Rules: map[string]uikit.Rule{
				"action": uikit.Type[string](),
				"method": uikit.In("get", "post"),
			},
		},
	}
	return t
}

// Name returns the theme name.
func (t *ClassTheme) Name() string {
	return t.name
}

// Widget returns the blueprint for kind.
func (t *ClassTheme) Widget(kind uikit.Kind) (uikit.Widget, bool) {
	w, ok := t.widgets[kind]
	return w, ok
}

// Kinds returns the supported kinds, sorted.
func (t *ClassTheme) Kinds() []uikit.Kind {
	return slices.Sorted(maps.Keys(t.widgets))
}

// Style returns the style configured for kind.
func (t *ClassTheme) Style(kind uikit.Kind) Style {
	return t.styles[kind]
}

func (t *ClassTheme) nextFieldID() int64 {
	return t.fieldID.Add(1)
}

var _ uikit.Theme = (*ClassTheme)(nil)
