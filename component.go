package uikit

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Config option names accepted by Component.Config and Component.Configure.
const (
	// OptPropValidation enables rule checks on property assignment (bool,
	// default false).
	OptPropValidation = "PROP_VALIDATION"
)

func defaultConfig() map[string]any {
	return map[string]any{
		OptPropValidation: false,
	}
}

// Component is one HTML widget instance: a property store, a render
// lifecycle, an inner content buffer, HTML attributes and a small config
// map.
//
// A Component is confined to one goroutine; it does no locking.
//
// Example:
//
//	c, err := uikit.New("badge", badgeTemplate, uikit.Props{"text": "new"},
//	    uikit.Require("text"),
//	    uikit.WithAutoRender(false),
//	)
//	html, err := c.AppendContent("!").HTML(ctx, 1)
type Component struct {
	name    string
	props   *PropertyStore
	life    *RenderLifecycle
	content string
	config  map[string]any
	attrs   attributes
	log     zerolog.Logger
}

// New creates a component named name that renders through tpl.
//
// Options are applied first, then props are assigned (validated when
// PROP_VALIDATION was enabled through WithConfig). Unless WithAutoRender
// (false) is given, the component is then rendered and written to its
// output sink, mirroring "print on construct".
//
// New returns the component together with any error; on a property
// validation error the component is still usable with the accepted
// entries.
func New(name string, tpl Template, props Props, opts ...Option) (*Component, error) {
	o := &options{
		out:         os.Stdout,
		log:         zerolog.Nop(),
		autoRender:  true,
		renderCount: 1,
		rules:       make(map[string]Rule),
		config:      make(map[string]any),
	}
	for _, opt := range opts {
		opt(o)
	}

	c := &Component{
		name:   name,
		config: defaultConfig(),
		attrs:  newAttributes(),
		log:    o.log,
	}
	for k, v := range o.config {
		c.Configure(k, v)
	}
	c.AddClass(o.class...)
	for k, v := range o.attrs {
		c.SetAttr(k, v)
	}
	c.props = NewPropertyStore(o.required, o.rules, c.ValidationEnabled)
	c.life = newRenderLifecycle(c, tpl, c.props.CheckRequired, o.out, o.log)

	if err := c.SetProperties(props); err != nil {
		return c, err
	}

	if o.autoRender {
		if err := c.Output(context.Background(), o.renderCount); err != nil {
			return c, err
		}
	}
	return c, nil
}

// Name returns the component's name.
func (c *Component) Name() string {
	return c.name
}

// SetProperties merges props into the component's properties. See
// PropertyStore.SetProperties.
func (c *Component) SetProperties(props Props) error {
	err := c.props.SetProperties(props)
	if err != nil {
		c.log.Debug().Err(err).Str("component", c.name).Msg("properties rejected")
	}
	return err
}

// Property returns the value of a property.
func (c *Component) Property(name string) (any, bool) {
	return c.props.Property(name)
}

// Text returns a property as a string, or "" when it is absent or not a
// string.
func (c *Component) Text(name string) string {
	v, _ := c.props.Property(name)
	s, _ := v.(string)
	return s
}

// Properties returns a copy of the component's properties.
func (c *Component) Properties() Props {
	return c.props.Properties()
}

// Store returns the component's property store.
func (c *Component) Store() *PropertyStore {
	return c.props
}

// Build regenerates the cached HTML. See RenderLifecycle.Build.
func (c *Component) Build(ctx context.Context, count int) error {
	return c.life.Build(ctx, count)
}

// HTML returns the cached HTML, building it first if needed. See
// RenderLifecycle.HTML.
func (c *Component) HTML(ctx context.Context, count int) (string, error) {
	return c.life.HTML(ctx, count)
}

// Output writes HTML(count) to the output sink.
func (c *Component) Output(ctx context.Context, count int) error {
	return c.life.Output(ctx, count)
}

// Rendered reports whether the component holds a cached render.
func (c *Component) Rendered() bool {
	return c.life.Rendered()
}

// Render implements templ.Component so a component can be used inside
// templ layouts. It writes HTML(ctx, 1).
func (c *Component) Render(ctx context.Context, w io.Writer) error {
	html, err := c.HTML(ctx, 1)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, html)
	return err
}

// SetContent replaces the inner content. Content is not escaped.
func (c *Component) SetContent(s string) *Component {
	c.content = s
	return c
}

// AppendContent appends to the inner content.
func (c *Component) AppendContent(s string) *Component {
	c.content = c.content + s
	return c
}

// PrependContent prepends to the inner content.
func (c *Component) PrependContent(s string) *Component {
	c.content = s + c.content
	return c
}

// Content returns the inner content.
func (c *Component) Content() string {
	return c.content
}

// Config reads a config option. Unknown names report false.
func (c *Component) Config(name string) (any, bool) {
	v, ok := c.config[name]
	return v, ok
}

// Configure sets a config option. Unknown names and nil values are
// ignored.
func (c *Component) Configure(name string, value any) *Component {
	if _, ok := c.config[name]; !ok || value == nil {
		return c
	}
	c.config[name] = value
	return c
}

// ValidationEnabled reports whether PROP_VALIDATION is set to true.
func (c *Component) ValidationEnabled() bool {
	on, _ := c.config[OptPropValidation].(bool)
	return on
}

// Condition calls fn with the component and returns the component. It is
// not a branch: fn always runs and the chain always continues.
//
//	c.Condition(func(c *uikit.Component) {
//	    if admin {
//	        c.AddClass("danger")
//	    }
//	}).SetContent("Delete")
func (c *Component) Condition(fn func(*Component)) *Component {
	if fn != nil {
		fn(c)
	}
	return c
}
