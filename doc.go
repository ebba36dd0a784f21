// Package uikit builds themed HTML widgets (buttons, forms, text fields)
// from property bags and renders them to HTML strings.
//
// # Core Concepts
//
// A Component owns three things:
//   - a PropertyStore: named properties, the names that must be present
//     before rendering, and optional validation rules
//   - a RenderLifecycle: turns state into HTML through a Template and
//     caches the result
//   - an inner content buffer, HTML attributes and a small config map
//
// Markup comes from the Template capability. Templates return a
// templ.Component, so they can be written as templ files or as
// templ.ComponentFunc values:
//
//	var badge = uikit.TemplateFunc(func(c *uikit.Component) templ.Component {
//	    return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
//	        _, err := io.WriteString(w, "<span>"+templ.EscapeString(c.Text("text"))+"</span>")
//	        return err
//	    })
//	})
//
// # Rendering
//
// Build(ctx, n) runs the template n times and caches the concatenation.
// HTML(ctx, n) returns the cache, building only when nothing is cached yet:
// once a component has rendered, HTML returns the same string whatever n
// is, until Build is called again. Output writes HTML to the component's
// sink (os.Stdout unless WithOutput is given).
//
// New renders and emits the component immediately unless
// WithAutoRender(false) is passed.
//
// # Validation
//
// Rules are declared per property: TypeRule, InRule, NotInRule and
// TagRule (go-playground/validator tags). They are only enforced when the
// PROP_VALIDATION config option is true:
//
//	c, err := uikit.New("field", tpl, props,
//	    uikit.WithRule("type", uikit.NotIn("hidden")),
//	    uikit.WithConfig(uikit.OptPropValidation, true),
//	)
//
// Each property in a SetProperties call is checked and committed on its
// own; rejected entries are reported as *ValidationError and never stored.
//
// # Themes and the Factory
//
// A Theme maps component kinds to Widget blueprints. The Factory holds
// named themes, one of them active, and builds components through it.
// Built-in themes live in the themes package.
//
// The core never escapes content; templates escape what they interpolate.
package uikit
