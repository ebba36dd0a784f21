package themes

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/pthm/uikit"
)

// attrs merges theme styling with the component's own attributes. Theme
// classes come first; component attributes override theme attributes.
func (t *ClassTheme) attrs(kind uikit.Kind, c *uikit.Component) templ.Attributes {
	style := t.styles[kind]
	out := templ.Attributes{}
	for k, v := range style.Attrs {
		out[k] = v
	}
	own := c.Attributes()
	for k, v := range own {
		if k == "class" {
			continue
		}
		out[k] = v
	}
	classes := append([]string{}, style.Class...)
	if cls, ok := own["class"].(string); ok && cls != "" {
		classes = append(classes, cls)
	}
	if len(classes) > 0 {
		out["class"] = strings.Join(classes, " ")
	}
	return out
}

func classAttr(classes []string) string {
	if len(classes) == 0 {
		return ""
	}
	return ` class="` + templ.EscapeString(strings.Join(classes, " ")) + `"`
}

func write(sb *strings.Builder) templ.Component {
	html := sb.String()
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

// setIfPresent copies a property into attrs when it is set.
func setIfPresent(attrs templ.Attributes, c *uikit.Component, names ...string) {
	for _, name := range names {
		if v, ok := c.Property(name); ok && v != nil {
			attrs[name] = v
		}
	}
}

// buttonTemplate renders <button>. Properties: label (escaped), type
// (default "button"), name, value, disabled. Content follows the label
// unescaped.
type buttonTemplate struct {
	theme *ClassTheme
}

func (b buttonTemplate) Markup(c *uikit.Component) templ.Component {
	attrs := b.theme.attrs(uikit.KindButton, c)
	attrs["type"] = "button"
	setIfPresent(attrs, c, "type", "name", "value", "disabled")

	var sb strings.Builder
	sb.WriteString("<button")
	uikit.WriteAttrs(&sb, attrs)
	sb.WriteString(">")
	sb.WriteString(templ.EscapeString(c.Text("label")))
	sb.WriteString(c.Content())
	sb.WriteString("</button>")
	return write(&sb)
}

// textFieldTemplate renders an optional <label> and an <input>, wrapped in
// a <div> when the theme sets a wrapper class. Properties: name, type
// (default "text"), id, label, value, placeholder, required, disabled.
//
// Without an id property each render allocates a fresh "<name>-<n>" id
// from the theme, so repeated fields never share an id.
type textFieldTemplate struct {
	theme *ClassTheme
}

func (f textFieldTemplate) Markup(c *uikit.Component) templ.Component {
	style := f.theme.styles[uikit.KindTextField]
	attrs := f.theme.attrs(uikit.KindTextField, c)
	attrs["type"] = "text"
	setIfPresent(attrs, c, "type", "name", "value", "placeholder", "required", "disabled")

	id := c.Text("id")
	if id == "" {
		id = fmt.Sprintf("%s-%d", c.Text("name"), f.theme.nextFieldID())
	}
	attrs["id"] = id

	var sb strings.Builder
	wrapped := len(style.WrapperClass) > 0
	if wrapped {
		sb.WriteString("<div" + classAttr(style.WrapperClass) + ">")
	}
	if label := c.Text("label"); label != "" {
		sb.WriteString(`<label for="` + templ.EscapeString(id) + `"` + classAttr(style.LabelClass) + ">")
		sb.WriteString(templ.EscapeString(label))
		sb.WriteString("</label>")
	}
	sb.WriteString("<input")
	uikit.WriteAttrs(&sb, attrs)
	sb.WriteString(" />")
	sb.WriteString(c.Content())
	if wrapped {
		sb.WriteString("</div>")
	}
	return write(&sb)
}

// formTemplate renders <form> around the component content. Properties:
// action, method (default "post"), id, name.
type formTemplate struct {
	theme *ClassTheme
}

func (f formTemplate) Markup(c *uikit.Component) templ.Component {
	attrs := f.theme.attrs(uikit.KindForm, c)
	attrs["method"] = "post"
	setIfPresent(attrs, c, "action", "method", "id", "name")

	var sb strings.Builder
	sb.WriteString("<form")
	uikit.WriteAttrs(&sb, attrs)
	sb.WriteString(">")
	sb.WriteString(c.Content())
	sb.WriteString("</form>")
	return write(&sb)
}
