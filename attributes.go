package uikit

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/a-h/templ"
)

// attributes holds a component's HTML attributes. class and style are
// kept structured so themes and callers can add to them independently.
type attributes struct {
	class []string
	style map[string]string
	extra map[string]any
}

func newAttributes() attributes {
	return attributes{
		style: make(map[string]string),
		extra: make(map[string]any),
	}
}

// AddClass appends CSS classes, skipping empty and duplicate names.
func (c *Component) AddClass(classes ...string) *Component {
	for _, cls := range classes {
		for _, f := range strings.Fields(cls) {
			if !slices.Contains(c.attrs.class, f) {
				c.attrs.class = append(c.attrs.class, f)
			}
		}
	}
	return c
}

// Classes returns the component's CSS classes in insertion order.
func (c *Component) Classes() []string {
	return slices.Clone(c.attrs.class)
}

// SetStyle sets one inline style declaration. An empty value removes it.
func (c *Component) SetStyle(property, value string) *Component {
	if value == "" {
		delete(c.attrs.style, property)
		return c
	}
	c.attrs.style[property] = value
	return c
}

// SetAttr sets an arbitrary HTML attribute. A bool true renders as a bare
// attribute, false and nil remove it. "class" and "style" are routed to
// AddClass and parsed declarations respectively.
func (c *Component) SetAttr(name string, value any) *Component {
	switch name {
	case "class":
		if s, ok := value.(string); ok {
			c.AddClass(s)
		}
		return c
	case "style":
		if s, ok := value.(string); ok {
			for _, decl := range strings.Split(s, ";") {
				prop, val, ok := strings.Cut(decl, ":")
				if ok {
					c.SetStyle(strings.TrimSpace(prop), strings.TrimSpace(val))
				}
			}
		}
		return c
	}
	if value == nil || value == false {
		delete(c.attrs.extra, name)
		return c
	}
	c.attrs.extra[name] = value
	return c
}

// Attributes returns the component's attributes as templ.Attributes, with
// class and style flattened to strings.
func (c *Component) Attributes() templ.Attributes {
	attrs := templ.Attributes{}
	maps.Copy(attrs, c.attrs.extra)
	if len(c.attrs.class) > 0 {
		attrs["class"] = strings.Join(c.attrs.class, " ")
	}
	if len(c.attrs.style) > 0 {
		var sb strings.Builder
		for i, prop := range slices.Sorted(maps.Keys(c.attrs.style)) {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(prop)
			sb.WriteString(": ")
			sb.WriteString(c.attrs.style[prop])
			sb.WriteString(";")
		}
		attrs["style"] = sb.String()
	}
	return attrs
}

// WriteAttrs renders attrs as a space-prefixed, name-sorted attribute
// string with escaped values. Bool true renders as a bare attribute.
func WriteAttrs(sb *strings.Builder, attrs templ.Attributes) {
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		switch v := attrs[name].(type) {
		case bool:
			if v {
				sb.WriteString(" ")
				sb.WriteString(templ.EscapeString(name))
			}
		case nil:
		default:
			sb.WriteString(" ")
			sb.WriteString(templ.EscapeString(name))
			sb.WriteString(`="`)
			sb.WriteString(templ.EscapeString(toString(v)))
			sb.WriteString(`"`)
		}
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
