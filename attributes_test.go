package uikit

import (
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func TestAddClass(t *testing.T) {
	c := newTestComponent(t, labelTemplate, nil)
	c.AddClass("btn  btn-primary", "", "btn", "active")

	got := strings.Join(c.Classes(), " ")
	if got != "btn btn-primary active" {
		t.Errorf("Classes() = %q, want %q", got, "btn btn-primary active")
	}
}

func TestSetAttr(t *testing.T) {
	c := newTestComponent(t, labelTemplate, nil)
	c.SetAttr("data-id", 7).
		SetAttr("hidden", true).
		SetAttr("class", "a b").
		SetAttr("style", "color: red; margin:0").
		SetAttr("title", "x").
		SetAttr("title", nil).
		SetAttr("disabled", true).
		SetAttr("disabled", false)

	attrs := c.Attributes()
	want := templ.Attributes{
		"data-id": 7,
		"hidden":  true,
		"class":   "a b",
		"style":   "color: red; margin: 0;",
	}
	if len(attrs) != len(want) {
		t.Fatalf("Attributes() = %v, want %v", attrs, want)
	}
	for k, v := range want {
		if attrs[k] != v {
			t.Errorf("Attributes()[%q] = %v, want %v", k, attrs[k], v)
		}
	}
}

func TestSetStyle_EmptyRemoves(t *testing.T) {
	c := newTestComponent(t, labelTemplate, nil)
	c.SetStyle("color", "red").SetStyle("color", "")

	if _, ok := c.Attributes()["style"]; ok {
		t.Error("style should be removed when its last declaration is cleared")
	}
}

func TestWriteAttrs(t *testing.T) {
	tests := []struct {
		name  string
		attrs templ.Attributes
		want  string
	}{
		{"empty", templ.Attributes{}, ""},
		{"sorted", templ.Attributes{"type": "button", "class": "a"}, ` class="a" type="button"`},
		{"bare bool", templ.Attributes{"disabled": true, "hidden": false}, ` disabled`},
		{"escaped", templ.Attributes{"title": `"<x>"`}, ` title="&#34;&lt;x&gt;&#34;"`},
		{"number", templ.Attributes{"tabindex": 2}, ` tabindex="2"`},
		{"nil skipped", templ.Attributes{"a": nil}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			WriteAttrs(&sb, tt.attrs)
			if sb.String() != tt.want {
				t.Errorf("WriteAttrs() = %q, want %q", sb.String(), tt.want)
			}
		})
	}
}

func TestWithClassAndAttr(t *testing.T) {
	c := newTestComponent(t, labelTemplate, nil, WithClass("x y"), WithAttr("id", "main"))

	attrs := c.Attributes()
	if attrs["class"] != "x y" || attrs["id"] != "main" {
		t.Errorf("Attributes() = %v", attrs)
	}
}
