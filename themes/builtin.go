package themes

// Plain returns a theme producing unstyled semantic markup.
func Plain() *ClassTheme {
	return New(Definition{Name: "plain"})
}

// Bootstrap returns a theme using Bootstrap 5 class names.
func Bootstrap() *ClassTheme {
	return New(Definition{
		Name: "bootstrap",
		Widgets: map[string]Style{
			"button": {
				Class: []string{"btn", "btn-primary"},
			},
			"text_field": {
				Class:        []string{"form-control"},
				LabelClass:   []string{"form-label"},
				WrapperClass: []string{"mb-3"},
			},
			"form": {
				Attrs: map[string]string{"novalidate": ""},
			},
		},
	})
}

// Builtin returns every built-in theme.
func Builtin() []*ClassTheme {
	return []*ClassTheme{Plain(), Bootstrap()}
}
