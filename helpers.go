package uikit

import (
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders with the request's context.
// A *Component satisfies templ.Component, so this is the HTTP output sink
// for built widgets:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    btn, _ := factory.Button(uikit.Props{"label": "Save"}, uikit.WithAutoRender(false))
//	    uikit.Render(w, r, btn)
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// Group renders components one after another as a single templ.Component.
func Group(components ...templ.Component) templ.Component {
	return templ.Join(components...)
}
