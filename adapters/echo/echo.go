// Package uikitecho provides Echo framework integration for uikit
// components.
//
// Render writes any templ.Component, including a built *uikit.Component:
//
//	e.GET("/", func(c echo.Context) error {
//	    btn, err := factory.Button(uikit.Props{"label": "Save"}, uikit.WithAutoRender(false))
//	    if err != nil {
//	        return err
//	    }
//	    return uikitecho.Render(c, btn)
//	})
//
// Mount adds a preview route that builds widgets from query parameters:
//
//	uikitecho.Mount(e, factory)
//	// GET /_ui/button?label=Save&type=submit
package uikitecho

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/uikit"
)

// Option configures Mount and MountGroup.
type Option func(*options)

type options struct {
	path     string
	validate bool
	raw      bool
}

// WithPath sets the URL path prefix for the preview route.
// Defaults to "/_ui/".
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithValidation enables PROP_VALIDATION on every previewed component.
func WithValidation(on bool) Option {
	return func(o *options) {
		o.validate = on
	}
}

// WithRawContent passes the "content" query parameter through as raw
// HTML. Off by default: content is escaped. Only enable it on routes that
// are not reachable by untrusted clients.
func WithRawContent(on bool) Option {
	return func(o *options) {
		o.raw = on
	}
}

// Mount registers the preview route on an Echo instance.
func Mount(e *echo.Echo, f *uikit.Factory, opts ...Option) {
	o := newOptions(opts)
	e.GET(o.path+":kind", preview(f, o))
}

// MountGroup registers the preview route on an Echo group so it shares
// the group's middleware.
func MountGroup(g *echo.Group, f *uikit.Factory, opts ...Option) {
	o := newOptions(opts)
	g.GET(o.path+":kind", preview(f, o))
}

func newOptions(opts []Option) *options {
	o := &options{path: "/_ui/"}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Preview returns a handler building the component kind named by the
// :kind path parameter. Query parameters become string properties, except
// "content" which sets the inner content (escaped unless WithRawContent)
// and "p" which holds props sealed by the factory's encoder. WithPath is
// ignored.
func Preview(f *uikit.Factory, opts ...Option) echo.HandlerFunc {
	return preview(f, newOptions(opts))
}

func preview(f *uikit.Factory, o *options) echo.HandlerFunc {
	return func(c echo.Context) error {
		kind := uikit.Kind(c.Param("kind"))
		opts := []uikit.Option{
			uikit.WithAutoRender(false),
			uikit.WithConfig(uikit.OptPropValidation, o.validate),
		}

		var comp *uikit.Component
		var err error
		if sealed := c.QueryParam("p"); sealed != "" {
			comp, err = f.Restore(kind, sealed, false, opts...)
		} else {
			props := uikit.Props{}
			for key, values := range c.QueryParams() {
				if key == "content" || len(values) == 0 {
					continue
				}
				props[key] = values[0]
			}
			comp, err = f.Make(kind, props, opts...)
		}
		if err != nil {
			return httpError(err)
		}

		content := c.QueryParam("content")
		if !o.raw {
			content = templ.EscapeString(content)
		}
		comp.SetContent(content)
		if err := comp.Build(c.Request().Context(), 1); err != nil {
			return httpError(err)
		}
		return Render(c, comp)
	}
}

func httpError(err error) error {
	switch {
	case errors.Is(err, uikit.ErrUnsupportedKind):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case uikit.IsMissingProperty(err), uikit.IsValidationError(err):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case uikit.IsDecryptionError(err), errors.Is(err, uikit.ErrInvalidFormat):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid sealed props")
	default:
		return err
	}
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return uikitecho.Render(c, myTemplate())
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}
