package uikit

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
)

// Template produces a component's markup from its current state.
//
// Every concrete widget implements this single capability; the core never
// depends on concrete widget types. Markup is called once per repetition
// of a build, so implementations may be stateful (auto-incrementing IDs).
type Template interface {
	Markup(c *Component) templ.Component
}

// TemplateFunc adapts a function to the Template interface.
type TemplateFunc func(c *Component) templ.Component

// Markup calls f(c).
func (f TemplateFunc) Markup(c *Component) templ.Component {
	return f(c)
}

// RenderLifecycle turns a component's state into HTML and caches the
// result.
//
// The cache is only replaced by Build. HTML returns the cached string
// whenever one exists, regardless of the count it is called with.
type RenderLifecycle struct {
	owner    *Component
	tpl      Template
	check    func() error
	out      io.Writer
	log      zerolog.Logger
	html     string
	rendered bool
}

func newRenderLifecycle(owner *Component, tpl Template, check func() error, out io.Writer, log zerolog.Logger) *RenderLifecycle {
	return &RenderLifecycle{
		owner: owner,
		tpl:   tpl,
		check: check,
		out:   out,
		log:   log,
	}
}

// Build regenerates the cached markup from current state.
//
// count == 1 renders the template once; count > 1 renders it count times
// and concatenates the results in order. count <= 0 is a no-op. A missing
// required property or a template error fails the build and keeps the
// previous cache.
func (l *RenderLifecycle) Build(ctx context.Context, count int) error {
	if err := l.check(); err != nil {
		var merr *MissingPropertyError
		if errors.As(err, &merr) && merr.Component == "" {
			merr.Component = l.owner.name
		}
		l.log.Debug().Err(err).Str("component", l.owner.name).Msg("build refused")
		return err
	}
	if count <= 0 {
		return nil
	}

	var sb strings.Builder
	for i := 0; i < count; i++ {
		if err := l.markup(ctx, &sb); err != nil {
			return err
		}
	}

	l.html = sb.String()
	l.rendered = true
	l.log.Debug().Str("component", l.owner.name).Int("count", count).Int("bytes", len(l.html)).Msg("built")
	return nil
}

func (l *RenderLifecycle) markup(ctx context.Context, w io.Writer) error {
	if l.tpl == nil {
		return nil
	}
	component := l.tpl.Markup(l.owner)
	if component == nil {
		return nil
	}
	return component.Render(ctx, w)
}

// HTML returns the cached markup, building it with count first when
// nothing has been rendered yet. It returns "" when count <= 0 and the
// component was never rendered.
func (l *RenderLifecycle) HTML(ctx context.Context, count int) (string, error) {
	if !l.rendered {
		if err := l.Build(ctx, count); err != nil {
			return "", err
		}
	}
	return l.html, nil
}

// Output writes HTML(count) to the component's output sink.
func (l *RenderLifecycle) Output(ctx context.Context, count int) error {
	html, err := l.HTML(ctx, count)
	if err != nil {
		return err
	}
	_, err = io.WriteString(l.out, html)
	return err
}

// Rendered reports whether a cached output exists.
func (l *RenderLifecycle) Rendered() bool {
	return l.rendered
}
