package uikit

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	"github.com/beevik/etree"
)

// TestResult holds the result of rendering a component for testing.
//
// Provides convenience methods for asserting on the HTML string and on
// elements found with etree path queries.
type TestResult struct {
	HTML string

	doc *etree.Document
	err error
}

// TestRender builds c with count repetitions and returns testable output.
//
// Unlike HTML, TestRender always rebuilds, so it reflects the current
// state even when the component already holds a cached render:
//
//	result, err := uikit.TestRender(btn, 1)
//	if !result.HTMLContains("Save") {
//	    t.Fatal("missing label")
//	}
func TestRender(c *Component, count int) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), c, count)
}

// TestRenderWithContext is TestRender with a caller supplied context, for
// templates that read request-scoped values.
func TestRenderWithContext(ctx context.Context, c *Component, count int) (*TestResult, error) {
	if err := c.Build(ctx, count); err != nil {
		return nil, err
	}
	html, err := c.HTML(ctx, count)
	if err != nil {
		return nil, err
	}
	return &TestResult{HTML: html}, nil
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// Count returns the number of non-overlapping occurrences of substr.
func (r *TestResult) Count(substr string) int {
	return strings.Count(r.HTML, substr)
}

// Parse parses the rendered fragment as XML. Themes emit self-closed void
// elements, so their output parses; the error is reported for markup that
// does not.
func (r *TestResult) Parse() error {
	r.root()
	return r.err
}

func (r *TestResult) root() *etree.Element {
	if r.doc == nil && r.err == nil {
		doc := etree.NewDocument()
		doc.ReadSettings.Permissive = true
		r.err = doc.ReadFromString("<fragment>" + r.HTML + "</fragment>")
		r.doc = doc
	}
	if r.err != nil {
		return nil
	}
	return r.doc.Root()
}

// Find returns the first element matching an etree path such as
// "//button" or "//input[@name='email']", or nil.
func (r *TestResult) Find(path string) *etree.Element {
	root := r.root()
	if root == nil {
		return nil
	}
	return root.FindElement(path)
}

// FindAll returns every element matching an etree path.
func (r *TestResult) FindAll(path string) []*etree.Element {
	root := r.root()
	if root == nil {
		return nil
	}
	return root.FindElements(path)
}

// Attr returns the value of attribute key on the first element matching
// path, and whether both were found.
func (r *TestResult) Attr(path, key string) (string, bool) {
	el := r.Find(path)
	if el == nil {
		return "", false
	}
	attr := el.SelectAttr(key)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}

// RecordingTemplate wraps a Template and counts Markup calls.
//
// Useful for asserting cache behaviour:
//
//	rec := uikit.NewRecordingTemplate(tpl)
//	c, _ := uikit.New("x", rec, props, uikit.WithAutoRender(false))
//	c.HTML(ctx, 1)
//	c.HTML(ctx, 1)
//	if rec.Calls() != 1 { ... }
type RecordingTemplate struct {
	Template Template
	calls    int
}

// NewRecordingTemplate creates a RecordingTemplate around tpl.
func NewRecordingTemplate(tpl Template) *RecordingTemplate {
	return &RecordingTemplate{Template: tpl}
}

// Markup counts the call and delegates.
func (r *RecordingTemplate) Markup(c *Component) templ.Component {
	r.calls++
	return r.Template.Markup(c)
}

// Calls returns the number of Markup calls so far.
func (r *RecordingTemplate) Calls() int {
	return r.calls
}
