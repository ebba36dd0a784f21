package uikit

import (
	"errors"
	"maps"
	"slices"
)

// Props is a bag of named component properties.
type Props map[string]any

// PropertyStore holds a component's properties together with the
// required-property list and validation rules declared at construction.
//
// Validation only runs when the enabled func reports true; the owning
// Component wires it to its PROP_VALIDATION option.
type PropertyStore struct {
	props    Props
	required []string
	rules    map[string]Rule
	enabled  func() bool
}

// NewPropertyStore creates an empty store. required and rules are copied
// and never change afterwards.
func NewPropertyStore(required []string, rules map[string]Rule, enabled func() bool) *PropertyStore {
	if enabled == nil {
		enabled = func() bool { return false }
	}
	return &PropertyStore{
		props:    make(Props),
		required: slices.Clone(required),
		rules:    maps.Clone(rules),
		enabled:  enabled,
	}
}

// SetProperties merges props into the store, overwriting existing names.
//
// With validation enabled each entry is checked on its own and committed
// only if it passes; rejected entries are returned joined and leave the
// stored value untouched. Entries are processed in name order so the
// returned errors are deterministic.
func (s *PropertyStore) SetProperties(props Props) error {
	validate := s.enabled()

	var errs []error
	for _, name := range slices.Sorted(maps.Keys(props)) {
		value := props[name]
		if validate {
			if err := s.Validate(name, value); err != nil {
				errs = append(errs, err)
				continue
			}
		}
		s.props[name] = value
	}
	return errors.Join(errs...)
}

// Property returns the value stored under name.
func (s *PropertyStore) Property(name string) (any, bool) {
	v, ok := s.props[name]
	return v, ok
}

// Properties returns a copy of all stored properties.
func (s *PropertyStore) Properties() Props {
	return maps.Clone(s.props)
}

// Validate applies the rule registered for name. Names without a rule
// always pass.
func (s *PropertyStore) Validate(name string, value any) error {
	rule, ok := s.rules[name]
	if !ok || rule == nil {
		return nil
	}
	return checkRule(name, rule, value)
}

// Required returns the declared required property names.
func (s *PropertyStore) Required() []string {
	return slices.Clone(s.required)
}

// Rule returns the rule declared for name.
func (s *PropertyStore) Rule(name string) (Rule, bool) {
	r, ok := s.rules[name]
	return r, ok
}

// CheckRequired fails with a *MissingPropertyError when a required
// property is absent or nil.
func (s *PropertyStore) CheckRequired() error {
	var missing []string
	for _, name := range s.required {
		if v, ok := s.props[name]; !ok || v == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingPropertyError{Name: missing[0], Missing: missing}
}
