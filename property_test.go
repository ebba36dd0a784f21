package uikit

import (
	"errors"
	"testing"
)

func enabled() bool  { return true }
func disabled() bool { return false }

func TestCheckRule(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		value   any
		wantErr bool
		kind    ValidationKind
	}{
		{"type match", Type[string](), "Save", false, 0},
		{"type mismatch", Type[string](), 42, true, TypeMismatch},
		{"type int", Type[int](), 42, false, 0},
		{"type nil", Type[string](), nil, true, TypeMismatch},
		{"in allowed", In("a", "b"), "a", false, 0},
		{"in not allowed", In("a", "b"), "c", true, NotAllowed},
		{"in typed", In(1, 2), int64(1), true, NotAllowed},
		{"not in ok", NotIn("x"), "y", false, 0},
		{"not in forbidden", NotIn("x"), "x", true, Forbidden},
		{"in uncomparable", In([]string{"a"}), []string{"a"}, false, 0},
		{"tag ok", Tag("email"), "a@example.com", false, 0},
		{"tag invalid", Tag("email"), "nope", true, Invalid},
		{"tag max", Tag("required,max=3"), "long", true, Invalid},
		{"tag non-string", Tag("max=3"), true, true, Invalid},
		{"tag unknown name", Tag("emial"), "a@example.com", true, Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkRule("p", tt.rule, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkRule() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("checkRule() error = %T, want *ValidationError", err)
			}
			if verr.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", verr.Kind, tt.kind)
			}
			if verr.Property != "p" {
				t.Errorf("Property = %q, want %q", verr.Property, "p")
			}
		})
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{"s", "string"},
		{1, "int"},
		{int64(1), "int64"},
		{true, "bool"},
		{nil, "nil"},
		{[]string{}, "[]string"},
	}
	for _, tt := range tests {
		if got := TypeName(tt.value); got != tt.want {
			t.Errorf("TypeName(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestRuleString(t *testing.T) {
	tests := []struct {
		rule Rule
		kind RuleKind
		want string
	}{
		{Type[string](), RuleType, "type=string"},
		{In("a", "b"), RuleIn, "in=[a b]"},
		{NotIn("x"), RuleNotIn, "not_in=[x]"},
		{Tag("email"), RuleTag, "tag=email"},
	}
	for _, tt := range tests {
		if tt.rule.Kind() != tt.kind {
			t.Errorf("%v Kind() = %q, want %q", tt.rule, tt.rule.Kind(), tt.kind)
		}
		if tt.rule.String() != tt.want {
			t.Errorf("String() = %q, want %q", tt.rule.String(), tt.want)
		}
	}
}

func TestSetProperties_ValidationDisabled(t *testing.T) {
	s := NewPropertyStore(nil, map[string]Rule{"label": Type[string]()}, disabled)

	if err := s.SetProperties(Props{"label": 42}); err != nil {
		t.Fatalf("SetProperties() error = %v, want nil with validation off", err)
	}
	if v, _ := s.Property("label"); v != 42 {
		t.Errorf("label = %v, want 42", v)
	}
}

func TestSetProperties_NilEnabledMeansDisabled(t *testing.T) {
	s := NewPropertyStore(nil, map[string]Rule{"label": Type[string]()}, nil)

	if err := s.SetProperties(Props{"label": 42}); err != nil {
		t.Errorf("SetProperties() error = %v, want nil", err)
	}
}

func TestSetProperties_RejectsPerEntry(t *testing.T) {
	s := NewPropertyStore(nil, map[string]Rule{
		"label": Type[string](),
		"type":  In("button", "submit"),
	}, enabled)

	if err := s.SetProperties(Props{"label": "Old", "type": "button"}); err != nil {
		t.Fatalf("SetProperties() error = %v", err)
	}

	err := s.SetProperties(Props{"label": 7, "type": "submit", "title": "t"})
	if !IsValidationError(err) {
		t.Fatalf("SetProperties() error = %v, want validation error", err)
	}
	if ValidationKindOf(err) != TypeMismatch {
		t.Errorf("ValidationKindOf() = %v, want TypeMismatch", ValidationKindOf(err))
	}

	if v, _ := s.Property("label"); v != "Old" {
		t.Errorf("rejected label changed stored value to %v", v)
	}
	if v, _ := s.Property("type"); v != "submit" {
		t.Errorf("type = %v, want submit", v)
	}
	if v, _ := s.Property("title"); v != "t" {
		t.Errorf("title = %v, want t", v)
	}
}

func TestSetProperties_JoinsAllRejections(t *testing.T) {
	s := NewPropertyStore(nil, map[string]Rule{
		"a": Type[string](),
		"b": NotIn("x"),
	}, enabled)

	err := s.SetProperties(Props{"a": 1, "b": "x"})

	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		t.Fatalf("SetProperties() error = %T, want joined errors", err)
	}
	errs := joined.Unwrap()
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2", len(errs))
	}
	first := errs[0].(*ValidationError)
	second := errs[1].(*ValidationError)
	if first.Property != "a" || second.Property != "b" {
		t.Errorf("errors out of name order: %q, %q", first.Property, second.Property)
	}
	if second.Kind != Forbidden {
		t.Errorf("b Kind = %v, want Forbidden", second.Kind)
	}
}

func TestSetProperties_Overwrites(t *testing.T) {
	s := NewPropertyStore(nil, nil, disabled)
	_ = s.SetProperties(Props{"a": 1, "b": 2})
	_ = s.SetProperties(Props{"b": 3})

	props := s.Properties()
	if props["a"] != 1 || props["b"] != 3 {
		t.Errorf("Properties() = %v, want a=1 b=3", props)
	}
}

func TestCheckRequired(t *testing.T) {
	tests := []struct {
		name    string
		props   Props
		missing []string
	}{
		{"all present", Props{"label": "x", "name": "n"}, nil},
		{"one missing", Props{"label": "x"}, []string{"name"}},
		{"nil counts as missing", Props{"label": nil, "name": "n"}, []string{"label"}},
		{"empty string present", Props{"label": "", "name": ""}, nil},
		{"all missing", nil, []string{"label", "name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewPropertyStore([]string{"label", "name"}, nil, disabled)
			_ = s.SetProperties(tt.props)

			err := s.CheckRequired()
			if tt.missing == nil {
				if err != nil {
					t.Errorf("CheckRequired() error = %v, want nil", err)
				}
				return
			}
			var merr *MissingPropertyError
			if !errors.As(err, &merr) {
				t.Fatalf("CheckRequired() error = %v, want *MissingPropertyError", err)
			}
			if merr.Name != tt.missing[0] {
				t.Errorf("Name = %q, want %q", merr.Name, tt.missing[0])
			}
			if len(merr.Missing) != len(tt.missing) {
				t.Errorf("Missing = %v, want %v", merr.Missing, tt.missing)
			}
		})
	}
}

func TestPropertyStore_CopiesDeclarations(t *testing.T) {
	required := []string{"a"}
	rules := map[string]Rule{"a": Type[string]()}
	s := NewPropertyStore(required, rules, enabled)

	required[0] = "changed"
	delete(rules, "a")

	if got := s.Required(); len(got) != 1 || got[0] != "a" {
		t.Errorf("Required() = %v, want [a]", got)
	}
	if _, ok := s.Rule("a"); !ok {
		t.Error("Rule(a) missing after caller mutated the input map")
	}
}
