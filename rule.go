package uikit

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

// RuleKind names the variant of a validation Rule.
type RuleKind string

const (
	RuleType  RuleKind = "type"
	RuleIn    RuleKind = "in"
	RuleNotIn RuleKind = "not_in"
	RuleTag   RuleKind = "tag"
)

// Rule is a validation rule attached to one property name.
//
// Rules are a closed set of variants: TypeRule, InRule, NotInRule and
// TagRule. They are evaluated by checkRule.
type Rule interface {
	Kind() RuleKind
	String() string
}

// TypeRule requires the value's type name (see TypeName) to equal Type.
type TypeRule struct {
	Type string
}

// InRule requires the value to equal one of Values.
type InRule struct {
	Values []any
}

// NotInRule requires the value to differ from every member of Values.
type NotInRule struct {
	Values []any
}

// TagRule checks the value against a go-playground/validator tag
// expression such as "email" or "min=1,max=64".
type TagRule struct {
	Tag string
}

func (TypeRule) Kind() RuleKind  { return RuleType }
func (InRule) Kind() RuleKind    { return RuleIn }
func (NotInRule) Kind() RuleKind { return RuleNotIn }
func (TagRule) Kind() RuleKind   { return RuleTag }

func (r TypeRule) String() string  { return fmt.Sprintf("type=%s", r.Type) }
func (r InRule) String() string    { return fmt.Sprintf("in=%v", r.Values) }
func (r NotInRule) String() string { return fmt.Sprintf("not_in=%v", r.Values) }
func (r TagRule) String() string   { return fmt.Sprintf("tag=%s", r.Tag) }

// Type returns a TypeRule for the Go type T.
//
//	uikit.WithRule("label", uikit.Type[string]())
func Type[T any]() TypeRule {
	return TypeRule{Type: reflect.TypeFor[T]().String()}
}

// In returns an InRule allowing only the given values.
func In(values ...any) InRule {
	return InRule{Values: values}
}

// NotIn returns a NotInRule forbidding the given values.
func NotIn(values ...any) NotInRule {
	return NotInRule{Values: values}
}

// Tag returns a TagRule for a validator tag expression. The tag is not
// parsed until the rule is checked; an unknown tag name, or a bounds tag
// such as max=64 applied to a bool, rejects the value as Invalid.
func Tag(tag string) TagRule {
	return TagRule{Tag: tag}
}

// TypeName returns the name TypeRule compares against: the Go type as
// printed by %T, or "nil" for a nil value.
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// checkRule applies rule to value and returns a *ValidationError on
// violation.
func checkRule(name string, rule Rule, value any) error {
	fail := func(kind ValidationKind, err error) error {
		return &ValidationError{Property: name, Kind: kind, Value: value, Rule: rule, Err: err}
	}

	switch r := rule.(type) {
	case TypeRule:
		if TypeName(value) != r.Type {
			return fail(TypeMismatch, nil)
		}
	case InRule:
		if !contains(r.Values, value) {
			return fail(NotAllowed, nil)
		}
	case NotInRule:
		if contains(r.Values, value) {
			return fail(Forbidden, nil)
		}
	case TagRule:
		if err := checkTag(value, r.Tag); err != nil {
			return fail(Invalid, err)
		}
	}
	return nil
}

// checkTag runs validator.Var, turning its panics (unknown tag names,
// bounds tags on values they cannot measure) into errors.
func checkTag(value any, tag string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tag %q cannot check %s: %v", tag, TypeName(value), r)
		}
	}()
	return validatorInstance().Var(value, tag)
}

// contains reports whether value deep-equals a member of set. DeepEqual
// is used so uncomparable values (slices, maps) never panic.
func contains(set []any, value any) bool {
	for _, v := range set {
		if reflect.DeepEqual(v, value) {
			return true
		}
	}
	return false
}
