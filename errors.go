package uikit

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for component and factory operations.
var (
	ErrMissingProperty  = errors.New("uikit: required property missing")
	ErrValidation       = errors.New("uikit: property validation failed")
	ErrUnknownTheme     = errors.New("uikit: unknown theme")
	ErrNoActiveTheme    = errors.New("uikit: no active theme")
	ErrUnsupportedKind  = errors.New("uikit: theme does not support component kind")
	ErrInvalidFormat    = errors.New("uikit: invalid sealed props format")
	ErrSignatureInvalid = errors.New("uikit: signature verification failed")
	ErrDecryptFailed    = errors.New("uikit: sealed props decryption failed")
)

// ValidationKind identifies which rule an assignment violated.
type ValidationKind int

const (
	// TypeMismatch means the value's type differs from the declared type.
	TypeMismatch ValidationKind = iota + 1
	// NotAllowed means the value is not a member of the allowed set.
	NotAllowed
	// Forbidden means the value is a member of the forbidden set.
	Forbidden
	// Invalid means the value failed a validator tag expression.
	Invalid
)

func (k ValidationKind) String() string {
	switch k {
	case TypeMismatch:
		return "type mismatch"
	case NotAllowed:
		return "not allowed"
	case Forbidden:
		return "forbidden"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// ValidationError reports a rejected property assignment.
//
// The offending value is never committed to the component. Err carries the
// underlying validator error for tag rules and is nil otherwise.
type ValidationError struct {
	Property string
	Kind     ValidationKind
	Value    any
	Rule     Rule
	Err      error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("uikit: property %q: %s (value %v, rule %s)", e.Property, e.Kind, e.Value, e.Rule)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// MissingPropertyError is returned by Build and HTML when a required
// property is absent. Name is the first missing property in declaration
// order; Missing lists all of them.
type MissingPropertyError struct {
	Component string
	Name      string
	Missing   []string
}

func (e *MissingPropertyError) Error() string {
	if len(e.Missing) > 1 {
		return fmt.Sprintf("uikit: %s: required properties missing: %s", e.Component, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("uikit: %s: required property %q missing", e.Component, e.Name)
}

// Is makes errors.Is(err, ErrMissingProperty) match.
func (e *MissingPropertyError) Is(target error) bool {
	return target == ErrMissingProperty
}

// IsMissingProperty checks if err is a missing required property error.
func IsMissingProperty(err error) bool {
	return errors.Is(err, ErrMissingProperty)
}

// IsValidationError checks if err contains a property validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// ValidationKindOf returns the kind of the first ValidationError in err's
// tree, or 0 when there is none.
func ValidationKindOf(err error) ValidationKind {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return 0
}

// IsDecryptionError checks if err is a decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}
