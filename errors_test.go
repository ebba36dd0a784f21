package uikit

import (
	"errors"
	"fmt"
	"testing"
)

func TestMissingPropertyError(t *testing.T) {
	tests := []struct {
		name string
		err  *MissingPropertyError
		want string
	}{
		{
			name: "single",
			err:  &MissingPropertyError{Component: "button", Name: "label", Missing: []string{"label"}},
			want: `uikit: button: required property "label" missing`,
		},
		{
			name: "several",
			err:  &MissingPropertyError{Component: "form", Name: "a", Missing: []string{"a", "b"}},
			want: "uikit: form: required properties missing: a, b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
			}
			if !errors.Is(tt.err, ErrMissingProperty) {
				t.Error("errors.Is(err, ErrMissingProperty) = false")
			}
			if errors.Is(tt.err, ErrValidation) {
				t.Error("missing property must not match ErrValidation")
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Property: "type", Kind: NotAllowed, Value: "x", Rule: In("a")}

	want := `uikit: property "type": not allowed (value x, rule in=[a])`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	wrapped := fmt.Errorf("render: %w", err)
	if !IsValidationError(wrapped) {
		t.Error("IsValidationError(wrapped) = false")
	}
	if ValidationKindOf(wrapped) != NotAllowed {
		t.Errorf("ValidationKindOf() = %v, want NotAllowed", ValidationKindOf(wrapped))
	}
}

func TestValidationError_UnwrapsCause(t *testing.T) {
	cause := errors.New("cause")
	err := &ValidationError{Property: "name", Kind: Invalid, Rule: Tag("email"), Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
}

func TestValidationKindString(t *testing.T) {
	tests := []struct {
		kind ValidationKind
		want string
	}{
		{TypeMismatch, "type mismatch"},
		{NotAllowed, "not allowed"},
		{Forbidden, "forbidden"},
		{Invalid, "invalid"},
		{ValidationKind(0), "unknown"},
	}
	for _, tt := range tests {
		if tt.kind.String() != tt.want {
			t.Errorf("String() = %q, want %q", tt.kind.String(), tt.want)
		}
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		missing    bool
		invalid    bool
		decryption bool
	}{
		{"nil", nil, false, false, false},
		{"missing", &MissingPropertyError{Name: "x"}, true, false, false},
		{"validation", &ValidationError{Kind: Forbidden, Rule: NotIn()}, false, true, false},
		{"joined", errors.Join(errors.New("other"), &ValidationError{Kind: Forbidden, Rule: NotIn()}), false, true, false},
		{"signature", ErrSignatureInvalid, false, false, true},
		{"decrypt", fmt.Errorf("x: %w", ErrDecryptFailed), false, false, true},
		{"format", ErrInvalidFormat, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMissingProperty(tt.err); got != tt.missing {
				t.Errorf("IsMissingProperty() = %v, want %v", got, tt.missing)
			}
			if got := IsValidationError(tt.err); got != tt.invalid {
				t.Errorf("IsValidationError() = %v, want %v", got, tt.invalid)
			}
			if got := IsDecryptionError(tt.err); got != tt.decryption {
				t.Errorf("IsDecryptionError() = %v, want %v", got, tt.decryption)
			}
		})
	}
}
