package uikit

import (
	"errors"

	"github.com/pthm/uikit/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// NewEncoder creates a new encoder with the given key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

// SealProps encodes the component's properties with enc. Signed output is
// tamper-proof but readable; sensitive output is encrypted.
func (c *Component) SealProps(enc *Encoder, sensitive bool) (string, error) {
	return enc.Encode(c.props.Properties(), sensitive)
}

// OpenProps decodes sealed properties and assigns them with
// SetProperties, so rules apply when validation is enabled.
func (c *Component) OpenProps(enc *Encoder, sealed string, sensitive bool) error {
	props, err := enc.Decode(sealed, sensitive)
	if err != nil {
		return wrapEncodingError(err)
	}
	return c.SetProperties(props)
}

// Seal encodes c's properties with the factory's encoder.
func (f *Factory) Seal(c *Component, sensitive bool) (string, error) {
	if f.encoder == nil {
		return "", errors.New("uikit: factory has no encoder")
	}
	return c.SealProps(f.encoder, sensitive)
}

// Restore builds a component of kind from sealed properties produced by
// Seal.
func (f *Factory) Restore(kind Kind, sealed string, sensitive bool, opts ...Option) (*Component, error) {
	if f.encoder == nil {
		return nil, errors.New("uikit: factory has no encoder")
	}
	props, err := f.encoder.Decode(sealed, sensitive)
	if err != nil {
		return nil, wrapEncodingError(err)
	}
	return f.Make(kind, props, opts...)
}

// wrapEncodingError maps encoding package errors to uikit sentinels.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrInvalidFormat) {
		return errors.Join(ErrInvalidFormat, err)
	}
	if errors.Is(err, encoding.ErrSignatureInvalid) {
		return ErrSignatureInvalid
	}
	if errors.Is(err, encoding.ErrDecryptFailed) {
		return ErrDecryptFailed
	}
	return err
}
