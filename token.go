package jwt

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"

	"github.com/cybergodev/jwt/v2/internal/core"
)

// State is the lifecycle stage of a Token.
type State int

const (
	// StateUnsigned is a token built by New that has not been transmitted.
	StateUnsigned State = iota
	// StateParsed is a token decoded from its compact form whose signature
	// has not been checked.
	StateParsed
	// StateVerified is a parsed token whose signature has been checked.
	StateVerified
)

func (s State) String() string {
	switch s {
	case StateUnsigned:
		return "unsigned"
	case StateParsed:
		return "parsed"
	case StateVerified:
		return "verified"
	default:
		return "unknown"
	}
}

// Token is a header and claims pair, plus the signature and the segments as
// transmitted once it has been parsed. A Token is never modified after
// construction; operations that change state return a new Token.
type Token[H JoseHeader, C any] struct {
	header    H
	claims    C
	signature []byte

	rawHeader    string
	rawClaims    string
	rawSignature string

	state State
}

// New returns an unsigned token.
func New[H JoseHeader, C any](header H, claims C) *Token[H, C] {
	return &Token[H, C]{
		header: header,
		claims: claims,
		state:  StateUnsigned,
	}
}

// Header returns the token header.
func (t *Token[H, C]) Header() H { return t.header }

// Claims returns the token claims.
func (t *Token[H, C]) Claims() C { return t.claims }

// Signature returns a copy of the raw signature bytes; nil when unsigned.
func (t *Token[H, C]) Signature() []byte { return bytes.Clone(t.signature) }

// State reports the lifecycle stage.
func (t *Token[H, C]) State() State { return t.state }

// Verified reports whether the signature has been checked successfully.
func (t *Token[H, C]) Verified() bool { return t.state == StateVerified }

// String returns the compact form a parsed token was decoded from, or the
// empty string for an unsigned token.
func (t *Token[H, C]) String() string {
	if t.state == StateUnsigned {
		return ""
	}
	return core.Join(core.SigningInput(t.rawHeader, t.rawClaims), t.rawSignature)
}

// Sign serializes and signs the token, returning its compact form.
//
// A header without an algorithm takes the signer's, provided the header type
// implements AlgorithmConfigurer. A header declaring a different algorithm
// than the signer is rejected.
func (t *Token[H, C]) Sign(signer Signer) (string, error) {
	if t.state != StateUnsigned {
		return "", fmt.Errorf("%w: cannot sign a %s token", ErrTokenState, t.state)
	}
	if isNil(signer) {
		return "", fmt.Errorf("%w: signer is nil", ErrSigning)
	}

	header, err := headerForSigner(t.header, signer.Algorithm())
	if err != nil {
		return "", err
	}

	headerSegment, err := core.EncodeJSONSegment(header)
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode header: %w", ErrSigning, err)
	}

	claimsSegment, err := core.EncodeJSONSegment(t.claims)
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode claims: %w", ErrSigning, err)
	}

	signingInput := core.SigningInput(headerSegment, claimsSegment)

	signature, err := signer.Sign([]byte(signingInput))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSigning, err)
	}

	return core.Join(signingInput, core.EncodeSegment(signature)), nil
}

func headerForSigner[H JoseHeader](header H, alg AlgorithmType) (H, error) {
	if !alg.Valid() {
		return header, fmt.Errorf("%w: signer algorithm: %w", ErrSigning, &unsupportedAlgorithm{alg})
	}
	if isNil(header) {
		return header, fmt.Errorf("%w: header is nil", ErrSigning)
	}

	declared := header.Algorithm()
	if declared == "" {
		configurer, ok := any(header).(AlgorithmConfigurer[H])
		if !ok {
			return header, fmt.Errorf("%w: header declares no algorithm and cannot be configured", ErrSigning)
		}
		return configurer.WithAlgorithm(alg), nil
	}

	if declared != alg {
		return header, fmt.Errorf("%w: header declares %q but signer is %q", ErrSigning, declared, alg)
	}
	return header, nil
}

// Parse decodes a compact token without checking its signature, so the
// header can be inspected (for example to choose a key) before any
// cryptographic work. The returned token is in StateParsed.
func Parse[H JoseHeader, C any](text string) (*Token[H, C], error) {
	headerSegment, claimsSegment, signatureSegment, err := core.Split(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	token := &Token[H, C]{
		rawHeader:    headerSegment,
		rawClaims:    claimsSegment,
		rawSignature: signatureSegment,
		state:        StateParsed,
	}

	if err := core.DecodeJSONSegment(headerSegment, &token.header); err != nil {
		if errors.Is(err, ErrUnsupportedAlgorithm) {
			return nil, fmt.Errorf("invalid token header: %w", err)
		}
		return nil, fmt.Errorf("%w: failed to decode header: %w", ErrMalformedToken, err)
	}
	if isNil(token.header) {
		return nil, fmt.Errorf("%w: header is null", ErrMalformedToken)
	}

	if alg := token.header.Algorithm(); !alg.Valid() {
		return nil, fmt.Errorf("invalid token header: %w", &unsupportedAlgorithm{alg})
	}

	if err := core.DecodeJSONSegment(claimsSegment, &token.claims); err != nil {
		return nil, fmt.Errorf("%w: failed to decode claims: %w", ErrMalformedToken, err)
	}

	token.signature, err = core.DecodeSegment(signatureSegment)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode signature: %w", ErrMalformedToken, err)
	}

	return token, nil
}

// Verify parses text and checks its signature with verifier.
func Verify[H JoseHeader, C any](text string, verifier Verifier) (*Token[H, C], error) {
	token, err := Parse[H, C](text)
	if err != nil {
		return nil, err
	}
	return token.Verify(verifier)
}

// Verify checks the signature of a parsed token and returns it in
// StateVerified. The header's declared algorithm must equal the verifier's
// before any signature math is attempted; every failure wraps
// ErrInvalidSignature.
func (t *Token[H, C]) Verify(verifier Verifier) (*Token[H, C], error) {
	if t.state == StateUnsigned {
		return nil, fmt.Errorf("%w: cannot verify an unsigned token", ErrTokenState)
	}
	if isNil(verifier) {
		return nil, fmt.Errorf("%w: verifier is nil", ErrInvalidSignature)
	}

	keyAlg := verifier.Algorithm()
	if !keyAlg.Valid() {
		return nil, fmt.Errorf("%w: verifier algorithm: %w", ErrInvalidSignature, &unsupportedAlgorithm{keyAlg})
	}
	if declared := t.header.Algorithm(); declared != keyAlg {
		return nil, &AlgorithmMismatchError{Declared: declared, Key: keyAlg}
	}

	signingInput := core.SigningInput(t.rawHeader, t.rawClaims)
	ok, err := verifier.Verify([]byte(signingInput), t.signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	if !ok {
		return nil, ErrInvalidSignature
	}

	verified := *t
	verified.signature = bytes.Clone(t.signature)
	verified.state = StateVerified
	return &verified, nil
}

// SignClaims signs claims under a header that carries only the signer's
// algorithm.
func SignClaims[C any](signer Signer, claims C) (string, error) {
	return New(Header{}, claims).Sign(signer)
}

// VerifyClaims verifies text with the default Header and returns its claims.
func VerifyClaims[C any](text string, verifier Verifier) (C, error) {
	token, err := Verify[Header, C](text, verifier)
	if err != nil {
		var zero C
		return zero, err
	}
	return token.Claims(), nil
}

type unsupportedAlgorithm struct {
	alg AlgorithmType
}

func (e *unsupportedAlgorithm) Error() string {
	if e.alg == "" {
		return ErrUnsupportedAlgorithm.Error() + ": no algorithm declared"
	}
	return fmt.Sprintf("%s: %q", ErrUnsupportedAlgorithm.Error(), string(e.alg))
}

func (e *unsupportedAlgorithm) Unwrap() error { return ErrUnsupportedAlgorithm }

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
