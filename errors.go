package jwt

import (
	"errors"
	"fmt"

	"github.com/cybergodev/jwt/v2/internal/core"
	"github.com/cybergodev/jwt/v2/internal/signing"
)

// Predefined errors. Every failure returned by this package wraps one of
// them, so callers can classify with errors.Is.
var (
	// Encoding errors
	ErrDecode         = core.ErrDecode
	ErrParse          = core.ErrParse
	ErrEmptyToken     = core.ErrEmptyToken
	ErrMalformedToken = errors.New("malformed token")

	// Algorithm and key errors
	ErrUnsupportedAlgorithm = signing.ErrUnsupportedAlgorithm
	ErrInvalidKey           = signing.ErrInvalidKey
	ErrKeyNotFound          = errors.New("key not found")
	ErrMissingKeyID         = fmt.Errorf("%w: token header has no key id", ErrKeyNotFound)

	// Signing and verification errors
	ErrSigning          = errors.New("signing failed")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenState       = errors.New("operation not valid in current token state")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
)

// AlgorithmMismatchError is returned when the algorithm a token declares
// differs from the algorithm of the key used to check or produce it. It
// unwraps to ErrInvalidSignature.
type AlgorithmMismatchError struct {
	Declared AlgorithmType // Algorithm named in the token header
	Key      AlgorithmType // Algorithm of the signer or verifier
}

func (e *AlgorithmMismatchError) Error() string {
	return fmt.Sprintf("algorithm mismatch: header declares %q but key is %q", e.Declared, e.Key)
}

func (e *AlgorithmMismatchError) Unwrap() error {
	return ErrInvalidSignature
}

// ValidationError represents a validation error for a specific field.
// It provides detailed information about what validation failed and why.
type ValidationError struct {
	Field   string // The field that failed validation
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation failed for field '%s': %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
