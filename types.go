package jwt

import (
	"crypto"
	"encoding/json"
	"fmt"

	"github.com/cybergodev/jwt/v2/internal/signing"
)

// AlgorithmType identifies how a token is secured. The set is closed: only
// the constants below are valid, and the zero value means "not yet chosen".
type AlgorithmType string

const (
	// HS256 uses HMAC with SHA-256 (recommended for most use cases)
	HS256 AlgorithmType = "HS256"
	// HS384 uses HMAC with SHA-384
	HS384 AlgorithmType = "HS384"
	// HS512 uses HMAC with SHA-512
	HS512 AlgorithmType = "HS512"

	// RS256 uses RSASSA-PKCS1-v1_5 with SHA-256
	RS256 AlgorithmType = "RS256"
	// RS384 uses RSASSA-PKCS1-v1_5 with SHA-384
	RS384 AlgorithmType = "RS384"
	// RS512 uses RSASSA-PKCS1-v1_5 with SHA-512
	RS512 AlgorithmType = "RS512"

	// ES256 uses ECDSA on P-256 with SHA-256
	ES256 AlgorithmType = "ES256"
	// ES384 uses ECDSA on P-384 with SHA-384
	ES384 AlgorithmType = "ES384"
	// ES512 uses ECDSA on P-521 with SHA-512
	ES512 AlgorithmType = "ES512"
)

// Family is the key family an algorithm belongs to.
type Family = signing.Family

const (
	FamilyHMAC  = signing.FamilyHMAC
	FamilyRSA   = signing.FamilyRSA
	FamilyECDSA = signing.FamilyECDSA
)

// Algorithms returns every supported algorithm identity.
func Algorithms() []AlgorithmType {
	return []AlgorithmType{HS256, HS384, HS512, RS256, RS384, RS512, ES256, ES384, ES512}
}

// Valid reports whether a is one of the supported identities.
func (a AlgorithmType) Valid() bool {
	_, err := signing.GetMethod(string(a))
	return err == nil
}

// Family returns the key family of a, or 0 for an unsupported identity.
func (a AlgorithmType) Family() Family {
	method, err := signing.GetMethod(string(a))
	if err != nil {
		return 0
	}
	return method.Family()
}

// Hash returns the digest used by a, or 0 for an unsupported identity.
func (a AlgorithmType) Hash() crypto.Hash {
	method, err := signing.GetMethod(string(a))
	if err != nil {
		return 0
	}
	return method.Hash()
}

func (a AlgorithmType) String() string {
	return string(a)
}

// MarshalJSON refuses to emit an identity outside the supported set.
func (a AlgorithmType) MarshalJSON() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(a))
	}
	return json.Marshal(string(a))
}

// UnmarshalJSON accepts only the exact short codes of supported algorithms.
func (a *AlgorithmType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("algorithm must be a string: %w", err)
	}
	alg := AlgorithmType(s)
	if !alg.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
	*a = alg
	return nil
}

func (a AlgorithmType) method() (signing.Method, error) {
	return signing.GetMethod(string(a))
}
