package signing

import (
	"crypto"
	"errors"
	"fmt"

	_ "crypto/sha256"
	_ "crypto/sha512"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
	ErrInvalidKey           = errors.New("invalid key for signing algorithm")
	ErrMalformedSignature   = errors.New("malformed signature")
)

// Family groups algorithms that share key material and primitive.
type Family int

const (
	FamilyHMAC Family = iota + 1
	FamilyRSA
	FamilyECDSA
)

func (f Family) String() string {
	switch f {
	case FamilyHMAC:
		return "HMAC"
	case FamilyRSA:
		return "RSA"
	case FamilyECDSA:
		return "ECDSA"
	default:
		return "unknown"
	}
}

// Method is the primitive behind one algorithm identity. Sign and Verify
// operate on the raw signing input and raw signature bytes.
type Method interface {
	Alg() string
	Family() Family
	Hash() crypto.Hash
	Sign(message []byte, key any) ([]byte, error)
	// Verify reports false for a well-formed signature that does not match.
	// Errors are reserved for unusable keys and malformed signatures.
	Verify(message, signature []byte, key any) (bool, error)
}

var methods = map[string]Method{
	"HS256": &hmacMethod{inner: jwtlib.SigningMethodHS256},
	"HS384": &hmacMethod{inner: jwtlib.SigningMethodHS384},
	"HS512": &hmacMethod{inner: jwtlib.SigningMethodHS512},
	"RS256": &rsaMethod{inner: jwtlib.SigningMethodRS256},
	"RS384": &rsaMethod{inner: jwtlib.SigningMethodRS384},
	"RS512": &rsaMethod{inner: jwtlib.SigningMethodRS512},
	"ES256": &ecdsaMethod{inner: jwtlib.SigningMethodES256},
	"ES384": &ecdsaMethod{inner: jwtlib.SigningMethodES384},
	"ES512": &ecdsaMethod{inner: jwtlib.SigningMethodES512},
}

// GetMethod returns the primitive registered for alg. The table is fixed;
// names outside it never resolve.
func GetMethod(alg string) (Method, error) {
	method, ok := methods[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
	return method, nil
}
