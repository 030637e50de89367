package signing

import (
	"crypto"
	"fmt"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/cybergodev/jwt/v2/internal/security"
)

type hmacMethod struct {
	inner *jwtlib.SigningMethodHMAC
}

func (h *hmacMethod) Alg() string       { return h.inner.Alg() }
func (h *hmacMethod) Family() Family    { return FamilyHMAC }
func (h *hmacMethod) Hash() crypto.Hash { return h.inner.Hash }

func (h *hmacMethod) Sign(message []byte, key any) ([]byte, error) {
	keyBytes, err := hmacKey(key)
	if err != nil {
		return nil, err
	}
	return h.inner.Sign(string(message), keyBytes)
}

// Verify recomputes the MAC and compares it in constant time. A
// wrong-length signature is a mismatch rather than a malformed input.
func (h *hmacMethod) Verify(message, signature []byte, key any) (bool, error) {
	expected, err := h.Sign(message, key)
	if err != nil {
		return false, err
	}
	return security.SecureCompare(expected, signature), nil
}

func hmacKey(key any) ([]byte, error) {
	keyBytes, ok := key.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: HMAC key must be []byte, got %T", ErrInvalidKey, key)
	}
	if len(keyBytes) == 0 {
		return nil, fmt.Errorf("%w: HMAC key is empty", ErrInvalidKey)
	}
	return keyBytes, nil
}
