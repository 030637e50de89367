package jwt

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"fmt"

	"github.com/cybergodev/jwt/v2/internal/security"
	"github.com/cybergodev/jwt/v2/internal/signing"
)

// HMAC is a shared-secret key for HS256, HS384 or HS512.
type HMAC struct {
	alg    AlgorithmType
	method signing.Method
	secret *security.SecureBytes
}

// NewHMAC copies secret into a new HMAC key for alg.
func NewHMAC(alg AlgorithmType, secret []byte) (*HMAC, error) {
	method, err := methodForFamily(alg, FamilyHMAC)
	if err != nil {
		return nil, err
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: HMAC secret is empty", ErrInvalidKey)
	}
	return &HMAC{
		alg:    alg,
		method: method,
		secret: security.NewSecureBytesFromSlice(secret),
	}, nil
}

func (h *HMAC) Algorithm() AlgorithmType { return h.alg }

func (h *HMAC) Sign(message []byte) ([]byte, error) {
	return h.method.Sign(message, h.secret.Bytes())
}

// Verify recomputes the MAC and compares it in constant time.
func (h *HMAC) Verify(message, signature []byte) (bool, error) {
	return h.method.Verify(message, signature, h.secret.Bytes())
}

// Destroy zeroes the secret. The key is unusable afterwards.
func (h *HMAC) Destroy() {
	h.secret.Destroy()
}

// RSA is an RSASSA-PKCS1-v1_5 key for RS256, RS384 or RS512.
type RSA struct {
	alg     AlgorithmType
	method  signing.Method
	private *rsa.PrivateKey
	public  *rsa.PublicKey
}

// NewRSASigner returns a key that signs with priv and verifies with its
// public half.
func NewRSASigner(alg AlgorithmType, priv *rsa.PrivateKey) (*RSA, error) {
	if priv == nil {
		return nil, fmt.Errorf("%w: RSA private key is nil", ErrInvalidKey)
	}
	key, err := NewRSAVerifier(alg, &priv.PublicKey)
	if err != nil {
		return nil, err
	}
	key.private = priv
	return key, nil
}

// NewRSAVerifier returns a verify-only key.
func NewRSAVerifier(alg AlgorithmType, pub *rsa.PublicKey) (*RSA, error) {
	method, err := methodForFamily(alg, FamilyRSA)
	if err != nil {
		return nil, err
	}
	if err := signing.CheckRSAKey(pub); err != nil {
		return nil, err
	}
	return &RSA{alg: alg, method: method, public: pub}, nil
}

func (r *RSA) Algorithm() AlgorithmType { return r.alg }

func (r *RSA) Sign(message []byte) ([]byte, error) {
	if r.private == nil {
		return nil, fmt.Errorf("%w: %s key has no private half", ErrSigning, r.alg)
	}
	return r.method.Sign(message, r.private)
}

func (r *RSA) Verify(message, signature []byte) (bool, error) {
	return r.method.Verify(message, signature, r.public)
}

// PublicKey returns the verification key.
func (r *RSA) PublicKey() *rsa.PublicKey { return r.public }

// ECDSA is an elliptic-curve key for ES256 (P-256), ES384 (P-384) or
// ES512 (P-521).
type ECDSA struct {
	alg     AlgorithmType
	method  signing.Method
	private *ecdsa.PrivateKey
	public  *ecdsa.PublicKey
}

// NewECDSASigner returns a key that signs with priv and verifies with its
// public half. The curve must match alg.
func NewECDSASigner(alg AlgorithmType, priv *ecdsa.PrivateKey) (*ECDSA, error) {
	if priv == nil {
		return nil, fmt.Errorf("%w: ECDSA private key is nil", ErrInvalidKey)
	}
	key, err := NewECDSAVerifier(alg, &priv.PublicKey)
	if err != nil {
		return nil, err
	}
	key.private = priv
	return key, nil
}

// NewECDSAVerifier returns a verify-only key. The curve must match alg.
func NewECDSAVerifier(alg AlgorithmType, pub *ecdsa.PublicKey) (*ECDSA, error) {
	method, err := methodForFamily(alg, FamilyECDSA)
	if err != nil {
		return nil, err
	}
	if err := signing.CheckECDSAKey(string(alg), pub); err != nil {
		return nil, err
	}
	return &ECDSA{alg: alg, method: method, public: pub}, nil
}

func (e *ECDSA) Algorithm() AlgorithmType { return e.alg }

func (e *ECDSA) Sign(message []byte) ([]byte, error) {
	if e.private == nil {
		return nil, fmt.Errorf("%w: %s key has no private half", ErrSigning, e.alg)
	}
	return e.method.Sign(message, e.private)
}

func (e *ECDSA) Verify(message, signature []byte) (bool, error) {
	return e.method.Verify(message, signature, e.public)
}

// PublicKey returns the verification key.
func (e *ECDSA) PublicKey() *ecdsa.PublicKey { return e.public }

func methodForFamily(alg AlgorithmType, family Family) (signing.Method, error) {
	method, err := alg.method()
	if err != nil {
		return nil, err
	}
	if method.Family() != family {
		return nil, fmt.Errorf("%w: %s is not an %s algorithm", ErrUnsupportedAlgorithm, alg, family)
	}
	return method, nil
}
