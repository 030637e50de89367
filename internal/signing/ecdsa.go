package signing

import (
	"crypto"
	"crypto/ecdsa"
	"fmt"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

type ecdsaMethod struct {
	inner *jwtlib.SigningMethodECDSA
}

func (e *ecdsaMethod) Alg() string       { return e.inner.Alg() }
func (e *ecdsaMethod) Family() Family    { return FamilyECDSA }
func (e *ecdsaMethod) Hash() crypto.Hash { return e.inner.Hash }

// Sign produces the fixed-width r||s encoding. Signatures are randomized.
func (e *ecdsaMethod) Sign(message []byte, key any) ([]byte, error) {
	priv, ok := key.(*ecdsa.PrivateKey)
	if !ok || priv == nil {
		return nil, fmt.Errorf("%w: ECDSA signing requires *ecdsa.PrivateKey, got %T", ErrInvalidKey, key)
	}
	if err := e.CheckKey(&priv.PublicKey); err != nil {
		return nil, err
	}
	return e.inner.Sign(string(message), priv)
}

func (e *ecdsaMethod) Verify(message, signature []byte, key any) (bool, error) {
	pub, ok := key.(*ecdsa.PublicKey)
	if !ok || pub == nil {
		return false, fmt.Errorf("%w: ECDSA verification requires *ecdsa.PublicKey, got %T", ErrInvalidKey, key)
	}
	if err := e.CheckKey(pub); err != nil {
		return false, err
	}
	if want := 2 * e.inner.KeySize; len(signature) != want {
		return false, fmt.Errorf("%w: ECDSA signature is %d bytes, want %d", ErrMalformedSignature, len(signature), want)
	}

	return e.inner.Verify(string(message), signature, pub) == nil, nil
}

// CheckKey rejects keys whose curve does not match the algorithm's digest.
func (e *ecdsaMethod) CheckKey(pub *ecdsa.PublicKey) error {
	if pub == nil || pub.Curve == nil {
		return fmt.Errorf("%w: ECDSA key is nil", ErrInvalidKey)
	}
	if bits := pub.Curve.Params().BitSize; bits != e.inner.CurveBits {
		return fmt.Errorf("%w: %s requires a %d-bit curve, key is %d bits", ErrInvalidKey, e.Alg(), e.inner.CurveBits, bits)
	}
	return nil
}

// CheckECDSAKey validates pub against the curve required by alg.
func CheckECDSAKey(alg string, pub *ecdsa.PublicKey) error {
	method, err := GetMethod(alg)
	if err != nil {
		return err
	}
	em, ok := method.(*ecdsaMethod)
	if !ok {
		return fmt.Errorf("%w: %s is not an ECDSA algorithm", ErrUnsupportedAlgorithm, alg)
	}
	return em.CheckKey(pub)
}
