package signing

import (
	"crypto"
	"crypto/rsa"
	"fmt"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// MinRSAKeyBits is the smallest modulus accepted for RS256/384/512.
const MinRSAKeyBits = 2048

type rsaMethod struct {
	inner *jwtlib.SigningMethodRSA
}

func (r *rsaMethod) Alg() string       { return r.inner.Alg() }
func (r *rsaMethod) Family() Family    { return FamilyRSA }
func (r *rsaMethod) Hash() crypto.Hash { return r.inner.Hash }

func (r *rsaMethod) Sign(message []byte, key any) ([]byte, error) {
	priv, ok := key.(*rsa.PrivateKey)
	if !ok || priv == nil {
		return nil, fmt.Errorf("%w: RSA signing requires *rsa.PrivateKey, got %T", ErrInvalidKey, key)
	}
	if err := CheckRSAKey(&priv.PublicKey); err != nil {
		return nil, err
	}
	return r.inner.Sign(string(message), priv)
}

func (r *rsaMethod) Verify(message, signature []byte, key any) (bool, error) {
	pub, ok := key.(*rsa.PublicKey)
	if !ok || pub == nil {
		return false, fmt.Errorf("%w: RSA verification requires *rsa.PublicKey, got %T", ErrInvalidKey, key)
	}
	if err := CheckRSAKey(pub); err != nil {
		return false, err
	}
	if len(signature) != pub.Size() {
		return false, fmt.Errorf("%w: RSA signature is %d bytes, modulus is %d", ErrMalformedSignature, len(signature), pub.Size())
	}

	// A correctly sized signature that fails PKCS#1 v1.5 is a mismatch.
	return r.inner.Verify(string(message), signature, pub) == nil, nil
}

// CheckRSAKey rejects public keys below MinRSAKeyBits.
func CheckRSAKey(pub *rsa.PublicKey) error {
	if pub == nil || pub.N == nil {
		return fmt.Errorf("%w: RSA key is nil", ErrInvalidKey)
	}
	if bits := pub.N.BitLen(); bits < MinRSAKeyBits {
		return fmt.Errorf("%w: RSA key is %d bits, minimum %d", ErrInvalidKey, bits, MinRSAKeyBits)
	}
	return nil
}
