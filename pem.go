package jwt

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"fmt"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// ParseRSAPrivateKeyPEM decodes a PKCS#1 or PKCS#8 RSA private key.
func ParseRSAPrivateKeyPEM(data []byte) (*rsa.PrivateKey, error) {
	key, err := jwtlib.ParseRSAPrivateKeyFromPEM(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return key, nil
}

// ParseRSAPublicKeyPEM decodes a PKIX public key or certificate.
func ParseRSAPublicKeyPEM(data []byte) (*rsa.PublicKey, error) {
	key, err := jwtlib.ParseRSAPublicKeyFromPEM(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return key, nil
}

// ParseECPrivateKeyPEM decodes a SEC 1 or PKCS#8 EC private key.
func ParseECPrivateKeyPEM(data []byte) (*ecdsa.PrivateKey, error) {
	key, err := jwtlib.ParseECPrivateKeyFromPEM(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return key, nil
}

func ParseECPublicKeyPEM(data []byte) (*ecdsa.PublicKey, error) {
	key, err := jwtlib.ParseECPublicKeyFromPEM(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return key, nil
}
