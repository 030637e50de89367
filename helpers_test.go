package jwt

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSecretKey = "Kx9#mP2$vL8@nQ5!wR7&tY3^uI6*oE4%aS1+dF0-gH9~jK2#bN5$cM8@xZ7&vB4!"

var (
	rsaKeyOnce sync.Once
	rsaKey     *rsa.PrivateKey
	rsaKeyErr  error

	ecKeysOnce sync.Once
	ecKeys     map[AlgorithmType]*ecdsa.PrivateKey
	ecKeysErr  error
)

func testRSAKey(tb testing.TB) *rsa.PrivateKey {
	tb.Helper()
	rsaKeyOnce.Do(func() {
		rsaKey, rsaKeyErr = rsa.GenerateKey(rand.Reader, 2048)
	})
	require.NoError(tb, rsaKeyErr)
	return rsaKey
}

func testECKey(tb testing.TB, alg AlgorithmType) *ecdsa.PrivateKey {
	tb.Helper()
	ecKeysOnce.Do(func() {
		ecKeys = make(map[AlgorithmType]*ecdsa.PrivateKey, 3)
		curves := map[AlgorithmType]elliptic.Curve{
			ES256: elliptic.P256(),
			ES384: elliptic.P384(),
			ES512: elliptic.P521(),
		}
		for a, curve := range curves {
			key, err := ecdsa.GenerateKey(curve, rand.Reader)
			if err != nil {
				ecKeysErr = err
				return
			}
			ecKeys[a] = key
		}
	})
	require.NoError(tb, ecKeysErr)
	key, ok := ecKeys[alg]
	require.True(tb, ok, "no EC key for %s", alg)
	return key
}

// testKey returns a signing key for any supported algorithm.
func testKey(tb testing.TB, alg AlgorithmType) Key {
	tb.Helper()
	var (
		key Key
		err error
	)
	switch alg.Family() {
	case FamilyHMAC:
		key, err = NewHMAC(alg, []byte(testSecretKey))
	case FamilyRSA:
		key, err = NewRSASigner(alg, testRSAKey(tb))
	case FamilyECDSA:
		key, err = NewECDSASigner(alg, testECKey(tb, alg))
	default:
		tb.Fatalf("unsupported algorithm %q", alg)
	}
	require.NoError(tb, err)
	return key
}

func pemEncode(tb testing.TB, blockType string, der []byte) string {
	tb.Helper()
	return string(pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}))
}

func rsaPublicPEM(tb testing.TB, pub *rsa.PublicKey) string {
	tb.Helper()
	der, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(tb, err)
	return pemEncode(tb, "PUBLIC KEY", der)
}

// alwaysValid accepts every signature while claiming an algorithm identity.
type alwaysValid struct {
	alg    AlgorithmType
	called bool
}

func (v *alwaysValid) Algorithm() AlgorithmType { return v.alg }

func (v *alwaysValid) Verify(message, signature []byte) (bool, error) {
	v.called = true
	return true, nil
}

func encodeForTest(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func decodeForTest(segment string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(segment)
}
