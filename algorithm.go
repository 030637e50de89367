package jwt

// Signer produces a signature over the signing input of a token.
type Signer interface {
	// Algorithm is the identity written to, and checked against, the
	// header's "alg" field.
	Algorithm() AlgorithmType
	Sign(message []byte) ([]byte, error)
}

// Verifier checks a signature over the signing input of a token.
//
// Verify returns false, not an error, for a well-formed signature that does
// not match. Errors are reserved for unusable keys and malformed signatures.
type Verifier interface {
	Algorithm() AlgorithmType
	Verify(message, signature []byte) (bool, error)
}

// Key can both sign and verify. HMAC, RSA and ECDSA all implement it; the
// asymmetric types fail to sign when built from a public key only.
type Key interface {
	Signer
	Verifier
}

var (
	_ Key = (*HMAC)(nil)
	_ Key = (*RSA)(nil)
	_ Key = (*ECDSA)(nil)
)
