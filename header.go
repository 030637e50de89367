package jwt

// TypeJWT is the conventional value of the "typ" and "cty" header fields.
const TypeJWT = "JWT"

// JoseHeader is the contract every header type must satisfy: it declares
// the algorithm that secures the token and, optionally, the key id.
type JoseHeader interface {
	Algorithm() AlgorithmType
	KeyID() string
}

// AlgorithmConfigurer is implemented by header types whose algorithm and key
// id can be filled in by a signer or a Store. Both methods return a copy.
type AlgorithmConfigurer[H any] interface {
	WithAlgorithm(alg AlgorithmType) H
	WithKeyID(keyID string) H
}

// Header carries the commonly defined header fields. The zero value has no
// algorithm; signing fills it from the Signer.
type Header struct {
	Alg         AlgorithmType `json:"alg"`
	Kid         string        `json:"kid,omitempty"`
	Type        string        `json:"typ,omitempty"`
	ContentType string        `json:"cty,omitempty"`
}

func (h Header) Algorithm() AlgorithmType { return h.Alg }

func (h Header) KeyID() string { return h.Kid }

// WithAlgorithm returns a copy of h declaring alg.
func (h Header) WithAlgorithm(alg AlgorithmType) Header {
	h.Alg = alg
	return h
}

// WithKeyID returns a copy of h carrying keyID.
func (h Header) WithKeyID(keyID string) Header {
	h.Kid = keyID
	return h
}

var (
	_ JoseHeader                  = Header{}
	_ AlgorithmConfigurer[Header] = Header{}
)
