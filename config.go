package jwt

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cybergodev/jwt/v2/internal/security"
)

// DefaultMinSecretLength is the minimum HMAC secret length applied by
// DefaultConfig.
const DefaultMinSecretLength = 32

// KeyConfig describes one entry of a key set. HMAC entries carry Secret;
// RSA and ECDSA entries carry a private key, a public key, or both, in PEM
// form. When a private key is present the public key is derived from it.
type KeyConfig struct {
	// ID is the key id written to and matched against the "kid" header
	ID string `yaml:"id" json:"id"`

	// Algorithm is the only algorithm this key is used with
	Algorithm AlgorithmType `yaml:"algorithm" json:"algorithm"`

	// Secret is the shared secret for HS256, HS384 and HS512
	Secret string `yaml:"secret,omitempty" json:"secret,omitempty"`

	// PrivateKeyPEM holds a PEM encoded RSA or EC private key
	PrivateKeyPEM string `yaml:"private_key_pem,omitempty" json:"private_key_pem,omitempty"`

	// PublicKeyPEM holds a PEM encoded RSA or EC public key
	PublicKeyPEM string `yaml:"public_key_pem,omitempty" json:"public_key_pem,omitempty"`
}

// Config describes a key set.
type Config struct {
	// Keys lists the keys; ids must be unique
	Keys []KeyConfig `yaml:"keys" json:"keys"`

	// MinSecretLength is the minimum HMAC secret length in bytes
	MinSecretLength int `yaml:"min_secret_length" json:"min_secret_length"`

	// RejectWeakSecrets refuses HMAC secrets with repeated patterns, common
	// words or low entropy
	RejectWeakSecrets bool `yaml:"reject_weak_secrets" json:"reject_weak_secrets"`
}

// DefaultConfig returns a secure default configuration with no keys.
func DefaultConfig() Config {
	return Config{
		MinSecretLength:   DefaultMinSecretLength,
		RejectWeakSecrets: true,
	}
}

// ParseConfig reads a YAML (or JSON) document on top of DefaultConfig and
// validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate validates the configuration and returns a *ValidationError if
// it is invalid.
func (c *Config) Validate() error {
	if c == nil {
		return &ValidationError{Field: "config", Message: "config is nil", Err: ErrInvalidConfig}
	}
	if c.MinSecretLength < 0 {
		return &ValidationError{Field: "min_secret_length", Message: "must not be negative", Err: ErrInvalidConfig}
	}
	if len(c.Keys) == 0 {
		return &ValidationError{Field: "keys", Message: "at least one key is required", Err: ErrInvalidConfig}
	}

	seen := make(map[string]struct{}, len(c.Keys))
	for i := range c.Keys {
		k := &c.Keys[i]
		field := fmt.Sprintf("keys[%d]", i)

		if k.ID == "" {
			return &ValidationError{Field: field + ".id", Message: "key id is required", Err: ErrInvalidConfig}
		}
		if _, dup := seen[k.ID]; dup {
			return &ValidationError{Field: field + ".id", Message: fmt.Sprintf("duplicate key id %q", k.ID), Err: ErrInvalidConfig}
		}
		seen[k.ID] = struct{}{}

		if !k.Algorithm.Valid() {
			return &ValidationError{Field: field + ".algorithm", Message: fmt.Sprintf("%q is not supported", k.Algorithm), Err: ErrUnsupportedAlgorithm}
		}

		if err := c.validateMaterial(field, k); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateMaterial(field string, k *KeyConfig) error {
	if k.Algorithm.Family() == FamilyHMAC {
		if k.PrivateKeyPEM != "" || k.PublicKeyPEM != "" {
			return &ValidationError{Field: field, Message: "HMAC keys take a secret, not PEM material", Err: ErrInvalidConfig}
		}
		if k.Secret == "" {
			return &ValidationError{Field: field + ".secret", Message: "secret is required", Err: ErrInvalidKey}
		}
		if len(k.Secret) < c.MinSecretLength {
			return &ValidationError{
				Field:   field + ".secret",
				Message: fmt.Sprintf("minimum %d bytes required, got %d", c.MinSecretLength, len(k.Secret)),
				Err:     ErrInvalidKey,
			}
		}
		if c.RejectWeakSecrets && security.IsWeakKey([]byte(k.Secret)) {
			return &ValidationError{Field: field + ".secret", Message: "key must have sufficient entropy and complexity", Err: ErrInvalidKey}
		}
		return nil
	}

	if k.Secret != "" {
		return &ValidationError{Field: field + ".secret", Message: fmt.Sprintf("%s keys take PEM material, not a secret", k.Algorithm), Err: ErrInvalidConfig}
	}
	if k.PrivateKeyPEM == "" && k.PublicKeyPEM == "" {
		return &ValidationError{Field: field, Message: "a private or public key is required", Err: ErrInvalidKey}
	}
	return nil
}

// NewKeySet validates cfg and builds a Store holding one Key per entry.
// Entries with only a public key produce verify-only keys.
func NewKeySet(cfg Config) (MapStore[Key], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	keys := make(MapStore[Key], len(cfg.Keys))
	for i, k := range cfg.Keys {
		key, err := buildKey(k)
		if err != nil {
			return nil, &ValidationError{Field: fmt.Sprintf("keys[%d]", i), Message: "cannot load key", Err: err}
		}
		keys[k.ID] = key
	}
	return keys, nil
}

func buildKey(k KeyConfig) (Key, error) {
	switch k.Algorithm.Family() {
	case FamilyHMAC:
		return NewHMAC(k.Algorithm, []byte(k.Secret))

	case FamilyRSA:
		if k.PrivateKeyPEM != "" {
			priv, err := ParseRSAPrivateKeyPEM([]byte(k.PrivateKeyPEM))
			if err != nil {
				return nil, err
			}
			return NewRSASigner(k.Algorithm, priv)
		}
		pub, err := ParseRSAPublicKeyPEM([]byte(k.PublicKeyPEM))
		if err != nil {
			return nil, err
		}
		return NewRSAVerifier(k.Algorithm, pub)

	case FamilyECDSA:
		if k.PrivateKeyPEM != "" {
			priv, err := ParseECPrivateKeyPEM([]byte(k.PrivateKeyPEM))
			if err != nil {
				return nil, err
			}
			return NewECDSASigner(k.Algorithm, priv)
		}
		pub, err := ParseECPublicKeyPEM([]byte(k.PublicKeyPEM))
		if err != nil {
			return nil, err
		}
		return NewECDSAVerifier(k.Algorithm, pub)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, k.Algorithm)
	}
}
