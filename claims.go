package jwt

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Audience is the "aud" claim. It decodes from either a single string or an
// array of strings and always encodes as an array.
type Audience []string

func (a *Audience) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*a = Audience{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("invalid audience: expected string or array of strings")
	}
	*a = many
	return nil
}

// Contains reports whether aud is one of the audience values.
func (a Audience) Contains(aud string) bool {
	for _, v := range a {
		if v == aud {
			return true
		}
	}
	return false
}

// RegisteredClaims represents the registered JWT claims as defined in RFC 7519.
// The library only carries these values; checking expiry, not-before or
// audience is left to the caller.
type RegisteredClaims struct {
	Issuer    string       `json:"iss,omitempty"` // Token issuer
	Subject   string       `json:"sub,omitempty"` // Token subject
	Audience  Audience     `json:"aud,omitempty"` // Token audience
	ExpiresAt *NumericDate `json:"exp,omitempty"` // Expiration time
	NotBefore *NumericDate `json:"nbf,omitempty"` // Not valid before time
	IssuedAt  *NumericDate `json:"iat,omitempty"` // Issued at time
	ID        string       `json:"jti,omitempty"` // Unique token identifier
}

var registeredClaimNames = []string{"iss", "sub", "aud", "exp", "nbf", "iat", "jti"}

// MapClaims is an untyped claims set.
type MapClaims map[string]any

// Claims combines the registered claims with arbitrary private claims, all
// serialized as one flat JSON object.
type Claims struct {
	RegisteredClaims
	Private map[string]any
}

// NewClaims returns Claims with the given registered part and an empty
// private map.
func NewClaims(registered RegisteredClaims) Claims {
	return Claims{RegisteredClaims: registered, Private: map[string]any{}}
}

// MarshalJSON flattens registered and private claims into one object.
// Registered names take precedence over private entries with the same key.
func (c Claims) MarshalJSON() ([]byte, error) {
	registered, err := json.Marshal(c.RegisteredClaims)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]any, len(c.Private)+len(registeredClaimNames))
	for k, v := range c.Private {
		merged[k] = v
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(registered, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		merged[k] = v
	}

	return json.Marshal(merged)
}

// UnmarshalJSON splits a flat object into registered and private claims.
func (c *Claims) UnmarshalJSON(b []byte) error {
	var registered RegisteredClaims
	if err := json.Unmarshal(b, &registered); err != nil {
		return err
	}

	var private map[string]any
	if err := json.Unmarshal(b, &private); err != nil {
		return err
	}
	for _, name := range registeredClaimNames {
		delete(private, name)
	}

	c.RegisteredClaims = registered
	c.Private = private
	return nil
}

// NewTokenID returns a random identifier suitable for the "jti" claim.
func NewTokenID() string {
	return uuid.NewString()
}
