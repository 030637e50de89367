package jwt

import (
	"fmt"
	"sort"
	"sync"
)

// Store resolves a key id to a key by exact match.
type Store[A any] interface {
	Lookup(keyID string) (A, bool)
}

// MapStore is a Store backed by a plain map. It must not be modified once
// shared; concurrent lookups are safe.
type MapStore[A any] map[string]A

func (m MapStore[A]) Lookup(keyID string) (A, bool) {
	key, ok := m[keyID]
	return key, ok
}

// SyncStore is a Store that can be updated while it is in use.
type SyncStore[A any] struct {
	keys map[string]A
	mu   sync.RWMutex
}

// NewSyncStore creates an empty SyncStore.
func NewSyncStore[A any]() *SyncStore[A] {
	return &SyncStore[A]{keys: make(map[string]A)}
}

// Set adds or replaces the key for keyID.
func (s *SyncStore[A]) Set(keyID string, key A) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.keys == nil {
		s.keys = make(map[string]A)
	}
	s.keys[keyID] = key
}

// Delete removes keyID and reports whether it was present.
func (s *SyncStore[A]) Delete(keyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.keys[keyID]
	delete(s.keys, keyID)
	return ok
}

func (s *SyncStore[A]) Lookup(keyID string) (A, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key, ok := s.keys[keyID]
	return key, ok
}

// Len returns the number of keys.
func (s *SyncStore[A]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}

// KeyIDs returns the key ids in ascending order.
func (s *SyncStore[A]) KeyIDs() []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.keys))
	for id := range s.keys {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// SignWithStore signs claims with the key stored under keyID. The header's
// kid is set to keyID and its algorithm to the key's algorithm.
func SignWithStore[S Signer, C any](store Store[S], keyID string, header Header, claims C) (string, error) {
	if store == nil {
		return "", fmt.Errorf("%w: store is nil", ErrKeyNotFound)
	}
	signer, ok := store.Lookup(keyID)
	if !ok || isNil(signer) {
		return "", fmt.Errorf("%w: %q", ErrKeyNotFound, keyID)
	}

	header = header.WithKeyID(keyID).WithAlgorithm(signer.Algorithm())
	return New(header, claims).Sign(signer)
}

// VerifyWithStore parses text, resolves the verifier named by the header's
// kid and checks the signature with it.
func VerifyWithStore[V Verifier, C any](store Store[V], text string) (*Token[Header, C], error) {
	token, err := Parse[Header, C](text)
	if err != nil {
		return nil, err
	}

	keyID := token.Header().KeyID()
	if keyID == "" {
		return nil, ErrMissingKeyID
	}
	if store == nil {
		return nil, fmt.Errorf("%w: store is nil", ErrKeyNotFound)
	}
	verifier, ok := store.Lookup(keyID)
	if !ok || isNil(verifier) {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, keyID)
	}

	return token.Verify(verifier)
}
