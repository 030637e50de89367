package security

import (
	"crypto/subtle"
	"runtime"
	"sync"
)

// SecureBytes holds secret key material and zeroes it on Destroy or when it
// is garbage collected.
type SecureBytes struct {
	data []byte
	mu   sync.RWMutex
}

// NewSecureBytesFromSlice copies data into a new SecureBytes. The caller
// keeps ownership of data.
func NewSecureBytesFromSlice(data []byte) *SecureBytes {
	secure := &SecureBytes{
		data: make([]byte, len(data)),
	}
	copy(secure.data, data)
	runtime.SetFinalizer(secure, (*SecureBytes).destroy)
	return secure
}

// Bytes returns the held slice; it must not be modified or retained.
// After Destroy it returns nil.
func (s *SecureBytes) Bytes() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Len reports the number of secret bytes, zero once destroyed.
func (s *SecureBytes) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Destroy zeroes the secret. It is safe to call more than once.
func (s *SecureBytes) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroy()
	runtime.SetFinalizer(s, nil)
}

func (s *SecureBytes) destroy() {
	if s.data != nil {
		ZeroBytes(s.data)
		s.data = nil
	}
}

// ZeroBytes overwrites data with zeros.
func ZeroBytes(data []byte) {
	clear(data)
	runtime.KeepAlive(data)
}

// SecureCompare reports whether a and b are equal. The time taken depends
// only on the lengths of the inputs, not on their contents.
func SecureCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
