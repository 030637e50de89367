package security

import (
	"bytes"
	"strings"
)

var weakPatterns = []string{
	"password", "secret", "changeme", "default", "example",
	"qwerty", "asdfgh", "zxcvbn", "letmein", "admin",
	"12345678", "87654321", "abcdefgh",
}

// IsWeakKey reports whether an HMAC secret is trivially guessable: empty,
// built from one repeated byte or a short repeated pattern, made of few
// distinct bytes, or containing a well-known password fragment.
func IsWeakKey(key []byte) bool {
	if len(key) == 0 {
		return true
	}

	if bytes.Count(key, key[:1]) == len(key) {
		return true
	}

	if hasRepeatedPattern(key) || hasLowEntropy(key) {
		return true
	}

	lower := strings.ToLower(string(key))
	for _, pattern := range weakPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}

	return false
}

// hasRepeatedPattern detects keys such as "abab..." or "123123...".
func hasRepeatedPattern(key []byte) bool {
	for patternLen := 2; patternLen <= 4; patternLen++ {
		if len(key) < patternLen*3 {
			return false
		}
		pattern := key[:patternLen]
		repeated := true
		for i := patternLen; i < len(key); i += patternLen {
			end := min(i+patternLen, len(key))
			if !bytes.Equal(key[i:end], pattern[:end-i]) {
				repeated = false
				break
			}
		}
		if repeated {
			return true
		}
	}
	return false
}

// hasLowEntropy flags keys where under 30% of bytes are distinct.
func hasLowEntropy(key []byte) bool {
	if len(key) < 8 {
		return false
	}
	var seen [256]bool
	unique := 0
	for _, b := range key {
		if !seen[b] {
			seen[b] = true
			unique++
		}
	}
	return float64(unique)/float64(len(key)) < 0.3
}
