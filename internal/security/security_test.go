package security

import (
	"testing"
)

func TestIsWeakKeyCommonPatterns(t *testing.T) {
	weakKeys := [][]byte{
		[]byte("password123456789012345678901234"),
		[]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		[]byte("12345678901234567890123456789012"),
		[]byte("qwertyuiopasdfghjklzxcvbnm123456"),
		[]byte("my-jwt-secret-value"),
	}

	for i, key := range weakKeys {
		if !IsWeakKey(key) {
			t.Errorf("Test %d: Key should be detected as weak: %s", i, string(key))
		}
	}
}

func TestIsWeakKeyStrongKeys(t *testing.T) {
	strongKeys := [][]byte{
		[]byte("Kx9#mP2$vL8@nQ5!wR7&tY3^uI6*oE4%aS1+dF0-gH9~jK2#bN5$cM8@xZ7&vB4!"),
		[]byte("aB3$fG7*kL9#pQ2&vX5!zC8@mN4%rT6^wY1+eH0-iJ3~oU7$bD9#gK2&sF5*nM8@"),
		{0x8f, 0x12, 0xa0, 0x5c, 0x33, 0xe1, 0x07, 0x9d},
	}

	for i, key := range strongKeys {
		if IsWeakKey(key) {
			t.Errorf("Test %d: Key should not be detected as weak: %s", i, string(key))
		}
	}
}

func TestIsWeakKeyEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		key  []byte
		want bool
	}{
		{"empty key", []byte{}, true},
		{"single byte", []byte{0x01}, true},
		{"all zero", make([]byte, 32), true},
		{"repeated pair", []byte("ababababababababababababababababab"), true},
		{"repeated triple", []byte("xyzxyzxyzxyzxyz"), true},
		{"few distinct bytes", []byte("aabbaabbaabbabab"), true},
		{"short but varied", []byte("k7#Q"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeakKey(tt.key)
			if result != tt.want {
				t.Errorf("IsWeakKey() = %v, want %v", result, tt.want)
			}
		})
	}
}

func TestZeroBytes(t *testing.T) {
	data := []byte("sensitive-data-to-zero")

	ZeroBytes(data)

	for _, b := range data {
		if b != 0 {
			t.Fatal("ZeroBytes should zero all bytes")
		}
	}
}

func TestSecureBytesDestroy(t *testing.T) {
	src := []byte("shared-secret")
	secure := NewSecureBytesFromSlice(src)

	if string(secure.Bytes()) != "shared-secret" {
		t.Fatalf("Bytes() = %q", secure.Bytes())
	}
	if secure.Len() != len(src) {
		t.Errorf("Len() = %d, want %d", secure.Len(), len(src))
	}

	src[0] = 'X'
	if secure.Bytes()[0] != 's' {
		t.Error("SecureBytes must not alias the source slice")
	}

	secure.Destroy()
	secure.Destroy()
	if secure.Bytes() != nil || secure.Len() != 0 {
		t.Error("Destroy should release the secret")
	}
}

func TestSecureCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b []byte
		want bool
	}{
		{"equal", []byte("signature"), []byte("signature"), true},
		{"both empty", nil, []byte{}, true},
		{"last byte differs", []byte("signature"), []byte("signaturf"), false},
		{"prefix", []byte("sig"), []byte("signature"), false},
		{"empty vs non-empty", nil, []byte("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SecureCompare(tt.a, tt.b); got != tt.want {
				t.Errorf("SecureCompare(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
