package core

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSegmentRoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0xff, 0xfe},
		[]byte("abc"),
		[]byte(`{"alg":"HS256"}`),
		bytes.Repeat([]byte{0xfb, 0xef, 0xbe}, 40),
	}

	for _, in := range inputs {
		enc := EncodeSegment(in)
		if strings.ContainsAny(enc, "=+/") {
			t.Errorf("EncodeSegment(%x) = %q, contains padding or non-url characters", in, enc)
		}
		out, err := DecodeSegment(enc)
		if err != nil {
			t.Fatalf("DecodeSegment(%q) failed: %v", enc, err)
		}
		if !bytes.Equal(in, out) {
			t.Errorf("round trip mismatch: got %x, want %x", out, in)
		}
	}
}

func TestDecodeSegmentErrors(t *testing.T) {
	tests := []struct {
		name    string
		segment string
	}{
		{"standard alphabet plus", "ab+c"},
		{"standard alphabet slash", "ab/c"},
		{"padding", "YQ=="},
		{"impossible length", "abcde"},
		{"non-zero trailing bits", "YR"},
		{"whitespace", "YWJj\n"},
		{"script injection", "<script>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSegment(tt.segment)
			if !errors.Is(err, ErrDecode) {
				t.Errorf("DecodeSegment(%q) error = %v, want ErrDecode", tt.segment, err)
			}
		})
	}
}

func TestCanonicalizeSortsKeys(t *testing.T) {
	type header struct {
		Type      string `json:"typ,omitempty"`
		Algorithm string `json:"alg"`
		KeyID     string `json:"kid,omitempty"`
	}

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"struct fields", header{Type: "JWT", Algorithm: "HS256", KeyID: "k1"}, `{"alg":"HS256","kid":"k1","typ":"JWT"}`},
		{"omitted fields", header{Algorithm: "HS256"}, `{"alg":"HS256"}`},
		{"nested map", map[string]any{"b": map[string]any{"z": 1, "a": 2}, "a": []any{3, "x"}}, `{"a":[3,"x"],"b":{"a":2,"z":1}}`},
		{"html not escaped", map[string]string{"url": "https://a.example/?x=1&y=<2>"}, `{"url":"https://a.example/?x=1&y=<2>"}`},
		{"large integer preserved", map[string]any{"n": uint64(18446744073709551615)}, `{"n":18446744073709551615}`},
		{"scalar", "someone", `"someone"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Canonicalize(tt.value)
			if err != nil {
				t.Fatalf("Canonicalize failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Canonicalize() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCanonicalizeDeterministic(t *testing.T) {
	value := map[string]any{
		"sub":   "someone",
		"roles": []string{"admin", "user"},
		"meta":  map[string]any{"z": true, "a": nil, "m": 1.5},
	}

	first, err := Canonicalize(value)
	if err != nil {
		t.Fatalf("Canonicalize failed: %v", err)
	}
	for i := 0; i < 50; i++ {
		again, err := Canonicalize(value)
		if err != nil {
			t.Fatalf("Canonicalize failed: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("Canonicalize not deterministic: %s != %s", first, again)
		}
	}
}

func TestCanonicalizeUnsupportedValue(t *testing.T) {
	_, err := Canonicalize(map[string]any{"ch": make(chan int)})
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

func TestDecanonicalize(t *testing.T) {
	var dest map[string]any
	if err := Decanonicalize([]byte(`{"sub":"someone"}`), &dest); err != nil {
		t.Fatalf("Decanonicalize failed: %v", err)
	}
	if dest["sub"] != "someone" {
		t.Errorf("sub = %v, want someone", dest["sub"])
	}

	malformed := []string{``, `{`, `{"a":1}{"b":2}`, `{"a":1} x`, `not json`}
	for _, in := range malformed {
		var m map[string]any
		if err := Decanonicalize([]byte(in), &m); !errors.Is(err, ErrParse) {
			t.Errorf("Decanonicalize(%q) error = %v, want ErrParse", in, err)
		}
	}
}

func TestJSONSegmentRoundTrip(t *testing.T) {
	seg, err := EncodeJSONSegment(map[string]string{"sub": "someone"})
	if err != nil {
		t.Fatalf("EncodeJSONSegment failed: %v", err)
	}
	if seg != "eyJzdWIiOiJzb21lb25lIn0" {
		t.Errorf("EncodeJSONSegment() = %q", seg)
	}

	var out map[string]string
	if err := DecodeJSONSegment(seg, &out); err != nil {
		t.Fatalf("DecodeJSONSegment failed: %v", err)
	}
	if out["sub"] != "someone" {
		t.Errorf("sub = %q, want someone", out["sub"])
	}

	if err := DecodeJSONSegment("!!!invalid!!!", &out); !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}
