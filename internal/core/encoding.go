package core

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// segmentEncoding is unpadded base64url that also rejects non-zero trailing
// bits, so every segment has exactly one accepted spelling.
var segmentEncoding = base64.RawURLEncoding.Strict()

// EncodeSegment returns the unpadded base64url text for data.
func EncodeSegment(data []byte) string {
	return segmentEncoding.EncodeToString(data)
}

// DecodeSegment is the exact inverse of EncodeSegment.
func DecodeSegment(segment string) ([]byte, error) {
	if !isValidBase64URL(segment) {
		return nil, fmt.Errorf("%w: characters outside the base64url alphabet", ErrDecode)
	}

	buf := make([]byte, segmentEncoding.DecodedLen(len(segment)))
	n, err := segmentEncoding.Decode(buf, []byte(segment))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return buf[:n], nil
}

// Canonicalize serializes v to compact JSON with object keys sorted
// ascending at every depth. HTML characters are not escaped and numbers keep
// their textual form, so the same value always yields the same bytes.
func Canonicalize(v any) ([]byte, error) {
	raw, err := marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	out, err := marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return out, nil
}

// Decanonicalize decodes exactly one JSON value from data into dest.
func Decanonicalize(data []byte, dest any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after JSON value", ErrParse)
	}
	return nil
}

// EncodeJSONSegment canonicalizes v and base64url-encodes the result.
func EncodeJSONSegment(v any) (string, error) {
	data, err := Canonicalize(v)
	if err != nil {
		return "", err
	}
	return EncodeSegment(data), nil
}

// DecodeJSONSegment decodes a base64url segment and unmarshals it into dest.
func DecodeJSONSegment(segment string, dest any) error {
	data, err := DecodeSegment(segment)
	if err != nil {
		return err
	}
	return Decanonicalize(data, dest)
}

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// isValidBase64URL checks if string contains only valid base64url characters
func isValidBase64URL(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= 'A' && c <= 'Z') ||
			(c >= 'a' && c <= 'z') ||
			(c >= '0' && c <= '9') ||
			c == '-' || c == '_') {
			return false
		}
	}
	return true
}
