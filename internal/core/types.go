package core

import "errors"

const (
	// Separator joins the three segments of a compact token.
	Separator = '.'

	// MaxTokenLength bounds the compact form accepted by Split.
	MaxTokenLength = 64 * 1024
)

var (
	ErrEmptyToken    = errors.New("empty token")
	ErrTokenTooLarge = errors.New("token too large")
	ErrFormat        = errors.New("invalid token format: expected exactly three segments")
	ErrDecode        = errors.New("invalid base64url segment")
	ErrParse         = errors.New("invalid JSON segment")
)
