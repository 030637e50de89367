package core

// Split returns the three segments of a compact token. Any other number of
// separators is rejected.
func Split(token string) (header, claims, signature string, err error) {
	tokenLen := len(token)
	if tokenLen == 0 {
		return "", "", "", ErrEmptyToken
	}
	if tokenLen > MaxTokenLength {
		return "", "", "", ErrTokenTooLarge
	}

	first, second := -1, -1
	for i := 0; i < tokenLen; i++ {
		if token[i] != Separator {
			continue
		}
		switch {
		case first == -1:
			first = i
		case second == -1:
			second = i
		default:
			return "", "", "", ErrFormat
		}
	}

	if second == -1 {
		return "", "", "", ErrFormat
	}

	return token[:first], token[first+1 : second], token[second+1:], nil
}

// SigningInput joins the encoded header and claims exactly as transmitted.
func SigningInput(header, claims string) string {
	buf := make([]byte, 0, len(header)+1+len(claims))
	buf = append(buf, header...)
	buf = append(buf, Separator)
	buf = append(buf, claims...)
	return string(buf)
}

// Join assembles the compact form from its three encoded segments.
func Join(signingInput, signature string) string {
	buf := make([]byte, 0, len(signingInput)+1+len(signature))
	buf = append(buf, signingInput...)
	buf = append(buf, Separator)
	buf = append(buf, signature...)
	return string(buf)
}
