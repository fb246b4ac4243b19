// Package hexbytes converts the textual capture form of a binary message —
// whitespace-separated 2-digit hex tokens like
//
//	01 47 00 12 61 74 74 72 69 62 75 74 65 73
//
// into the raw bytes it names. It is a pure lexical step: any token that is
// not exactly two hex digits is rejected before the bytes reach a decoder.
package hexbytes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidToken indicates input that is not a valid hex byte token.
var ErrInvalidToken = errors.New("hexbytes: invalid token")

// TokenError identifies the token that failed to lex.
type TokenError struct {
	Index int    // Position of the token in the input, counting from 0
	Token string // The offending token, as written
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("hexbytes: token %d %q is not a 2-digit hex byte", e.Index, e.Token)
}

func (e *TokenError) Unwrap() error {
	return ErrInvalidToken
}

// Parse lexes s into bytes. Tokens are separated by any run of Unicode
// whitespace; an empty input yields an empty, non-nil byte slice.
func Parse(s string) ([]byte, error) {
	tokens := strings.Fields(s)
	out := make([]byte, 0, len(tokens))
	for i, tok := range tokens {
		b, err := parseToken(tok)
		if err != nil {
			return nil, &TokenError{Index: i, Token: tok}
		}
		out = append(out, b)
	}
	return out, nil
}

func parseToken(tok string) (byte, error) {
	// ParseUint alone would admit one-digit tokens; the capture format
	// requires exactly two digits per byte.
	if len(tok) != 2 {
		return 0, ErrInvalidToken
	}
	v, err := strconv.ParseUint(tok, 16, 8)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return byte(v), nil
}
