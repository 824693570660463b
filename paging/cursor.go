package paging

import (
	"encoding/base64"
	"errors"
)

// ErrInvalidCursor is returned when a wire cursor cannot be decoded.
var ErrInvalidCursor = errors.New("invalid cursor")

// EncodeCursor encodes a cursor key into an opaque wire value.
func EncodeCursor(key string) string {
	return base64.StdEncoding.EncodeToString([]byte(key))
}

// DecodeCursor decodes an opaque wire value back into a cursor key.
// Empty and malformed values decode to ErrInvalidCursor; absence of a
// cursor should be detected before decoding.
func DecodeCursor(cursor string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil || len(b) == 0 {
		return "", ErrInvalidCursor
	}
	return string(b), nil
}
