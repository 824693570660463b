package paging

import (
	"errors"
	"testing"
)

func TestCursorRoundTrip(t *testing.T) {
	for _, key := range []string{"1", "abc123", "note_ZxY-9", "with spaces"} {
		wire := EncodeCursor(key)
		if wire == key {
			t.Errorf("EncodeCursor(%q) not opaque: %q", key, wire)
		}
		got, err := DecodeCursor(wire)
		if err != nil {
			t.Fatalf("DecodeCursor(%q) returned error: %v", wire, err)
		}
		if got != key {
			t.Errorf("DecodeCursor(EncodeCursor(%q)) = %q", key, got)
		}
	}
}

func TestDecodeCursorInvalid(t *testing.T) {
	for _, wire := range []string{"", "%%%", "not base64!"} {
		if _, err := DecodeCursor(wire); !errors.Is(err, ErrInvalidCursor) {
			t.Errorf("DecodeCursor(%q) err = %v, want ErrInvalidCursor", wire, err)
		}
	}
}
