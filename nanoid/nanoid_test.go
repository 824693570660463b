package nanoid

import (
	"strings"
	"testing"

	"github.com/ncobase/pager/consts"
)

func TestPrimaryKey(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := PrimaryKey()
		if len(id) != consts.PrimaryKeySize {
			t.Fatalf("len = %d, want %d", len(id), consts.PrimaryKeySize)
		}
		for _, r := range id {
			if !strings.ContainsRune(consts.PrimaryKey, r) {
				t.Fatalf("id %q contains %q outside alphabet", id, r)
			}
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestSizes(t *testing.T) {
	if got := len(String()); got != 16 {
		t.Errorf("String() len = %d, want default 16", got)
	}
	if got := len(Lower(24)); got != 24 {
		t.Errorf("Lower(24) len = %d", got)
	}
	if got := len(Number(8)); got != 8 {
		t.Errorf("Number(8) len = %d", got)
	}
}
