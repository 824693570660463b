package paging

import (
	"errors"
	"testing"

	"github.com/ncobase/pager/types"
)

func TestParamsResolve(t *testing.T) {
	p := Params{}
	if got := p.Resolve(); got != DefaultTake {
		t.Errorf("Resolve() = %d, want DefaultTake %d", got, DefaultTake)
	}

	p.Take = types.ToPointer(-3)
	if got := p.Resolve(); got != -3 {
		t.Errorf("Resolve() = %d, want -3", got)
	}
}

func TestParamsValidate(t *testing.T) {
	cases := []struct {
		name string
		take *int
		ok   bool
		zero bool
	}{
		{"omitted", nil, true, false},
		{"forward", types.ToPointer(10), true, false},
		{"backward", types.ToPointer(-10), true, false},
		{"at cap", types.ToPointer(100), true, false},
		{"zero", types.ToPointer(0), false, true},
		{"over cap", types.ToPointer(101), false, false},
		{"under negative cap", types.ToPointer(-101), false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := Params{Take: c.take}
			err := p.Validate()
			if c.ok && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if !c.ok && err == nil {
				t.Fatalf("Validate() = nil, want error")
			}
			if c.zero && !errors.Is(err, ErrZeroTake) {
				t.Errorf("Validate() = %v, want ErrZeroTake", err)
			}
		})
	}
}
