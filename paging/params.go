package paging

import (
	"github.com/go-playground/validator/v10"

	"github.com/ncobase/pager/types"
)

// Params holds the pagination parameters of a request.
//
// Take is a pointer so an omitted parameter is distinguishable from an
// explicit zero: omission resolves to DefaultTake, zero is rejected.
type Params struct {
	Cursor string `form:"cursor" json:"cursor"`
	Take   *int   `form:"take" json:"take" validate:"omitempty,ne=0,gte=-100,lte=100"`
}

var paramsValidate = validator.New()

// Resolve returns the effective take, applying DefaultTake when omitted.
func (p *Params) Resolve() int {
	return types.ToValueOr(p.Take, DefaultTake)
}

// Validate checks the parameters. An explicit zero take reports
// ErrZeroTake; takes with a magnitude over 100 report a validation error.
// The core Paginate accepts any nonzero take; the cap belongs to the
// request layer.
func (p *Params) Validate() error {
	if p.Take != nil && *p.Take == 0 {
		return ErrZeroTake
	}
	return paramsValidate.Struct(p)
}
