// Package nanoid generates compact random identifiers from the module's
// character sets. Identifiers generated here are suitable cursor keys:
// unique, URL-safe and string-ordered stable once assigned.
package nanoid

import (
	"github.com/ncobase/pager/consts"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	defaultSize = 16
)

func getSize(l ...int) int {
	size := defaultSize
	if len(l) > 0 {
		size = l[0]
	}
	return size
}

// Must generate optional length nanoid
func Must(l ...int) string {
	size := getSize(l...)
	return gonanoid.Must(size)
}

// String generate optional length nanoid, use const by default
func String(l ...int) string {
	size := getSize(l...)
	return gonanoid.MustGenerate(consts.LowerUpper, size)
}

// Lower generate optional length nanoid, use const by default
func Lower(l ...int) string {
	size := getSize(l...)
	return gonanoid.MustGenerate(consts.Lowercase, size)
}

// Upper generate optional length nanoid, use const by default
func Upper(l ...int) string {
	size := getSize(l...)
	return gonanoid.MustGenerate(consts.Uppercase, size)
}

// Number generate optional length nanoid, use const by default
func Number(l ...int) string {
	size := getSize(l...)
	return gonanoid.MustGenerate(consts.Number, size)
}

// PrimaryKey generates a record primary key with the default alphabet and size.
func PrimaryKey() string {
	return gonanoid.MustGenerate(consts.PrimaryKey, consts.PrimaryKeySize)
}
