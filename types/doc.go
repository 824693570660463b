// Package types provides small generic helpers shared across the module.
//
// This package provides:
//   - Pointer conversion helpers for optional values
//
// # Pointer Helpers
//
// Convert between values and pointers without intermediate variables:
//
//	first := types.ToPointer("abc")   // *string
//	value := types.ToValue(first)     // "abc"
//	take := types.ToValueOr(nil, 5)   // 5
//
// Pointer-valued fields are used for optional result boundaries, where nil
// marshals to JSON null.
package types
