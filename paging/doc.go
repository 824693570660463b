// Package paging slices in-memory ordered collections into pages,
// supporting cursor-style and offset-style pagination in both directions.
//
// The package is a pure data transform: it performs no I/O, keeps no
// state and never mutates its input. Collections are assumed pre-sorted,
// with each record exposing a unique string cursor key whose order
// matches the collection's order.
//
// # Basic Usage
//
// Paginate forward from the head of a collection:
//
//	page, err := paging.Paginate(users, func(u User) string { return u.ID }, "", 20)
//	// page.Data: first 20 users
//	// page.Last: key of user 21, or nil
//	// page.HasMore: whether users remain past the window
//
// Continue from a cursor, or walk backward with a negative take:
//
//	next, _ := paging.Paginate(users, key, *page.Last, 20)
//	prev, _ := paging.Paginate(users, key, *next.First, -20)
//
// Records implementing Keyed can skip the accessor:
//
//	page, err := paging.PaginateKeyed(notes, cursor, take)
//
// # Take Semantics
//
// take encodes size and direction in one signed integer: magnitude is the
// page length, sign is the direction. Zero is the single invalid input
// and reports ErrZeroTake; every other anomaly (unknown cursor, empty
// collection, windows past either end) degrades to an empty or clipped
// page by ordinary half-open slice rules.
//
// # Request Parameters
//
// Params models the request-layer contract, where an omitted take
// defaults to DefaultTake:
//
//	var p paging.Params
//	_ = c.ShouldBindQuery(&p)
//	if err := p.Validate(); err != nil { ... }
//	page, err := paging.PaginateKeyed(notes, cursor, p.Resolve())
//
// # Cursor Encoding
//
// Wire cursors are opaque; encode boundary keys before returning them to
// clients and decode inbound values with DecodeCursor, which reports
// ErrInvalidCursor for malformed input:
//
//	wire := paging.EncodeCursor("record-key")
//	key, err := paging.DecodeCursor(wire)
//
// # Best Practices
//
//   - Keep cursor keys unique and stable; reordering invalidates cursors
//   - Set reasonable take defaults (5-100 records)
//   - Treat First/Last as opaque anchors, not data
//   - Validate request parameters before slicing
package paging
