package paging

import (
	"errors"

	"github.com/ncobase/pager/types"
)

// ErrZeroTake is returned when a page is requested with take == 0.
// It is the only input Paginate rejects.
var ErrZeroTake = errors.New("take must not be zero")

// DefaultTake is the page size applied when a request omits take.
const DefaultTake = 5

// KeyFunc returns the cursor key of a record. Keys are assumed unique
// within a collection and ordered consistently with it.
type KeyFunc[T any] func(T) string

// Keyed is implemented by records that expose their own cursor key.
type Keyed interface {
	CursorKey() string
}

// Page is one contiguous window of a record collection.
//
// First and Last hold the cursor keys of the records immediately adjacent
// to the window: First the record just before it, Last the record just
// after. Either is nil when no such record exists, which marshals to JSON
// null. HasMore reports whether records remain past the end of the window.
type Page[T any] struct {
	Data    []T     `json:"data"`
	First   *string `json:"first"`
	Last    *string `json:"last"`
	HasMore bool    `json:"has_more"`
}

// Paginate slices an ordered, pre-sorted collection into one page.
//
// take controls both size and direction: a positive take reads forward,
// a negative take reads backward, and the magnitude bounds the number of
// records returned. cursor names the key of the record to paginate
// relative to; the page holds the records strictly after it (forward) or
// strictly before it (backward). An empty cursor starts from the head of
// the collection when reading forward and from the tail when reading
// backward.
//
// A cursor key that does not occur in the collection is treated as
// position -1: forward pages then start at index 0 and backward pages
// come back empty. Out-of-range windows clip to the collection bounds
// rather than failing. The input slice is never mutated; Data is a copy.
func Paginate[T any](records []T, key KeyFunc[T], cursor string, take int) (Page[T], error) {
	if take == 0 {
		return Page[T]{}, ErrZeroTake
	}

	size := take
	if size < 0 {
		size = -size
	}

	n := len(records)
	var start, end int
	switch {
	case cursor == "" && take > 0:
		start, end = 0, take
	case cursor == "":
		start, end = max(n-size, 0), n
	default:
		at := indexOf(records, key, cursor)
		if take > 0 {
			start, end = at+1, at+1+size
		} else {
			start, end = max(at-size, 0), at
		}
	}

	// clip to half-open slice bounds
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}

	data := make([]T, end-start)
	copy(data, records[start:end])

	page := Page[T]{
		Data:    data,
		HasMore: end < n,
	}
	if start > 0 {
		page.First = types.ToPointer(key(records[start-1]))
	}
	if end < n {
		page.Last = types.ToPointer(key(records[end]))
	}
	return page, nil
}

// PaginateKeyed is Paginate for records that carry their own cursor key.
func PaginateKeyed[T Keyed](records []T, cursor string, take int) (Page[T], error) {
	return Paginate(records, func(r T) string { return r.CursorKey() }, cursor, take)
}

// OffsetRange converts 1-based page/size values into a half-open index
// range clamped to total. Non-positive page or size selects everything.
func OffsetRange(page, size, total int) (start, end int) {
	if page <= 0 || size <= 0 {
		return 0, total
	}
	start = (page - 1) * size
	if start > total {
		start = total
	}
	end = start + size
	if end > total {
		end = total
	}
	return start, end
}

// indexOf returns the index of the first record whose key equals cursor,
// or -1 when absent.
func indexOf[T any](records []T, key KeyFunc[T], cursor string) int {
	for i, r := range records {
		if key(r) == cursor {
			return i
		}
	}
	return -1
}
