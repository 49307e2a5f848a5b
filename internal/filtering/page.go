package filtering

import (
	"context"
	"errors"
	"fmt"
)

const (
	DefaultLimit = 100
	MaxLimit     = 100
)

// ErrInvalidPage is returned when skip or limit are out of range.
var ErrInvalidPage = errors.New("invalid page")

type pageFilter[T Record] struct {
	skip  int
	limit int
}

// NewPage returns at most limit records after skipping the first skip.
func NewPage[T Record](skip, limit int) Filter[T] {
	return &pageFilter[T]{skip: skip, limit: limit}
}

func (f *pageFilter[T]) Name() string { return "page" }

func (f *pageFilter[T]) IsEnabled() bool { return true }

func (f *pageFilter[T]) Validate() error {
	if f.skip < 0 {
		return fmt.Errorf("%w: skip must be >= 0, got %d", ErrInvalidPage, f.skip)
	}
	if f.limit < 1 || f.limit > MaxLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d, got %d", ErrInvalidPage, MaxLimit, f.limit)
	}
	return nil
}

func (f *pageFilter[T]) Apply(_ context.Context, _ Deps, items []T) ([]T, Step, error) {
	initial := len(items)

	start := min(f.skip, initial)
	end := min(start+f.limit, initial)
	page := items[start:end]

	return page, Step{Initial: initial, Dropped: initial - len(page), Left: len(page)}, nil
}
