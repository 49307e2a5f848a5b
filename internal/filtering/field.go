package filtering

import (
	"context"
)

type fieldFilter[T Record] struct {
	field string
	value string
}

// NewField keeps records whose field equals value. An empty value disables the filter.
func NewField[T Record](field, value string) Filter[T] {
	return &fieldFilter[T]{field: field, value: value}
}

func (f *fieldFilter[T]) Name() string { return f.field }

func (f *fieldFilter[T]) IsEnabled() bool { return f.value != "" }

func (f *fieldFilter[T]) Validate() error { return nil }

func (f *fieldFilter[T]) Apply(_ context.Context, _ Deps, items []T) ([]T, Step, error) {
	initial := len(items)

	kept := make([]T, 0, len(items))
	for _, item := range items {
		if item.StringField(f.field) == f.value {
			kept = append(kept, item)
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}
