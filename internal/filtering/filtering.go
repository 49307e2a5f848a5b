package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Record is anything a listing filter can inspect by field name.
type Record interface {
	StringField(name string) string
}

// Filter represents a single filtering step applied to a listing.
type Filter[T Record] interface {
	Name() string
	IsEnabled() bool

	Validate() error
	Apply(ctx context.Context, deps Deps, items []T) ([]T, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Run validates every enabled filter and then applies them in order.
func Run[T Record](ctx context.Context, deps Deps, steps []Filter[T], items []T) ([]T, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			logger.Debug("filter disabled", zap.String("name", step.Name()))
			continue
		}

		next, info, err := step.Apply(ctx, deps, items)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		logger.Debug("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		items = next
	}

	return items, nil
}
