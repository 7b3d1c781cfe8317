// Package engine composes catalog data, cost projections and
// eco-scores into the user-facing operations: head-to-head
// comparisons, eco-friendly search, EV shortlists, running-cost
// calculations and ownership insights.
package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/driveneutral/driveneutral/internal/catalog"
	"github.com/driveneutral/driveneutral/internal/logging"
	"github.com/driveneutral/driveneutral/internal/vehicle"
)

const (
	// DefaultDailyKm is the commute assumption used whenever an
	// operation needs a usage figure and the caller supplied none.
	DefaultDailyKm = 30.0

	// DefaultEVBudget bounds an EV search when the caller gives no
	// usable budget.
	DefaultEVBudget = 2000000
)

// Engine answers vehicle questions over a shared catalog.
type Engine struct {
	catalog *catalog.Catalog
}

// New returns an Engine backed by cat.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

func (e *Engine) vehicles(ctx context.Context) ([]vehicle.Normalized, error) {
	vehicles, err := e.catalog.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vehicle catalog: %w", err)
	}
	return vehicles, nil
}

func (e *Engine) logger(ctx context.Context) zerolog.Logger {
	return logging.FromContext(ctx).With().Str("component", "engine").Logger()
}
