package catalog

import (
	"context"

	"github.com/driveneutral/driveneutral/internal/vehicle"
)

// Store is the upstream vehicle-record source. Implementations return
// the full record set in one bulk read; the catalog operates on the
// whole set in memory and assumes no pagination contract.
type Store interface {
	FetchVehicles(ctx context.Context) ([]vehicle.Record, error)
}

// StoreFunc adapts a plain function to the Store interface.
type StoreFunc func(ctx context.Context) ([]vehicle.Record, error)

// FetchVehicles calls f.
func (f StoreFunc) FetchVehicles(ctx context.Context) ([]vehicle.Record, error) {
	return f(ctx)
}
