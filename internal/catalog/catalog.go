// Package catalog holds the in-memory, time-bounded cache of the
// normalized vehicle record set.
//
// A refresh re-derives every record from scratch (fuel type, body
// segment, base price, score, image) and replaces the snapshot whole;
// there is no incremental merge. Concurrent callers arriving during an
// in-flight refresh share the same fetch via single-flight
// de-duplication: duplicate concurrent fetches would double remote
// load and could momentarily serve two divergent snapshots.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/singleflight"

	"github.com/driveneutral/driveneutral/internal/ecoscore"
	"github.com/driveneutral/driveneutral/internal/logging"
	"github.com/driveneutral/driveneutral/internal/pricing"
	"github.com/driveneutral/driveneutral/internal/vehicle"
)

// DefaultTTL is the catalog cache window.
const DefaultTTL = 10 * time.Minute

// refreshKey is the single-flight key; all refreshes collapse onto it.
const refreshKey = "refresh"

// Snapshot is one immutable generation of the normalized record set.
// Vehicles are never mutated after construction; a refresh replaces
// the snapshot rather than editing it.
type Snapshot struct {
	// ID is a ULID identifying this generation in logs.
	ID string

	Vehicles  []vehicle.Normalized
	FetchedAt time.Time
}

// Catalog caches the normalized vehicle set with a TTL.
type Catalog struct {
	store  Store
	lookup vehicle.PriceLookup
	ttl    time.Duration
	now    func() time.Time

	group singleflight.Group

	mu   sync.RWMutex
	snap *Snapshot
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithTTL overrides the cache window.
func WithTTL(ttl time.Duration) Option {
	return func(c *Catalog) { c.ttl = ttl }
}

// WithPriceLookup overrides the base-price lookup collaborator.
func WithPriceLookup(lookup vehicle.PriceLookup) Option {
	return func(c *Catalog) { c.lookup = lookup }
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) { c.now = now }
}

// New creates a Catalog over the given store. By default it uses
// DefaultTTL and the curated price table as the lookup collaborator.
func New(store Store, opts ...Option) *Catalog {
	c := &Catalog{
		store:  store,
		lookup: pricing.LookupBasePrice,
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the normalized vehicle set, refreshing from the store
// when the cached snapshot is missing or older than the TTL.
//
// A failed fetch propagates to the caller; the catalog performs no
// retry and never silently substitutes stale data. Callers that prefer
// staleness over failure can fall back to Current.
func (c *Catalog) Get(ctx context.Context) ([]vehicle.Normalized, error) {
	if snap := c.freshSnapshot(); snap != nil {
		return snap.Vehicles, nil
	}

	snap, err := c.refreshShared(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Vehicles, nil
}

// Refresh forces a fetch, bypassing the TTL check. Concurrent calls
// still share one flight.
func (c *Catalog) Refresh(ctx context.Context) (*Snapshot, error) {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
	return c.refreshShared(ctx)
}

// Invalidate drops the cached snapshot so the next Get refetches.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}

// Current returns the most recent snapshot regardless of age, or nil
// when no fetch has succeeded yet.
func (c *Catalog) Current() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// freshSnapshot returns the cached snapshot iff it is within the TTL.
func (c *Catalog) freshSnapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snap != nil && c.now().Sub(c.snap.FetchedAt) < c.ttl {
		return c.snap
	}
	return nil
}

// refreshShared funnels concurrent refreshes through one flight.
func (c *Catalog) refreshShared(ctx context.Context) (*Snapshot, error) {
	result, err, _ := c.group.Do(refreshKey, func() (interface{}, error) {
		// A flight that finished while this caller was queued may
		// already have produced a fresh snapshot.
		if snap := c.freshSnapshot(); snap != nil {
			return snap, nil
		}
		return c.refresh(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Snapshot), nil
}

// refresh fetches, normalizes, scores, and installs a new snapshot.
func (c *Catalog) refresh(ctx context.Context) (*Snapshot, error) {
	log := logging.FromContext(ctx)

	records, err := c.store.FetchVehicles(ctx)
	if err != nil {
		log.Error().
			Str("component", "catalog").
			Str("operation", "refresh").
			Err(err).
			Msg("vehicle fetch failed")
		return nil, fmt.Errorf("catalog refresh: %w", err)
	}

	vehicles := make([]vehicle.Normalized, 0, len(records))
	for _, rec := range records {
		vehicles = append(vehicles, vehicle.Normalize(rec, c.lookup))
	}

	vehicle.PropagateModelImages(vehicles)

	for i := range vehicles {
		vehicles[i].SustainabilityScore = ecoscore.ForVehicle(&vehicles[i])
	}

	snap := &Snapshot{
		ID:        ulid.Make().String(),
		Vehicles:  vehicles,
		FetchedAt: c.now(),
	}

	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()

	log.Debug().
		Str("component", "catalog").
		Str("operation", "refresh").
		Str("snapshot_id", snap.ID).
		Int("vehicle_count", len(vehicles)).
		Msg("catalog refreshed")

	return snap, nil
}
