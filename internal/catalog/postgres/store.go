// Package postgres implements the catalog Store against a Postgres
// vehicle table.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/driveneutral/driveneutral/internal/vehicle"
)

// ConnectTimeout bounds the initial dial and ping.
const ConnectTimeout = 10 * time.Second

// vehicleQuery reads the full record set in one bulk select, ordered
// by manufacturer for stable iteration.
const vehicleQuery = `
SELECT manufacturer, name, year, category, image,
       lifecycle_gco2_km, avg_emissions_gmi, est_co2_per_100km,
       battery_capacity, range_km, univ_efficiency_km_kwh_e,
       avg_fuel_economy, est_yearly_maintenance_inr, ex_showroom_price
FROM car_details
ORDER BY manufacturer ASC`

// Store reads vehicle records from Postgres.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a Store over an existing connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Connect dials Postgres and returns a Store owning the pool.
func Connect(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect vehicle store: %w", err)
	}
	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("ping vehicle store: %w", pingErr)
	}
	return &Store{pool: pool}, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// FetchVehicles performs the bulk read. Nullable numeric columns map
// onto unset vehicle.Float fields.
func (s *Store) FetchVehicles(ctx context.Context) ([]vehicle.Record, error) {
	rows, err := s.pool.Query(ctx, vehicleQuery)
	if err != nil {
		return nil, fmt.Errorf("query vehicles: %w", err)
	}
	defer rows.Close()

	var records []vehicle.Record
	for rows.Next() {
		var (
			rec   vehicle.Record
			year  *int
			image *string

			lifecycle, gmi, per100    *float64
			battery, rangeKm, eff     *float64
			mpg, maintenance, exPrice *float64
		)

		scanErr := rows.Scan(
			&rec.Manufacturer, &rec.Name, &year, &rec.Category, &image,
			&lifecycle, &gmi, &per100,
			&battery, &rangeKm, &eff,
			&mpg, &maintenance, &exPrice,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("scan vehicle row: %w", scanErr)
		}

		if year != nil {
			rec.Year = *year
		}
		if image != nil {
			rec.Image = *image
		}

		rec.LifecycleGCO2Km = vehicle.FloatFromPtr(lifecycle)
		rec.AvgEmissionsGMi = vehicle.FloatFromPtr(gmi)
		rec.EstCO2Per100Km = vehicle.FloatFromPtr(per100)
		rec.BatteryCapacityKWh = vehicle.FloatFromPtr(battery)
		rec.RangeKm = vehicle.FloatFromPtr(rangeKm)
		rec.EfficiencyKmPerKWh = vehicle.FloatFromPtr(eff)
		rec.AvgFuelEconomyMPG = vehicle.FloatFromPtr(mpg)
		rec.MaintenanceYearlyINR = vehicle.FloatFromPtr(maintenance)
		rec.ExShowroomPriceINR = vehicle.FloatFromPtr(exPrice)

		records = append(records, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("read vehicle rows: %w", rowsErr)
	}
	return records, nil
}
