package engine

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/driveneutral/driveneutral/internal/costing"
	"github.com/driveneutral/driveneutral/internal/pricing"
	"github.com/driveneutral/driveneutral/internal/vehicle"
)

// CompareVehicles resolves two free-text queries against the catalog
// and builds side-by-side profiles plus a sustainability verdict. The
// returned error is a *NotFoundError echoing the first query that
// resolved to nothing.
func (e *Engine) CompareVehicles(ctx context.Context, query1, query2 string) (*ComparisonResult, error) {
	log := e.logger(ctx)

	vehicles, err := e.vehicles(ctx)
	if err != nil {
		return nil, err
	}

	v1 := resolveVehicle(vehicles, query1)
	v2 := resolveVehicle(vehicles, query2)
	if v1 == nil || v2 == nil {
		missing := query1
		if v1 != nil {
			missing = query2
		}
		log.Debug().Str("query", missing).Msg("comparison query matched no vehicle")
		return nil, &NotFoundError{Query: missing}
	}

	result := &ComparisonResult{
		Vehicle1: buildProfile(v1),
		Vehicle2: buildProfile(v2),
	}
	result.Recommendation = recommendGreener(result.Vehicle1, result.Vehicle2)

	log.Debug().
		Str("vehicle1", result.Vehicle1.Name).
		Str("vehicle2", result.Vehicle2.Name).
		Msg("compared vehicles")
	return result, nil
}

// resolveVehicle returns the first vehicle whose display name, model
// name or "manufacturer name" string contains the query,
// case-insensitively.
func resolveVehicle(vehicles []vehicle.Normalized, query string) *vehicle.Normalized {
	q := strings.ToLower(strings.TrimSpace(query))
	for i := range vehicles {
		v := &vehicles[i]
		if strings.Contains(strings.ToLower(v.DisplayName), q) ||
			strings.Contains(strings.ToLower(v.Name), q) ||
			strings.Contains(strings.ToLower(v.Manufacturer+" "+v.Name), q) {
			return v
		}
	}
	return nil
}

func buildProfile(v *vehicle.Normalized) VehicleProfile {
	proj := costing.ProjectYearly(v, DefaultDailyKm)
	ownership := costing.OwnershipCost(v, DefaultDailyKm)

	return VehicleProfile{
		Name:                v.DisplayName,
		Manufacturer:        v.Manufacturer,
		Category:            v.Category,
		Image:               v.Image,
		FuelType:            v.FuelType,
		BodySegment:         v.BodySegment,
		BasePrice:           v.BasePrice,
		BasePriceFmt:        pricing.FormatINRPtr(v.BasePrice),
		FuelCostYearly:      roundINR(proj.FuelCostYearly),
		FuelCostYearlyFmt:   pricing.FormatINR(roundINR(proj.FuelCostYearly)),
		CO2YearlyKg:         roundINR(proj.CO2YearlyKg),
		OwnershipCost5y:     roundINR(ownership),
		OwnershipCost5yFmt:  pricing.FormatINR(roundINR(ownership)),
		SustainabilityScore: v.SustainabilityScore,
		RangeKm:             v.RangeKm.Ptr(),
		BatteryCapacityKWh:  v.BatteryCapacityKWh.Ptr(),
		EfficiencyKmPerKWh:  v.EfficiencyKmPerKWh.Ptr(),
		FuelEconomyMPG:      v.AvgFuelEconomyMPG.Ptr(),
	}
}

func recommendGreener(p1, p2 VehicleProfile) string {
	switch {
	case p1.SustainabilityScore > p2.SustainabilityScore:
		return greenerChoice(p1)
	case p2.SustainabilityScore > p1.SustainabilityScore:
		return greenerChoice(p2)
	default:
		return "🌱 Both vehicles have similar sustainability scores!"
	}
}

func greenerChoice(p VehicleProfile) string {
	return fmt.Sprintf("🌱 %s is the greener choice with a nutrition score of %d/20.",
		p.Name, p.SustainabilityScore)
}

func roundINR(x float64) int {
	return int(math.Round(x))
}
