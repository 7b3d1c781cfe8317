package engine

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/driveneutral/driveneutral/internal/costing"
	"github.com/driveneutral/driveneutral/internal/pricing"
	"github.com/driveneutral/driveneutral/internal/vehicle"
)

// maxEVResults caps the shortlist length.
const maxEVResults = 4

// UsageHighway selects range-first ranking in BestEVUnderBudget.
const UsageHighway = "highway"

// BestEVUnderBudget shortlists electric vehicles at or under budget,
// ranked by range for highway usage and by efficiency otherwise.
// Vehicles without a resolved price are assumed affordable. A
// non-positive budget falls back to DefaultEVBudget. An empty
// shortlist yields *NoMatchError.
func (e *Engine) BestEVUnderBudget(ctx context.Context, budget int, usage string) ([]EVOption, error) {
	log := e.logger(ctx)

	if budget <= 0 {
		budget = DefaultEVBudget
	}

	vehicles, err := e.vehicles(ctx)
	if err != nil {
		return nil, err
	}

	var evs []vehicle.Normalized
	for _, v := range vehicles {
		if v.FuelType != vehicle.FuelElectric {
			continue
		}
		if v.BasePrice != nil && *v.BasePrice > budget {
			continue
		}
		evs = append(evs, v)
	}
	if len(evs) == 0 {
		log.Debug().Int("budget", budget).Msg("no EVs under budget")
		return nil, &NoMatchError{Suggestion: evNoMatchSuggestion}
	}

	highway := strings.EqualFold(strings.TrimSpace(usage), UsageHighway)
	slices.SortStableFunc(evs, func(a, b vehicle.Normalized) int {
		var ka, kb float64
		if highway {
			ka, kb = a.RangeKm.Or(0), b.RangeKm.Or(0)
		} else {
			ka, kb = a.EfficiencyKmPerKWh.Or(0), b.EfficiencyKmPerKWh.Or(0)
		}
		// Descending: bigger key sorts first.
		switch {
		case ka > kb:
			return -1
		case ka < kb:
			return 1
		default:
			return 0
		}
	})

	if len(evs) > maxEVResults {
		evs = evs[:maxEVResults]
	}

	options := make([]EVOption, 0, len(evs))
	for i := range evs {
		v := &evs[i]
		running := roundINR(costing.YearlyRunningCost(v, DefaultDailyKm))
		options = append(options, EVOption{
			Name:                 v.DisplayName,
			Image:                v.Image,
			BasePrice:            v.BasePrice,
			BasePriceFmt:         pricing.FormatINRPtr(v.BasePrice),
			RangeKm:              v.RangeKm.Ptr(),
			BatteryCapacityKWh:   v.BatteryCapacityKWh.Ptr(),
			ChargingTime:         homeChargingTime(v.BatteryCapacityKWh),
			RunningCostYearly:    running,
			RunningCostYearlyFmt: pricing.FormatINR(running),
			CO2ReductionKg:       roundINR(costing.YearlyCO2SavingsKg(v, DefaultDailyKm)),
		})
	}

	log.Debug().Int("budget", budget).Bool("highway", highway).Int("results", len(options)).Msg("EV shortlist built")
	return options, nil
}

// homeChargingTime estimates a full charge on a home wallbox, or "N/A"
// when the battery capacity is unknown.
func homeChargingTime(battery vehicle.Float) string {
	if !battery.Positive() {
		return "N/A"
	}
	hours := int(math.Round(battery.Value() / costing.HomeChargerKW))
	return fmt.Sprintf("~%d hrs (home)", hours)
}
