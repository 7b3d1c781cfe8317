package engine

import (
	"context"
	"slices"
	"strings"

	"github.com/driveneutral/driveneutral/internal/costing"
	"github.com/driveneutral/driveneutral/internal/pricing"
	"github.com/driveneutral/driveneutral/internal/vehicle"
)

// unknownEmissionsRank pushes combustion vehicles without lifecycle
// data to the bottom of an eco ranking. Electric vehicles with missing
// data rank at the very top instead.
const unknownEmissionsRank = 999

// maxEcoAlternatives caps the runner-up list.
const maxEcoAlternatives = 3

// FindEcoFriendly filters the catalog by the given criteria and ranks
// the survivors by lifecycle emissions, cleanest first. It returns the
// top pick with its yearly savings versus an average ICE car, plus up
// to three alternatives. An empty candidate set yields *NoMatchError.
func (e *Engine) FindEcoFriendly(ctx context.Context, criteria EcoCriteria) (*EcoResult, error) {
	log := e.logger(ctx)

	vehicles, err := e.vehicles(ctx)
	if err != nil {
		return nil, err
	}

	var matched []vehicle.Normalized
	for _, v := range vehicles {
		if matchesCriteria(&v, criteria) {
			matched = append(matched, v)
		}
	}
	if len(matched) == 0 {
		log.Debug().
			Int("budget_min", criteria.BudgetMin).
			Int("budget_max", criteria.BudgetMax).
			Str("body_type", criteria.BodyType).
			Str("fuel_type", criteria.FuelType).
			Msg("eco search matched nothing")
		return nil, &NoMatchError{Suggestion: ecoNoMatchSuggestion}
	}

	slices.SortStableFunc(matched, func(a, b vehicle.Normalized) int {
		ra, rb := emissionsRank(&a), emissionsRank(&b)
		switch {
		case ra < rb:
			return -1
		case ra > rb:
			return 1
		default:
			return 0
		}
	})

	best := &matched[0]
	result := &EcoResult{
		Best: EcoPick{
			Name:                best.DisplayName,
			Image:               best.Image,
			Category:            best.Category,
			FuelType:            best.FuelType,
			BasePrice:           best.BasePrice,
			BasePriceFmt:        pricing.FormatINRPtr(best.BasePrice),
			SustainabilityScore: best.SustainabilityScore,
		},
		CO2SavedYearlyKg: roundINR(costing.YearlyCO2SavingsKg(best, DefaultDailyKm)),
	}
	costSaved := roundINR(costing.YearlyCostSavings(best, DefaultDailyKm))
	result.CostSavedYearly = costSaved
	result.CostSavedYearlyFmt = pricing.FormatINR(costSaved)

	for _, alt := range matched[1:] {
		if len(result.Alternatives) == maxEcoAlternatives {
			break
		}
		result.Alternatives = append(result.Alternatives, EcoAlternative{
			Name:         alt.DisplayName,
			FuelType:     alt.FuelType,
			BasePrice:    alt.BasePrice,
			BasePriceFmt: pricing.FormatINRPtr(alt.BasePrice),
		})
	}

	log.Debug().
		Str("best", result.Best.Name).
		Int("matched", len(matched)).
		Msg("eco search complete")
	return result, nil
}

// matchesCriteria applies the budget and segment filters. A vehicle
// with no resolved price is treated as costing zero, so it survives
// any budget whose minimum is at most zero.
func matchesCriteria(v *vehicle.Normalized, c EcoCriteria) bool {
	price := 0
	if v.BasePrice != nil {
		price = *v.BasePrice
	}
	if price < c.BudgetMin {
		return false
	}
	if c.BudgetMax > 0 && price > c.BudgetMax {
		return false
	}
	if !segmentMatches(c.BodyType, string(v.BodySegment)) {
		return false
	}
	if !segmentMatches(c.FuelType, string(v.FuelType)) {
		return false
	}
	return true
}

func segmentMatches(want, got string) bool {
	want = strings.ToLower(strings.TrimSpace(want))
	return want == "" || want == "all" || want == got
}

// emissionsRank is the ascending sort key: recorded lifecycle
// emissions when positive, zero for EVs without data, and
// unknownEmissionsRank for everything else.
func emissionsRank(v *vehicle.Normalized) float64 {
	if v.LifecycleGCO2Km.Positive() {
		return v.LifecycleGCO2Km.Value()
	}
	if v.FuelType == vehicle.FuelElectric {
		return 0
	}
	return unknownEmissionsRank
}
