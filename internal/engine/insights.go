package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/driveneutral/driveneutral/internal/costing"
	"github.com/driveneutral/driveneutral/internal/pricing"
)

// insightBreakEvenMaxYears is the horizon beyond which the break-even
// insight switches to the encouragement line.
const insightBreakEvenMaxYears = 10

// GenerateInsights produces three ownership insights for a commute of
// dailyKm: five-year CO2 reduction, five-year cost savings, and the
// break-even outlook. A non-positive dailyKm defaults to
// DefaultDailyKm.
func (e *Engine) GenerateInsights(ctx context.Context, dailyKm float64) []string {
	if !(dailyKm > 0) {
		dailyKm = DefaultDailyKm
	}

	co2SavedTons := costing.BaselineICECO2Kg(dailyKm) * costing.ProjectionYears / 1000
	yearlySaving := costing.BaselineICEFuelCost(dailyKm) - costing.BaselineEVCost(dailyKm)
	fiveYearSaving := yearlySaving * costing.ProjectionYears

	breakEven := math.Inf(1)
	if yearlySaving > 0 {
		breakEven = costing.EVPremiumINR / yearlySaving
	}

	insights := []string{
		fmt.Sprintf("💡 Switching to an EV can reduce %.1f tons of CO₂ in 5 years.", co2SavedTons),
		fmt.Sprintf("💡 You could save %s over 5 years.", pricing.FormatINR(roundINR(fiveYearSaving))),
	}
	if breakEven < insightBreakEvenMaxYears {
		insights = append(insights, fmt.Sprintf("💡 Break-even in %.1f years — then it's pure savings!", breakEven))
	} else {
		insights = append(insights, "💡 EVs keep getting more affordable every year 🚀")
	}

	log := e.logger(ctx)
	log.Debug().Float64("daily_km", dailyKm).Msg("generated insights")
	return insights
}
