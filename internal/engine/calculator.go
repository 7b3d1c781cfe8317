package engine

import (
	"context"
	"math"

	"github.com/driveneutral/driveneutral/internal/costing"
	"github.com/driveneutral/driveneutral/internal/pricing"
)

// CalculateCosts runs the commute cost calculator and shapes the
// result for presentation: rounded rupee figures with formatted
// strings, and a break-even that stays JSON-encodable when the EV
// premium is never recovered.
func (e *Engine) CalculateCosts(ctx context.Context, dailyKm, fuelPrice, electricityCost float64) CostResult {
	raw := costing.Calculate(dailyKm, fuelPrice, electricityCost)

	result := CostResult{
		DailyKm:                raw.DailyKm,
		FuelPricePerLitre:      raw.FuelPrice,
		ElectricityPricePerKWh: raw.ElectricityCost,

		MonthlyFuelCost: roundINR(raw.MonthlyFuelCost),
		MonthlyEVCost:   roundINR(raw.MonthlyEVCost),
		YearlyFuelCost:  roundINR(raw.YearlyFuelCost),
		YearlyEVCost:    roundINR(raw.YearlyEVCost),
		MonthlySaving:   roundINR(raw.MonthlySaving),
		FiveYearSaving:  roundINR(raw.FiveYearSaving),

		BreakEvenYears: raw.BreakEvenYears,
		BreakEvenNever: raw.BreakEvenNever(),
	}
	result.MonthlyFuelCostFmt = pricing.FormatINR(result.MonthlyFuelCost)
	result.MonthlyEVCostFmt = pricing.FormatINR(result.MonthlyEVCost)
	result.MonthlySavingFmt = pricing.FormatINR(result.MonthlySaving)
	result.FiveYearSavingFmt = pricing.FormatINR(result.FiveYearSaving)

	if !result.BreakEvenNever {
		rounded := math.Round(raw.BreakEvenYears*10) / 10
		result.BreakEvenYearsRounded = &rounded
	}

	log := e.logger(ctx)
	log.Debug().
		Float64("daily_km", result.DailyKm).
		Int("five_year_saving", result.FiveYearSaving).
		Bool("break_even_never", result.BreakEvenNever).
		Msg("cost calculation complete")
	return result
}
