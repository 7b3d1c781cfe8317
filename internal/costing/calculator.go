package costing

import "math"

// CalcResult is the raw output of the commute cost calculator. All
// monetary values are rupees; BreakEvenYears is +Inf when yearly
// savings never recover the EV premium.
type CalcResult struct {
	DailyKm         float64
	FuelPrice       float64
	ElectricityCost float64

	MonthlyFuelCost float64
	YearlyFuelCost  float64
	MonthlyEVCost   float64
	YearlyEVCost    float64

	MonthlySaving  float64
	YearlySaving   float64
	FiveYearSaving float64

	BreakEvenYears float64
}

// BreakEvenNever reports whether the break-even point is unreachable
// under the given assumptions.
func (r CalcResult) BreakEvenNever() bool {
	return math.IsInf(r.BreakEvenYears, 1)
}

// Calculate runs the commute cost calculator.
//
// Each input defaults independently when it is not a positive number
// (dailyKm 30, fuelPrice ₹104, electricityCost ₹8). Invalid input is
// never an error here: the consuming surfaces are exploratory
// calculators, so a best-effort estimate beats a rejection.
//
// The ICE side uses the calculator's own stated mileage assumption
// (DefaultCalcMileageKmPerL), not any particular vehicle's economy.
// Break-even assumes the fixed EVPremiumINR price premium.
func Calculate(dailyKm, fuelPrice, electricityCost float64) CalcResult {
	if !(dailyKm > 0) {
		dailyKm = DefaultCalcDailyKm
	}
	if !(fuelPrice > 0) {
		fuelPrice = PetrolPricePerLitre
	}
	if !(electricityCost > 0) {
		electricityCost = ElectricityPricePerKWh
	}

	dailyFuelCost := dailyKm / DefaultCalcMileageKmPerL * fuelPrice
	dailyEVCost := dailyKm / DefaultEVEfficiencyKmPerKWh * electricityCost

	yearlySaving := (dailyFuelCost - dailyEVCost) * DaysPerYear

	breakEven := math.Inf(1)
	if yearlySaving > 0 {
		breakEven = EVPremiumINR / yearlySaving
	}

	return CalcResult{
		DailyKm:         dailyKm,
		FuelPrice:       fuelPrice,
		ElectricityCost: electricityCost,

		MonthlyFuelCost: dailyFuelCost * DaysPerMonth,
		YearlyFuelCost:  dailyFuelCost * DaysPerYear,
		MonthlyEVCost:   dailyEVCost * DaysPerMonth,
		YearlyEVCost:    dailyEVCost * DaysPerYear,

		MonthlySaving:  (dailyFuelCost - dailyEVCost) * DaysPerMonth,
		YearlySaving:   yearlySaving,
		FiveYearSaving: yearlySaving * ProjectionYears,

		BreakEvenYears: breakEven,
	}
}
