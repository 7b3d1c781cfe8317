// Package costing projects running costs and CO2 output for vehicles
// under stated usage assumptions, and implements the commute cost
// calculator with its EV break-even math.
//
// Everything here is pure computation: no catalog access, no clocks,
// no randomness. Results are deterministic for a given input.
package costing

import (
	"github.com/driveneutral/driveneutral/internal/vehicle"
)

// Projection is the per-vehicle yearly outlook under the given usage
// assumptions. CO2 is reported in kilograms.
type Projection struct {
	FuelCostYearly float64
	CO2YearlyKg    float64
}

// ProjectYearly estimates one year of running cost and CO2 output for
// a vehicle driven dailyKm every day.
func ProjectYearly(v *vehicle.Normalized, dailyKm float64) Projection {
	return Projection{
		FuelCostYearly: YearlyRunningCost(v, dailyKm),
		CO2YearlyKg:    YearlyCO2Kg(v, dailyKm),
	}
}

// YearlyRunningCost estimates the yearly fuel or electricity spend.
//
// Electric vehicles charge at the assumed home tariff, using the
// recorded efficiency or DefaultEVEfficiencyKmPerKWh. Combustion
// vehicles use recorded fuel economy (MPG, converted to km/L) when
// present, otherwise DefaultVehicleMileageKmPerL; hybrids are priced
// as petrol.
func YearlyRunningCost(v *vehicle.Normalized, dailyKm float64) float64 {
	if v.FuelType == vehicle.FuelElectric {
		kwhPerDay := dailyKm / v.EfficiencyKmPerKWh.Or(DefaultEVEfficiencyKmPerKWh)
		return kwhPerDay * ElectricityPricePerKWh * DaysPerYear
	}

	mileage := DefaultVehicleMileageKmPerL
	if v.AvgFuelEconomyMPG.Positive() {
		mileage = v.AvgFuelEconomyMPG.Value() * MPGToKmPerL
	}

	price := PetrolPricePerLitre
	if v.FuelType == vehicle.FuelDiesel {
		price = DieselPricePerLitre
	}

	litresPerDay := dailyKm / mileage
	return litresPerDay * price * DaysPerYear
}

// YearlyCO2Kg estimates the yearly CO2 output in kilograms. Electric
// vehicles report zero; combustion vehicles use recorded lifecycle
// emissions or the baseline ICE figure.
func YearlyCO2Kg(v *vehicle.Normalized, dailyKm float64) float64 {
	if v.FuelType == vehicle.FuelElectric {
		return 0
	}
	return dailyKm * v.LifecycleGCO2Km.Or(BaselineICEGCO2PerKm) * DaysPerYear / GramsPerKg
}

// YearlyCO2SavingsKg is the CO2 avoided per year versus the baseline
// petrol vehicle, clamped to zero. A vehicle dirtier than the baseline
// reports zero savings, never negative.
func YearlyCO2SavingsKg(v *vehicle.Normalized, dailyKm float64) float64 {
	saved := BaselineICECO2Kg(dailyKm) - YearlyCO2Kg(v, dailyKm)
	return clampNonNegative(saved)
}

// YearlyCostSavings is the running cost avoided per year versus the
// baseline petrol vehicle, clamped to zero.
func YearlyCostSavings(v *vehicle.Normalized, dailyKm float64) float64 {
	saved := BaselineICEFuelCost(dailyKm) - YearlyRunningCost(v, dailyKm)
	return clampNonNegative(saved)
}

// OwnershipCost estimates the total cost of ownership over the
// projection horizon: resolved base price (zero when unknown) plus
// fuel and maintenance for ProjectionYears.
func OwnershipCost(v *vehicle.Normalized, dailyKm float64) float64 {
	base := 0.0
	if v.BasePrice != nil {
		base = float64(*v.BasePrice)
	}

	fuel := YearlyRunningCost(v, dailyKm) * ProjectionYears
	maintenance := v.MaintenanceYearlyINR.Or(DefaultMaintenanceYearlyINR) * ProjectionYears
	return base + fuel + maintenance
}

// BaselineICECO2Kg is the yearly CO2 (kg) of the reference petrol
// vehicle at BaselineICEGCO2PerKm.
func BaselineICECO2Kg(dailyKm float64) float64 {
	return dailyKm * BaselineICEGCO2PerKm * DaysPerYear / GramsPerKg
}

// BaselineICEFuelCost is the yearly fuel spend of the reference petrol
// vehicle at DefaultVehicleMileageKmPerL.
func BaselineICEFuelCost(dailyKm float64) float64 {
	return dailyKm / DefaultVehicleMileageKmPerL * PetrolPricePerLitre * DaysPerYear
}

// BaselineEVCost is the yearly electricity spend of the reference EV
// at DefaultEVEfficiencyKmPerKWh.
func BaselineEVCost(dailyKm float64) float64 {
	return dailyKm / DefaultEVEfficiencyKmPerKWh * ElectricityPricePerKWh * DaysPerYear
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
