package costing

// Market assumption constants, all in Indian rupees. These are the
// documented product assumptions, hoisted here so every surface quotes
// the same numbers.
const (
	// PetrolPricePerLitre is the assumed average petrol price (₹/L).
	PetrolPricePerLitre = 104.0

	// DieselPricePerLitre is the assumed average diesel price (₹/L).
	DieselPricePerLitre = 90.0

	// ElectricityPricePerKWh is the assumed home charging tariff (₹/kWh).
	ElectricityPricePerKWh = 8.0

	// DefaultMaintenanceYearlyINR is assumed when a record carries no
	// yearly maintenance estimate.
	DefaultMaintenanceYearlyINR = 15000.0

	// EVPremiumINR is the assumed up-front price premium of an EV over
	// a comparable combustion vehicle, used by break-even math.
	EVPremiumINR = 500000.0
)

// Efficiency assumption constants.
//
// DefaultVehicleMileageKmPerL and DefaultCalcMileageKmPerL are equal
// today but deliberately separate: the first is the projection
// fallback applied when a specific vehicle's recorded fuel economy is
// missing, the second is the stated default of the interactive cost
// calculator, which makes no reference to any particular vehicle.
// They are independent product assumptions and must not be unified.
const (
	// DefaultEVEfficiencyKmPerKWh is assumed when an EV's efficiency
	// is unknown.
	DefaultEVEfficiencyKmPerKWh = 7.0

	// DefaultVehicleMileageKmPerL is the fallback mileage for a
	// vehicle with no recorded fuel economy.
	DefaultVehicleMileageKmPerL = 15.0

	// DefaultCalcMileageKmPerL is the interactive calculator's stated
	// average ICE mileage.
	DefaultCalcMileageKmPerL = 15.0

	// DefaultCalcDailyKm is the interactive calculator's default
	// commute distance.
	DefaultCalcDailyKm = 30.0

	// MPGToKmPerL converts recorded fuel economy from miles per
	// gallon to km per litre.
	MPGToKmPerL = 0.425144

	// HomeChargerKW is the assumed home wallbox charging rate, used
	// for charging-time estimates.
	HomeChargerKW = 7.2
)

// Emissions assumption constants.
const (
	// BaselineICEGCO2PerKm is the reference petrol vehicle's
	// lifecycle emissions, used both as the missing-data default for
	// combustion vehicles and as the savings baseline.
	BaselineICEGCO2PerKm = 160.0

	// GramsPerKg converts gram-denominated yearly totals to kg.
	GramsPerKg = 1000.0
)

// Projection horizon constants.
const (
	// DaysPerYear is the commute-days multiplier for yearly totals.
	DaysPerYear = 365.0

	// DaysPerMonth is the commute-days multiplier for monthly totals.
	DaysPerMonth = 30.0

	// ProjectionYears is the ownership projection horizon.
	ProjectionYears = 5.0
)
