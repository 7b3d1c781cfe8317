package engine

import (
	"math"

	"github.com/driveneutral/driveneutral/internal/vehicle"
)

// VehicleProfile is a presentation-ready summary of one vehicle under
// the standard usage assumption. Monetary figures carry both a raw
// integer (rupees) and a formatted lakh-notation string so callers
// never re-implement the formatting rules.
type VehicleProfile struct {
	Name               string           `json:"name"`
	Manufacturer       string           `json:"manufacturer"`
	Category           string           `json:"category"`
	Image              string           `json:"image,omitempty"`
	FuelType           vehicle.FuelType    `json:"fuel_type"`
	BodySegment        vehicle.BodySegment `json:"body_type"`
	BasePrice          *int             `json:"base_price"`
	BasePriceFmt       string           `json:"base_price_fmt"`
	FuelCostYearly     int              `json:"fuel_cost_yearly"`
	FuelCostYearlyFmt  string           `json:"fuel_cost_yearly_fmt"`
	CO2YearlyKg        int              `json:"co2_yearly_kg"`
	OwnershipCost5y    int              `json:"ownership_cost_5y"`
	OwnershipCost5yFmt string           `json:"ownership_cost_5y_fmt"`
	SustainabilityScore int             `json:"sustainability_score"`
	RangeKm            *float64         `json:"range_km,omitempty"`
	BatteryCapacityKWh *float64         `json:"battery_capacity,omitempty"`
	EfficiencyKmPerKWh *float64         `json:"efficiency,omitempty"`
	FuelEconomyMPG     *float64         `json:"fuel_economy,omitempty"`
}

// ComparisonResult is the outcome of a head-to-head comparison.
type ComparisonResult struct {
	Vehicle1       VehicleProfile `json:"vehicle1"`
	Vehicle2       VehicleProfile `json:"vehicle2"`
	Recommendation string         `json:"recommendation"`
}

// EcoCriteria filters the catalog for FindEcoFriendly. Zero or
// negative BudgetMax means unbounded; empty or "all" segment and fuel
// values match everything.
type EcoCriteria struct {
	BudgetMin int    `json:"budget_min"`
	BudgetMax int    `json:"budget_max"`
	BodyType  string `json:"body_type"`
	FuelType  string `json:"fuel_type"`
}

// EcoPick is the top-ranked vehicle from an eco-friendly search.
type EcoPick struct {
	Name                string           `json:"name"`
	Image               string           `json:"image,omitempty"`
	Category            string           `json:"category"`
	FuelType            vehicle.FuelType `json:"fuel_type"`
	BasePrice           *int             `json:"base_price"`
	BasePriceFmt        string           `json:"base_price_fmt"`
	SustainabilityScore int              `json:"sustainability_score"`
}

// EcoAlternative is a runner-up entry in an eco-friendly search.
type EcoAlternative struct {
	Name         string           `json:"name"`
	FuelType     vehicle.FuelType `json:"fuel_type"`
	BasePrice    *int             `json:"base_price"`
	BasePriceFmt string           `json:"base_price_fmt"`
}

// EcoResult holds the greenest match plus up to three alternatives
// and the yearly savings of the top pick against an average ICE car.
type EcoResult struct {
	Best               EcoPick          `json:"best"`
	CO2SavedYearlyKg   int              `json:"co2_saved_yearly_kg"`
	CostSavedYearly    int              `json:"cost_saved_yearly"`
	CostSavedYearlyFmt string           `json:"cost_saved_yearly_fmt"`
	Alternatives       []EcoAlternative `json:"alternatives"`
}

// EVOption is one entry in a budget-constrained EV shortlist.
type EVOption struct {
	Name                 string   `json:"name"`
	Image                string   `json:"image,omitempty"`
	BasePrice            *int     `json:"base_price"`
	BasePriceFmt         string   `json:"base_price_fmt"`
	RangeKm              *float64 `json:"range_km,omitempty"`
	BatteryCapacityKWh   *float64 `json:"battery_capacity,omitempty"`
	ChargingTime         string   `json:"charging_time"`
	RunningCostYearly    int      `json:"running_cost_yearly"`
	RunningCostYearlyFmt string   `json:"running_cost_yearly_fmt"`
	CO2ReductionKg       int      `json:"co2_reduction_kg"`
}

// CostResult reports the EV-versus-petrol running cost comparison for
// a commute profile. BreakEvenYears is +Inf when the EV never pays
// back its premium; BreakEvenYearsRounded is nil in that case so the
// JSON form stays encodable.
type CostResult struct {
	DailyKm               float64  `json:"daily_km"`
	FuelPricePerLitre     float64  `json:"fuel_price_per_litre"`
	ElectricityPricePerKWh float64 `json:"electricity_price_per_kwh"`
	MonthlyFuelCost       int      `json:"monthly_fuel_cost"`
	MonthlyFuelCostFmt    string   `json:"monthly_fuel_cost_fmt"`
	MonthlyEVCost         int      `json:"monthly_ev_cost"`
	MonthlyEVCostFmt      string   `json:"monthly_ev_cost_fmt"`
	YearlyFuelCost        int      `json:"yearly_fuel_cost"`
	YearlyEVCost          int      `json:"yearly_ev_cost"`
	MonthlySaving         int      `json:"monthly_saving"`
	MonthlySavingFmt      string   `json:"monthly_saving_fmt"`
	FiveYearSaving        int      `json:"five_year_saving"`
	FiveYearSavingFmt     string   `json:"five_year_saving_fmt"`
	BreakEvenYears        float64  `json:"-"`
	BreakEvenYearsRounded *float64 `json:"break_even_years"`
	BreakEvenNever        bool     `json:"break_even_never"`
}

// NeverBreaksEven reports whether the EV premium is never recovered.
func (r CostResult) NeverBreaksEven() bool {
	return math.IsInf(r.BreakEvenYears, 1)
}
