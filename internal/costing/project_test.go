package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/driveneutral/driveneutral/internal/vehicle"
)

func petrolVehicle() *vehicle.Normalized {
	return &vehicle.Normalized{
		Record:   vehicle.Record{Manufacturer: "Hyundai", Name: "Creta"},
		FuelType: vehicle.FuelPetrol,
	}
}

func electricVehicle() *vehicle.Normalized {
	return &vehicle.Normalized{
		Record:   vehicle.Record{Manufacturer: "Tata", Name: "Nexon EV"},
		FuelType: vehicle.FuelElectric,
	}
}

func TestYearlyRunningCost(t *testing.T) {
	tests := []struct {
		name    string
		v       *vehicle.Normalized
		dailyKm float64
		want    float64
	}{
		{
			name:    "petrol with default mileage",
			v:       petrolVehicle(),
			dailyKm: 30,
			// 30/15 L/day * 104 * 365
			want: 75920,
		},
		{
			name: "diesel priced at diesel rate",
			v: &vehicle.Normalized{
				FuelType: vehicle.FuelDiesel,
			},
			dailyKm: 30,
			// 30/15 L/day * 90 * 365
			want: 65700,
		},
		{
			name: "recorded fuel economy converts from MPG",
			v: &vehicle.Normalized{
				Record:   vehicle.Record{AvgFuelEconomyMPG: vehicle.NewFloat(40)},
				FuelType: vehicle.FuelPetrol,
			},
			dailyKm: 30,
			// mileage = 40*0.425144 = 17.00576 km/L
			want: 30 / (40 * MPGToKmPerL) * 104 * 365,
		},
		{
			name:    "electric with default efficiency",
			v:       electricVehicle(),
			dailyKm: 30,
			// 30/7 kWh/day * 8 * 365
			want: 12514.285714285714,
		},
		{
			name: "electric with recorded efficiency",
			v: &vehicle.Normalized{
				Record:   vehicle.Record{EfficiencyKmPerKWh: vehicle.NewFloat(6)},
				FuelType: vehicle.FuelElectric,
			},
			dailyKm: 30,
			// 30/6 kWh/day * 8 * 365
			want: 14600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, YearlyRunningCost(tt.v, tt.dailyKm), 1e-6)
		})
	}
}

func TestYearlyCO2Kg(t *testing.T) {
	assert.InDelta(t, 0, YearlyCO2Kg(electricVehicle(), 30), 1e-9)

	// Baseline default: 30 * 160 * 365 / 1000
	assert.InDelta(t, 1752, YearlyCO2Kg(petrolVehicle(), 30), 1e-6)

	recorded := petrolVehicle()
	recorded.LifecycleGCO2Km = vehicle.NewFloat(100)
	assert.InDelta(t, 1095, YearlyCO2Kg(recorded, 30), 1e-6)
}

func TestSavingsNeverNegative(t *testing.T) {
	// An EV saves the full baseline CO2.
	assert.InDelta(t, 1752, YearlyCO2SavingsKg(electricVehicle(), 30), 1e-6)

	// A vehicle dirtier than the baseline reports zero, not negative.
	dirty := petrolVehicle()
	dirty.LifecycleGCO2Km = vehicle.NewFloat(300)
	assert.Zero(t, YearlyCO2SavingsKg(dirty, 30))

	// A thirstier-than-baseline vehicle likewise clamps cost savings.
	thirsty := petrolVehicle()
	thirsty.AvgFuelEconomyMPG = vehicle.NewFloat(20) // 8.5 km/L, worse than 15
	assert.Zero(t, YearlyCostSavings(thirsty, 30))

	assert.Greater(t, YearlyCostSavings(electricVehicle(), 30), 0.0)
}

func TestOwnershipCost(t *testing.T) {
	v := petrolVehicle()
	price := 1000000
	v.BasePrice = &price

	// 1,000,000 + 75,920*5 + 15,000*5
	assert.InDelta(t, 1454600, OwnershipCost(v, 30), 1e-6)
}

func TestOwnershipCostUnknownPriceTreatedAsZero(t *testing.T) {
	v := petrolVehicle()
	v.MaintenanceYearlyINR = vehicle.NewFloat(20000)

	// 0 + 75,920*5 + 20,000*5
	assert.InDelta(t, 479600, OwnershipCost(v, 30), 1e-6)
}
