package catalog

import (
	"context"

	"github.com/driveneutral/driveneutral/internal/vehicle"
)

// SeedStore serves the curated built-in record set. It backs the CLI
// when no database is configured and gives tests a deterministic
// catalog.
type SeedStore struct{}

// NewSeedStore returns a SeedStore.
func NewSeedStore() *SeedStore { return &SeedStore{} }

// FetchVehicles returns a fresh copy of the curated record set.
func (s *SeedStore) FetchVehicles(_ context.Context) ([]vehicle.Record, error) {
	out := make([]vehicle.Record, len(seedRecords))
	copy(out, seedRecords)
	return out, nil
}

// seedRecords mirrors the curated market data set: prices from the
// CarWale/CarDekho listings, lifecycle emissions from the published
// methodology sheet. Fuel economy is recorded in MPG as delivered by
// the upstream source.
var seedRecords = []vehicle.Record{
	{
		Manufacturer: "Tata", Name: "Nexon EV", Year: 2024, Category: "Electric SUV",
		Image:              "https://img.driveneutral.in/tata-nexon-ev.jpg",
		LifecycleGCO2Km:    vehicle.NewFloat(48),
		BatteryCapacityKWh: vehicle.NewFloat(40.5),
		RangeKm:            vehicle.NewFloat(465),
		EfficiencyKmPerKWh: vehicle.NewFloat(6.7),
		ExShowroomPriceINR: vehicle.NewFloat(1479000),
	},
	{
		Manufacturer: "Tata", Name: "Punch EV", Year: 2024, Category: "Electric Hatchback",
		LifecycleGCO2Km:    vehicle.NewFloat(45),
		BatteryCapacityKWh: vehicle.NewFloat(35),
		RangeKm:            vehicle.NewFloat(421),
		EfficiencyKmPerKWh: vehicle.NewFloat(7.4),
		ExShowroomPriceINR: vehicle.NewFloat(999000),
	},
	{
		Manufacturer: "MG", Name: "ZS EV", Year: 2023, Category: "Electric SUV",
		LifecycleGCO2Km:    vehicle.NewFloat(52),
		BatteryCapacityKWh: vehicle.NewFloat(50.3),
		RangeKm:            vehicle.NewFloat(461),
		EfficiencyKmPerKWh: vehicle.NewFloat(6.1),
		ExShowroomPriceINR: vehicle.NewFloat(2188000),
	},
	{
		Manufacturer: "Hyundai", Name: "Creta Electric", Year: 2025, Category: "Electric SUV",
		LifecycleGCO2Km:    vehicle.NewFloat(50),
		BatteryCapacityKWh: vehicle.NewFloat(51.4),
		RangeKm:            vehicle.NewFloat(473),
		EfficiencyKmPerKWh: vehicle.NewFloat(6.5),
		ExShowroomPriceINR: vehicle.NewFloat(1799000),
	},
	{
		Manufacturer: "BYD", Name: "Atto 3", Year: 2023, Category: "Electric SUV",
		LifecycleGCO2Km:    vehicle.NewFloat(55),
		BatteryCapacityKWh: vehicle.NewFloat(60.5),
		RangeKm:            vehicle.NewFloat(521),
		EfficiencyKmPerKWh: vehicle.NewFloat(6.4),
		ExShowroomPriceINR: vehicle.NewFloat(2599000),
	},
	{
		Manufacturer: "Tata", Name: "Curvv EV", Year: 2024, Category: "Electric SUV",
		LifecycleGCO2Km:    vehicle.NewFloat(49),
		BatteryCapacityKWh: vehicle.NewFloat(55),
		RangeKm:            vehicle.NewFloat(502),
		EfficiencyKmPerKWh: vehicle.NewFloat(6.6),
		ExShowroomPriceINR: vehicle.NewFloat(1749000),
	},
	{
		Manufacturer: "Maruti", Name: "Grand Vitara Hybrid", Year: 2023, Category: "Hybrid SUV",
		LifecycleGCO2Km:      vehicle.NewFloat(105),
		AvgFuelEconomyMPG:    vehicle.NewFloat(65.8),
		MaintenanceYearlyINR: vehicle.NewFloat(12000),
		ExShowroomPriceINR:   vehicle.NewFloat(1099000),
	},
	{
		Manufacturer: "Toyota", Name: "Innova HyCross", Year: 2023, Category: "Hybrid MPV",
		LifecycleGCO2Km:    vehicle.NewFloat(125),
		AvgFuelEconomyMPG:  vehicle.NewFloat(49.6),
		ExShowroomPriceINR: vehicle.NewFloat(1899000),
	},
	{
		Manufacturer: "Maruti Suzuki", Name: "Swift", Year: 2024, Category: "Petrol Hatchback",
		LifecycleGCO2Km:      vehicle.NewFloat(140),
		AvgFuelEconomyMPG:    vehicle.NewFloat(52.6),
		MaintenanceYearlyINR: vehicle.NewFloat(8000),
		ExShowroomPriceINR:   vehicle.NewFloat(649000),
	},
	{
		Manufacturer: "Maruti Suzuki", Name: "Baleno", Year: 2023, Category: "Petrol Hatchback",
		LifecycleGCO2Km:    vehicle.NewFloat(145),
		AvgFuelEconomyMPG:  vehicle.NewFloat(49.4),
		ExShowroomPriceINR: vehicle.NewFloat(699000),
	},
	{
		Manufacturer: "Hyundai", Name: "i20", Year: 2023, Category: "Petrol Hatchback",
		LifecycleGCO2Km:    vehicle.NewFloat(150),
		AvgFuelEconomyMPG:  vehicle.NewFloat(47.5),
		ExShowroomPriceINR: vehicle.NewFloat(774000),
	},
	{
		Manufacturer: "Honda", Name: "City", Year: 2023, Category: "Petrol Sedan",
		LifecycleGCO2Km:    vehicle.NewFloat(155),
		AvgFuelEconomyMPG:  vehicle.NewFloat(43.3),
		ExShowroomPriceINR: vehicle.NewFloat(1194000),
	},
	{
		Manufacturer: "Hyundai", Name: "Creta", Year: 2024, Category: "Petrol SUV",
		Image:              "https://img.driveneutral.in/hyundai-creta.jpg",
		LifecycleGCO2Km:    vehicle.NewFloat(168),
		AvgFuelEconomyMPG:  vehicle.NewFloat(40.9),
		ExShowroomPriceINR: vehicle.NewFloat(1099000),
	},
	{
		Manufacturer: "Kia", Name: "Seltos", Year: 2024, Category: "Petrol SUV",
		LifecycleGCO2Km:    vehicle.NewFloat(172),
		AvgFuelEconomyMPG:  vehicle.NewFloat(38.8),
		ExShowroomPriceINR: vehicle.NewFloat(1089000),
	},
	{
		Manufacturer: "Tata", Name: "Harrier", Year: 2023, Category: "Diesel SUV",
		LifecycleGCO2Km:    vehicle.NewFloat(185),
		AvgFuelEconomyMPG:  vehicle.NewFloat(34.3),
		ExShowroomPriceINR: vehicle.NewFloat(1549000),
	},
	{
		Manufacturer: "Mahindra", Name: "XUV700", Year: 2024, Category: "Petrol SUV",
		LifecycleGCO2Km:    vehicle.NewFloat(190),
		AvgFuelEconomyMPG:  vehicle.NewFloat(35.7),
		ExShowroomPriceINR: vehicle.NewFloat(1399000),
	},
}
