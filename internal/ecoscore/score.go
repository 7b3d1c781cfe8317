// Package ecoscore computes the 1-20 nutrition (sustainability) score
// from lifecycle emissions, including the fallback estimation chain
// for vehicles whose lifecycle data is missing.
package ecoscore

import (
	"math"

	"github.com/driveneutral/driveneutral/internal/vehicle"
)

// Score converts lifecycle emissions in gCO2/km into the 1-20
// nutrition score.
//
// NaN, zero, and negative inputs return ScoreMin: the system cannot
// assume innocence of an unreported high emitter, so missing data is
// scored worst-case. Values at or below CeilingGCO2PerKm return
// ScoreMax, values at or above FloorGCO2PerKm return ScoreMin, and
// everything between slides linearly.
func Score(gCO2PerKm float64) int {
	if math.IsNaN(gCO2PerKm) || gCO2PerKm <= 0 {
		return ScoreMin
	}
	if gCO2PerKm <= CeilingGCO2PerKm {
		return ScoreMax
	}
	if gCO2PerKm >= FloorGCO2PerKm {
		return ScoreMin
	}

	raw := float64(ScoreMax) - ((gCO2PerKm-CeilingGCO2PerKm)/slideRange)*slideSpan
	clamped := math.Max(float64(ScoreMin), math.Min(float64(ScoreMax), raw))
	return int(math.Round(clamped))
}

// ScorePtr is Score for nullable inputs; nil scores ScoreMin.
func ScorePtr(gCO2PerKm *float64) int {
	if gCO2PerKm == nil {
		return ScoreMin
	}
	return Score(*gCO2PerKm)
}

// ForVehicle scores a vehicle, applying the fallback estimation chain
// when lifecycle emissions are not directly available. The priority
// order is fixed: direct lifecycle data always beats any derived
// estimate.
//
//  1. lifecycle gCO2/km, scored directly
//  2. EPA-style g/mile emissions, converted via MilesPerKm
//  3. per-100km CO2, converted via Per100KmToPerKm
//  4. fuel-type default (electric 20, hybrid 15, else 7), which
//     bypasses the clamp formula entirely
func ForVehicle(v *vehicle.Normalized) int {
	if v.LifecycleGCO2Km.Positive() {
		return Score(v.LifecycleGCO2Km.Value())
	}
	if v.AvgEmissionsGMi.Positive() {
		return Score(v.AvgEmissionsGMi.Value() / MilesPerKm)
	}
	if v.EstCO2Per100Km.Positive() {
		return Score(v.EstCO2Per100Km.Value() * Per100KmToPerKm)
	}

	switch v.FuelType {
	case vehicle.FuelElectric:
		return DefaultScoreElectric
	case vehicle.FuelHybrid:
		return DefaultScoreHybrid
	default:
		return DefaultScoreCombustion
	}
}
