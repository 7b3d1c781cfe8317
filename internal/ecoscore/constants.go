package ecoscore

// Nutrition score band constants.
//
// The score is a linear min-max clamp over lifecycle emissions, NOT a
// generic normalization: the exact thresholds are part of the product
// contract and are mirrored by the published methodology page.
const (
	// ScoreMin is the floor of the nutrition score range.
	ScoreMin = 1

	// ScoreMax is the ceiling of the nutrition score range.
	ScoreMax = 20

	// CeilingGCO2PerKm is the best-in-class band: emissions at or
	// below this are scored ScoreMax.
	CeilingGCO2PerKm = 100.0

	// FloorGCO2PerKm is the highest-impact band: emissions at or
	// above this are scored ScoreMin.
	FloorGCO2PerKm = 250.0

	// slideRange is the width of the sliding band between ceiling
	// and floor.
	slideRange = FloorGCO2PerKm - CeilingGCO2PerKm

	// slideSpan is the score distance covered by the sliding band.
	slideSpan = float64(ScoreMax - ScoreMin)
)

// Unit conversion constants for emissions fallback estimation.
const (
	// MilesPerKm converts g/mile emissions readings to g/km.
	MilesPerKm = 1.60934

	// Per100KmToPerKm converts "g CO2 per 100 km" readings to g/km.
	// The upstream column is recorded per 100 km in kg-scale units,
	// so the factor is 10 rather than 0.01.
	Per100KmToPerKm = 10.0
)

// Category default scores, used when a vehicle carries no usable
// emissions reading at all. These bypass the clamp formula entirely.
const (
	// DefaultScoreElectric assumes zero-tailpipe vehicles land in the
	// best band.
	DefaultScoreElectric = 20

	// DefaultScoreHybrid places hybrids in the upper-middle band.
	DefaultScoreHybrid = 15

	// DefaultScoreCombustion is the conservative estimate for
	// unreported combustion vehicles.
	DefaultScoreCombustion = 7
)
