package ecoscore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/driveneutral/driveneutral/internal/vehicle"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		co2  float64
		want int
	}{
		{
			name: "ceiling boundary",
			co2:  100,
			want: 20,
		},
		{
			name: "below ceiling",
			co2:  48,
			want: 20,
		},
		{
			name: "floor boundary",
			co2:  250,
			want: 1,
		},
		{
			name: "above floor",
			co2:  400,
			want: 1,
		},
		{
			name: "midpoint",
			co2:  175,
			want: 11,
		},
		{
			name: "upper sliding band",
			co2:  120,
			want: 17, // 20 - (20/150)*19 = 17.47
		},
		{
			name: "lower sliding band",
			co2:  200,
			want: 7, // 20 - (100/150)*19 = 7.33
		},
		{
			name: "zero treated as worst case",
			co2:  0,
			want: 1,
		},
		{
			name: "negative treated as worst case",
			co2:  -10,
			want: 1,
		},
		{
			name: "NaN treated as worst case",
			co2:  math.NaN(),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.co2))
		})
	}
}

func TestScoreBoundsAndMonotonicity(t *testing.T) {
	prev := ScoreMax
	for c := 90.0; c <= 260.0; c += 0.5 {
		s := Score(c)
		assert.GreaterOrEqual(t, s, ScoreMin)
		assert.LessOrEqual(t, s, ScoreMax)
		if c >= CeilingGCO2PerKm {
			assert.LessOrEqual(t, s, prev, "score must not increase as emissions rise (c=%v)", c)
			prev = s
		}
	}
}

func TestScorePtr(t *testing.T) {
	assert.Equal(t, 1, ScorePtr(nil))

	v := 100.0
	assert.Equal(t, 20, ScorePtr(&v))
}

func TestForVehicleFallbackPriority(t *testing.T) {
	tests := []struct {
		name string
		v    vehicle.Normalized
		want int
	}{
		{
			name: "direct lifecycle data wins over every estimate",
			v: vehicle.Normalized{
				Record: vehicle.Record{
					LifecycleGCO2Km: vehicle.NewFloat(250),
					AvgEmissionsGMi: vehicle.NewFloat(100),
					EstCO2Per100Km:  vehicle.NewFloat(5),
				},
				FuelType: vehicle.FuelElectric,
			},
			want: 1,
		},
		{
			name: "g per mile conversion",
			v: vehicle.Normalized{
				// 160.934 g/mi -> 100 g/km -> ceiling
				Record:   vehicle.Record{AvgEmissionsGMi: vehicle.NewFloat(160.934)},
				FuelType: vehicle.FuelPetrol,
			},
			want: 20,
		},
		{
			name: "per hundred km conversion",
			v: vehicle.Normalized{
				// 17.5 per 100km -> 175 g/km -> midpoint
				Record:   vehicle.Record{EstCO2Per100Km: vehicle.NewFloat(17.5)},
				FuelType: vehicle.FuelPetrol,
			},
			want: 11,
		},
		{
			name: "electric default bypasses clamp",
			v:    vehicle.Normalized{FuelType: vehicle.FuelElectric},
			want: 20,
		},
		{
			name: "hybrid default",
			v:    vehicle.Normalized{FuelType: vehicle.FuelHybrid},
			want: 15,
		},
		{
			name: "combustion default",
			v:    vehicle.Normalized{FuelType: vehicle.FuelDiesel},
			want: 7,
		},
		{
			name: "zero lifecycle reading falls through to default",
			v: vehicle.Normalized{
				Record:   vehicle.Record{LifecycleGCO2Km: vehicle.NewFloat(0)},
				FuelType: vehicle.FuelElectric,
			},
			want: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.v
			assert.Equal(t, tt.want, ForVehicle(&v))
		})
	}
}
