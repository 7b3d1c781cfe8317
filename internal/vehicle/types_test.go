package vehicle

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantValue float64
	}{
		{
			name:      "plain number",
			input:     `142.5`,
			wantValid: true,
			wantValue: 142.5,
		},
		{
			name:      "numeric string",
			input:     `"465"`,
			wantValid: true,
			wantValue: 465,
		},
		{
			name:      "numeric string with whitespace",
			input:     `" 21.01 "`,
			wantValid: true,
			wantValue: 21.01,
		},
		{
			name:      "null stays unset",
			input:     `null`,
			wantValid: false,
		},
		{
			name:      "free text stays unset",
			input:     `"not available"`,
			wantValid: false,
		},
		{
			name:      "object stays unset",
			input:     `{"v": 1}`,
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Float
			err := json.Unmarshal([]byte(tt.input), &f)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, f.Valid())
			if tt.wantValid {
				assert.InDelta(t, tt.wantValue, f.Value(), 1e-9)
			}
		})
	}
}

func TestFloatOr(t *testing.T) {
	assert.InDelta(t, 42.0, NewFloat(42).Or(7), 1e-9)

	// Zero and negative readings fall back like missing data.
	assert.InDelta(t, 7.0, NewFloat(0).Or(7), 1e-9)
	assert.InDelta(t, 7.0, NewFloat(-3).Or(7), 1e-9)
	assert.InDelta(t, 7.0, Float{}.Or(7), 1e-9)
}

func TestFloatPtr(t *testing.T) {
	assert.Nil(t, Float{}.Ptr())

	p := NewFloat(15).Ptr()
	require.NotNil(t, p)
	assert.InDelta(t, 15.0, *p, 1e-9)
}

func TestRecordUnmarshalToleratesMixedColumns(t *testing.T) {
	raw := `{
		"manufacturer": "Tata",
		"name": "Nexon EV",
		"year": 2024,
		"category": "Electric SUV",
		"lifecycle_gco2_km": "48",
		"range_km": 465,
		"battery_capacity": "n/a",
		"avg_fuel_economy": null
	}`

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	assert.Equal(t, "Tata", rec.Manufacturer)
	assert.True(t, rec.LifecycleGCO2Km.Valid())
	assert.InDelta(t, 48.0, rec.LifecycleGCO2Km.Value(), 1e-9)
	assert.True(t, rec.RangeKm.Positive())
	assert.False(t, rec.BatteryCapacityKWh.Valid())
	assert.False(t, rec.AvgFuelEconomyMPG.Valid())
}
