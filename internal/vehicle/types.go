// Package vehicle defines the vehicle data model: raw upstream records,
// the normalized form the rest of the engine consumes, and the
// inference policies that repair partially missing upstream data.
package vehicle

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FuelType classifies a vehicle's power source. It is always inferred
// during normalization and never absent.
type FuelType string

const (
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
	FuelDiesel   FuelType = "diesel"
	FuelPetrol   FuelType = "petrol"
)

// BodySegment classifies a vehicle's body style, inferred from the
// manufacturer+model name.
type BodySegment string

const (
	SegmentSedan      BodySegment = "sedan"
	SegmentHatchback  BodySegment = "hatchback"
	SegmentSUV        BodySegment = "suv"
	SegmentCompactSUV BodySegment = "compact suv"
	SegmentMPV        BodySegment = "mpv"
	SegmentCoupe      BodySegment = "coupe"
)

// Float is an optional numeric field tolerant of malformed upstream
// data. Upstream rows mix numbers, numeric strings, nulls, and the
// occasional free-text value in numeric columns; anything that does
// not parse is treated as unset rather than failing the whole record.
type Float struct {
	value float64
	valid bool
}

// NewFloat returns a set Float.
func NewFloat(v float64) Float {
	return Float{value: v, valid: true}
}

// FloatFromPtr converts a nullable value (e.g. a scanned SQL column)
// into a Float. nil yields an unset Float.
func FloatFromPtr(p *float64) Float {
	if p == nil {
		return Float{}
	}
	return NewFloat(*p)
}

// Valid reports whether the field carried a numeric value.
func (f Float) Valid() bool { return f.valid }

// Value returns the numeric value, or 0 when unset.
func (f Float) Value() float64 { return f.value }

// Positive reports whether the field holds a value greater than zero.
// Most fallback policies treat zero and negative readings the same as
// missing data, so this is the usual presence check.
func (f Float) Positive() bool { return f.valid && f.value > 0 }

// Or returns the value when it is present and positive, otherwise def.
func (f Float) Or(def float64) float64 {
	if f.Positive() {
		return f.value
	}
	return def
}

// Ptr returns the value as a pointer, or nil when unset.
func (f Float) Ptr() *float64 {
	if !f.valid {
		return nil
	}
	v := f.value
	return &v
}

// UnmarshalJSON accepts numbers, numeric strings, and null. Any other
// shape leaves the field unset without reporting an error.
func (f *Float) UnmarshalJSON(data []byte) error {
	*f = Float{}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = NewFloat(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, parseErr := strconv.ParseFloat(strings.TrimSpace(s), 64); parseErr == nil {
			*f = NewFloat(parsed)
		}
		return nil
	}

	// Arrays/objects in a numeric column: drop silently.
	return nil
}

// MarshalJSON renders the value, or null when unset.
func (f Float) MarshalJSON() ([]byte, error) {
	if !f.valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// Record is a raw vehicle row as delivered by the upstream store.
// Numeric fields may be absent or malformed; see Float.
type Record struct {
	Manufacturer string `json:"manufacturer"`
	Name         string `json:"name"`
	Year         int    `json:"year"`

	// Category is free text used to infer the fuel type.
	Category string `json:"category"`

	Image string `json:"image,omitempty"`

	LifecycleGCO2Km      Float `json:"lifecycle_gco2_km"`
	AvgEmissionsGMi      Float `json:"avg_emissions_gmi"`
	EstCO2Per100Km       Float `json:"est_co2_per_100km"`
	BatteryCapacityKWh   Float `json:"battery_capacity"`
	RangeKm              Float `json:"range_km"`
	EfficiencyKmPerKWh   Float `json:"univ_efficiency_km_kwh_e"`
	AvgFuelEconomyMPG    Float `json:"avg_fuel_economy"`
	MaintenanceYearlyINR Float `json:"est_yearly_maintenance_inr"`
	ExShowroomPriceINR   Float `json:"ex_showroom_price"`
}

// Normalized is a Record plus the derived fields every consumer needs.
// Instances are built once per catalog refresh and treated as
// read-only afterwards.
type Normalized struct {
	Record

	// DisplayName is "Manufacturer Name (Year)".
	DisplayName string `json:"ui_name"`

	FuelType    FuelType    `json:"fuel_type"`
	BodySegment BodySegment `json:"body_type"`

	// BasePrice is the resolved ex-showroom price in rupees,
	// nil when neither the record nor the price lookup knows it.
	BasePrice *int `json:"base_price"`

	// SustainabilityScore is the 1-20 nutrition score.
	SustainabilityScore int `json:"sustainability_score"`
}

// HasImage reports whether the vehicle has a resolved image reference.
func (v *Normalized) HasImage() bool { return v.Image != "" }
