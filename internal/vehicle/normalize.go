package vehicle

import (
	"fmt"
	"math"
	"strings"
)

// PriceLookup resolves an ex-showroom base price (in rupees) for a
// model name. It is consulted only when a record carries no price of
// its own. Implementations return nil when the name is unknown.
type PriceLookup func(name string) *int

// Normalize derives the display name, fuel type, body segment, and
// base price for a raw record. The sustainability score is filled in
// by the catalog once scoring has run.
func Normalize(rec Record, lookup PriceLookup) Normalized {
	v := Normalized{
		Record:      rec,
		DisplayName: fmt.Sprintf("%s %s (%d)", rec.Manufacturer, rec.Name, rec.Year),
		FuelType:    InferFuelType(rec.Category),
		BodySegment: InferBodySegment(rec.Manufacturer, rec.Name),
	}

	if rec.ExShowroomPriceINR.Positive() {
		price := int(math.Round(rec.ExShowroomPriceINR.Value()))
		v.BasePrice = &price
	} else if lookup != nil {
		v.BasePrice = lookup(rec.Name)
	}

	return v
}

// ModelKey derives the model-family grouping key used for image
// propagation: lowercase manufacturer joined with the first token of
// the model name, with a repeated manufacturer prefix stripped.
// "Hyundai" + "Creta 1.5 D MT" and "Hyundai" + "Hyundai Creta 1.5 P"
// both key as "hyundai::creta".
func ModelKey(manufacturer, name string) string {
	mfr := strings.ToLower(strings.TrimSpace(manufacturer))
	nm := strings.ToLower(strings.TrimSpace(name))

	rest := nm
	if mfr != "" && strings.HasPrefix(nm, mfr) {
		rest = strings.TrimSpace(nm[len(mfr):])
	}

	model := rest
	if fields := strings.Fields(rest); len(fields) > 0 {
		model = fields[0]
	}

	return mfr + "::" + model
}
