package vehicle

import "strings"

// fuelRule maps a category substring to a fuel type. Rules are
// evaluated in order; the first match wins.
type fuelRule struct {
	substr string
	fuel   FuelType
}

// fuelRules is the ordered inference table for fuel types. "electric"
// must precede "hybrid" so that "plug-in hybrid electric" categories
// resolve as electric, matching the upstream category vocabulary.
var fuelRules = []fuelRule{
	{"electric", FuelElectric},
	{"hybrid", FuelHybrid},
	{"diesel", FuelDiesel},
}

// InferFuelType derives the fuel type from a free-text category
// string. Unmatched categories default to petrol, so a record's fuel
// type is never absent.
func InferFuelType(category string) FuelType {
	cat := strings.ToLower(category)
	for _, rule := range fuelRules {
		if strings.Contains(cat, rule.substr) {
			return rule.fuel
		}
	}
	return FuelPetrol
}

// bodyRule maps a set of model-name substrings to a body segment.
type bodyRule struct {
	substrs []string
	segment BodySegment
}

// bodyRules is the ordered inference table for body segments, keyed on
// the lowercase "manufacturer name" string. Order matters: the Punch
// classifies as a hatchback even though it is sold as a micro-SUV,
// because the hatchback row is evaluated first.
var bodyRules = []bodyRule{
	{[]string{"innova", "ertiga", "carens", "marazzo"}, SegmentMPV},
	{[]string{
		"punch", "ignis", "kwid", "swift", "baleno", "i10", "i20",
		"altroz", "glanza", "polo", "jazz", "tiago", "leaf", "bolt",
	}, SegmentHatchback},
	{[]string{
		"model s", "model 3", "city", "civic", "camry", "corolla",
		"verna", "slavia", "virtus", "elantra",
	}, SegmentSedan},
	{[]string{"brezza", "venue", "sonet", "magnite", "nexon", "fronx", "exter"}, SegmentCompactSUV},
	{[]string{"coupe", "mustang", "camaro", "supra"}, SegmentCoupe},
}

// InferBodySegment derives the body segment from the manufacturer and
// model name. Unmatched names default to SUV, the most common segment
// in the record set.
func InferBodySegment(manufacturer, name string) BodySegment {
	full := strings.ToLower(manufacturer + " " + name)
	for _, rule := range bodyRules {
		for _, sub := range rule.substrs {
			if strings.Contains(full, sub) {
				return rule.segment
			}
		}
	}
	return SegmentSUV
}
