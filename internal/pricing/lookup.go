package pricing

import "strings"

// basePriceEntry is one row of the curated ex-showroom price table.
type basePriceEntry struct {
	name  string
	price int
}

// curatedBasePrices holds real-world ex-showroom prices (₹, sourced
// from CarWale/CarDekho listings) for the models most commonly missing
// price data upstream.
var curatedBasePrices = []basePriceEntry{
	{"Tata Nexon EV", 1479000},
	{"MG ZS EV", 2188000},
	{"Hyundai Creta Electric", 1799000},
	{"BYD Atto 3", 2599000},
	{"Tata Punch EV", 999000},
	{"Maruti Suzuki Baleno", 699000},
	{"Hyundai i20", 774000},
	{"Honda City", 1194000},
	{"Toyota Innova HyCross", 1899000},
	{"Maruti Grand Vitara Hybrid", 1099000},
	{"Hyundai Creta", 1099000},
	{"Kia Seltos", 1089000},
	{"Tata Harrier", 1549000},
	{"Mahindra XUV700", 1399000},
	{"Maruti Suzuki Swift", 649000},
	{"Tata Curvv EV", 1749000},
}

// LookupBasePrice resolves a base price for a model name from the
// curated table. An exact match wins; otherwise the first entry whose
// name contains the query, or is contained by it, matches. Returns nil
// for unknown names.
func LookupBasePrice(name string) *int {
	for _, entry := range curatedBasePrices {
		if entry.name == name {
			price := entry.price
			return &price
		}
	}

	q := strings.ToLower(name)
	if q == "" {
		return nil
	}
	for _, entry := range curatedBasePrices {
		candidate := strings.ToLower(entry.name)
		if strings.Contains(q, candidate) || strings.Contains(candidate, q) {
			price := entry.price
			return &price
		}
	}
	return nil
}
