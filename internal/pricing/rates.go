// Package pricing owns localized on-road price calculation, the INR
// display formatter, and the curated ex-showroom base price table used
// when a vehicle record carries no price of its own.
package pricing

import "sort"

// InsuranceRate is the insurance fraction of the ex-showroom price,
// applied uniformly across all cities.
const InsuranceRate = 0.03

// DefaultCity is the city whose rates apply when a requested city is
// not in the table. Unknown cities never error.
const DefaultCity = "New Delhi"

// CityRates holds the location-specific fractions of the ex-showroom
// price charged on registration.
type CityRates struct {
	// RTO is the regional transport office registration fraction.
	RTO float64 `json:"rto"`

	// Other covers handling and miscellaneous charges.
	Other float64 `json:"other"`

	Label string `json:"label"`
	State string `json:"state"`
}

// cityTaxRates is the supported-city rate table. Every supported city
// key resolves to a rate tuple.
var cityTaxRates = map[string]CityRates{
	"New Delhi": {RTO: 0.04, Other: 0.08, Label: "New Delhi", State: "Low Tax Zone"},
	"Delhi":     {RTO: 0.04, Other: 0.08, Label: "Delhi", State: "Low Tax Zone"},
	"Mumbai":    {RTO: 0.11, Other: 0.05, Label: "Mumbai", State: "Maharashtra"},
	"Bangalore": {RTO: 0.13, Other: 0.05, Label: "Bangalore", State: "Karnataka"},
	"Chennai":   {RTO: 0.10, Other: 0.05, Label: "Chennai", State: "Tamil Nadu"},
	"Hyderabad": {RTO: 0.09, Other: 0.05, Label: "Hyderabad", State: "Telangana"},
	"Pune":      {RTO: 0.11, Other: 0.05, Label: "Pune", State: "Maharashtra"},
	"Kolkata":   {RTO: 0.07, Other: 0.06, Label: "Kolkata", State: "West Bengal"},
	"Jaipur":    {RTO: 0.06, Other: 0.06, Label: "Jaipur", State: "Rajasthan"},
	"Ahmedabad": {RTO: 0.06, Other: 0.05, Label: "Ahmedabad", State: "Gujarat"},
	"Lucknow":   {RTO: 0.08, Other: 0.06, Label: "Lucknow", State: "Uttar Pradesh"},
}

// RatesFor returns the rate tuple for a city, falling back to
// DefaultCity for any city not in the table.
func RatesFor(city string) CityRates {
	if rates, ok := cityTaxRates[city]; ok {
		return rates
	}
	return cityTaxRates[DefaultCity]
}

// IsSupportedCity reports whether the city has its own rate entry.
func IsSupportedCity(city string) bool {
	_, ok := cityTaxRates[city]
	return ok
}

// Cities returns the supported city names, sorted.
func Cities() []string {
	names := make([]string, 0, len(cityTaxRates))
	for name := range cityTaxRates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
