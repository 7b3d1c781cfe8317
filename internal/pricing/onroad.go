package pricing

import "math"

// OnRoadPrice converts an ex-showroom price into the on-road price for
// a city: base plus insurance, RTO registration, and handling charges.
//
// Each component is rounded to the nearest rupee independently before
// summing. The component-wise rounding is load-bearing: rounding once
// at the end produces different integer totals, and downstream
// consumers expect byte-identical figures.
func OnRoadPrice(basePrice int, city string) int {
	rates := RatesFor(city)
	base := float64(basePrice)

	insurance := int(math.Round(base * InsuranceRate))
	rto := int(math.Round(base * rates.RTO))
	other := int(math.Round(base * rates.Other))

	return basePrice + insurance + rto + other
}

// OnRoadBreakdown itemizes the on-road price components for a city.
type OnRoadBreakdown struct {
	BasePrice int       `json:"base_price"`
	Insurance int       `json:"insurance"`
	RTO       int       `json:"rto"`
	Other     int       `json:"other"`
	Total     int       `json:"total"`
	City      string    `json:"city"`
	Rates     CityRates `json:"rates"`
}

// Breakdown returns the itemized on-road price for a city, using the
// same component-wise rounding as OnRoadPrice.
func Breakdown(basePrice int, city string) OnRoadBreakdown {
	rates := RatesFor(city)
	base := float64(basePrice)

	insurance := int(math.Round(base * InsuranceRate))
	rto := int(math.Round(base * rates.RTO))
	other := int(math.Round(base * rates.Other))

	resolved := city
	if !IsSupportedCity(city) {
		resolved = DefaultCity
	}

	return OnRoadBreakdown{
		BasePrice: basePrice,
		Insurance: insurance,
		RTO:       rto,
		Other:     other,
		Total:     basePrice + insurance + rto + other,
		City:      resolved,
		Rates:     rates,
	}
}
