package vehicle

// PropagateModelImages shares images across model families, in place.
//
// Trim and transmission variants of the same model frequently lack
// individual photos. For each model family (see ModelKey), the first
// image encountered in iteration order is copied to every sibling that
// has none, so a family with at least one photographed variant never
// renders a broken image. Vehicles whose family has no image at all
// are left untouched.
func PropagateModelImages(vehicles []Normalized) {
	familyImage := make(map[string]string)
	for i := range vehicles {
		if !vehicles[i].HasImage() {
			continue
		}
		key := ModelKey(vehicles[i].Manufacturer, vehicles[i].Name)
		if _, ok := familyImage[key]; !ok {
			familyImage[key] = vehicles[i].Image
		}
	}

	for i := range vehicles {
		if vehicles[i].HasImage() {
			continue
		}
		if img, ok := familyImage[ModelKey(vehicles[i].Manufacturer, vehicles[i].Name)]; ok {
			vehicles[i].Image = img
		}
	}
}
