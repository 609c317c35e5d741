package pricing

// selectTariff picks the bracket whose FromKm is the largest value not
// exceeding distance.
func selectTariff(distanceKm float64, tariffs []TransportTariff) (TransportTariff, error) {
	if len(tariffs) == 0 {
		return TransportTariff{}, configurationf("tariffs", "tariff table is empty")
	}
	found := false
	var best TransportTariff
	for _, t := range tariffs {
		if t.FromKm <= distanceKm && (!found || t.FromKm > best.FromKm) {
			best = t
			found = true
		}
	}
	if !found {
		return TransportTariff{}, configurationf("tariffs", "no bracket covers distance %v km", distanceKm)
	}
	return best, nil
}

// CalculateFreight converts a trip count and distance into the total
// transport cost, general overhead included. The result is rounded to
// 2 decimals at the end only; intermediate values stay unrounded.
func CalculateFreight(trips int, distanceKm float64, tariffs []TransportTariff, overheadPct float64) (float64, error) {
	if trips < 0 {
		return 0, validationf("trips", "must not be negative, got %d", trips)
	}
	if distanceKm < 0 {
		return 0, validationf("distanceKm", "must not be negative, got %v", distanceKm)
	}
	if overheadPct < 0 {
		return 0, validationf("overheadPct", "must not be negative, got %v", overheadPct)
	}
	if trips == 0 {
		return 0, nil
	}

	tariff, err := selectTariff(distanceKm, tariffs)
	if err != nil {
		return 0, err
	}

	base := float64(trips) * tariff.PricePerTrip
	total := base + base*overheadPct
	return Round2(total), nil
}
