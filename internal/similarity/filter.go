package similarity

// Filter returns the ranking rows whose county, town and village all match
// exactly (case-sensitive, no fuzzy matching). Zero matches returns an empty
// slice, not an error.
func Filter(rows []RankedVillage, county, town, village string) []RankedVillage {
	out := []RankedVillage{}
	for _, row := range rows {
		if row.County == county && row.Town == town && row.Village == village {
			out = append(out, row)
		}
	}
	return out
}
