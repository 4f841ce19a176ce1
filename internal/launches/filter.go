package launches

// FilterByPayloadRange returns the records whose payload mass lies in
// [minKg, maxKg]. Both bounds are inclusive. An inverted range matches nothing.
func FilterByPayloadRange(records []Record, minKg, maxKg float64) []Record {
	out := []Record{}
	if minKg > maxKg {
		return out
	}
	for _, rec := range records {
		if rec.PayloadMassKg >= minKg && rec.PayloadMassKg <= maxKg {
			out = append(out, rec)
		}
	}
	return out
}

// FilterBySite returns the records launched from site. AllSites returns the
// input unchanged; an unknown site yields an empty slice.
func FilterBySite(records []Record, site string) []Record {
	if site == AllSites {
		return records
	}
	out := []Record{}
	for _, rec := range records {
		if rec.LaunchSite == site {
			out = append(out, rec)
		}
	}
	return out
}
