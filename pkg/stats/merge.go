package stats

// Merge combines per-chunk partial accumulators into one global accumulator.
// Keys are unioned and raw salary lists concatenated, so the result is the
// same multiset of rows regardless of chunk order or completion order. Nil
// parts are tolerated; zero parts yield an empty accumulator.
func Merge(parts []*ChunkStats) *ChunkStats {
	merged := NewChunkStats()
	for _, part := range parts {
		if part == nil {
			continue
		}
		for year, salaries := range part.SalaryByYear {
			merged.SalaryByYear[year] = append(merged.SalaryByYear[year], salaries...)
		}
		for year, salaries := range part.TargetSalaryByYear {
			merged.TargetSalaryByYear[year] = append(merged.TargetSalaryByYear[year], salaries...)
		}
		for area, salaries := range part.SalaryByArea {
			merged.SalaryByArea[area] = append(merged.SalaryByArea[area], salaries...)
		}
		merged.VacancyCount += part.VacancyCount
	}
	return merged
}
