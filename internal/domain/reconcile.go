package domain

// ReconcileMonth merges the sparse stored records of m with the month's
// calendar. The result has exactly m.Days() entries; entry i is day i+1.
// Stored records are returned as-is, missing days become empty placeholders,
// and records dated outside m are ignored.
func ReconcileMonth(m Month, records []DayRecord) []DayRecord {
	byDate := make(map[Date]DayRecord, len(records))
	for _, r := range records {
		if m.Contains(r.Date) {
			byDate[r.Date] = r
		}
	}

	n := m.Days()
	out := make([]DayRecord, 0, n)
	for day := 1; day <= n; day++ {
		d := m.Day(day)
		if r, ok := byDate[d]; ok {
			out = append(out, r)
			continue
		}
		out = append(out, DayRecord{Date: d})
	}
	return out
}

// InitialWeight returns the first recorded weight in days, or 0 when no day
// has one yet.
func InitialWeight(days []DayRecord) float64 {
	for _, d := range days {
		if d.HasWeight() {
			return *d.Weight
		}
	}
	return 0
}
