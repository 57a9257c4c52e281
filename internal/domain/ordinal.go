package domain

import "strconv"

// DayOrdinal returns the English ordinal label for a day of the month
// ("1st", "2nd", "11th", "23rd").
func DayOrdinal(day int) string {
	suffix := "th"
	switch day % 100 {
	case 11, 12, 13:
	default:
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(day) + suffix
}
