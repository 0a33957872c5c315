package intent

// MatchesTimeOfDay reports whether a clock hour (0-23) falls inside the
// requested bucket. Nacht wraps midnight, overlapping the late avond hours.
// An unknown bucket matches everything so a bad extraction never filters.
func MatchesTimeOfDay(hour int, bucket string) bool {
	switch bucket {
	case Ochtend:
		return hour >= 6 && hour < 12
	case Middag:
		return hour >= 12 && hour < 17
	case Avond:
		return hour >= 17 && hour < 24
	case Nacht:
		return hour >= 22 || hour < 6
	default:
		return true
	}
}
