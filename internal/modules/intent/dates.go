package intent

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

var weeksPattern = regexp.MustCompile(`over (\d+|twee|drie|vier) weken`)

// ResolveDate maps Dutch date words in text to a single ISO date, relative to
// now. Rules are checked in priority order, first match wins; no match falls
// back to today's date, never to empty. This parser is the fallback when the
// extractor produced no date field; the caller owns that precedence.
func ResolveDate(text string, now time.Time) string {
	msg := strings.ToLower(text)

	switch {
	case containsAny(msg, "vandaag", "vanavond", "straks", "nu"):
		return now.Format(isoDate)
	// "overmorgen" contains "morgen", so it has to be ruled out first.
	case strings.Contains(msg, "overmorgen"):
		return now.AddDate(0, 0, 2).Format(isoDate)
	case strings.Contains(msg, "morgen"):
		return now.AddDate(0, 0, 1).Format(isoDate)
	case containsAny(msg, "weekend", "zaterdag"):
		return upcoming(now, time.Saturday).Format(isoDate)
	case strings.Contains(msg, "zondag"):
		return upcoming(now, time.Sunday).Format(isoDate)
	case strings.Contains(msg, "volgende week"):
		return now.AddDate(0, 0, 7).Format(isoDate)
	}

	if m := weeksPattern.FindStringSubmatch(msg); m != nil {
		weeks := 1
		switch m[1] {
		case "twee":
			weeks = 2
		case "drie":
			weeks = 3
		case "vier":
			weeks = 4
		default:
			if n, err := strconv.Atoi(m[1]); err == nil {
				weeks = n
			}
		}
		return now.AddDate(0, 0, weeks*7).Format(isoDate)
	}

	return now.Format(isoDate)
}

// upcoming returns the next occurrence of target strictly after the current
// week position: when today already is the target weekday it advances a full
// week. "Weekend" always means an upcoming date, never today.
func upcoming(now time.Time, target time.Weekday) time.Time {
	days := (int(target) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return now.AddDate(0, 0, days)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
