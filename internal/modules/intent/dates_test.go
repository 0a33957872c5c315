package intent

import (
	"testing"
	"time"
)

func TestResolveDate(t *testing.T) {
	// Wednesday 2025-10-08.
	wednesday := time.Date(2025, 10, 8, 14, 0, 0, 0, time.UTC)
	// Saturday 2025-10-11.
	saturday := time.Date(2025, 10, 11, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		now  time.Time
		want string
	}{
		{"vandaag", "wat is er vandaag te doen", wednesday, "2025-10-08"},
		{"vanavond", "iets leuks vanavond in Utrecht?", wednesday, "2025-10-08"},
		{"straks", "ik wil straks ergens heen", wednesday, "2025-10-08"},
		{"morgen", "morgen een concert", wednesday, "2025-10-09"},
		{"overmorgen", "overmorgen misschien", wednesday, "2025-10-10"},
		{"weekend", "iets dit weekend", wednesday, "2025-10-11"},
		{"zaterdag", "zaterdag naar een festival", wednesday, "2025-10-11"},
		{"zondag", "zondagmiddag jazz", wednesday, "2025-10-12"},
		{"volgende week", "volgende week rock", wednesday, "2025-10-15"},
		{"over twee weken", "over twee weken iets in Rotterdam", wednesday, "2025-10-22"},
		{"over 3 weken", "over 3 weken een feestje", wednesday, "2025-10-29"},
		{"default is today", "metal in Amsterdam", wednesday, "2025-10-08"},

		// "Weekend" asked on a Saturday jumps a full week: always an
		// upcoming date, never today.
		{"weekend on saturday", "wat kan ik dit weekend doen", saturday, "2025-10-18"},
		{"zondag on saturday", "en zondag?", saturday, "2025-10-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDate(tt.text, tt.now); got != tt.want {
				t.Errorf("ResolveDate(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestResolveDateNeverEmpty(t *testing.T) {
	now := time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC)
	if got := ResolveDate("", now); got != "2025-10-08" {
		t.Errorf("empty text should fall back to today, got %s", got)
	}
}
