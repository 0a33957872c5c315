package intent

import "testing"

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		current  EntityFilters
		previous EntityFilters
		want     EntityFilters
	}{
		{
			name:    "current wins when set",
			current: EntityFilters{City: "Utrecht", Genre: "jazz"},
			previous: EntityFilters{
				City: "Amsterdam", Venue: "Paradiso", Genre: "rock", TimeOfDay: Avond, Date: "2025-10-10",
			},
			want: EntityFilters{City: "Utrecht", Venue: "Paradiso", Genre: "jazz", TimeOfDay: Avond, Date: "2025-10-10"},
		},
		{
			name:     "previous fills every gap",
			current:  EntityFilters{},
			previous: EntityFilters{City: "Rotterdam", TimeOfDay: Nacht},
			want:     EntityFilters{City: "Rotterdam", TimeOfDay: Nacht},
		},
		{
			name:     "no previous",
			current:  EntityFilters{Venue: "Melkweg"},
			previous: EntityFilters{},
			want:     EntityFilters{Venue: "Melkweg"},
		},
		{
			name:     "literal null counts as absent",
			current:  EntityFilters{City: "null", Genre: "  "},
			previous: EntityFilters{City: "Amsterdam", Genre: "techno"},
			want:     EntityFilters{City: "Amsterdam", Genre: "techno"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.current, tt.previous)
			if got != tt.want {
				t.Errorf("Merge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEntityFiltersIsEmpty(t *testing.T) {
	if !(EntityFilters{}).IsEmpty() {
		t.Error("zero filters should be empty")
	}
	if (EntityFilters{Genre: "pop"}).IsEmpty() {
		t.Error("filters with a genre should not be empty")
	}
}
