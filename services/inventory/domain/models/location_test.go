package models

import "testing"

func TestParseLocation(t *testing.T) {
	tests := []struct {
		input   string
		want    Location
		wantErr bool
	}{
		{"cupboard", Cupboard, false},
		{"Fridge", Fridge, false},
		{" FREEZER ", Freezer, false},
		{"pantry", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLocation(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLocation(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocations_Order(t *testing.T) {
	want := []Location{Cupboard, Fridge, Freezer}
	if len(Locations) != len(want) {
		t.Fatalf("expected %d locations, got %d", len(want), len(Locations))
	}
	for i, loc := range want {
		if Locations[i] != loc {
			t.Fatalf("position %d: got %q, want %q", i, Locations[i], loc)
		}
		if loc.Title() == "" {
			t.Fatalf("%q has no title", loc)
		}
	}
}
