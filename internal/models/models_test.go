package models

import (
	"testing"
	"time"
)

// TestEffectiveRest verifies the item override wins over the group default.
func TestEffectiveRest(t *testing.T) {
	group := WorkoutGroup{RestSeconds: 120}

	item := WorkoutItem{}
	if got := item.EffectiveRest(group); got != 120 {
		t.Errorf("EffectiveRest without override = %d, want 120", got)
	}

	override := 60
	item.RestSeconds = &override
	if got := item.EffectiveRest(group); got != 60 {
		t.Errorf("EffectiveRest with override = %d, want 60", got)
	}
}

func TestValidGroupType(t *testing.T) {
	for _, typ := range []string{GroupSingle, GroupSuperset, GroupTriset, GroupCircuit} {
		if !ValidGroupType(typ) {
			t.Errorf("ValidGroupType(%q) = false, want true", typ)
		}
	}
	if ValidGroupType("giant-set") {
		t.Error("ValidGroupType accepted an unknown type")
	}
}

func TestValidatePositions(t *testing.T) {
	tests := []struct {
		name      string
		positions []int
		wantErr   bool
	}{
		{"contiguous", []int{1, 2, 3}, false},
		{"contiguous unordered", []int{3, 1, 2}, false},
		{"empty", nil, false},
		{"duplicate", []int{1, 2, 2}, true},
		{"gap", []int{1, 2, 4}, true},
		{"zero based", []int{0, 1, 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositions(tt.positions)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePositions(%v) error = %v, wantErr %v", tt.positions, err, tt.wantErr)
			}
		})
	}
}

// TestComputeVolume verifies the session total is the sum of all set volumes.
func TestComputeVolume(t *testing.T) {
	s := Session{
		Groups: []SessionGroup{
			{Items: []SessionItem{
				{Sets: []SetLog{
					{Reps: 5, Weight: 100, Volume: SetVolume(5, 100)},
					{Reps: 3, Weight: 110, Volume: SetVolume(3, 110)},
				}},
			}},
			{Items: []SessionItem{
				{Sets: []SetLog{{Reps: 10, Weight: 20, Volume: SetVolume(10, 20)}}},
			}},
		},
	}
	if got := s.ComputeVolume(); got != 500+330+200 {
		t.Errorf("ComputeVolume() = %v, want 1030", got)
	}
}

func TestCycleEndDate(t *testing.T) {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	c := Cycle{StartDate: start, DurationWeeks: 6}
	if got := c.EndDate(); !got.Equal(start.AddDate(0, 0, 42)) {
		t.Errorf("EndDate() = %v", got)
	}
}
