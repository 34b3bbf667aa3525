package addrset

import (
	"reflect"
	"testing"
)

func TestAddMerge(t *testing.T) {
	tests := []struct {
		name string
		adds []Range
		want []Range
	}{
		{
			name: "single",
			adds: []Range{{0xD000, 0xFFFF}},
			want: []Range{{0xD000, 0xFFFF}},
		},
		{
			name: "disjoint kept separate",
			adds: []Range{{0x0000, 0x00FF}, {0xD000, 0xFFFF}},
			want: []Range{{0x0000, 0x00FF}, {0xD000, 0xFFFF}},
		},
		{
			name: "adjacent merges",
			adds: []Range{{0x0000, 0x00FF}, {0x0100, 0x01FF}},
			want: []Range{{0x0000, 0x01FF}},
		},
		{
			name: "overlapping merges",
			adds: []Range{{0x0000, 0x0100}, {0x0080, 0x0200}},
			want: []Range{{0x0000, 0x0200}},
		},
		{
			name: "containing is idempotent",
			adds: []Range{{0x0000, 0xFFFF}, {0x1000, 0x2000}},
			want: []Range{{0x0000, 0xFFFF}},
		},
		{
			name: "bridges a gap",
			adds: []Range{{0x0000, 0x00FF}, {0x0200, 0x02FF}, {0x0100, 0x01FF}},
			want: []Range{{0x0000, 0x02FF}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			for _, r := range tc.adds {
				if err := s.Add(r); err != nil {
					t.Fatalf("Add(%v): %v", r, err)
				}
			}
			if got := s.Ranges(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Ranges() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name   string
		adds   []Range
		remove Range
		want   []Range
	}{
		{
			name:   "covers entirely",
			adds:   []Range{{0x1000, 0x2000}},
			remove: Range{0x0800, 0x3000},
			want:   nil,
		},
		{
			name:   "splits middle",
			adds:   []Range{{0x1000, 0x2000}},
			remove: Range{0x1500, 0x1600},
			want:   []Range{{0x1000, 0x14FF}, {0x1601, 0x2000}},
		},
		{
			name:   "trims head",
			adds:   []Range{{0x1000, 0x2000}},
			remove: Range{0x0800, 0x1500},
			want:   []Range{{0x1501, 0x2000}},
		},
		{
			name:   "trims tail",
			adds:   []Range{{0x1000, 0x2000}},
			remove: Range{0x1800, 0x3000},
			want:   []Range{{0x1000, 0x17FF}},
		},
		{
			name:   "exact match deletes",
			adds:   []Range{{0x1000, 0x2000}},
			remove: Range{0x1000, 0x2000},
			want:   nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			for _, r := range tc.adds {
				if err := s.Add(r); err != nil {
					t.Fatalf("Add(%v): %v", r, err)
				}
			}
			s.Remove(tc.remove)
			if got := s.Ranges(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Ranges() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAddThenRemoveLosesExactlyThatRange(t *testing.T) {
	s := New()
	full := Range{0x0000, 0xFFFF}
	if err := s.Add(full); err != nil {
		t.Fatal(err)
	}
	victim := Range{0x4000, 0x4FFF}
	s.Remove(victim)

	for a := 0; a <= 0xFFFF; a += 0x123 {
		addr := uint16(a)
		inVictim := addr >= victim.Start && addr <= victim.End
		if got := s.Contains(addr); got == inVictim {
			t.Errorf("Contains(%04X) = %v, want %v", addr, got, !inVictim)
		}
	}
}

func TestContainsEmpty(t *testing.T) {
	s := New()
	if s.Contains(0x1234) {
		t.Error("empty set should contain nothing")
	}
}

func TestZeroLengthRange(t *testing.T) {
	s := New()
	if err := s.Add(Range{0x42, 0x42}); err != nil {
		t.Fatal(err)
	}
	if !s.Contains(0x42) {
		t.Error("expected zero-length range to be present")
	}
	if s.Contains(0x41) || s.Contains(0x43) {
		t.Error("zero-length range leaked into neighbors")
	}
}

func TestClear(t *testing.T) {
	s := New()
	_ = s.Add(Range{0, 0xFFFF})
	s.Clear()
	if s.Contains(0) {
		t.Error("Clear did not empty the set")
	}
}
