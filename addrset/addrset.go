// Package addrset implements a sorted, merging set of 16 bit address
// ranges. It's used to track which portions of the guest address space
// are write-protected (ROM, typically) without having to carry a flag
// per byte.
package addrset

import "fmt"

// Range is an inclusive [Start, End] interval over 16 bit addresses.
type Range struct {
	Start uint16
	End   uint16
}

// OutOfMemory describes a failed insert of a new, disjoint range. Add never
// returns it: the backing slice grows through append, which does not
// report allocation failure to the caller.
type OutOfMemory struct {
	Range Range
}

// Error implements the error interface.
func (e OutOfMemory) Error() string {
	return fmt.Sprintf("addrset: out of memory adding range %04X-%04X", e.Range.Start, e.Range.End)
}

// Set is a totally ordered, disjoint collection of Ranges. No two stored
// ranges overlap or are adjacent (end+1 == next.start); Add and Remove
// maintain that invariant.
type Set struct {
	ranges []Range
}

// New returns an empty Set.
func New() *Set {
	return &Set{}
}

// Clear removes all ranges from the set.
func (s *Set) Clear() {
	s.ranges = nil
}

// Ranges returns the current ranges in ascending order by Start, or nil if
// the set is empty. The returned slice is a copy; callers may not mutate
// the Set through it.
func (s *Set) Ranges() []Range {
	if len(s.ranges) == 0 {
		return nil
	}
	out := make([]Range, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// Add inserts r into the set, merging it with any overlapping or adjacent
// ranges already present. Adding a range that's already fully covered is a
// no-op. The returned error is always nil; see OutOfMemory.
func (s *Set) Add(r Range) error {
	if r.Start > r.End {
		r.Start, r.End = r.End, r.Start
	}

	for i := range s.ranges {
		cur := &s.ranges[i]

		if r.End != 0xFFFF && r.End+1 < cur.Start {
			// r sits entirely before cur with a gap: insert here.
			if err := s.insertAt(i, r); err != nil {
				return err
			}
			return nil
		}
		if cur.End != 0xFFFF && r.Start > cur.End+1 {
			// r starts after cur, with a gap: keep scanning.
			continue
		}

		// Overlap or adjacency: absorb into cur, then coalesce forward in
		// case the merged range now touches later entries too.
		if r.Start < cur.Start {
			cur.Start = r.Start
		}
		if r.End > cur.End {
			cur.End = r.End
		}
		s.coalesceForward(i)
		return nil
	}

	if err := s.insertAt(len(s.ranges), r); err != nil {
		return err
	}
	return nil
}

// coalesceForward merges s.ranges[i] with any immediately following ranges
// it now overlaps or touches after a mutation.
func (s *Set) coalesceForward(i int) {
	for i+1 < len(s.ranges) {
		cur := &s.ranges[i]
		next := s.ranges[i+1]
		if cur.End != 0xFFFF && cur.End+1 < next.Start {
			break
		}
		if next.End > cur.End {
			cur.End = next.End
		}
		s.ranges = append(s.ranges[:i+1], s.ranges[i+2:]...)
	}
}

// insertAt splices r into the ranges slice at position i.
func (s *Set) insertAt(i int, r Range) error {
	s.ranges = append(s.ranges, Range{})
	copy(s.ranges[i+1:], s.ranges[i:])
	s.ranges[i] = r
	return nil
}

// Remove deletes the addresses covered by r from the set, splitting a
// stored range if r falls strictly inside it.
func (s *Set) Remove(r Range) {
	if r.Start > r.End {
		r.Start, r.End = r.End, r.Start
	}

	for i := 0; i < len(s.ranges); i++ {
		cur := s.ranges[i]
		if r.End < cur.Start {
			break
		}
		if r.Start > cur.End {
			continue
		}

		switch {
		case r.Start <= cur.Start && r.End >= cur.End:
			// r covers cur entirely: delete it.
			s.ranges = append(s.ranges[:i], s.ranges[i+1:]...)
			i--
		case r.Start > cur.Start && r.End < cur.End:
			// r is strictly inside cur: split into two.
			left := Range{Start: cur.Start, End: r.Start - 1}
			right := Range{Start: r.End + 1, End: cur.End}
			s.ranges[i] = left
			s.ranges = append(s.ranges, Range{})
			copy(s.ranges[i+2:], s.ranges[i+1:])
			s.ranges[i+1] = right
			i++
		case r.Start <= cur.Start:
			// r covers the head of cur.
			s.ranges[i].Start = r.End + 1
		default:
			// r covers the tail of cur.
			s.ranges[i].End = r.Start - 1
		}
	}
}

// Contains reports whether a falls within any stored range.
func (s *Set) Contains(a uint16) bool {
	for _, r := range s.ranges {
		if a < r.Start {
			return false
		}
		if a <= r.End {
			return true
		}
	}
	return false
}
