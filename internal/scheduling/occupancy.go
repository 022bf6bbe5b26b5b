package scheduling

import (
	"sort"
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
)

// Overlaps half-open interval test: [aStart, aEnd) and [bStart, bEnd) share time.
// Touching intervals (aEnd == bStart) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// OverlapsAny returns true if [start, end) overlaps any occupied interval
func OverlapsAny(start, end time.Time, busy []domain.Interval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}

// FilterFree drops slots that overlap any occupied interval.
// Returns the kept slots and how many were dropped.
func FilterFree(slots []domain.TimeSlot, busy []domain.Interval) ([]domain.TimeSlot, int) {
	free := make([]domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		if OverlapsAny(s.Start, s.End, busy) {
			continue
		}
		free = append(free, s)
	}
	return free, len(slots) - len(free)
}

// NoticeCutoff earliest moment a slot may start
func NoticeCutoff(now time.Time, minNoticeHours float64) time.Time {
	return now.Add(time.Duration(minNoticeHours * float64(time.Hour)))
}

// FilterNotice drops slots starting before cutoff
func FilterNotice(slots []domain.TimeSlot, cutoff time.Time) ([]domain.TimeSlot, int) {
	kept := make([]domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		if s.Start.Before(cutoff) {
			continue
		}
		kept = append(kept, s)
	}
	return kept, len(slots) - len(kept)
}

// SortSlots orders by start, then instructor id
func SortSlots(slots []domain.TimeSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if !slots[i].Start.Equal(slots[j].Start) {
			return slots[i].Start.Before(slots[j].Start)
		}
		return slots[i].InstructorID < slots[j].InstructorID
	})
}

// MergeSlots combines per-instructor slot lists into one ordered list
func MergeSlots(groups ...[]domain.TimeSlot) []domain.TimeSlot {
	total := 0
	for _, g := range groups {
		total += len(g)
	}

	merged := make([]domain.TimeSlot, 0, total)
	for _, g := range groups {
		merged = append(merged, g...)
	}
	SortSlots(merged)
	return merged
}

// ContainsSlot returns true if slots has an entry with exactly start and end
func ContainsSlot(slots []domain.TimeSlot, start, end time.Time) bool {
	for _, s := range slots {
		if s.Start.Equal(start) && s.End.Equal(end) {
			return true
		}
	}
	return false
}
