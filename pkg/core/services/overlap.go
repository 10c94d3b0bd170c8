package services

import (
	"strconv"
	"strings"
)

// Overlaps reports whether two half-open time-of-day intervals
// [startA, endA) and [startB, endB) intersect on the same calendar day.
// Times are HH:mm 24-hour strings. Back-to-back intervals (one ending
// exactly when the other starts) do not overlap.
func Overlaps(startA, endA, startB, endB string) bool {
	start1 := clockToMinutes(startA)
	end1 := clockToMinutes(endA)
	start2 := clockToMinutes(startB)
	end2 := clockToMinutes(endB)
	return start1 < end2 && start2 < end1
}

// clockToMinutes converts an HH:mm string to minutes since midnight.
// Inputs are assumed well-formed; callers validate at the API boundary.
func clockToMinutes(clock string) int {
	hours, minutes, _ := strings.Cut(clock, ":")
	h, _ := strconv.Atoi(hours)
	m, _ := strconv.Atoi(minutes)
	return h*60 + m
}
