package snaplist

import "math"

// Unassigned marks a slot that is not mapped to any virtual index.
const Unassigned = math.MaxInt

// Nearest asks ScrollTo to settle on whichever line is closest to the
// current scroll position.
const Nearest = math.MaxInt

// WrapIndex maps a signed virtual index into [0, n).
// An empty list maps everything to 0.
func WrapIndex(v, n int) int {
	switch {
	case n <= 0:
		return 0
	case v < 0:
		return (n - 1) + (v+1)%n
	case v >= n:
		return v % n
	}
	return v
}

// CurrentLine returns the line at the leading edge of the viewport for a
// scroll position pos on an axis with the given cell size (item + spacing).
//
// Looping lists have no leading margin and may report negative lines.
// Non-looping lists report line 0 until pos passes the leading margin.
func CurrentLine(pos, cell float32, loop bool, margin float32) int {
	if cell <= 0 {
		return 0
	}
	pos = roundf(pos)
	if loop {
		return floorToInt(pos / cell)
	}
	if pos <= margin {
		return 0
	}
	return floorToInt((pos - margin) / cell)
}

// CircularDistance returns the signed shortest distance from b to a on a
// ring of n entries. Both a and b must already be wrapped into [0, n).
func CircularDistance(a, b, n int) int {
	d := a - b
	ad := d
	if ad < 0 {
		ad = -ad
	}
	if ad > n/2 {
		if d > 0 {
			return -(n - ad)
		}
		return n - ad
	}
	return d
}

// ClosestLine returns the unwrapped line equivalent to target that is nearest
// to current on a ring of total lines.
func ClosestLine(target, current, total int) int {
	if total <= 0 {
		return current
	}
	return current + CircularDistance(WrapIndex(target, total), WrapIndex(current, total), total)
}

// linePosition returns the scroll position that puts line at the leading
// edge of the viewport.
func linePosition(line int, cell float32, loop bool, margin float32) float32 {
	pos := float32(line) * cell
	if !loop {
		pos += margin
	}
	return pos
}

// totalLines is the number of lines needed for count items at fixed per line.
func totalLines(count, fixed int) int {
	if count <= 0 || fixed <= 0 {
		return 0
	}
	return (count + fixed - 1) / fixed
}
