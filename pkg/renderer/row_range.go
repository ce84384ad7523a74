package renderer

import "math/rand"

// RowRange is a contiguous band of image rows rendered as one task
type RowRange struct {
	ID     int        // Task identifier, also the seed offset
	StartY int        // First row, inclusive
	EndY   int        // Last row, exclusive
	Random *rand.Rand // Task-specific random generator for deterministic results
}

// NewRowRange creates a row range with its own generator seeded from seed+id
func NewRowRange(id, startY, endY int, seed int64) *RowRange {
	return &RowRange{
		ID:     id,
		StartY: startY,
		EndY:   endY,
		Random: rand.New(rand.NewSource(seed + int64(id))),
	}
}

// Rows returns the number of rows in the range
func (rr *RowRange) Rows() int {
	return rr.EndY - rr.StartY
}

// SplitRows partitions [0, height) into disjoint ranges of at most
// rowsPerTask rows, top to bottom
func SplitRows(height, rowsPerTask int, seed int64) []*RowRange {
	if rowsPerTask <= 0 {
		rowsPerTask = 1
	}

	var ranges []*RowRange
	for y0, id := 0, 0; y0 < height; y0, id = y0+rowsPerTask, id+1 {
		y1 := min(y0+rowsPerTask, height)
		ranges = append(ranges, NewRowRange(id, y0, y1, seed))
	}
	return ranges
}
