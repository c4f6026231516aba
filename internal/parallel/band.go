package parallel

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows divides [y0, y1) into at most n contiguous bands of near-equal
// height, in top-to-bottom order. Bands never overlap and together cover
// every row exactly once. Bands have at least minRows rows, except when the
// whole range is shorter than that.
//
// Returns nil for an empty range.
func SplitRows(y0, y1, n, minRows int) []Band {
	rows := y1 - y0
	if rows <= 0 {
		return nil
	}
	n = max(n, 1)
	minRows = max(minRows, 1)
	n = min(n, max(rows/minRows, 1))

	bands := make([]Band, 0, n)
	base, extra := rows/n, rows%n
	y := y0
	for i := range n {
		h := base
		if i < extra {
			h++
		}
		bands = append(bands, Band{Y0: y, Y1: y + h})
		y += h
	}
	return bands
}
