package render

import "fmt"

// Band is a contiguous range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

func (b Band) Rows() int { return b.Y1 - b.Y0 }

func (b Band) String() string { return fmt.Sprintf("rows[%d,%d)", b.Y0, b.Y1) }

// splitRows splits rows [0,h) into n contiguous bands of h/n rows. The last
// band also takes the h%n leftover rows. n is lowered to h so no band is empty.
func splitRows(h, n int) []Band {
	if h <= 0 {
		return nil
	}
	if n <= 0 {
		panic("band count must be positive")
	}
	n = min(n, h)
	step := h / n

	bands := make([]Band, n)
	for i := range bands {
		bands[i] = Band{Y0: i * step, Y1: (i + 1) * step}
	}
	bands[n-1].Y1 = h
	return bands
}
