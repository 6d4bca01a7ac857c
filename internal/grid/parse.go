package grid

import (
	"fmt"

	"mvsolver/sudokuchains/chaining"
)

// Parse reads an 81-character puzzle line (digits 1-9, and '.' or '0' for
// blanks) into a Grid with every initial placement's propagation already
// applied.
func Parse(line string) (*Grid, error) {
	if len(line) != 81 {
		return nil, fmt.Errorf("grid: expected 81 characters, got %d", len(line))
	}
	g := New()
	for i, r := range line {
		switch {
		case r == '.' || r == '0':
			continue
		case r >= '1' && r <= '9':
			v := chaining.Digit(r - '0')
			c := chaining.Cell(i)
			if !g.HasCandidate(c, v) {
				return nil, fmt.Errorf("grid: conflicting placement of %d at cell %d", v, i)
			}
			g.Place(c, v)
		default:
			return nil, fmt.Errorf("grid: invalid character %q at position %d", r, i)
		}
	}
	return g, nil
}

// String81 renders the grid back to an 81-character line, '.' for blanks.
func (g *Grid) String81() string {
	out := make([]byte, 81)
	for i, v := range g.values {
		if v == 0 {
			out[i] = '.'
		} else {
			out[i] = byte('0' + v)
		}
	}
	return string(out)
}
