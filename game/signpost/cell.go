package signpost

// Cell represents a single grid cell of the signpost puzzle.
// Its label, position and arrow glyph are fixed at construction;
// the visited flag and visit order are set once when the cell is
// entered and never revert within a match.
type Cell struct {
	label      string
	row        int
	col        int
	arrow      string
	visited    bool
	visitOrder int
}

// Label returns the identity label of the cell (A..P).
func (c *Cell) Label() string {
	return c.label
}

// Row returns the row index of the cell in the grid.
func (c *Cell) Row() int {
	return c.row
}

// Col returns the column index of the cell in the grid.
func (c *Cell) Col() int {
	return c.col
}

// Arrow returns the cosmetic arrow glyph drawn on the cell.
func (c *Cell) Arrow() string {
	return c.arrow
}

// Visited reports whether the cell has been entered.
func (c *Cell) Visited() bool {
	return c.visited
}

// VisitOrder returns the order in which the cell was entered,
// or zero if the cell has not been visited.
func (c *Cell) VisitOrder() int {
	return c.visitOrder
}

// visit marks the cell as entered with the given order. The flag is
// monotonic: marking an already visited cell is a no-op.
func (c *Cell) visit(order int) {
	if c.visited {
		return
	}
	c.visited = true
	c.visitOrder = order
}
