package game

// Board defines the methods a puzzle surface must implement for a match
// to be played on it.
type Board interface {
	// Start returns the label of the starting cell.
	Start() string

	// Goal returns the label of the cell that ends the match.
	Goal() string

	// Contains reports whether the label names a cell on the board.
	Contains(label string) bool

	// Neighbors returns the outgoing neighbors of the given cell.
	Neighbors(label string) []string

	// Visited reports whether the given cell has been entered.
	Visited(label string) bool

	// Visit marks the cell as entered and returns its visit order.
	Visit(label string) (int, error)

	// NextOnSolution returns the label following current on the solution
	// path, and false when there is none.
	NextOnSolution(current string) (string, bool)
}
