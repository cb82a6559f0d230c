/*
Package signpost provides the fixed 4x4 board the puzzle is played on.

It defines the `Board` structure, composed of `Cell` objects carrying grid
positions and arrow glyphs, an explicit directed adjacency relation derived
from the arrows, and the single designated solution path used to judge the
correctness of a legal move.

The package includes functionality for neighbor lookup, monotonic visit
tracking, Manhattan distance to the goal, and ASCII visualization of the
board.
*/
package signpost

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	// GridSize is the width and height of the classic board.
	GridSize = 4

	// StartLabel is the cell every match begins on.
	StartLabel = "A"

	// GoalLabel is the cell that ends the match when reached.
	GoalLabel = "P"
)

var (
	ErrUnknownCell    = errors.New("unknown cell label")
	ErrAlreadyVisited = errors.New("cell already visited")
)

// Board is the signpost puzzle surface: a fixed set of cells, a directed
// adjacency relation, and the designated solution path. The adjacency is
// stored as an explicit edge list rather than recomputed from the arrows.
type Board struct {
	cells     map[string]*Cell
	adjacency map[string][]string
	solution  []string
	visits    int
}

// classicLayout describes the fixed 4x4 puzzle: label, row, col, arrow.
var classicLayout = []struct {
	label string
	row   int
	col   int
	arrow string
}{
	{"A", 0, 0, "↘"}, {"B", 0, 1, "↘"}, {"C", 0, 2, "↙"}, {"D", 0, 3, "←"},
	{"E", 1, 0, "↗"}, {"F", 1, 1, "→"}, {"G", 1, 2, "←"}, {"H", 1, 3, "←"},
	{"I", 2, 0, "→"}, {"J", 2, 1, "↙"}, {"K", 2, 2, "↖"}, {"L", 2, 3, "↑"},
	{"M", 3, 0, "→"}, {"N", 3, 1, "→"}, {"O", 3, 2, "→"}, {"P", 3, 3, "★"},
}

// classicEdges is the directed adjacency of the classic board.
var classicEdges = [][2]string{
	{"A", "E"}, {"A", "K"},
	{"K", "G"}, {"K", "F"},
	{"F", "G"}, {"F", "H"},
	{"H", "G"},
	{"G", "F"}, {"G", "E"},
	{"E", "B"}, {"E", "A"},
	{"B", "F"}, {"B", "L"},
	{"L", "H"}, {"L", "D"},
	{"D", "C"},
	{"C", "G"}, {"C", "I"},
	{"I", "J"},
	{"J", "N"}, {"J", "M"},
	{"M", "N"},
	{"N", "O"},
	{"O", "P"},
}

// classicSolution is the unique intended visiting order of the classic board.
var classicSolution = []string{
	"A", "K", "F", "H", "G", "E", "B", "L",
	"D", "C", "I", "J", "M", "N", "O", "P",
}

// NewClassic builds a fresh classic board with the start cell already
// visited as the first step of the path.
func NewClassic() *Board {
	b := &Board{
		cells:     make(map[string]*Cell, len(classicLayout)),
		adjacency: make(map[string][]string, len(classicLayout)),
		solution:  classicSolution,
	}

	for _, c := range classicLayout {
		b.cells[c.label] = &Cell{label: c.label, row: c.row, col: c.col, arrow: c.arrow}
		b.adjacency[c.label] = nil
	}

	for _, e := range classicEdges {
		b.adjacency[e[0]] = append(b.adjacency[e[0]], e[1])
	}

	// The start cell counts as visited before any move is made.
	_, _ = b.Visit(StartLabel)
	return b
}

// Start returns the label of the starting cell.
func (b *Board) Start() string {
	return StartLabel
}

// Goal returns the label of the goal cell.
func (b *Board) Goal() string {
	return GoalLabel
}

// Contains reports whether the label names a cell on the board.
func (b *Board) Contains(label string) bool {
	_, ok := b.cells[label]
	return ok
}

// Cell returns the cell with the given label.
func (b *Board) Cell(label string) (*Cell, error) {
	cell, ok := b.cells[label]
	if !ok {
		return nil, ErrUnknownCell
	}
	return cell, nil
}

// Labels returns all cell labels in alphabetical order.
func (b *Board) Labels() []string {
	labels := make([]string, 0, len(b.cells))
	for label := range b.cells {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Neighbors returns the outgoing neighbors of the given cell. The slice
// is a copy; callers may mutate it freely.
func (b *Board) Neighbors(label string) []string {
	adjacent, ok := b.adjacency[label]
	if !ok {
		return nil
	}
	neighbors := make([]string, len(adjacent))
	copy(neighbors, adjacent)
	return neighbors
}

// Visited reports whether the given cell has been entered. Unknown labels
// report false.
func (b *Board) Visited(label string) bool {
	cell, ok := b.cells[label]
	return ok && cell.visited
}

// Visit marks the cell as entered and returns its assigned visit order.
// Visiting an already visited cell is an error; the flag never reverts.
func (b *Board) Visit(label string) (int, error) {
	cell, ok := b.cells[label]
	if !ok {
		return 0, ErrUnknownCell
	}
	if cell.visited {
		return 0, ErrAlreadyVisited
	}
	b.visits++
	cell.visit(b.visits)
	return cell.visitOrder, nil
}

// VisitCount returns how many cells have been entered so far.
func (b *Board) VisitCount() int {
	return b.visits
}

// Solution returns a copy of the designated solution path.
func (b *Board) Solution() []string {
	solution := make([]string, len(b.solution))
	copy(solution, b.solution)
	return solution
}

// NextOnSolution returns the label that follows current on the solution
// path. The second return value is false when current is not on the path
// or is its final cell.
func (b *Board) NextOnSolution(current string) (string, bool) {
	for i, label := range b.solution {
		if label == current && i+1 < len(b.solution) {
			return b.solution[i+1], true
		}
	}
	return "", false
}

// DistanceToGoal returns the Manhattan distance from the given cell to
// the goal cell. Unknown labels report the maximum board distance.
func (b *Board) DistanceToGoal(label string) int {
	cell, ok := b.cells[label]
	if !ok {
		return 2 * (GridSize - 1)
	}
	goal := b.cells[GoalLabel]
	return abs(cell.row-goal.row) + abs(cell.col-goal.col)
}

// String provides a textual representation of the board. Visited cells
// show their visit order, unvisited cells their label and arrow.
func (b *Board) String() string {
	grid := make([][]*Cell, GridSize)
	for i := range grid {
		grid[i] = make([]*Cell, GridSize)
	}
	for _, cell := range b.cells {
		grid[cell.row][cell.col] = cell
	}

	var output strings.Builder
	output.WriteString("+" + strings.Repeat("-----+", GridSize) + "\n")
	for row := 0; row < GridSize; row++ {
		output.WriteString("|")
		for col := 0; col < GridSize; col++ {
			cell := grid[row][col]
			if cell.visited {
				output.WriteString(fmt.Sprintf(" %2d  |", cell.visitOrder))
			} else {
				output.WriteString(fmt.Sprintf(" %s %s |", cell.label, cell.arrow))
			}
		}
		output.WriteString("\n+" + strings.Repeat("-----+", GridSize) + "\n")
	}
	return output.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
