/*
Package bot implements the move selection strategies of the computer
opponent.

Both strategies see the board topology and the visited flags but never
the hidden solution path: the opponent plays smart but fallible, and its
attempts can be rejected by the correctness rule it cannot observe.
Rejected attempts are fed back through the Memory interface so a known
dead pair is not tried twice.
*/
package bot

import "math/rand"

// BoardView is the part of the board a strategy may consult. The
// solution path is deliberately absent from this interface.
type BoardView interface {
	// Goal returns the label of the goal cell.
	Goal() string

	// Labels returns every cell label on the board.
	Labels() []string

	// Neighbors returns the outgoing neighbors of the given cell.
	Neighbors(label string) []string

	// Visited reports whether the given cell has been entered.
	Visited(label string) bool

	// DistanceToGoal returns the Manhattan distance from the cell to
	// the goal.
	DistanceToGoal(label string) int
}

// Memory reports which attempts were already rejected this match.
type Memory interface {
	TriedIllegal(from, target string) bool
}

// Strategy picks the opponent's next target cell.
type Strategy interface {
	ChooseMove(view BoardView, current string, memory Memory) string
}

// candidates builds the targets a strategy considers from current, in
// order of preference: unvisited neighbors not yet rejected, then any
// unvisited neighbor, then any neighbor at all. The visited func is a
// parameter so lookahead can substitute a simulated visit set.
func candidates(view BoardView, current string, visited func(string) bool, memory Memory) []string {
	neighbors := view.Neighbors(current)

	var primary []string
	var fallback []string
	for _, n := range neighbors {
		if visited(n) {
			continue
		}
		fallback = append(fallback, n)
		if memory == nil || !memory.TriedIllegal(current, n) {
			primary = append(primary, n)
		}
	}

	if len(primary) > 0 {
		return primary
	}
	if len(fallback) > 0 {
		return fallback
	}
	return neighbors
}

// randomLabel picks a uniformly random cell label, the last resort when
// the current cell has no neighbors at all.
func randomLabel(view BoardView, rng *rand.Rand) string {
	labels := view.Labels()
	return labels[rng.Intn(len(labels))]
}
