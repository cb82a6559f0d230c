package bot

import "math/rand"

// Greedy selects the candidate with the smallest Manhattan distance to
// the goal cell. One-step horizon, no search.
type Greedy struct {
	rng *rand.Rand
}

// NewGreedy creates a greedy strategy seeded with the given source.
func NewGreedy(seed int64) *Greedy {
	return &Greedy{rng: rand.New(rand.NewSource(seed))}
}

// ChooseMove returns the unvisited neighbor closest to the goal,
// following the shared candidate fallbacks. With no neighbors at all it
// returns a random cell, which the rules will reject and score.
func (g *Greedy) ChooseMove(view BoardView, current string, memory Memory) string {
	moves := candidates(view, current, view.Visited, memory)
	if len(moves) == 0 {
		return randomLabel(view, g.rng)
	}

	best := moves[0]
	bestDistance := view.DistanceToGoal(best)
	for _, move := range moves[1:] {
		if d := view.DistanceToGoal(move); d < bestDistance {
			best = move
			bestDistance = d
		}
	}
	return best
}
