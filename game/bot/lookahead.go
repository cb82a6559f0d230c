package bot

import "math/rand"

const (
	// DefaultDepth is the lookahead horizon used when none is configured.
	DefaultDepth = 6

	// goalScore rates a state that reached the goal; everything else is
	// rated by negative distance, so the goal always dominates.
	goalScore = 10000

	minScore = -1 << 30
)

// Lookahead evaluates each candidate by recursively exploring the board
// up to a fixed depth and picks the first candidate whose subtree
// reaches the best attainable score. The recursion only respects
// legality (visited cells and remembered rejections); correctness stays
// hidden, so a well-scored move can still be rejected by the rules.
type Lookahead struct {
	depth int
	rng   *rand.Rand
}

// NewLookahead creates a depth-limited search strategy. Non-positive
// depths fall back to DefaultDepth.
func NewLookahead(depth int, seed int64) *Lookahead {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Lookahead{depth: depth, rng: rand.New(rand.NewSource(seed))}
}

// Depth returns the configured search horizon.
func (l *Lookahead) Depth() int {
	return l.depth
}

// ChooseMove returns the candidate maximizing the best score attainable
// within the horizon. Ties keep the earliest candidate. With no
// neighbors at all it returns a random cell.
func (l *Lookahead) ChooseMove(view BoardView, current string, memory Memory) string {
	visited := realVisits(view)
	moves := candidates(view, current, lookup(visited), memory)
	if len(moves) == 0 {
		return randomLabel(view, l.rng)
	}

	best := moves[0]
	bestScore := minScore
	for _, move := range moves {
		if visited[move] {
			continue
		}
		visited[move] = true
		score := l.bestScore(view, move, l.depth-1, visited, memory)
		delete(visited, move)

		if score > bestScore {
			best = move
			bestScore = score
		}
	}
	return best
}

// bestScore returns the best achievable score from current within the
// remaining depth, assuming the opponent keeps choosing its best moves.
func (l *Lookahead) bestScore(view BoardView, current string, depth int, visited map[string]bool, memory Memory) int {
	if depth == 0 || current == view.Goal() {
		return l.score(view, current)
	}

	moves := candidates(view, current, lookup(visited), memory)
	best := minScore
	for _, move := range moves {
		if visited[move] {
			continue
		}
		visited[move] = true
		if score := l.bestScore(view, move, depth-1, visited, memory); score > best {
			best = score
		}
		delete(visited, move)
	}

	// Everything was blocked; rate the state we are stuck in.
	if best == minScore {
		return l.score(view, current)
	}
	return best
}

// score rates a state: the goal is highest, otherwise closer is better.
func (l *Lookahead) score(view BoardView, label string) int {
	if label == view.Goal() {
		return goalScore
	}
	return -view.DistanceToGoal(label)
}

// realVisits snapshots the board's visited flags into a simulation set.
func realVisits(view BoardView) map[string]bool {
	visited := make(map[string]bool)
	for _, label := range view.Labels() {
		if view.Visited(label) {
			visited[label] = true
		}
	}
	return visited
}

func lookup(visited map[string]bool) func(string) bool {
	return func(label string) bool {
		return visited[label]
	}
}
