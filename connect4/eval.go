package connect4

import "github.com/lavrin/wayfarer/adversarial"

// Evaluation weights: open threes dominate, pair counts matter least.
const (
	threatWeight = 100.0
	pairWeight   = 5.0
	centerWeight = 2.0
)

// Evaluator returns the static evaluation closed over g, suitable for
// adversarial.WithEvaluator. The engines mutate g during search, so
// the closure always scores the position as it stands at the horizon.
func (g *Game) Evaluator() adversarial.Evaluator {
	return func(player, _ int) float64 {
		return g.Evaluate(player)
	}
}

// Evaluate statically scores a non-terminal position for player as a
// weighted combination of open-three threats, center control, and
// two-in-a-row counts. Every term is a player-minus-opponent
// difference, so Evaluate(p) == -Evaluate(-p) holds for any position.
func (g *Game) Evaluate(player int) float64 {
	p := int8(player)
	opponent := -p

	score := threatWeight * float64(g.countThreats(p)-g.countThreats(opponent))
	score += centerWeight * float64(g.centerControl(p)-g.centerControl(opponent))
	score += pairWeight * float64(g.countPairs(p)-g.countPairs(opponent))

	return score
}

// countThreats counts cells anchoring an open three: a 4-window with
// three discs of player, one empty cell, and that empty cell playable
// (bottom row or supported from below). At most one threat is counted
// per anchor cell.
func (g *Game) countThreats(player int8) int {
	threats := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			for _, d := range scanDirections {
				count := 0
				emptyRow, emptyCol := -1, -1
				for i := 0; i < 4; i++ {
					r, c := row+d[0]*i, col+d[1]*i
					if r < 0 || r >= Rows || c < 0 || c >= Cols {
						break
					}
					switch g.board[r][c] {
					case player:
						count++
					case 0:
						emptyRow, emptyCol = r, c
					default:
						count = -4 // opponent disc kills the window
					}
					if count < 0 {
						break
					}
				}
				if count == 3 && emptyRow >= 0 {
					if emptyRow == Rows-1 || g.board[emptyRow+1][emptyCol] != 0 {
						threats++

						break
					}
				}
			}
		}
	}

	return threats
}

// centerControl sums positional weight over the middle columns: the
// center column counts 3, its neighbors 2 each.
func (g *Game) centerControl(player int8) int {
	control := 0
	mid := Cols / 2
	for _, col := range []int{mid - 1, mid, mid + 1} {
		weight := 3 - abs(col-mid)
		for row := 0; row < Rows; row++ {
			if g.board[row][col] == player {
				control += weight
			}
		}
	}

	return control
}

// countPairs counts cells starting two consecutive discs of player in
// any scan direction, at most once per cell.
func (g *Game) countPairs(player int8) int {
	pairs := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			for _, d := range scanDirections {
				r, c := row+d[0], col+d[1]
				if g.board[row][col] == player &&
					r >= 0 && r < Rows && c >= 0 && c < Cols && g.board[r][c] == player {
					pairs++

					break
				}
			}
		}
	}

	return pairs
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
