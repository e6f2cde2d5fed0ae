package connect4

import (
	"fmt"
	"strings"

	"github.com/lavrin/wayfarer/adversarial"
)

// cellRecord is one history entry: the cell a disc landed in.
type cellRecord struct {
	row, col int8
}

// Game is a mutable Connect Four position implementing
// adversarial.Game. Row 0 is the top of the board; discs land on the
// largest empty row of their column. The zero value is not usable;
// construct with New.
type Game struct {
	board   [Rows][Cols]int8 // 0 empty, +1 / -1 discs
	player  int8             // side to move
	history []cellRecord
}

// New returns an empty board with player +1 to move.
func New() *Game {
	return &Game{player: 1, history: make([]cellRecord, 0, Rows*Cols)}
}

// Player returns the side to move, +1 or -1.
func (g *Game) Player() int { return int(g.player) }

// Moves returns the number of plies played, which always equals the
// undo-history length.
func (g *Game) Moves() int { return len(g.history) }

// Cell returns the disc at (row, col): 0 empty, +1, or -1. Out-of-range
// coordinates return 0.
func (g *Game) Cell(row, col int) int {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return 0
	}

	return int(g.board[row][col])
}

// LegalMoves lists the columns whose top cell is empty, left to right.
// Empty iff the board is full — a full board is terminal, so the Game
// contract holds by construction.
func (g *Game) LegalMoves() []int {
	moves := make([]int, 0, Cols)
	for col := 0; col < Cols; col++ {
		if g.board[0][col] == 0 {
			moves = append(moves, col)
		}
	}

	return moves
}

// Apply drops the side-to-move's disc into col and flips the side to
// move. Returns ErrBadColumn or ErrColumnFull without mutating
// anything on a bad move.
func (g *Game) Apply(col int) error {
	if col < 0 || col >= Cols {
		return fmt.Errorf("%w: %d", ErrBadColumn, col)
	}
	row := -1
	for r := Rows - 1; r >= 0; r-- {
		if g.board[r][col] == 0 {
			row = r

			break
		}
	}
	if row < 0 {
		return fmt.Errorf("%w: %d", ErrColumnFull, col)
	}

	g.board[row][col] = g.player
	g.history = append(g.history, cellRecord{row: int8(row), col: int8(col)})
	g.player = -g.player

	return nil
}

// Undo reverts the most recent Apply, restoring the board and side to
// move to their exact prior values.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return ErrNoHistory
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.board[last.row][last.col] = 0
	g.player = -g.player

	return nil
}

// Winner scans the board for four in a row and returns the winning
// player, or 0 when there is none. Computed fresh on every call.
func (g *Game) Winner() int {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			disc := g.board[row][col]
			if disc == 0 {
				continue
			}
			for _, d := range scanDirections {
				count := 1
				for i := 1; i < 4; i++ {
					r, c := row+d[0]*i, col+d[1]*i
					if r < 0 || r >= Rows || c < 0 || c >= Cols || g.board[r][c] != disc {
						break
					}
					count++
				}
				if count == 4 {
					return int(disc)
				}
			}
		}
	}

	return 0
}

// Full reports whether every column is topped out.
func (g *Game) Full() bool {
	for col := 0; col < Cols; col++ {
		if g.board[0][col] == 0 {
			return false
		}
	}

	return true
}

// Outcome reports the terminal result from player's perspective: a
// win or loss when someone has connected four, a draw on a full board,
// and ok == false while the game is still in progress.
func (g *Game) Outcome(player int) (adversarial.Outcome, bool) {
	if w := g.Winner(); w != 0 {
		if w == player {
			return adversarial.Win, true
		}

		return adversarial.Loss, true
	}
	if g.Full() {
		return adversarial.Draw, true
	}

	return 0, false
}

// String renders the board for debugging: X for +1, O for -1, dots for
// empty cells, top row first.
func (g *Game) String() string {
	var b strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			switch g.board[row][col] {
			case 1:
				b.WriteByte('X')
			case -1:
				b.WriteByte('O')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
