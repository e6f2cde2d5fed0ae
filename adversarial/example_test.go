package adversarial_test

import (
	"fmt"

	"github.com/lavrin/wayfarer/adversarial"
)

// ExampleMinimax solves the subtraction game from 4 tokens: taking 1
// leaves the opponent a lost position, so depth-6 minimax plays it.
func ExampleMinimax() {
	move, metrics, err := adversarial.Minimax(newNim(4), adversarial.WithMaxDepth(6))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("move:", move)
	fmt.Println("expanded:", metrics.NodesExpanded)
	// Output:
	// move: 1
	// expanded: 12
}

// ExampleAlphaBeta plays the same position with pruning: the chosen
// move is identical, but whole sibling branches go unvisited.
func ExampleAlphaBeta() {
	move, metrics, err := adversarial.AlphaBeta(newNim(4), adversarial.WithMaxDepth(6))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("move:", move)
	fmt.Println("pruned:", metrics.NodesPruned > 0)
	// Output:
	// move: 1
	// pruned: true
}
