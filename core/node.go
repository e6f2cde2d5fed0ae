package core

// Node wraps a state discovered during search with the bookkeeping
// needed to reconstruct the solution: cumulative path cost, the action
// that produced it, its depth, and a link to its parent Node. Parent
// links are read-only and used solely for path reconstruction.
type Node[S comparable] struct {
	State  S
	Action string  // action that produced this node; empty for the root
	Cost   float64 // cumulative path cost g from the root
	Depth  int     // number of actions from the root
	Parent *Node[S]
}

// NewRoot returns the root node for state s: zero cost, zero depth, no
// parent.
func NewRoot[S comparable](s S) *Node[S] {
	return &Node[S]{State: s}
}

// Child returns the node reached from n by taking action to state s at
// the given step cost.
func (n *Node[S]) Child(s S, action string, stepCost float64) *Node[S] {
	return &Node[S]{
		State:  s,
		Action: action,
		Cost:   n.Cost + stepCost,
		Depth:  n.Depth + 1,
		Parent: n,
	}
}

// Path reconstructs the state sequence from the root to n by walking
// parent links and reversing.
func (n *Node[S]) Path() []S {
	path := make([]S, 0, n.Depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur.State)
	}
	reverse(path)

	return path
}

// Actions reconstructs the action labels from the root to n. The root's
// empty action is omitted, so len(Actions()) == n.Depth.
func (n *Node[S]) Actions() []string {
	actions := make([]string, 0, n.Depth)
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		actions = append(actions, cur.Action)
	}
	reverse(actions)

	return actions
}

// reverse flips s in place.
func reverse[E any](s []E) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
