package tree

// Entry is one row of a flattened forest.
type Entry struct {
	Title      string
	Node       Node
	Depth      int
	Group      bool
	Selectable bool
}

// Flatten walks the forest in pre-order, emitting each node before its
// children with depth increasing by one per nesting level.
func Flatten(forest []Node) []Entry {
	var out []Entry
	for _, n := range forest {
		out = appendEntries(out, n, 0)
	}
	return out
}

func appendEntries(out []Entry, n Node, depth int) []Entry {
	if n == nil {
		return out
	}
	children, group := n.Children()
	out = append(out, Entry{
		Title:      n.Label(),
		Node:       n,
		Depth:      depth,
		Group:      group,
		Selectable: IsSelectable(n),
	})
	for _, child := range children {
		out = appendEntries(out, child, depth+1)
	}
	return out
}

// Find returns the first node in pre-order whose identity is id.
func Find(forest []Node, id string) (Node, bool) {
	for _, n := range forest {
		if n == nil {
			continue
		}
		if n.ID() == id {
			return n, true
		}
		if children, ok := n.Children(); ok {
			if found, ok := Find(children, id); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// Contains reports whether a node with the same identity as target appears
// anywhere in the forest.
func Contains(forest []Node, target Node) bool {
	if target == nil {
		return false
	}
	_, ok := Find(forest, target.ID())
	return ok
}
