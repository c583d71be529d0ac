package tree

// Node is an element of a grouped picker tree.
//
// Children reports the child sequence and whether one is present at all. A
// node with a present children sequence is a group even when the sequence is
// empty; a node without one is a leaf.
type Node interface {
	ID() string
	Label() string
	Children() ([]Node, bool)
}

// Selectable is implemented by nodes that can opt out of selection. Nodes
// that do not implement it are selectable.
type Selectable interface {
	Selectable() bool
}

// IsGroup reports whether n carries a children sequence.
func IsGroup(n Node) bool {
	if n == nil {
		return false
	}
	_, ok := n.Children()
	return ok
}

// IsSelectable reports the node's own selectable flag.
func IsSelectable(n Node) bool {
	if n == nil {
		return false
	}
	if s, ok := n.(Selectable); ok {
		return s.Selectable()
	}
	return true
}

// Same reports whether two nodes share an identity.
func Same(a, b Node) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID() == b.ID()
}

// Item is the concrete Node used by the demo harness and file loader.
type Item struct {
	Key      string
	Title    string
	Items    []*Item
	Group    bool
	Disabled bool
}

// Leaf builds a selectable leaf.
func Leaf(id, label string) *Item {
	return &Item{Key: id, Title: label}
}

// Group builds a group node; an empty children list still yields a group.
func Group(id, label string, children ...*Item) *Item {
	return &Item{Key: id, Title: label, Items: children, Group: true}
}

func (i *Item) ID() string    { return i.Key }
func (i *Item) Label() string { return i.Title }

func (i *Item) Children() ([]Node, bool) {
	if !i.Group && i.Items == nil {
		return nil, false
	}
	nodes := make([]Node, 0, len(i.Items))
	for _, child := range i.Items {
		if child == nil {
			continue
		}
		nodes = append(nodes, child)
	}
	return nodes, true
}

func (i *Item) Selectable() bool { return !i.Disabled }

// Nodes converts items into a Node forest.
func Nodes(items ...*Item) []Node {
	nodes := make([]Node, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		nodes = append(nodes, item)
	}
	return nodes
}
