package picker

import "github.com/atomicstack/grouped-picker/internal/tree"

// Policy decides whether a flattened entry can be chosen.
type Policy func(tree.Entry, Config) bool

// DeselectList enables leaves unless they appear in the deselect set. Groups
// are never enabled.
func DeselectList(e tree.Entry, cfg Config) bool {
	if e.Group || e.Node == nil {
		return false
	}
	_, deselected := cfg.Deselect[e.Node.ID()]
	return !deselected
}

// GroupSelectable enables leaves according to their own selectable flag and
// groups according to the global toggle.
func GroupSelectable(e tree.Entry, cfg Config) bool {
	if e.Group {
		return cfg.GroupsSelectable
	}
	return e.Selectable
}

// Config carries everything the synchronizer needs besides the forest and the
// current selection.
type Config struct {
	Policy           Policy
	GroupsSelectable bool
	Deselect         map[string]struct{}
	FolderIcon       string
	ItemIcon         string
	IndentPrefix     string
	IndentWidth      int
}

const (
	defaultFolderIcon  = "▸"
	defaultIndentWidth = 2
)

// DefaultConfig returns the GroupSelectable policy with groups disabled and
// the stock folder icon.
func DefaultConfig() Config {
	return Config{
		Policy:      GroupSelectable,
		FolderIcon:  defaultFolderIcon,
		IndentWidth: defaultIndentWidth,
	}
}

func (c Config) enabled(e tree.Entry) bool {
	policy := c.Policy
	if policy == nil {
		policy = GroupSelectable
	}
	return policy(e, c)
}

func (c Config) icon(e tree.Entry) string {
	if e.Group {
		return c.FolderIcon
	}
	return c.ItemIcon
}

// DeselectSet builds a deselect set from nodes.
func DeselectSet(nodes ...tree.Node) map[string]struct{} {
	set := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		set[n.ID()] = struct{}{}
	}
	return set
}

func cloneSet(set map[string]struct{}) map[string]struct{} {
	if set == nil {
		return nil
	}
	dup := make(map[string]struct{}, len(set))
	for k := range set {
		dup[k] = struct{}{}
	}
	return dup
}
