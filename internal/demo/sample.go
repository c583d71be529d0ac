package demo

import "github.com/atomicstack/grouped-picker/internal/tree"

// SampleItems is the forest shown when no tree file is given.
func SampleItems() []*tree.Item {
	return []*tree.Item{
		tree.Group("editors", "Editors",
			tree.Leaf("vim", "Vim"),
			tree.Leaf("emacs", "Emacs"),
			tree.Group("ides", "IDEs",
				tree.Leaf("goland", "GoLand"),
				&tree.Item{Key: "eclipse", Title: "Eclipse", Disabled: true},
			),
		),
		tree.Group("shells", "Shells",
			tree.Leaf("bash", "Bash"),
			tree.Leaf("zsh", "Zsh"),
			tree.Leaf("fish", "Fish"),
		),
		tree.Group("plugins", "Plugins"),
		tree.Leaf("none", "No preference"),
	}
}
