package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/grouped-picker/internal/demo"
	"github.com/atomicstack/grouped-picker/internal/source"
	"github.com/atomicstack/grouped-picker/internal/tree"
	tea "github.com/charmbracelet/bubbletea"
)

const reloadDebounce = 250 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	TreePath         string
	Watch            bool
	SelectedID       string
	GroupsSelectable bool
	DeselectIDs      []string
	FolderIcon       string
	ItemIcon         string
	IndentPrefix     string
	Width            int
	Height           int
	ShowFooter       bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	opts, err := Options(cfg)
	if err != nil {
		return err
	}
	if cfg.Watch && cfg.TreePath != "" {
		watcher, err := source.NewWatcher(cfg.TreePath, reloadDebounce, tree.LoadFile)
		if err != nil {
			return fmt.Errorf("watch tree file: %w", err)
		}
		defer watcher.Stop()
		opts.Watcher = watcher
	}
	program := tea.NewProgram(demo.NewModel(opts), tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Options loads the initial forest and maps cfg onto the demo options. The
// built-in sample is used when no tree file is configured.
func Options(cfg Config) (demo.Options, error) {
	items := demo.SampleItems()
	if cfg.TreePath != "" {
		loaded, err := tree.LoadFile(cfg.TreePath)
		if err != nil {
			return demo.Options{}, fmt.Errorf("load tree: %w", err)
		}
		items = loaded
	}
	return demo.Options{
		Items:            items,
		SelectedID:       cfg.SelectedID,
		GroupsSelectable: cfg.GroupsSelectable,
		DeselectIDs:      append([]string(nil), cfg.DeselectIDs...),
		FolderIcon:       cfg.FolderIcon,
		ItemIcon:         cfg.ItemIcon,
		IndentPrefix:     cfg.IndentPrefix,
		Width:            cfg.Width,
		Height:           cfg.Height,
		ShowFooter:       cfg.ShowFooter,
	}, nil
}
