package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/grouped-picker/internal/app"
	"github.com/atomicstack/grouped-picker/internal/config"
	"github.com/atomicstack/grouped-picker/internal/logging"
	"github.com/atomicstack/grouped-picker/internal/logging/events"
	"github.com/atomicstack/grouped-picker/internal/tree"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(runtimeCfg, probeTerminal(int(os.Stdout.Fd()), runtimeCfg.App)))
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records how the picker was configured and where it
// will draw.
func startupTracePayload(cfg config.Config, terminal terminalInfo) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    cfg.Flags,
		"config":   cfg,
		"tree":     treeSourceDetails(cfg.App),
		"terminal": terminal,
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type treeSource struct {
	Path   string `json:"path,omitempty"`
	Format string `json:"format"`
	Watch  bool   `json:"watch"`
	Sample bool   `json:"sample"`
}

// treeSourceDetails records where the forest comes from.
func treeSourceDetails(cfg app.Config) treeSource {
	if cfg.TreePath == "" {
		return treeSource{Format: "builtin", Sample: true}
	}
	format := "yaml"
	if tree.FormatForPath(cfg.TreePath) == tree.FormatJSON {
		format = "json"
	}
	return treeSource{Path: cfg.TreePath, Format: format, Watch: cfg.Watch}
}

// terminalInfo describes the descriptor Bubble Tea renders to and which of
// its dimensions the -width and -height options pin.
type terminalInfo struct {
	Interactive bool   `json:"interactive"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	FixedWidth  bool   `json:"fixedWidth"`
	FixedHeight bool   `json:"fixedHeight"`
	Error       string `json:"error,omitempty"`
}

func probeTerminal(fd int, cfg app.Config) terminalInfo {
	info := terminalInfo{FixedWidth: cfg.Width > 0, FixedHeight: cfg.Height > 0}
	if fd < 0 || !term.IsTerminal(fd) {
		return info
	}
	info.Interactive = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Width, info.Height = width, height
	return info
}
