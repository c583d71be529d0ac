package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/grouped-picker/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envTreePath         = "GROUPED_PICKER_TREE"
	envWatch            = "GROUPED_PICKER_WATCH"
	envSelect           = "GROUPED_PICKER_SELECT"
	envGroupsSelectable = "GROUPED_PICKER_GROUPS_SELECTABLE"
	envDeselect         = "GROUPED_PICKER_DESELECT"
	envFolderIcon       = "GROUPED_PICKER_FOLDER_ICON"
	envItemIcon         = "GROUPED_PICKER_ITEM_ICON"
	envIndentPrefix     = "GROUPED_PICKER_INDENT_PREFIX"
	envWidth            = "GROUPED_PICKER_WIDTH"
	envHeight           = "GROUPED_PICKER_HEIGHT"
	envShowFooter       = "GROUPED_PICKER_FOOTER"
	envTrace            = "GROUPED_PICKER_TRACE"
	envLogFile          = "GROUPED_PICKER_LOG_FILE"
)

const defaultFolderIcon = "▸"

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("grouped-picker", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	treePath := fs.String("tree", envOrDefault(env, envTreePath, ""), "path to a YAML or JSON tree file (built-in sample when empty)")
	watch := fs.Bool("watch", envOrBool(env, envWatch, false), "reload the tree file when it changes")
	selected := fs.String("select", envOrDefault(env, envSelect, ""), "id of the initially selected node")
	groups := fs.Bool("groups-selectable", envOrBool(env, envGroupsSelectable, false), "allow group rows to be chosen")
	deselect := fs.String("deselect", envOrDefault(env, envDeselect, ""), "comma-separated leaf ids to disable (switches to the deselect-list policy)")
	folderIcon := fs.String("folder-icon", envOrDefault(env, envFolderIcon, defaultFolderIcon), "icon shown before group rows")
	itemIcon := fs.String("item-icon", envOrDefault(env, envItemIcon, ""), "icon shown before leaf rows")
	indentPrefix := fs.String("indent-prefix", envOrDefault(env, envIndentPrefix, ""), "string repeated once per depth level before each label")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired picker width in cells (0 follows the terminal)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			TreePath:         strings.TrimSpace(*treePath),
			Watch:            *watch,
			SelectedID:       strings.TrimSpace(*selected),
			GroupsSelectable: *groups,
			DeselectIDs:      splitList(*deselect),
			FolderIcon:       *folderIcon,
			ItemIcon:         *itemIcon,
			IndentPrefix:     *indentPrefix,
			Width:            *width,
			Height:           *height,
			ShowFooter:       *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"tree":             *treePath,
			"watch":            strconv.FormatBool(*watch),
			"select":           *selected,
			"groupsSelectable": strconv.FormatBool(*groups),
			"deselect":         *deselect,
			"folderIcon":       *folderIcon,
			"itemIcon":         *itemIcon,
			"indentPrefix":     *indentPrefix,
			"width":            strconv.Itoa(*width),
			"height":           strconv.Itoa(*height),
			"footer":           strconv.FormatBool(*footer),
			"trace":            strconv.FormatBool(*trace),
			"logFile":          *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// splitList turns "a, b,,c" into [a b c].
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects option combinations the demo cannot honour.
func Validate(cfg Config) error {
	if cfg.App.Watch && cfg.App.TreePath == "" {
		return fmt.Errorf("-watch requires -tree")
	}
	return nil
}
