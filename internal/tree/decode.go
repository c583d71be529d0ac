package tree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Format identifies a tree file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// ErrEmptyNode is returned for a node that has neither an id nor a label.
var ErrEmptyNode = errors.New("node has neither id nor label")

// rawItem mirrors the file layout. Children is a pointer so an explicit empty
// list can be told apart from a missing one.
type rawItem struct {
	ID       string     `yaml:"id" json:"id"`
	Label    string     `yaml:"label" json:"label"`
	Children *[]rawItem `yaml:"children" json:"children"`
	Disabled bool       `yaml:"disabled" json:"disabled"`
}

// FormatForPath picks an encoding from the file extension; anything that is
// not .json is treated as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// LoadFile reads and decodes a tree file.
func LoadFile(path string) ([]*Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree file: %w", err)
	}
	items, err := Decode(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return items, nil
}

// Decode parses a forest from data.
func Decode(data []byte, format Format) ([]*Item, error) {
	var raw []rawItem
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	}
	seen := make(map[string]struct{})
	return convert(raw, nil, seen)
}

func convert(raw []rawItem, path []string, seen map[string]struct{}) ([]*Item, error) {
	items := make([]*Item, 0, len(raw))
	for i, r := range raw {
		label := strings.TrimSpace(r.Label)
		id := strings.TrimSpace(r.ID)
		if label == "" && id == "" {
			return nil, fmt.Errorf("%s[%d]: %w", strings.Join(path, "/"), i, ErrEmptyNode)
		}
		if label == "" {
			label = id
		}
		nodePath := append(append([]string(nil), path...), label)
		if id == "" {
			id = DerivedID(nodePath)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
		item := &Item{Key: id, Title: label, Disabled: r.Disabled}
		if r.Children != nil {
			children, err := convert(*r.Children, nodePath, seen)
			if err != nil {
				return nil, err
			}
			item.Group = true
			item.Items = children
		}
		items = append(items, item)
	}
	return items, nil
}

// DerivedID returns a stable identity for a node addressed by its label path,
// so nodes without an explicit id keep their identity across reloads.
func DerivedID(path []string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.Join(path, "\x1f"))).String()
}
