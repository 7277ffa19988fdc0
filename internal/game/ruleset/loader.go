package ruleset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Subdirectories of a content root holding each rule kind.
const (
	ItemsDir    = "items"
	RegionsDir  = "regions"
	ResearchDir = "research"
	EventsDir   = "events"
)

// LoadCatalog reads every rule kind from its subdirectory of root, registers
// the rules and validates cross references. A missing subdirectory yields no
// rules of that kind.
//
// Precondition: root must be a readable directory path.
// Postcondition: Returns a validated Catalog or a non-nil error.
func LoadCatalog(root string) (*Catalog, error) {
	c := NewCatalog()

	items, err := loadRules[ItemRule](filepath.Join(root, ItemsDir))
	if err != nil {
		return nil, err
	}
	for _, r := range items {
		if err := c.RegisterItem(r); err != nil {
			return nil, err
		}
	}

	regions, err := loadRules[RegionRule](filepath.Join(root, RegionsDir))
	if err != nil {
		return nil, err
	}
	for _, r := range regions {
		if err := c.RegisterRegion(r); err != nil {
			return nil, err
		}
	}

	research, err := loadRules[ResearchRule](filepath.Join(root, ResearchDir))
	if err != nil {
		return nil, err
	}
	for _, r := range research {
		if err := c.RegisterResearch(r); err != nil {
			return nil, err
		}
	}

	events, err := loadRules[EventRule](filepath.Join(root, EventsDir))
	if err != nil {
		return nil, err
	}
	for _, r := range events {
		if err := c.RegisterEvent(r); err != nil {
			return nil, err
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadRegions reads all YAML files in dir and parses each as one or more RegionRules.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed regions (may be empty slice) or a non-nil error.
func LoadRegions(dir string) ([]*RegionRule, error) {
	return loadRules[RegionRule](dir)
}

// loadRules parses every YAML file in dir. A file holds either a single rule
// mapping or a sequence of rules.
func loadRules[T any](dir string) ([]*T, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var out []*T
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if len(doc.Content) == 0 {
			continue
		}
		root := doc.Content[0]
		if root.Kind == yaml.SequenceNode {
			var rules []*T
			if err := root.Decode(&rules); err != nil {
				return nil, fmt.Errorf("decoding %s: %w", path, err)
			}
			out = append(out, rules...)
			continue
		}
		var r T
		if err := root.Decode(&r); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		out = append(out, &r)
	}
	return out, nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
