package schema

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed levels/*.yaml
var catalogFS embed.FS

// Parse decodes and validates one schema.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile loads a schema from disk.
func LoadFile(p string) (*Schema, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", p, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", p, err)
	}
	s.Source = p
	if s.ID == "" {
		s.ID = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	}
	return s, nil
}

// Load resolves ref as a catalog ID first, then as a file path. An empty
// ref loads the first catalog entry.
func Load(ref string) (*Schema, error) {
	if ref == "" {
		ids := IDs()
		if len(ids) == 0 {
			return nil, fmt.Errorf("schema: empty catalog")
		}
		ref = ids[0]
	}
	if s, err := LoadBuiltin(ref); err == nil {
		return s, nil
	}
	return LoadFile(ref)
}

// LoadBuiltin loads a schema from the embedded catalog.
func LoadBuiltin(id string) (*Schema, error) {
	name := path.Join("levels", id+".yaml")
	data, err := catalogFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("level not found: %s", id)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing builtin %s: %w", id, err)
	}
	s.Source = "builtin:" + id
	if s.ID == "" {
		s.ID = id
	}
	return s, nil
}

// IDs returns the embedded schema IDs in level order.
func IDs() []string {
	entries, err := fs.ReadDir(catalogFS, "levels")
	if err != nil {
		return nil
	}

	type entry struct {
		id    string
		level int
	}
	var list []entry
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".yaml")
		s, err := LoadBuiltin(id)
		if err != nil {
			continue
		}
		list = append(list, entry{id: id, level: s.Level})
	}

	// Sort by level, then ID, for determinism
	sort.Slice(list, func(i, j int) bool {
		if list[i].level != list[j].level {
			return list[i].level < list[j].level
		}
		return list[i].id < list[j].id
	})

	ids := make([]string, len(list))
	for i, e := range list {
		ids[i] = e.id
	}
	return ids
}

// Builtins loads every catalog schema in level order.
func Builtins() []*Schema {
	var out []*Schema
	for _, id := range IDs() {
		if s, err := LoadBuiltin(id); err == nil {
			out = append(out, s)
		}
	}
	return out
}

// Count returns the number of catalog schemas.
func Count() int {
	return len(IDs())
}
