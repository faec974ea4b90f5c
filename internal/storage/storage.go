// Package storage persists a command.CommandMap to a human-editable TOML
// file, keyed by namespace.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/rvigo/cl/internal/command"
)

// record is the on-disk shape of a single command within a namespace
// bucket. The namespace itself is the enclosing TOML table key and is not
// duplicated in the record.
type record struct {
	Alias       string   `toml:"alias"`
	Command     string   `toml:"command"`
	Description string   `toml:"description,omitempty"`
	Tags        []string `toml:"tags,omitempty"`
}

type fileFormat map[string][]record

// Adapter loads and saves command maps at a configured default path, and
// supports one-off loads/saves at arbitrary paths for import/export.
type Adapter struct {
	path string
}

// New creates an Adapter whose default path is path.
func New(path string) *Adapter {
	return &Adapter{path: path}
}

// Load reads the CommandMap from the adapter's configured path, creating an
// empty file there first if none exists.
func (a *Adapter) Load() (command.CommandMap, error) {
	return LoadFrom(a.path)
}

// Save writes m to the adapter's configured path.
func (a *Adapter) Save(m command.CommandMap) error {
	return SaveAt(m, a.path)
}

// LoadFrom reads a CommandMap from an arbitrary path. If the file does not
// exist, it is created empty and an empty map is returned.
func LoadFrom(path string) (command.CommandMap, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := ensureFile(path); err != nil {
			return nil, fmt.Errorf("create commands file %s: %w", path, err)
		}
		return command.CommandMap{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read commands file %s: %w", path, err)
	}

	var ff fileFormat
	if len(data) > 0 {
		if err := toml.Unmarshal(data, &ff); err != nil {
			return nil, fmt.Errorf("parse commands file %s: %w", path, err)
		}
	}

	m := make(command.CommandMap, len(ff))
	for ns, records := range ff {
		list := make([]command.Command, 0, len(records))
		for _, r := range records {
			list = append(list, command.Command{
				Namespace:   ns,
				Alias:       r.Alias,
				Command:     r.Command,
				Description: r.Description,
				Tags:        r.Tags,
			})
		}
		m[ns] = list
	}
	return m, nil
}

// SaveAt fully re-serializes m to an arbitrary path.
func SaveAt(m command.CommandMap, path string) error {
	ff := make(fileFormat, len(m))
	for _, ns := range m.SortedNamespaces() {
		records := make([]record, 0, len(m[ns]))
		for _, c := range m[ns] {
			records = append(records, record{
				Alias:       c.Alias,
				Command:     c.Command,
				Description: c.Description,
				Tags:        c.Tags,
			})
		}
		ff[ns] = records
	}

	data, err := toml.Marshal(ff)
	if err != nil {
		return fmt.Errorf("encode commands file %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write commands file %s: %w", path, err)
	}
	return nil
}

func ensureFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte{}, 0o644)
}
