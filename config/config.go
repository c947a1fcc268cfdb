package config

import (
	"fmt"
	"os"

	gyaml "github.com/goccy/go-yaml"
)

// Entry is one flattened key/value pair.
type Entry struct {
	Key   string
	Value any
}

// Document is a loaded configuration document: an ordered mapping of
// dotted keys to scalar values.
type Document struct {
	entries []Entry
	index   map[string]int
}

// Parse decodes a YAML document. Nested sections flatten to dotted keys
// ("build_mode.Islands") in document order. Values must be scalars;
// lists are not part of the configuration schema.
func Parse(data []byte) (*Document, error) {
	var ms gyaml.MapSlice
	if err := gyaml.UnmarshalWithOptions(data, &ms, gyaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	d := &Document{index: map[string]int{}}
	if err := d.flatten("", ms); err != nil {
		return nil, err
	}
	return d, nil
}

// Load reads and parses the configuration at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func (d *Document) flatten(prefix string, ms gyaml.MapSlice) error {
	for _, item := range ms {
		key, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("%w: non-string key %v", ErrParse, item.Key)
		}
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := item.Value.(type) {
		case gyaml.MapSlice:
			if err := d.flatten(full, v); err != nil {
				return err
			}
		case []any:
			return fmt.Errorf("%w: %s: list values are not supported", ErrParse, full)
		default:
			if _, dup := d.index[full]; dup {
				return fmt.Errorf("%w: duplicate key %s", ErrParse, full)
			}
			d.index[full] = len(d.entries)
			d.entries = append(d.entries, Entry{Key: full, Value: item.Value})
		}
	}
	return nil
}

// Entries returns the flattened entries in document order.
func (d *Document) Entries() []Entry {
	res := make([]Entry, len(d.entries))
	copy(res, d.entries)
	return res
}

// Get returns the value at key and whether it is present.
func (d *Document) Get(key string) (any, bool) {
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return d.entries[i].Value, true
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.index[key]
	return ok
}

// Len returns the number of flattened entries.
func (d *Document) Len() int {
	return len(d.entries)
}
