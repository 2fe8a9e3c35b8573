package status

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is a single status label together with its display colour.
type Entry struct {
	Label string `yaml:"label"`
	Color [3]int `yaml:"color"`
}

// Registry is an ordered status vocabulary. The first entry is the default.
type Registry struct {
	entries []Entry
}

// NewRegistry creates a registry from the given entries, dropping blank labels.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{}
	for _, e := range entries {
		e.Label = strings.TrimSpace(e.Label)
		if e.Label == "" {
			continue
		}
		r.entries = append(r.entries, e)
	}
	return r
}

// DefaultStatus returns the vocabulary used for novel items.
func DefaultStatus() *Registry {
	return NewRegistry(
		Entry{Label: "New", Color: [3]int{100, 100, 100}},
		Entry{Label: "Note", Color: [3]int{200, 50, 0}},
		Entry{Label: "Draft", Color: [3]int{200, 150, 0}},
		Entry{Label: "Finished", Color: [3]int{50, 200, 0}},
	)
}

// DefaultImport returns the vocabulary used for all non-novel items.
func DefaultImport() *Registry {
	return NewRegistry(
		Entry{Label: "New", Color: [3]int{100, 100, 100}},
		Entry{Label: "Minor", Color: [3]int{200, 50, 0}},
		Entry{Label: "Major", Color: [3]int{200, 150, 0}},
		Entry{Label: "Main", Color: [3]int{50, 200, 0}},
	)
}

// CheckEntry returns label if it belongs to the vocabulary, otherwise the
// default label. An empty registry passes the trimmed label through.
func (r *Registry) CheckEntry(label string) string {
	label = strings.TrimSpace(label)
	if r == nil || len(r.entries) == 0 {
		return label
	}
	for _, e := range r.entries {
		if e.Label == label {
			return e.Label
		}
	}
	return r.entries[0].Label
}

// Color returns the colour for label and whether the label is known.
func (r *Registry) Color(label string) ([3]int, bool) {
	if r == nil {
		return [3]int{}, false
	}
	for _, e := range r.entries {
		if e.Label == label {
			return e.Color, true
		}
	}
	return [3]int{}, false
}

// File is the YAML layout of a status vocabulary file.
type File struct {
	Status []Entry `yaml:"status"`
	Import []Entry `yaml:"import"`
}

// LoadFile reads both vocabularies from a YAML file. A list missing from the
// file keeps its default.
func LoadFile(path string) (statusItems, importItems *Registry, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read status file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("parse status file: %w", err)
	}

	statusItems = DefaultStatus()
	if len(f.Status) > 0 {
		statusItems = NewRegistry(f.Status...)
	}
	importItems = DefaultImport()
	if len(f.Import) > 0 {
		importItems = NewRegistry(f.Import...)
	}
	return statusItems, importItems, nil
}
