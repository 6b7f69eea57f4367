// Package language maps file names to Markdown fence language tags. The
// definitions live in an embedded YAML table so the mapping can be inspected
// and extended without touching code.
package language

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed languages.yml
var rawDefinitions []byte

type definition struct {
	Extensions []string `yaml:"extensions"`
	Filenames  []string `yaml:"filenames"`
}

// Table resolves file names to fence language tags.
type Table struct {
	byExtension map[string]string
	byFilename  map[string]string
}

// Parse builds a Table from YAML definitions keyed by fence tag.
func Parse(data []byte) (*Table, error) {
	var defs map[string]definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("language: parse definitions: %w", err)
	}

	t := &Table{
		byExtension: make(map[string]string),
		byFilename:  make(map[string]string),
	}
	for tag, def := range defs {
		for _, ext := range def.Extensions {
			lower := strings.ToLower(ext)
			// First tag to claim an extension keeps it.
			if _, taken := t.byExtension[lower]; !taken {
				t.byExtension[lower] = tag
			}
		}
		for _, name := range def.Filenames {
			if _, taken := t.byFilename[name]; !taken {
				t.byFilename[name] = tag
			}
		}
	}
	return t, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table built from the embedded definitions.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(rawDefinitions)
		if err != nil {
			// The embedded table is part of the build; a parse failure
			// here is a programming error, not a runtime condition.
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}

// TagFor returns the fence language tag for a file name, or "" when the
// name is not recognized. Exact file names take precedence over extensions.
func (t *Table) TagFor(name string) string {
	base := filepath.Base(name)
	if tag, ok := t.byFilename[base]; ok {
		return tag
	}
	if ext := strings.ToLower(filepath.Ext(base)); ext != "" {
		if tag, ok := t.byExtension[ext]; ok {
			return tag
		}
	}
	return ""
}
