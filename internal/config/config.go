// Package config holds the resolved runtime settings for one invocation.
package config

import (
	"path/filepath"
	"strings"
)

// Config collects every setting the application needs. It is filled in by
// the command layer and passed down explicitly; nothing here is global.
type Config struct {
	// Input and output
	RootDir    string
	OutputFile string

	// Filtering
	IgnorePatterns []string
	IgnoreFile     string
	MaxFileSizeMB  int64

	// Document conversion
	NoConvert bool

	// Console behavior
	Verbose     bool
	Quiet       bool
	NoColor     bool
	UseColors   bool
	ShowSkipped bool
}

// DefaultOutputName derives the output file name from the input directory,
// e.g. "./skills/pdf" becomes "pdf_combined.md".
func DefaultOutputName(dir string) string {
	name := filepath.Base(filepath.Clean(dir))
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "directory"
	}
	name = strings.ReplaceAll(name, string(filepath.Separator), "_")
	return name + "_combined.md"
}
