// Package cmd wires the command-line surface to the application core.
package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bethropolis/dir2md/internal/app"
	"github.com/bethropolis/dir2md/internal/config"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for dir2md.
func NewRootCommand() *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:   "dir2md DIRECTORY",
		Short: "Convert a directory tree into a single Markdown document",
		Long: `dir2md walks a directory, draws its tree, and embeds every file's
contents in fenced code blocks with language tags. Binary document formats
(PDF, HTML, ...) are run through text extraction before embedding.

Exclusions use gitignore-style patterns from built-in defaults, repeated
--ignore flags, and an optional --ignore-file, in that order; later rules
override earlier ones and '!' patterns re-include.`,
		Example: `  dir2md ./skills/pdf
  dir2md ./project -o project.md --ignore "*.log"
  dir2md ./docs --ignore-file .gitignore
  dir2md ./data --no-convert`,
		Args:    cobra.ExactArgs(1),
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.RootDir = args[0]
			if cfg.OutputFile == "" {
				cfg.OutputFile = config.DefaultOutputName(cfg.RootDir)
			}
			cfg.UseColors = !cfg.NoColor && isatty.IsTerminal(os.Stderr.Fd())
			return app.New(cfg).Run()
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.OutputFile, "output", "o", "",
		"Output file name (default \"<dirname>_combined.md\")")
	flags.StringArrayVar(&cfg.IgnorePatterns, "ignore", nil,
		"Ignore pattern (gitignore syntax), repeatable")
	flags.StringVar(&cfg.IgnoreFile, "ignore-file", "",
		"Path to an ignore-rule file (e.g. .gitignore)")
	flags.Int64Var(&cfg.MaxFileSizeMB, "max-size", 0,
		"Max file size to embed in MB (0 = no limit)")
	flags.BoolVar(&cfg.NoConvert, "no-convert", false,
		"Do not convert binary documents; embed a placeholder note instead")
	flags.BoolVar(&cfg.ShowSkipped, "show-skipped", false,
		"List skipped files/directories and reasons at the end")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable color output")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable verbose (DEBUG) logging")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Suppress INFO messages")

	return cmd
}
