// Package render assembles the final Markdown document from a traversal
// result: header, tree diagram, one section per file, and statistics.
package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bethropolis/dir2md/internal/convert"
	"github.com/bethropolis/dir2md/internal/language"
	"github.com/bethropolis/dir2md/internal/utils"
	"github.com/bethropolis/dir2md/internal/walker"
)

// Stats counts how file contents were embedded during one render.
type Stats struct {
	TextFiles      int
	ConvertedFiles int
	FailedFiles    int
}

// Renderer writes the Markdown document for one traversal.
type Renderer struct {
	converter *convert.Registry // nil disables document conversion
	languages *language.Table
	logger    utils.Logger
	now       func() time.Time
}

// New creates a Renderer with the default language table, no converter, and
// no logging.
func New() *Renderer {
	return &Renderer{
		languages: language.Default(),
		logger:    utils.NoopLogger{},
		now:       time.Now,
	}
}

// WithConverter enables document conversion through the given registry.
func (r *Renderer) WithConverter(reg *convert.Registry) *Renderer {
	r.converter = reg
	return r
}

// WithLogger sets the logger used for per-file warnings.
func (r *Renderer) WithLogger(logger utils.Logger) *Renderer {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// WithClock overrides the timestamp source. Intended for tests.
func (r *Renderer) WithClock(now func() time.Time) *Renderer {
	if now != nil {
		r.now = now
	}
	return r
}

// Render writes the whole document to w. rootDir should be absolute; it
// labels the header and the tree diagram. Unreadable or unconvertible files
// are embedded as a note and counted, never propagated as errors.
func (r *Renderer) Render(w io.Writer, rootDir string, result *walker.Result) (Stats, error) {
	dw := &docWriter{w: w}
	var stats Stats

	r.writeHeader(dw, rootDir)
	r.writeTree(dw, rootDir, result.Entries)

	for _, entry := range result.Entries {
		if entry.IsDir {
			r.writeDirSection(dw, entry)
			continue
		}
		r.writeFileSection(dw, entry, &stats)
	}

	r.writeStatistics(dw, result, stats)
	return stats, dw.err
}

func (r *Renderer) writeHeader(dw *docWriter, rootDir string) {
	name := filepath.Base(rootDir)
	dw.printf("# Directory: %s\n\n", name)
	dw.printf("**Source path**: `%s`  \n", rootDir)
	dw.printf("**Generated**: %s  \n\n", r.now().Format("2006-01-02 15:04:05"))
}

func (r *Renderer) writeTree(dw *docWriter, rootDir string, entries []walker.Entry) {
	dw.printf("## Directory structure\n\n")
	dw.printf("```text\n")
	dw.printf("%s", TreeDiagram(filepath.Base(rootDir), entries))
	dw.printf("```\n\n---\n\n")
}

func (r *Renderer) writeDirSection(dw *docWriter, entry walker.Entry) {
	dw.printf("%s Directory: %s\n\n", headingPrefix(entry.RelPath), entry.RelPath)
}

func (r *Renderer) writeFileSection(dw *docWriter, entry walker.Entry, stats *Stats) {
	dw.printf("%s File: %s\n\n", headingPrefix(entry.RelPath), filepath.Base(entry.RelPath))
	dw.printf("**Path**: `%s`  \n", entry.RelPath)
	dw.printf("**Size**: %s\n\n", humanSize(entry.Size))

	ext := strings.ToLower(filepath.Ext(entry.RelPath))
	if r.converter != nil && convert.Convertible(ext) {
		text, err := r.converter.Convert(entry.Path)
		if err != nil {
			r.logger.Warn("render: %v", err)
			dw.printf("*(conversion failed: %v)*\n\n---\n\n", err)
			stats.FailedFiles++
			return
		}
		stats.ConvertedFiles++
		dw.printf("*(converted to Markdown)*\n\n")
		writeFenced(dw, "markdown", text)
		dw.printf("---\n\n")
		return
	}

	data, err := os.ReadFile(entry.Path)
	if err != nil {
		r.logger.Warn("render: cannot read %q: %v", entry.RelPath, err)
		dw.printf("*(unreadable: %v)*\n\n---\n\n", err)
		stats.FailedFiles++
		return
	}
	if looksBinary(data) {
		dw.printf("*(binary file; content not shown)*\n\n---\n\n")
		stats.FailedFiles++
		return
	}

	stats.TextFiles++
	writeFenced(dw, r.languages.TagFor(entry.RelPath), string(data))
	dw.printf("---\n\n")
}

func (r *Renderer) writeStatistics(dw *docWriter, result *walker.Result, stats Stats) {
	dw.printf("## Statistics\n\n")
	dw.printf("- **Directories**: %d\n", result.DirsIncluded)
	dw.printf("- **Files**: %d\n", result.FilesIncluded)
	dw.printf("- **Text files**: %d\n", stats.TextFiles)
	dw.printf("- **Converted documents**: %d\n", stats.ConvertedFiles)
	dw.printf("- **Failed or binary**: %d\n", stats.FailedFiles)
	dw.printf("- **Skipped by rules**: %d files, %d directories\n",
		result.FilesSkipped, result.DirsSkipped)
	dw.printf("- **Bytes processed**: %s\n", humanSize(result.TotalBytes))
}

// headingPrefix picks a heading level from nesting depth, capped at h6.
func headingPrefix(relPath string) string {
	level := strings.Count(relPath, "/") + 2
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level)
}

// writeFenced embeds content in a fence that cannot collide with backtick
// runs inside the content.
func writeFenced(dw *docWriter, tag, content string) {
	fence := Fence(content)
	dw.printf("%s%s\n", fence, tag)
	dw.printf("%s", content)
	if !strings.HasSuffix(content, "\n") {
		dw.printf("\n")
	}
	dw.printf("%s\n\n", fence)
}

// Fence returns a backtick delimiter at least three long and longer than any
// backtick run in content.
func Fence(content string) string {
	longest, run := 0, 0
	for _, c := range content {
		if c == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	n := longest + 1
	if n < 3 {
		n = 3
	}
	return strings.Repeat("`", n)
}

// looksBinary applies the NUL-byte heuristic to the head of the content.
func looksBinary(data []byte) bool {
	head := data
	if len(head) > 8000 {
		head = head[:8000]
	}
	return bytes.IndexByte(head, 0) >= 0
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGT"[exp])
}

// docWriter funnels all writes through one error slot so rendering code can
// stay linear; after the first failure every write is a no-op.
type docWriter struct {
	w   io.Writer
	err error
}

func (dw *docWriter) printf(format string, args ...interface{}) {
	if dw.err != nil {
		return
	}
	_, dw.err = fmt.Fprintf(dw.w, format, args...)
}
