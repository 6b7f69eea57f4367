// Package walker performs the filtered directory traversal that feeds the
// Markdown renderer.
package walker

// Entry is one included file or directory, emitted in stable pre-order.
type Entry struct {
	// Path is the absolute filesystem path.
	Path string
	// RelPath is slash-separated and relative to the traversal root.
	RelPath string
	IsDir   bool
	// Size in bytes; zero for directories.
	Size int64
}

// SkippedReason clarifies why a path was not included.
type SkippedReason string

const (
	ReasonIgnoredRule  SkippedReason = "Ignored (Rule Match)"
	ReasonSymlinkCycle SkippedReason = "Skipped (Symlink Cycle)"
	ReasonPermission   SkippedReason = "Skipped (Permission Denied)"
	ReasonReadError    SkippedReason = "Skipped (Read Error)"
	ReasonStatError    SkippedReason = "Skipped (Stat Error)"
	ReasonNotRegular   SkippedReason = "Skipped (Not a Regular File)"
	ReasonSizeLimit    SkippedReason = "Skipped (Size Limit Exceeded)"
)

// SkippedItem holds information about one skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// Result is the outcome of one traversal: the included entries in emission
// order plus the aggregate counters for the statistics section.
type Result struct {
	Entries []Entry

	DirsIncluded  int
	DirsSkipped   int
	FilesIncluded int
	FilesSkipped  int
	TotalBytes    int64

	Skipped []SkippedItem
}

func (r *Result) track(relPath string, reason SkippedReason, isDir bool) {
	r.Skipped = append(r.Skipped, SkippedItem{Path: relPath, Reason: reason, IsDir: isDir})
	if isDir {
		r.DirsSkipped++
	} else {
		r.FilesSkipped++
	}
}
