package walker

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bethropolis/dir2md/internal/ignore"
)

// Walk traverses rootDir in deterministic pre-order (siblings sorted by
// name), consulting rules for every immediate child before descending. An
// excluded directory is pruned irrevocably: nothing beneath it is visited,
// counted, or re-includable by later negation rules.
//
// Symbolic links count as their target type; cycles are detected through a
// visited set of resolved real paths and recorded as a single skip each.
//
// The only fatal condition is a root that does not exist or is not a
// directory. Every other problem is recorded on the Result and traversal
// continues with the remaining siblings.
func Walk(rootDir string, rules *ignore.RuleSet, opts ...Option) (*Result, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root %q: %w", rootDir, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("walker: root %q: %w", rootDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("walker: root %q is not a directory", rootDir)
	}

	w := &walk{
		options: options,
		rules:   rules,
		result:  &Result{},
		visited: make(map[string]struct{}),
	}
	if real, err := filepath.EvalSymlinks(absRoot); err == nil {
		w.visited[real] = struct{}{}
	}

	options.Logger.Debug("walker: starting at %s", absRoot)
	w.dir(absRoot, "")
	options.Logger.Debug("walker: done, %d entries, %d skipped",
		len(w.result.Entries), len(w.result.Skipped))

	return w.result, nil
}

type walk struct {
	options Options
	rules   *ignore.RuleSet
	result  *Result
	visited map[string]struct{}
}

// dir processes the children of one included directory. rel is the
// slash-separated path of the directory relative to the root; "" for the
// root itself, which is never matched against the rules.
func (w *walk) dir(abs, rel string) {
	children, err := os.ReadDir(abs)
	if err != nil {
		reason := ReasonReadError
		if os.IsPermission(err) {
			reason = ReasonPermission
		}
		w.options.Logger.Warn("walker: cannot read directory %q: %v", displayPath(rel), err)
		w.result.Skipped = append(w.result.Skipped,
			SkippedItem{Path: displayPath(rel), Reason: reason, IsDir: true})
		return
	}
	sort.Slice(children, func(i, j int) bool { return children[i].Name() < children[j].Name() })

	for _, child := range children {
		childAbs := filepath.Join(abs, child.Name())
		childRel := child.Name()
		if rel != "" {
			childRel = path.Join(rel, child.Name())
		}

		// Stat through symlinks so a link counts as its target type.
		info, err := os.Stat(childAbs)
		if err != nil {
			w.options.Logger.Warn("walker: cannot stat %q: %v", childRel, err)
			w.result.track(childRel, ReasonStatError, false)
			continue
		}
		isDir := info.IsDir()

		if w.rules.Excluded(childRel, isDir) {
			w.options.Logger.Debug("walker: ignored %q (dir=%v)", childRel, isDir)
			w.result.track(childRel, ReasonIgnoredRule, isDir)
			continue
		}

		if isDir {
			real, err := filepath.EvalSymlinks(childAbs)
			if err != nil {
				w.options.Logger.Warn("walker: cannot resolve %q: %v", childRel, err)
				w.result.track(childRel, ReasonStatError, true)
				continue
			}
			if _, seen := w.visited[real]; seen {
				w.options.Logger.Warn("walker: symbolic link cycle at %q", childRel)
				w.result.track(childRel, ReasonSymlinkCycle, true)
				continue
			}
			w.visited[real] = struct{}{}

			w.result.DirsIncluded++
			w.result.Entries = append(w.result.Entries, Entry{
				Path:    childAbs,
				RelPath: childRel,
				IsDir:   true,
			})
			w.dir(childAbs, childRel)
			continue
		}

		if !info.Mode().IsRegular() {
			w.result.track(childRel, ReasonNotRegular, false)
			continue
		}
		if w.options.MaxFileSize > 0 && info.Size() > w.options.MaxFileSize {
			w.options.Logger.Debug("walker: %q exceeds size limit (%d > %d)",
				childRel, info.Size(), w.options.MaxFileSize)
			w.result.track(childRel, ReasonSizeLimit, false)
			continue
		}

		w.result.FilesIncluded++
		w.result.TotalBytes += info.Size()
		w.result.Entries = append(w.result.Entries, Entry{
			Path:    childAbs,
			RelPath: childRel,
			Size:    info.Size(),
		})
	}
}

func displayPath(rel string) string {
	if rel == "" {
		return "."
	}
	return rel
}
