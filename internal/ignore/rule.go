// Package ignore implements gitignore-style exclusion rules: compilation of
// individual glob patterns and ordered, last-match-wins evaluation across a
// rule set aggregated from several sources.
package ignore

import (
	"strings"

	"github.com/danwakefield/fnmatch"
)

// Rule is a single compiled ignore pattern. Immutable once built.
type Rule struct {
	// Raw is the pattern text exactly as given, before affix stripping.
	Raw string

	// Negated rules ('!' prefix) re-include paths excluded by earlier rules.
	Negated bool

	// DirOnly rules (trailing '/') never match regular files.
	DirOnly bool

	// Anchored rules are matched against the whole root-relative path;
	// unanchored rules match the final path segment at any depth.
	Anchored bool

	segments []string
}

// CompileRule parses one pattern line into a Rule. It returns ok=false when
// nothing remains of the pattern once the affixes are stripped.
func CompileRule(raw string) (Rule, bool) {
	r := Rule{Raw: raw}

	p := raw
	if strings.HasPrefix(p, "!") {
		r.Negated = true
		p = p[1:]
	}
	if strings.HasSuffix(p, "/") {
		r.DirOnly = true
		p = strings.TrimRight(p, "/")
	}
	if strings.HasPrefix(p, "/") {
		// A leading slash anchors without contributing a segment.
		r.Anchored = true
		p = strings.TrimLeft(p, "/")
	}
	if strings.Contains(p, "/") {
		r.Anchored = true
	}
	if p == "" {
		return Rule{}, false
	}

	r.segments = strings.Split(p, "/")
	return r, true
}

// Match reports whether the rule applies to relPath. relPath must be
// slash-separated and relative to the traversal root; the root itself
// ("" or ".") never matches.
func (r Rule) Match(relPath string, isDir bool) bool {
	if relPath == "" || relPath == "." {
		return false
	}
	if r.DirOnly && !isDir {
		return false
	}
	if !r.Anchored {
		base := relPath
		if i := strings.LastIndexByte(relPath, '/'); i >= 0 {
			base = relPath[i+1:]
		}
		return matchSegments(r.segments, []string{base})
	}
	return matchSegments(r.segments, strings.Split(relPath, "/"))
}

// matchSegments matches pattern segments against path segments. A "**"
// segment spans any number of path segments, including zero; every other
// segment is an fnmatch glob confined to one path segment.
func matchSegments(pat, path []string) bool {
	for len(pat) > 0 {
		if pat[0] == "**" {
			if len(pat) == 1 {
				return true
			}
			for i := 0; i <= len(path); i++ {
				if matchSegments(pat[1:], path[i:]) {
					return true
				}
			}
			return false
		}
		if len(path) == 0 {
			return false
		}
		if !fnmatch.Match(pat[0], path[0], 0) {
			return false
		}
		pat = pat[1:]
		path = path[1:]
	}
	return len(path) == 0
}
