package ignore

// Verdict is the outcome of evaluating one path against a rule set.
type Verdict int

const (
	// VerdictNone means no rule matched; the path is included by default.
	VerdictNone Verdict = iota
	// VerdictExclude means the last matching rule excludes the path.
	VerdictExclude
	// VerdictInclude means the last matching rule was a negation.
	VerdictInclude
)

// RuleSet is an ordered list of rules. Later rules override earlier ones,
// so source order (defaults, CLI, ignore-file) is part of the semantics.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet compiles the given patterns in order.
func NewRuleSet(patterns ...string) *RuleSet {
	rs := &RuleSet{}
	rs.Append(patterns...)
	return rs
}

// Append compiles patterns and adds them at the end of the set. Lines that
// compile to nothing are dropped; duplicates are kept on purpose, since
// position decides precedence when negation is involved.
func (rs *RuleSet) Append(patterns ...string) {
	for _, p := range patterns {
		if r, ok := CompileRule(p); ok {
			rs.rules = append(rs.rules, r)
		}
	}
}

// Len returns the number of compiled rules.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Match scans every rule in order. Each matching rule sets a tentative
// verdict (exclude for normal rules, include for negations); the last match
// wins. Match is a pure function of the rule set and its arguments.
func (rs *RuleSet) Match(relPath string, isDir bool) Verdict {
	if rs == nil {
		return VerdictNone
	}
	verdict := VerdictNone
	for _, r := range rs.rules {
		if !r.Match(relPath, isDir) {
			continue
		}
		if r.Negated {
			verdict = VerdictInclude
		} else {
			verdict = VerdictExclude
		}
	}
	return verdict
}

// Excluded reports whether the final verdict for relPath is exclusion.
func (rs *RuleSet) Excluded(relPath string, isDir bool) bool {
	return rs.Match(relPath, isDir) == VerdictExclude
}
