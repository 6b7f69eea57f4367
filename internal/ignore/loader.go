package ignore

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultPatterns is the built-in baseline rule source covering common VCS
// and tooling metadata. Callers needing different defaults pass their own
// slice to Load; nothing here is mutated at runtime.
var DefaultPatterns = []string{
	".git/",
	".svn/",
	".hg/",
	"__pycache__/",
	".DS_Store",
	"*.pyc",
	"*.pyo",
}

// ConfigError reports a rule source that could not be loaded. It is
// advisory: the RuleSet returned alongside it is still usable.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ignore: cannot load %q: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Load aggregates the three rule sources into one ordered set: defaults
// first, then CLI patterns in the order given, then the ignore-file in line
// order. Blank lines and lines starting with '#' in the ignore-file are
// dropped; everything else becomes one rule.
//
// A non-empty ignoreFilePath that cannot be read yields a *ConfigError
// together with the RuleSet built from the earlier sources, so the caller
// can report the problem and keep going.
func Load(defaults, cliPatterns []string, ignoreFilePath string) (*RuleSet, error) {
	rs := NewRuleSet(defaults...)
	rs.Append(cliPatterns...)

	if ignoreFilePath == "" {
		return rs, nil
	}

	f, err := os.Open(ignoreFilePath)
	if err != nil {
		return rs, &ConfigError{Path: ignoreFilePath, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rs.Append(line)
	}
	if err := scanner.Err(); err != nil {
		return rs, &ConfigError{Path: ignoreFilePath, Err: err}
	}
	return rs, nil
}
