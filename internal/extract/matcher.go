package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher decides whether a document item counts as a chapter.
type Matcher interface {
	Match(name string) bool
}

// MatcherFunc adapts a function to Matcher.
type MatcherFunc func(name string) bool

// Match calls f(name).
func (f MatcherFunc) Match(name string) bool { return f(name) }

// PrefixMatcher accepts names whose first Window characters contain Needle,
// both compared lowercased. A non-positive Window inspects the whole name.
type PrefixMatcher struct {
	Window int
	Needle string
}

// DefaultMatcher accepts "chapter01.xhtml" and "Chapter_2.html" but not
// "Text/chapter1.xhtml", "ch01.xhtml" or "cover.xhtml".
var DefaultMatcher = PrefixMatcher{Window: 7, Needle: "chapter"}

// Match implements Matcher.
func (m PrefixMatcher) Match(name string) bool {
	head := []rune(name)
	if m.Window > 0 && len(head) > m.Window {
		head = head[:m.Window]
	}
	return strings.Contains(strings.ToLower(string(head)), strings.ToLower(m.Needle))
}

// PatternMatcher accepts names matching a regular expression.
type PatternMatcher struct {
	re *regexp.Regexp
}

// NewPatternMatcher compiles expr into a PatternMatcher.
func NewPatternMatcher(expr string) (*PatternMatcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("extract: compile chapter pattern: %w", err)
	}
	return &PatternMatcher{re: re}, nil
}

// Match implements Matcher.
func (m *PatternMatcher) Match(name string) bool {
	return m.re.MatchString(name)
}

func (m *PatternMatcher) String() string {
	return m.re.String()
}
