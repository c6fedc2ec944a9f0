package propertyfilters

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher evaluates APIParams against the properties of a single log.
type Matcher struct {
	properties map[string]string
	patterns   map[string]*regexp.Regexp
	keys       []string
}

// NewMatcher compiles the LIKE patterns of params once for repeated matching.
func NewMatcher(params APIParams) (*Matcher, error) {
	m := &Matcher{
		properties: params.Properties,
		keys:       params.PropertyKeys,
	}
	if len(params.PropertyPatterns) > 0 {
		m.patterns = make(map[string]*regexp.Regexp, len(params.PropertyPatterns))
		for key, pattern := range params.PropertyPatterns {
			re, err := compileLike(pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern for property %q: %w", key, err)
			}
			m.patterns[key] = re
		}
	}
	return m, nil
}

// Match reports whether props satisfies every constraint.
func (m *Matcher) Match(props map[string]string) bool {
	for key, want := range m.properties {
		if got, ok := props[key]; !ok || got != want {
			return false
		}
	}
	for key, re := range m.patterns {
		got, ok := props[key]
		if !ok || !re.MatchString(got) {
			return false
		}
	}
	for _, key := range m.keys {
		if _, ok := props[key]; !ok {
			return false
		}
	}
	return true
}

// compileLike turns a SQL LIKE pattern into a case-insensitive anchored
// regexp: % matches any run, _ matches one character.
func compileLike(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString(`(?is)^`)
	for _, r := range pattern {
		switch r {
		case '%':
			b.WriteString(`.*`)
		case '_':
			b.WriteString(`.`)
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(`$`)
	return regexp.Compile(b.String())
}
