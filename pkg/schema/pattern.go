package schema

import (
	"fmt"
	"regexp"
)

const (
	// matchAllRegex admits every name.
	matchAllRegex = ".*"

	// literalAlphabet is the character class of names that are plain
	// identifiers rather than regexes.
	literalAlphabet = "[A-Za-z0-9 _.-]"
)

var literalNameRegexp = regexp.MustCompile("^" + literalAlphabet + "+$")

// AllowDenyPattern filters named entities (tables, datasets, users) with a
// pair of regex lists. A name passes when no deny pattern matches it and at
// least one allow pattern does. Patterns match from the start of the name
// and are case-insensitive unless ignoreCase is set to false.
type AllowDenyPattern struct {
	Allow []string `yaml:"allow,omitempty" json:"allow,omitempty" mapstructure:"allow"`
	Deny  []string `yaml:"deny,omitempty" json:"deny,omitempty" mapstructure:"deny"`

	// IgnoreCase defaults to true when unset; the wire name is camelCase
	// for compatibility with existing recipes.
	IgnoreCase *bool `yaml:"ignoreCase,omitempty" json:"ignoreCase,omitempty" mapstructure:"ignoreCase"`
}

// AllowAll returns a pattern that admits every name.
func AllowAll() *AllowDenyPattern {
	return &AllowDenyPattern{Allow: []string{matchAllRegex}}
}

func (p *AllowDenyPattern) ignoreCase() bool {
	return p.IgnoreCase == nil || *p.IgnoreCase
}

// compile anchors the pattern at the start of the name.
func (p *AllowDenyPattern) compile(pattern string) (*regexp.Regexp, error) {
	expr := "^(?:" + pattern + ")"
	if p.ignoreCase() {
		expr = "(?i)" + expr
	}
	return regexp.Compile(expr)
}

// Validate checks that every allow and deny pattern compiles.
func (p *AllowDenyPattern) Validate() error {
	if p == nil {
		return nil
	}
	for _, pattern := range p.Allow {
		if _, err := p.compile(pattern); err != nil {
			return fmt.Errorf("allow pattern %q: %w", pattern, err)
		}
	}
	for _, pattern := range p.Deny {
		if _, err := p.compile(pattern); err != nil {
			return fmt.Errorf("deny pattern %q: %w", pattern, err)
		}
	}
	return nil
}

// Allowed reports whether name passes the pattern. A matching deny pattern
// wins over any allow pattern. A nil pattern admits everything. Patterns
// that do not compile are skipped; run Validate first to surface them.
func (p *AllowDenyPattern) Allowed(name string) bool {
	if p == nil {
		return true
	}
	for _, pattern := range p.Deny {
		re, err := p.compile(pattern)
		if err != nil {
			continue
		}
		if re.MatchString(name) {
			return false
		}
	}
	for _, pattern := range p.Allow {
		re, err := p.compile(pattern)
		if err != nil {
			continue
		}
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// IsFullySpecifiedAllowList reports whether every allow entry is a literal
// name rather than a regex, meaning the pattern enumerates its matches.
func (p *AllowDenyPattern) IsFullySpecifiedAllowList() bool {
	if p == nil {
		return false
	}
	for _, pattern := range p.Allow {
		if !literalNameRegexp.MatchString(pattern) {
			return false
		}
	}
	return len(p.Allow) > 0
}

// AllowedList returns the literal allow entries. It fails when the allow
// list contains regexes, since those cannot be enumerated.
func (p *AllowDenyPattern) AllowedList() ([]string, error) {
	if !p.IsFullySpecifiedAllowList() {
		return nil, fmt.Errorf("allow list contains regex patterns and cannot be enumerated")
	}
	out := make([]string, len(p.Allow))
	copy(out, p.Allow)
	return out, nil
}
