// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package symptoms evaluates a static rule table over user-selected
// symptoms and returns generalized, non-diagnostic suggestions.
package symptoms

import (
	_ "embed"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/care-navigator/pkg/types"
)

//go:embed rules.yaml
var rulesYAML []byte

// Rule fires when any of its symptoms is selected.
type Rule struct {
	Symptoms   []string `yaml:"symptoms"`
	Suggestion string   `yaml:"suggestion"`
}

// ruleTable is the embedded rule file shape.
type ruleTable struct {
	Supported []string `yaml:"supported"`
	Rules     []Rule   `yaml:"rules"`
	Fallback  string   `yaml:"fallback"`
}

// Checker evaluates selections against the rule table.
type Checker struct {
	supported map[string]bool
	ordered   []string
	rules     []Rule
	fallback  string
}

// NewChecker parses the embedded rule table.
func NewChecker() (*Checker, error) {
	var table ruleTable
	if err := yaml.Unmarshal(rulesYAML, &table); err != nil {
		return nil, fmt.Errorf("parsing symptom rules: %w", err)
	}

	supported := make(map[string]bool, len(table.Supported))
	for _, s := range table.Supported {
		supported[s] = true
	}
	return &Checker{
		supported: supported,
		ordered:   table.Supported,
		rules:     table.Rules,
		fallback:  table.Fallback,
	}, nil
}

// Supported returns the selectable symptoms in table order.
func (c *Checker) Supported() []string {
	out := make([]string, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Check returns the suggestions for the selected symptoms, in rule
// order. At least one known symptom must be selected; when no rule
// fires the fallback suggestion is returned alone.
func (c *Checker) Check(selected []string) ([]string, error) {
	if len(selected) == 0 {
		return nil, types.Invalid("select at least one symptom")
	}

	chosen := make(map[string]bool, len(selected))
	for _, s := range selected {
		if !c.supported[s] {
			return nil, types.Invalid(fmt.Sprintf("unknown symptom: %s", s))
		}
		chosen[s] = true
	}

	suggestions := []string{}
	for _, r := range c.rules {
		for _, s := range r.Symptoms {
			if chosen[s] {
				suggestions = append(suggestions, r.Suggestion)
				break
			}
		}
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, c.fallback)
	}
	return suggestions, nil
}
