// Package plan loads and validates the transplant plan: which blocks to
// move, how to recognize them, how to adapt their text, and which references
// in the origin must be requalified afterwards. The plan is the only
// configuration surface of the tool; nothing about a run is hard-coded.
package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Target names one block to transplant and the textual rule that recognizes
// its signature line.
type Target struct {
	Name      string `yaml:"name"`      // Diagnostic name of the block
	Signature string `yaml:"signature"` // Substring identifying the signature line
	Window    int    `yaml:"window"`    // Max lines to scan for the closing brace (0 = default)
}

// Renames configures the reference requalification pass over the origin
// document after the blocks have been excised.
type Renames struct {
	Qualifier      string   `yaml:"qualifier"`       // Owner prefix for member symbols, joined with "."
	Members        []string `yaml:"members"`         // Relocated state symbols
	ScopeQualifier string   `yaml:"scope_qualifier"` // Owner prefix for scoped types, joined with "::"
	Scopes         []string `yaml:"scopes"`          // Relocated scoped-type tokens
}

// Rule is one textual adaptation applied to extracted lines. Either a plain
// substitution (match/with) or, with defer set, a comment-out of any line
// carrying the match marker.
type Rule struct {
	Match string `yaml:"match"`
	With  string `yaml:"with"`
	Defer bool   `yaml:"defer"`
}

// Plan is the full configuration for one transplant run.
type Plan struct {
	Origin      string   `yaml:"origin"`      // Path of the origin document
	OriginOut   string   `yaml:"origin_out"`  // Where to write the excised origin (defaults to Origin)
	Destination string   `yaml:"destination"` // Path of the assembled destination document
	Header      []string `yaml:"header"`      // Lines emitted before the first block
	Footer      []string `yaml:"footer"`      // Lines emitted after the last block
	Targets     []Target `yaml:"targets"`
	Renames     Renames  `yaml:"renames"`
	Rules       []Rule   `yaml:"rules"`
}

// Load reads and validates a plan from a YAML file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan %s: %w", path, err)
	}
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse plan %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan %s: %w", path, err)
	}
	return &p, nil
}

// Validate checks the plan for configuration defects before any scanning
// starts. A broken plan must never produce a partially mutated document.
func (p *Plan) Validate() error {
	if p.Origin == "" {
		return fmt.Errorf("origin document path is required")
	}
	if p.Destination == "" {
		return fmt.Errorf("destination document path is required")
	}
	if len(p.Targets) == 0 {
		return fmt.Errorf("at least one target block is required")
	}

	seen := make(map[string]struct{}, len(p.Targets))
	for i, t := range p.Targets {
		if t.Name == "" {
			return fmt.Errorf("target %d has no name", i)
		}
		if t.Signature == "" {
			return fmt.Errorf("target %q has no signature marker", t.Name)
		}
		if t.Window < 0 {
			return fmt.Errorf("target %q has negative scan window %d", t.Name, t.Window)
		}
		if _, dup := seen[t.Name]; dup {
			return fmt.Errorf("duplicate target name %q", t.Name)
		}
		seen[t.Name] = struct{}{}
	}

	if len(p.Renames.Members) > 0 && p.Renames.Qualifier == "" {
		return fmt.Errorf("renames.qualifier is required when members are listed")
	}
	if len(p.Renames.Scopes) > 0 && p.Renames.ScopeQualifier == "" {
		return fmt.Errorf("renames.scope_qualifier is required when scopes are listed")
	}

	for i, r := range p.Rules {
		if r.Match == "" {
			return fmt.Errorf("rule %d has an empty match", i)
		}
		if r.Defer && r.With != "" {
			return fmt.Errorf("rule %d for %q sets both defer and a replacement", i, r.Match)
		}
	}

	return nil
}

// OutputPath returns where the excised origin should be written.
func (p *Plan) OutputPath() string {
	if p.OriginOut != "" {
		return p.OriginOut
	}
	return p.Origin
}
