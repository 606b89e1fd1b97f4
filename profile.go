package coax

import (
	"bytes"
	"context"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// Profile is a declarative description of a store's logical-type
// configuration. Physical types cannot be named portably in a
// document, so the per-type layer stays code-only.
type Profile struct {
	// DefaultAction replaces the store default when non-empty.
	DefaultAction string `yaml:"default-action"`

	// BlankAsEmpty sets the store-wide blank switch. A pointer so an
	// absent key leaves the store's setting alone.
	BlankAsEmpty *bool `yaml:"blank-as-empty"`

	// Targets maps target names to shape-name/action-name rules.
	Targets map[string]map[string]string `yaml:"targets"`
}

// LoadProfile decodes a YAML profile document. Unknown keys are
// rejected so typos surface at load time instead of as silently
// missing rules. An empty document is a valid profile that applies
// nothing.
func LoadProfile(data []byte) (*Profile, error) {
	var p Profile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return &Profile{}, nil
		}
		return nil, newProfileError("", err)
	}
	return &p, nil
}

// Apply writes the profile onto a store through its public mutators,
// so it belongs to the configuration phase like they do. Every name
// in the profile is parsed before anything is written: a failed
// Apply leaves the store exactly as it was.
func (p *Profile) Apply(s *Store) error {
	err := p.apply(s)
	emitProfileApplied(context.Background(), len(p.Targets), err)
	return err
}

// profileRule is one parsed targets entry.
type profileRule struct {
	target Target
	shape  Shape
	act    Action
}

func (p *Profile) apply(s *Store) error {
	var defaultAction Action
	if p.DefaultAction != "" {
		act, err := ParseAction(p.DefaultAction)
		if err != nil {
			return newProfileError("default-action", err)
		}
		defaultAction = act
	}

	rules := make([]profileRule, 0, len(p.Targets))
	for targetName, entries := range p.Targets {
		target, err := ParseTarget(targetName)
		if err != nil {
			return newProfileError("targets."+targetName, err)
		}
		for shapeName, actionName := range entries {
			key := "targets." + targetName + "." + shapeName
			shape, err := ParseShape(shapeName)
			if err != nil {
				return newProfileError(key, err)
			}
			act, err := ParseAction(actionName)
			if err != nil {
				return newProfileError(key, err)
			}
			rules = append(rules, profileRule{target: target, shape: shape, act: act})
		}
	}

	if defaultAction != 0 {
		s.SetDefaultAction(defaultAction)
	}
	if p.BlankAsEmpty != nil {
		s.SetBlankAsEmpty(*p.BlankAsEmpty)
	}
	for _, r := range rules {
		s.TargetPolicy(r.target).Set(r.shape, r.act)
	}

	return nil
}
