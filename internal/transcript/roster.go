// Package transcript reshapes flat transcript lines into attributed utterances.
// A roster of known speaker labels drives the attribution: label lines mark the
// start of a turn, and every following content line inherits that speaker until
// the next label appears.
package transcript

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// OtherSpeaker is the canonical name assigned to non-debater labels
// (moderator, audience, stage directions). Utterances resolved to it are
// excluded from the output.
const OtherSpeaker = "Other"

// RosterConfig is the external shape of a roster: canonical speaker name to
// the exact label strings that introduce their turns, plus the label strings
// for speakers that should be excluded.
type RosterConfig struct {
	Speakers map[string][]string `yaml:"speakers"`
	Other    []string            `yaml:"other"`
}

// Roster maps exact label lines to canonical speaker names.
type Roster struct {
	labels map[string]string
}

// NewRoster validates a config and builds a roster. A label string mapped to
// two different canonical names is a configuration error and is rejected here,
// before any transcript is processed.
func NewRoster(cfg RosterConfig) (*Roster, error) {
	labels := make(map[string]string, len(cfg.Speakers)+len(cfg.Other))

	names := make([]string, 0, len(cfg.Speakers))
	for name := range cfg.Speakers {
		names = append(names, name)
	}
	sort.Strings(names)

	add := func(raw, canonical string) error {
		label := strings.TrimSpace(raw)
		if label == "" {
			return fmt.Errorf("empty label for speaker %q", canonical)
		}
		if prev, ok := labels[label]; ok && prev != canonical {
			return fmt.Errorf("ambiguous label %q: maps to both %q and %q", label, prev, canonical)
		}
		labels[label] = canonical
		return nil
	}

	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("empty canonical speaker name")
		}
		for _, raw := range cfg.Speakers[name] {
			if err := add(raw, name); err != nil {
				return nil, err
			}
		}
	}
	for _, raw := range cfg.Other {
		if err := add(raw, OtherSpeaker); err != nil {
			return nil, err
		}
	}

	return &Roster{labels: labels}, nil
}

// LoadRoster reads a YAML roster file and builds a validated roster.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	var cfg RosterConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}
	return NewRoster(cfg)
}

// Resolve returns the canonical speaker for a label line. The match is exact
// after trimming surrounding whitespace; typos and alternate punctuation do
// not match.
func (r *Roster) Resolve(line string) (string, bool) {
	name, ok := r.labels[strings.TrimSpace(line)]
	return name, ok
}

// Labels returns the number of configured label strings.
func (r *Roster) Labels() int {
	return len(r.labels)
}
