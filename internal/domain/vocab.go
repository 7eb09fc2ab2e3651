package domain

import "strings"

// Mode is a transport mode. The set of valid modes is deployment
// configuration, not engine code — different deployments have shipped
// walking/cycling/vehicle and car/bike/public-transport vocabularies.
// Values outside the configured set are carried through as their literal
// string so no data is silently dropped.
type Mode string

// Purpose is a trip purpose (work, school, shopping, leisure, ...).
// Same open-world rules as Mode.
type Purpose string

// Default vocabularies, matching the canonical deployment.
var (
	DefaultModes    = []Mode{"walking", "cycling", "vehicle"}
	DefaultPurposes = []Purpose{"work", "school", "shopping", "leisure"}
)

// Vocabulary is a closed set of mode and purpose values.
// Membership checks are case-insensitive; Canonical* return the configured
// casing so "Walking" and "walking" count under one breakdown key.
type Vocabulary struct {
	modes    map[string]Mode
	purposes map[string]Purpose
}

// NewVocabulary builds a Vocabulary from configured mode and purpose sets.
// Empty slices fall back to the defaults.
func NewVocabulary(modes []Mode, purposes []Purpose) Vocabulary {
	if len(modes) == 0 {
		modes = DefaultModes
	}
	if len(purposes) == 0 {
		purposes = DefaultPurposes
	}
	v := Vocabulary{
		modes:    make(map[string]Mode, len(modes)),
		purposes: make(map[string]Purpose, len(purposes)),
	}
	for _, m := range modes {
		v.modes[strings.ToLower(string(m))] = m
	}
	for _, p := range purposes {
		v.purposes[strings.ToLower(string(p))] = p
	}
	return v
}

// CanonicalMode returns the configured form of s and whether s is a member
// of the mode set. Unknown modes come back unchanged with ok=false; callers
// decide whether that is an error (trip intake) or a bucket key (aggregation).
func (v Vocabulary) CanonicalMode(s string) (Mode, bool) {
	if m, ok := v.modes[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, true
	}
	return Mode(s), false
}

// CanonicalPurpose is the purpose counterpart of CanonicalMode.
func (v Vocabulary) CanonicalPurpose(s string) (Purpose, bool) {
	if p, ok := v.purposes[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p, true
	}
	return Purpose(s), false
}

// Modes returns the configured mode set. Order is not defined.
func (v Vocabulary) Modes() []Mode {
	out := make([]Mode, 0, len(v.modes))
	for _, m := range v.modes {
		out = append(out, m)
	}
	return out
}
