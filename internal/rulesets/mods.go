package rulesets

import "strings"

// Mod is a gameplay modifier. ClockRate and DifficultyScale feed the
// difficulty engine; both are 1.0 for mods that do not affect them.
type Mod struct {
	Acronym         string
	ClockRate       float64
	DifficultyScale float64
}

func mod(acronym string, clockRate, scale float64) Mod {
	return Mod{Acronym: acronym, ClockRate: clockRate, DifficultyScale: scale}
}

var baseMods = []Mod{
	mod("EZ", 1, 0.9),
	mod("NF", 1, 1),
	mod("HT", 0.75, 1),
	mod("HR", 1, 1.08),
	mod("SD", 1, 1),
	mod("PF", 1, 1),
	mod("DT", 1.5, 1),
	mod("NC", 1.5, 1),
	mod("HD", 1, 1.02),
	mod("FL", 1, 1.05),
}

var (
	osuMods   = append(append([]Mod{}, baseMods...), mod("SO", 1, 1), mod("TD", 1, 0.98))
	taikoMods = append([]Mod{}, baseMods...)
	catchMods = append([]Mod{}, baseMods...)
	maniaMods = append(append([]Mod{}, baseMods...), mod("FI", 1, 1), mod("MR", 1, 1))
)

// AvailableMods returns the ruleset's mod catalog.
func (r *Ruleset) AvailableMods() []Mod {
	out := make([]Mod, len(r.mods))
	copy(out, r.mods)
	return out
}

// ResolveMods matches acronyms against the catalog, case-insensitively.
// Unrecognized acronyms are returned separately so the caller can log and
// skip them; they are never fatal.
func (r *Ruleset) ResolveMods(acronyms []string) (resolved []Mod, unknown []string) {
	for _, a := range acronyms {
		found := false
		for _, m := range r.mods {
			if strings.EqualFold(a, m.Acronym) {
				resolved = append(resolved, m)
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, a)
		}
	}
	return resolved, unknown
}
