// Package rulesets maps each supported mode onto its object vocabulary and
// mod catalog. A Ruleset converts a decoded chart into the counts and object
// trees the simulators and the scoring engine consume.
package rulesets

import (
	"fmt"

	"github.com/osukit/pp-api/internal/beatmap"
	"github.com/osukit/pp-api/internal/models"
)

// Ruleset is one mode's conversion and mod rules.
type Ruleset struct {
	Mode models.Mode
	Name string
	mods []Mod
}

// Chart is a mode-converted chart, reduced to the facts the calculation
// pipeline needs: scorable object count, combo-relevant object count, length,
// and (catch only) the nested object tree.
type Chart struct {
	Mode         models.Mode
	ObjectCount  int
	ComboObjects int
	LengthMS     float64
	CatchObjects []CatchObject
}

var registry = map[models.Mode]*Ruleset{
	models.ModeOsu:   {Mode: models.ModeOsu, Name: "osu", mods: osuMods},
	models.ModeTaiko: {Mode: models.ModeTaiko, Name: "taiko", mods: taikoMods},
	models.ModeCatch: {Mode: models.ModeCatch, Name: "catch", mods: catchMods},
	models.ModeMania: {Mode: models.ModeMania, Name: "mania", mods: maniaMods},
}

// For returns the ruleset for a mode.
func For(mode models.Mode) (*Ruleset, error) {
	rs, ok := registry[mode]
	if !ok {
		return nil, fmt.Errorf("no ruleset for %s", mode)
	}
	return rs, nil
}

// CanConvert reports whether a decoded chart can be played in this ruleset.
// Charts authored for osu! convert to every mode; mode-specific charts only
// play in their own mode.
func (r *Ruleset) CanConvert(c *beatmap.Chart) bool {
	return c.Mode == int(models.ModeOsu) || c.Mode == int(r.Mode)
}

// Convert produces the ruleset's view of a decoded chart. Mirrors the
// decode-then-convert step of the scoring pipeline; charts that cannot be
// converted are passed through with plain object counts, matching the
// upstream converter contract.
func (r *Ruleset) Convert(c *beatmap.Chart) *Chart {
	out := &Chart{
		Mode:        r.Mode,
		ObjectCount: len(c.Objects),
		LengthMS:    c.LengthMS(),
	}
	out.ComboObjects = out.ObjectCount

	if r.Mode == models.ModeCatch && r.CanConvert(c) {
		out.CatchObjects = convertCatch(c)
		fruits, droplets, _ := countNested(out.CatchObjects)
		out.ComboObjects = fruits + droplets
	}

	return out
}
