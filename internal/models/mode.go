package models

import "fmt"

// Mode identifies one of the four supported rulesets. The numeric values
// match the legacy mode codes used by .osu files and the public API.
type Mode int

const (
	ModeOsu Mode = iota
	ModeTaiko
	ModeCatch
	ModeMania
)

// ParseMode converts a legacy mode code into a Mode. Anything outside the
// known set is an error rather than a default, so an unhandled mode can never
// slip through to a simulator silently.
func ParseMode(code int) (Mode, error) {
	switch Mode(code) {
	case ModeOsu, ModeTaiko, ModeCatch, ModeMania:
		return Mode(code), nil
	}
	return 0, fmt.Errorf("invalid mode: %d", code)
}

func (m Mode) String() string {
	switch m {
	case ModeOsu:
		return "osu"
	case ModeTaiko:
		return "taiko"
	case ModeCatch:
		return "catch"
	case ModeMania:
		return "mania"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}
