package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// HitStatistics is an explicit, caller-supplied judgment breakdown. All
// fields default to zero; a breakdown where every probe field is zero is
// treated as "not provided" rather than as a miss-only play.
type HitStatistics struct {
	Great         int `json:"great"`
	Ok            int `json:"ok"`
	Meh           int `json:"meh"`
	Good          int `json:"good"`
	Perfect       int `json:"perfect"`
	Miss          int `json:"miss"`
	LargeTickHit  int `json:"large_tick_hit"`
	SmallTickHit  int `json:"small_tick_hit"`
	SmallTickMiss int `json:"small_tick_miss"`
}

// HasValidHits reports whether the breakdown is usable. Only a fixed probe
// set of fields counts towards validity; small tick fields deliberately do
// not, so a breakdown carrying nothing but tiny-droplet hits is still
// considered absent.
func (s *HitStatistics) HasValidHits() bool {
	if s == nil {
		return false
	}
	probes := []int{s.Great, s.Ok, s.Meh, s.Good, s.Perfect, s.Miss, s.LargeTickHit}
	for _, v := range probes {
		if v > 0 {
			return true
		}
	}
	return false
}

// statsFieldMap caches JSON tag -> struct field index mappings
var (
	statsFieldMap     map[string]int
	statsFieldMapOnce sync.Once
)

func getStatsFieldMap() map[string]int {
	statsFieldMapOnce.Do(func() {
		t := reflect.TypeOf(HitStatistics{})
		statsFieldMap = make(map[string]int, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("json")
			if tag == "" || tag == "-" {
				continue
			}
			name := strings.Split(tag, ",")[0]
			statsFieldMap[name] = i
		}
	})
	return statsFieldMap
}

// UnmarshalJSON implements flexible JSON unmarshaling that accepts both
// string-encoded and native numeric counts. Score exporters differ on
// whether judgment counts are serialized as numbers or quoted strings;
// this coerces either form onto the struct transparently.
func (s *HitStatistics) UnmarshalJSON(data []byte) error {
	// Alias prevents infinite recursion
	type Alias HitStatistics
	a := (*Alias)(s)

	// Fast path: try standard unmarshal (works when all counts are numeric)
	if err := json.Unmarshal(data, a); err == nil {
		return nil
	}

	// Slow path: field-by-field with string-to-int coercion
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("statistics unmarshal: %w", err)
	}

	fieldMap := getStatsFieldMap()
	v := reflect.ValueOf(a).Elem()

	for key, rawVal := range raw {
		idx, ok := fieldMap[key]
		if !ok {
			continue
		}

		fv := v.Field(idx)
		if !fv.CanSet() {
			continue
		}

		// Try direct unmarshal first
		ptr := reflect.New(fv.Type())
		if err := json.Unmarshal(rawVal, ptr.Interface()); err == nil {
			fv.Set(ptr.Elem())
			continue
		}

		// Value is a JSON string but the target is an int — coerce
		if len(rawVal) > 1 && rawVal[0] == '"' {
			var str string
			if err := json.Unmarshal(rawVal, &str); err != nil {
				continue
			}
			if str == "" {
				continue
			}
			// ParseFloat handles "28.0" → truncate to int
			if n, err := strconv.ParseFloat(str, 64); err == nil {
				fv.SetInt(int64(n))
			}
		}
	}

	return nil
}
