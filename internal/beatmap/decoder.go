package beatmap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Decode parses a legacy .osu file. Only the sections the calculation
// pipeline needs are decoded ([General], [Difficulty], [TimingPoints],
// [HitObjects]); everything else is skipped.
func Decode(r io.Reader) (*Chart, error) {
	chart := &Chart{
		SliderMultiplier: 1.4,
		SliderTickRate:   1,
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	section := ""
	sawHeader := false
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		line = strings.TrimPrefix(line, "\ufeff")
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		if !sawHeader {
			if !strings.HasPrefix(line, "osu file format v") {
				return nil, fmt.Errorf("not a valid .osu file (must begin with 'osu file format')")
			}
			if v, err := strconv.Atoi(strings.TrimPrefix(line, "osu file format v")); err == nil {
				chart.FormatVersion = v
			}
			sawHeader = true
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.Trim(line, "[]")
			continue
		}

		var err error
		switch section {
		case "General":
			chart.applyGeneral(line)
		case "Difficulty":
			chart.applyDifficulty(line)
		case "TimingPoints":
			err = chart.appendTimingPoint(line)
		case "HitObjects":
			err = chart.appendHitObject(line)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read beatmap: %w", err)
	}
	if !sawHeader {
		return nil, fmt.Errorf("empty beatmap file")
	}

	return chart, nil
}

func keyValue(line string) (string, string, bool) {
	k, v, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(k), strings.TrimSpace(v), true
}

func (c *Chart) applyGeneral(line string) {
	key, value, ok := keyValue(line)
	if !ok {
		return
	}
	if key == "Mode" {
		if m, err := strconv.Atoi(value); err == nil {
			c.Mode = m
		}
	}
}

func (c *Chart) applyDifficulty(line string) {
	key, value, ok := keyValue(line)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return
	}
	switch key {
	case "SliderMultiplier":
		if f > 0 {
			c.SliderMultiplier = f
		}
	case "SliderTickRate":
		if f > 0 {
			c.SliderTickRate = f
		}
	}
}

func (c *Chart) appendTimingPoint(line string) error {
	parts := strings.Split(line, ",")
	if len(parts) < 2 {
		return fmt.Errorf("malformed timing point %q", line)
	}
	t, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return fmt.Errorf("timing point time: %w", err)
	}
	beatLen, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return fmt.Errorf("timing point beat length: %w", err)
	}

	// Negative beat length marks an inherited (velocity) point; old format
	// versions omit the uninherited flag entirely.
	uninherited := beatLen > 0
	if len(parts) > 6 {
		uninherited = strings.TrimSpace(parts[6]) == "1" && beatLen > 0
	}

	c.TimingPoints = append(c.TimingPoints, TimingPoint{
		Time:        t,
		BeatLength:  beatLen,
		Uninherited: uninherited,
	})
	return nil
}

func (c *Chart) appendHitObject(line string) error {
	parts := strings.Split(line, ",")
	if len(parts) < 4 {
		return fmt.Errorf("malformed hit object %q", line)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return fmt.Errorf("hit object x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return fmt.Errorf("hit object y: %w", err)
	}
	t, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return fmt.Errorf("hit object time: %w", err)
	}
	typ, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil {
		return fmt.Errorf("hit object type: %w", err)
	}

	obj := HitObject{X: x, Y: y, Time: t, Type: typ}

	if obj.IsSlider() {
		obj.Slides = 1
		if len(parts) > 6 {
			if s, err := strconv.Atoi(strings.TrimSpace(parts[6])); err == nil && s > 0 {
				obj.Slides = s
			}
		}
		if len(parts) > 7 {
			if l, err := strconv.ParseFloat(strings.TrimSpace(parts[7]), 64); err == nil && l > 0 {
				obj.Length = l
			}
		}
	}

	c.Objects = append(c.Objects, obj)
	return nil
}
