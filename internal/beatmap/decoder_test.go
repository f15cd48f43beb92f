package beatmap

import (
	"strings"
	"testing"
)

const sampleChart = `osu file format v14

[General]
AudioFilename: audio.mp3
Mode: 0

[Difficulty]
HPDrainRate:5
SliderMultiplier:1.6
SliderTickRate:2

[TimingPoints]
0,500,4,2,0,60,1,0
10000,-50,4,2,0,60,0,0

[HitObjects]
100,100,1000,1,0,0:0:0:0:
200,200,2000,2,0,L|300:200,1,160,2|0,0:0|0:0,0:0:0:0:
256,192,3000,12,0,4000,0:0:0:0:
`

func TestDecode(t *testing.T) {
	chart, err := Decode(strings.NewReader(sampleChart))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if chart.FormatVersion != 14 {
		t.Errorf("FormatVersion = %d, want 14", chart.FormatVersion)
	}
	if chart.Mode != 0 {
		t.Errorf("Mode = %d, want 0", chart.Mode)
	}
	if chart.SliderMultiplier != 1.6 {
		t.Errorf("SliderMultiplier = %v, want 1.6", chart.SliderMultiplier)
	}
	if chart.SliderTickRate != 2 {
		t.Errorf("SliderTickRate = %v, want 2", chart.SliderTickRate)
	}
	if len(chart.Objects) != 3 {
		t.Fatalf("Objects = %d, want 3", len(chart.Objects))
	}

	if !chart.Objects[0].IsCircle() {
		t.Error("first object should be a circle")
	}
	slider := chart.Objects[1]
	if !slider.IsSlider() {
		t.Error("second object should be a slider")
	}
	if slider.Slides != 1 || slider.Length != 160 {
		t.Errorf("slider = %d slides, length %v; want 1 slide, length 160", slider.Slides, slider.Length)
	}
	if !chart.Objects[2].IsSpinner() {
		t.Error("third object should be a spinner")
	}
}

func TestDecodeSliderDuration(t *testing.T) {
	chart, err := Decode(strings.NewReader(sampleChart))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	// length 160 / (1.6 * 100) * 500ms beat = 500ms per span
	slider := chart.Objects[1]
	if got := chart.SliderSpanDuration(slider); got != 500 {
		t.Errorf("SliderSpanDuration = %v, want 500", got)
	}
}

func TestDecodeBeatLengthAt(t *testing.T) {
	chart, err := Decode(strings.NewReader(sampleChart))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	// Inherited point at 10000 must not change the beat length
	if got := chart.BeatLengthAt(15000); got != 500 {
		t.Errorf("BeatLengthAt(15000) = %v, want 500", got)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode(strings.NewReader("PNG garbage\ndata")); err == nil {
		t.Error("Decode should reject files without the osu header")
	}
	if _, err := Decode(strings.NewReader("")); err == nil {
		t.Error("Decode should reject empty input")
	}
}

func TestDecodeMalformedHitObject(t *testing.T) {
	bad := "osu file format v14\n[HitObjects]\n100,100\n"
	if _, err := Decode(strings.NewReader(bad)); err == nil {
		t.Error("Decode should fail on truncated hit object lines")
	}
}
