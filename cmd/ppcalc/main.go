package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osukit/pp-api/internal/calc"
	"github.com/osukit/pp-api/internal/engine"
	"github.com/osukit/pp-api/internal/models"
)

var (
	path     = kingpin.Arg("file", "Beatmap file (.osu)").Required().ExistingFile()
	mode     = kingpin.Flag("mode", "Ruleset (0=osu, 1=taiko, 2=catch, 3=mania)").Default("0").Short('m').Int()
	mods     = kingpin.Flag("mod", "Mod acronym, repeatable (e.g. --mod HD --mod DT)").Strings()
	accuracy = kingpin.Flag("acc", "Target accuracy percent").Default("100").Short('a').Float64()
	combo    = kingpin.Flag("combo", "Highest combo reached (0 = full combo)").Default("0").Short('c').Int()
	misses   = kingpin.Flag("misses", "Miss count").Default("0").Short('x').Int()
	stats    = kingpin.Flag("stats", "Explicit hit statistics as JSON, overrides --acc").String()
	verbose  = kingpin.Flag("verbose", "Log calculation details").Short('v').Bool()
)

func main() {
	kingpin.Version("1.0.0")
	kingpin.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			os.Exit(1)
		}
	}

	engine.Bootstrap()

	req := models.CalculationRequest{
		Path:     *path,
		Mode:     *mode,
		Mods:     *mods,
		Accuracy: *accuracy,
		Misses:   *misses,
	}
	if *combo > 0 {
		req.Combo = combo
	}
	if *stats != "" {
		var hs models.HitStatistics
		if err := json.Unmarshal([]byte(*stats), &hs); err != nil {
			fmt.Fprintf(os.Stderr, "invalid --stats: %v\n", err)
			os.Exit(1)
		}
		req.Statistics = &hs
	}

	calculator := calc.New(calc.Config{Logger: logger})

	result, err := calculator.Calculate(context.Background(), req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
