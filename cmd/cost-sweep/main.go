// Command cost-sweep measures frame cost across contour levels, octaves and
// canvas widths. Each combination runs in its own scene on a worker pool.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"topoviz/internal/app"
	"topoviz/internal/contour"
	"topoviz/internal/scene"
	"topoviz/internal/signal"
	"topoviz/internal/terrain"
)

type paramSet struct {
	levels  int
	octaves int
	width   int
}

func (p paramSet) String() string {
	return fmt.Sprintf("levels=%d octaves=%d width=%d", p.levels, p.octaves, p.width)
}

type scenarioResult struct {
	params     paramSet
	cols, rows int
	meanMillis float64
	stdMillis  float64
	noiseEvals int
	cellVisits int
	segments   float64
}

func main() {
	frames := flag.Int("frames", 120, "frames to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	aspect := flag.Float64("aspect", 0.625, "canvas height as a fraction of width")
	levelsFlag := flag.String("levels", "6,12,24", "comma separated contour levels")
	octavesFlag := flag.String("octaves", "2,4,6", "comma separated octave counts")
	widthsFlag := flag.String("widths", "480,960,1920", "comma separated canvas widths")
	var overrides app.KVList
	flag.Var(&overrides, "set", "terrain override in key=value form (repeatable)")
	flag.Parse()

	base := terrain.DefaultConfig()
	if err := overrides.Apply(&base); err != nil {
		log.Fatal(err)
	}
	levels, err := parseInts(*levelsFlag)
	if err != nil {
		log.Fatalf("levels: %v", err)
	}
	octaves, err := parseInts(*octavesFlag)
	if err != nil {
		log.Fatalf("octaves: %v", err)
	}
	widths, err := parseInts(*widthsFlag)
	if err != nil {
		log.Fatalf("widths: %v", err)
	}

	sets := combinations(levels, octaves, widths)
	fmt.Printf("Sweeping %d scenarios (%d workers, %d frames)\n", len(sets), *workers, *frames)

	start := time.Now()
	all := sweep(base, sets, *workers, *frames, *aspect)
	sort.Slice(all, func(i, j int) bool { return all[i].meanMillis < all[j].meanMillis })
	printResults(os.Stdout, all)
	fmt.Printf("\nelapsed %s\n", time.Since(start).Round(time.Millisecond))
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no values in %q", s)
	}
	return out, nil
}

func combinations(levels, octaves, widths []int) []paramSet {
	var sets []paramSet
	for _, l := range levels {
		for _, o := range octaves {
			for _, w := range widths {
				sets = append(sets, paramSet{levels: l, octaves: o, width: w})
			}
		}
	}
	return sets
}

// sweep runs every set on a pool of workers. Results arrive in completion
// order.
func sweep(base terrain.Config, sets []paramSet, workers, frames int, aspect float64) []scenarioResult {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, frames, aspect)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	all := make([]scenarioResult, 0, len(sets))
	for res := range results {
		all = append(all, res)
	}
	return all
}

type segmentCounter struct{ n int }

func (c *segmentCounter) DrawBatch(b contour.Batch) { c.n += len(b.Segments) }

func runScenario(base terrain.Config, params paramSet, frames int, aspect float64) scenarioResult {
	cfg := base
	cfg.Levels = params.levels
	cfg.Octaves = params.octaves
	sc := scene.New(cfg)
	height := int(float64(params.width) * aspect)
	sc.Resize(params.width, height)

	synth := signal.NewSynth(cfg.Seed)
	const dt = 1000.0 / 60
	times := make([]float64, 0, frames)
	var counter segmentCounter
	var last scene.FrameStats
	for i := 0; i < frames; i++ {
		ctrl := synth.Next(dt)
		t0 := time.Now()
		last = sc.Step(ctrl, dt, &counter)
		times = append(times, float64(time.Since(t0))/float64(time.Millisecond))
	}

	mean, std := stat.MeanStdDev(times, nil)
	size := sc.Grid().Size()
	res := scenarioResult{
		params:     params,
		cols:       size.W,
		rows:       size.H,
		meanMillis: mean,
		stdMillis:  std,
		noiseEvals: last.Cost.NoiseEvals,
		cellVisits: last.Cost.CellVisits,
	}
	if frames > 0 {
		res.segments = float64(counter.n) / float64(frames)
	}
	return res
}

func printResults(w io.Writer, all []scenarioResult) {
	fmt.Fprintf(w, "\n%-34s %9s %9s %9s %11s %11s %9s\n",
		"scenario", "grid", "mean ms", "std ms", "noise evals", "cell visits", "segments")
	for _, res := range all {
		fmt.Fprintf(w, "%-34s %9s %9.3f %9.3f %11d %11d %9.0f\n",
			res.params, fmt.Sprintf("%dx%d", res.cols, res.rows), res.meanMillis, res.stdMillis,
			res.noiseEvals, res.cellVisits, res.segments)
	}
}
