// Command contour-frames renders the contour scene without a window. It can
// export every Nth frame as PNG and prints a plot of segment counts.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/stat"

	"topoviz/internal/app"
	"topoviz/internal/core"
	"topoviz/internal/render"
	"topoviz/internal/scene"
	"topoviz/internal/signal"
	"topoviz/internal/terrain"
)

type options struct {
	width, height int
	frames        int
	dt            float64
	outDir        string
	every         int
	seed          int64
	synth         bool
	fixed         signal.Control
	plot          bool
	terrain       terrain.Config
}

type summary struct {
	frames   int
	written  []string
	segments []float64
	elapsed  time.Duration
}

func main() {
	opts := options{terrain: terrain.DefaultConfig()}
	var overrides app.KVList
	var cpuProfile string
	var verbose bool
	flag.IntVar(&opts.width, "width", 640, "canvas width in pixels")
	flag.IntVar(&opts.height, "height", 400, "canvas height in pixels")
	flag.IntVar(&opts.frames, "frames", 240, "frames to simulate")
	flag.Float64Var(&opts.dt, "dt", 1000.0/60, "frame time in milliseconds")
	flag.StringVar(&opts.outDir, "out", "frames", "directory for exported PNG frames")
	flag.IntVar(&opts.every, "every", 30, "export every Nth frame (0 disables export)")
	flag.Int64Var(&opts.seed, "seed", 1337, "seed for the synthetic control source")
	flag.BoolVar(&opts.synth, "synth", true, "drive the scene from the synthetic control source")
	flag.Float64Var(&opts.fixed.Bass, "bass", 0, "fixed bass level when -synth=false")
	flag.Float64Var(&opts.fixed.Mid, "mid", 0, "fixed mid level when -synth=false")
	flag.Float64Var(&opts.fixed.Treble, "treble", 0, "fixed treble level when -synth=false")
	flag.Float64Var(&opts.fixed.Volume, "volume", 0.5, "fixed volume when -synth=false")
	flag.BoolVar(&opts.plot, "plot", true, "print a plot of segments per frame")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write a CPU profile to this file")
	flag.BoolVar(&verbose, "v", false, "enable debug logging")
	flag.Var(&overrides, "set", "terrain override in key=value form (repeatable)")
	flag.Parse()

	if verbose {
		core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err := overrides.Apply(&opts.terrain); err != nil {
		log.Fatal(err)
	}
	if cpuProfile != "" {
		stop, err := startCPUProfile(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		defer stop()
	}

	sum, err := run(opts)
	if err != nil {
		log.Fatal(err)
	}
	report(os.Stdout, opts, sum)
}

// run simulates opts.frames frames and writes the requested PNGs.
func run(opts options) (summary, error) {
	if opts.frames < 1 {
		return summary{}, fmt.Errorf("frames must be positive, got %d", opts.frames)
	}
	if opts.every > 0 {
		if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
			return summary{}, fmt.Errorf("create output dir: %w", err)
		}
	}

	sc := scene.New(opts.terrain)
	sc.Resize(opts.width, opts.height)
	drawer := render.NewPNGDrawer(opts.width, opts.height)
	defer drawer.Close()
	drawer.Thickness = sc.Config().LineThickness
	synth := signal.NewSynth(opts.seed)

	sum := summary{segments: make([]float64, 0, opts.frames)}
	start := time.Now()
	for i := 1; i <= opts.frames; i++ {
		ctrl := opts.fixed
		if opts.synth {
			ctrl = synth.Next(opts.dt)
		}
		drawer.Clear()
		drawer.Alpha = 0.55 + 0.45*sc.Builder().Smoothed().Volume
		st := sc.Step(ctrl, opts.dt, drawer)
		if err := drawer.Err(); err != nil {
			return sum, fmt.Errorf("frame %d: %w", i, err)
		}
		sum.segments = append(sum.segments, float64(st.Contours.Segments))

		if opts.every > 0 && i%opts.every == 0 {
			path := filepath.Join(opts.outDir, fmt.Sprintf("frame_%05d.png", i))
			if err := drawer.SavePNG(path); err != nil {
				return sum, fmt.Errorf("frame %d: %w", i, err)
			}
			sum.written = append(sum.written, path)
			core.Logger().Debug("frame written", "frame", i, "path", path, "segments", st.Contours.Segments,
				"min", st.Min, "max", st.Max)
		}
	}
	sum.frames = opts.frames
	sum.elapsed = time.Since(start)
	return sum, nil
}

func report(w io.Writer, opts options, sum summary) {
	mean, std := stat.MeanStdDev(sum.segments, nil)
	perFrame := sum.elapsed / time.Duration(sum.frames)
	fmt.Fprintf(w, "%d frames at %dx%d in %s (%s/frame), %d PNGs in %s\n",
		sum.frames, opts.width, opts.height, sum.elapsed.Round(time.Millisecond),
		perFrame.Round(time.Microsecond), len(sum.written), opts.outDir)
	fmt.Fprintf(w, "segments per frame: mean=%.1f stddev=%.1f\n", mean, std)
	if opts.plot && len(sum.segments) > 1 {
		fmt.Fprintln(w, asciigraph.Plot(sum.segments,
			asciigraph.Height(10),
			asciigraph.Width(72),
			asciigraph.Caption("segments per frame")))
	}
}
