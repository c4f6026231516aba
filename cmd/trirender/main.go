// Command trirender renders a scene file to PNG or BMP.
//
// Usage:
//
//	trirender -scene demo.yaml -output demo.png -scale 4
//	trirender -scene demo.yaml -output orbit.png -frames 36 -orbit -workers 0
//
// With more than one frame the output name gets a frame number, so
// orbit.png becomes orbit_0001.png, orbit_0002.png and so on.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/trirast"
)

func versionString() string {
	return "trirender " + trirast.Version
}

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (YAML)")
		output    = flag.String("output", "out.png", "output file (.png or .bmp)")
		scale     = flag.Int("scale", 1, "integer upscaling factor")
		frames    = flag.Int("frames", 1, "number of frames to render")
		orbit     = flag.Bool("orbit", false, "orbit the camera around its target across frames")
		workers   = flag.Int("workers", -1, "parallel row bands; 0 uses GOMAXPROCS, negative renders serially")
		legacy    = flag.Bool("legacy-coverage", false, "use the legacy inside test")
		verbose   = flag.Bool("v", false, "debug logging")
		version   = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(versionString())
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	trirast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *scenePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config{
		scene:    *scenePath,
		output:   *output,
		scale:    *scale,
		frames:   *frames,
		orbit:    *orbit,
		workers:  *workers,
		legacy:   *legacy,
		progress: isTerminal(),
	}
	sum, err := run(cfg)
	if err != nil {
		log.Fatalf("trirender: %v", err)
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(os.Stderr, "%s: %d frame(s), %d triangles, %d fragments, %d culled, %d degenerate in %v\n",
		sum.name, sum.frames, sum.stats.Triangles, sum.stats.Fragments,
		sum.stats.Culled, sum.stats.Degenerate, sum.elapsed.Round(time.Millisecond))
}
