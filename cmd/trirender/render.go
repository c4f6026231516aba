package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/image/bmp"
	"golang.org/x/term"

	"github.com/gogpu/trirast"
	"github.com/gogpu/trirast/camera"
	"github.com/gogpu/trirast/scene"
)

var (
	errUnsupportedFormat = errors.New("unsupported output format")
	errBadScale          = errors.New("scale must be at least 1")
	errBadFrames         = errors.New("frames must be at least 1")
)

type config struct {
	scene    string
	output   string
	scale    int
	frames   int
	orbit    bool
	workers  int
	legacy   bool
	progress bool
}

type summary struct {
	name    string
	frames  int
	stats   trirast.Stats
	elapsed time.Duration
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

func run(cfg config) (summary, error) {
	if cfg.scale < 1 {
		return summary{}, fmt.Errorf("%w: %d", errBadScale, cfg.scale)
	}
	if cfg.frames < 1 {
		return summary{}, fmt.Errorf("%w: %d", errBadFrames, cfg.frames)
	}
	encode, err := encoderFor(cfg.output)
	if err != nil {
		return summary{}, err
	}

	s, err := scene.Load(cfg.scene)
	if err != nil {
		return summary{}, err
	}

	var opts []trirast.Option
	if cfg.legacy {
		opts = append(opts, trirast.WithCoverage(trirast.CoverageLegacy))
	}
	if cfg.workers >= 0 {
		pool := trirast.NewWorkerPool(cfg.workers)
		defer pool.Close()
		opts = append(opts, trirast.WithWorkerPool(pool))
	}

	var bar *progressbar.ProgressBar
	if cfg.progress && cfg.frames > 1 {
		bar = progressbar.Default(int64(cfg.frames), "rendering")
		defer bar.Close()
	}

	sum := summary{name: s.Name, frames: cfg.frames}
	fb := trirast.NewFramebuffer(s.Width, s.Height)
	base := s.View()
	start := time.Now()

	for i := range cfg.frames {
		cam := base
		if cfg.orbit {
			cam = orbitFrame(base, i, cfg.frames)
		}

		var st trirast.Stats
		if err := s.RenderFrom(fb, cam, append(opts, trirast.WithStats(&st))...); err != nil {
			return summary{}, err
		}
		sum.stats = addStats(sum.stats, st)

		path := frameName(cfg.output, i, cfg.frames)
		if err := save(path, scaled(fb, cfg.scale), encode); err != nil {
			return summary{}, fmt.Errorf("frame %d: %w", i+1, err)
		}
		trirast.Logger().Debug("trirender: frame written", "path", path, "fragments", st.Fragments)

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	sum.elapsed = time.Since(start)
	return sum, nil
}

// encoderFor picks the image encoder from the file extension.
func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedFormat, filepath.Ext(path))
	}
}

// frameName numbers the output file when more than one frame is rendered.
func frameName(path string, i, frames int) string {
	if frames <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%04d%s", strings.TrimSuffix(path, ext), i+1, ext)
}

// orbitFrame moves cam around its target, or the origin, keeping its
// distance and height. Frame 0 keeps the scene camera position and looks
// at the target.
func orbitFrame(cam camera.Camera, i, frames int) camera.Camera {
	target := cam.Target
	if !cam.HasTarget {
		target = trirast.Vec3{}
	}
	off := cam.Position.Sub(target)
	radius := float32(math.Hypot(float64(off[0]), float64(off[2])))
	start := math.Atan2(float64(off[0]), float64(off[2]))
	angle := start + 2*math.Pi*float64(i)/float64(frames)
	return cam.Orbit(target, radius, off[1], float32(angle))
}

func scaled(fb *trirast.Framebuffer, scale int) image.Image {
	if scale == 1 {
		return fb.ToImage()
	}
	return fb.Scaled(fb.Width()*scale, fb.Height()*scale)
}

func save(path string, img image.Image, encode func(io.Writer, image.Image) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func addStats(a, b trirast.Stats) trirast.Stats {
	return trirast.Stats{
		Triangles:  a.Triangles + b.Triangles,
		Culled:     a.Culled + b.Culled,
		Degenerate: a.Degenerate + b.Degenerate,
		Fragments:  a.Fragments + b.Fragments,
	}
}
