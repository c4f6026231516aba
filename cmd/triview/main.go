// Command triview shows a scene in a window and lets you fly the camera.
//
// Controls: WASD moves in the ground plane, Q and E move down and up,
// ESC quits.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/trirast"
	"github.com/gogpu/trirast/internal/viewer"
	"github.com/gogpu/trirast/scene"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (YAML)")
		zoom      = flag.Int("zoom", 4, "window pixels per framebuffer pixel")
		workers   = flag.Int("workers", 0, "parallel row bands; 0 uses GOMAXPROCS, negative renders serially")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	trirast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *scenePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	s, err := scene.Load(*scenePath)
	if err != nil {
		log.Fatalf("triview: %v", err)
	}

	var opts []trirast.Option
	if *workers >= 0 {
		pool := trirast.NewWorkerPool(*workers)
		defer pool.Close()
		opts = append(opts, trirast.WithWorkerPool(pool))
	}

	ebiten.SetWindowTitle("triview: " + s.Name)
	ebiten.SetWindowSize(s.Width*max(*zoom, 1), s.Height*max(*zoom, 1))
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(&game{v: viewer.New(s, opts...)}); err != nil {
		log.Fatalf("triview: %v", err)
	}
}

type game struct {
	v   *viewer.Viewer
	img *ebiten.Image
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.v.Step(viewer.Input{
		Forward: ebiten.IsKeyPressed(ebiten.KeyW),
		Back:    ebiten.IsKeyPressed(ebiten.KeyS),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD),
		Down:    ebiten.IsKeyPressed(ebiten.KeyQ),
		Up:      ebiten.IsKeyPressed(ebiten.KeyE),
	}, 1/float32(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb, err := g.v.Frame()
	if err != nil {
		trirast.Logger().Error("triview: render failed", "err", err)
		return
	}
	if g.img == nil {
		g.img = ebiten.NewImage(fb.Width(), fb.Height())
	}
	g.img.WritePixels(fb.Data())
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.v.Size()
}
