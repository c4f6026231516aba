// Package scene loads triangle scenes from YAML files and renders them with
// the stock pipelines of package shaders.
//
// A minimal scene:
//
//	version: 1
//	width: 600
//	height: 600
//	pipeline: gouraud
//	camera: {position: [0, 1, 2], fov: 70, near: 0.2}
//	triangles:
//	  - vertices:
//	      - {position: [0, 0, 0], color: [1, 0, 0]}
//	      - {position: [1, 0, 0], color: [0, 1, 0]}
//	      - {position: [1, 1, 0], color: "#0000ff"}
//
// Colors are either "#rgb", "#rrggbb" (optionally with alpha) strings or
// [r, g, b] / [r, g, b, a] lists with components in [0, 1].
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/trirast"
	"github.com/gogpu/trirast/camera"
)

// Version is the scene file format version understood by this package.
const Version = 1

// Common errors returned by Parse, Load and Validate.
var (
	// ErrNoTriangles is returned when a scene has no triangles.
	ErrNoTriangles = errors.New("scene: no triangles")

	// ErrBadVertexCount is returned when a triangle does not have exactly
	// three vertices.
	ErrBadVertexCount = errors.New("scene: triangle must have 3 vertices")

	// ErrInvalidSize is returned for non-positive output or negative
	// viewport dimensions, and when a framebuffer does not match the scene.
	ErrInvalidSize = errors.New("scene: invalid size")

	// ErrUnknownPipeline is returned when the pipeline name is not recognized.
	ErrUnknownPipeline = errors.New("scene: unknown pipeline")

	// ErrUnsupportedVersion is returned for format versions other than [Version].
	ErrUnsupportedVersion = errors.New("scene: unsupported version")

	// ErrBadVector is returned when a position or normal has the wrong
	// number of components.
	ErrBadVector = errors.New("scene: bad vector")

	// ErrBadColor is returned when a color cannot be parsed.
	ErrBadColor = errors.New("scene: bad color")

	// ErrBadCamera is returned for a field of view outside (0, 180) degrees
	// or a non-positive near plane.
	ErrBadCamera = errors.New("scene: invalid camera")
)

// Pipeline names.
const (
	PipelineFlat        = "flat"
	PipelineGouraud     = "gouraud"
	PipelineNormals     = "normals"
	PipelineBarycentric = "barycentric"
)

// Scene is a decoded scene file.
type Scene struct {
	Version    int        `yaml:"version"`
	Name       string     `yaml:"name"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Viewport   Size       `yaml:"viewport"`
	Background Color      `yaml:"background"`
	Pipeline   string     `yaml:"pipeline"`
	Color      Color      `yaml:"color"`
	Fog        float32    `yaml:"fog"`
	FogColor   Color      `yaml:"fog_color,omitempty"`
	Camera     Camera     `yaml:"camera"`
	Triangles  []Triangle `yaml:"triangles"`
}

// Size is a width and height in pixels.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Camera describes the viewpoint of 3D pipelines. Flat ignores it.
type Camera struct {
	Position []float32 `yaml:"position"`
	Target   []float32 `yaml:"target,omitempty"`
	FOV      float32   `yaml:"fov"`
	Near     float32   `yaml:"near"`
}

// Triangle is one triangle of the scene.
type Triangle struct {
	Vertices []Vertex `yaml:"vertices"`
}

// Vertex is one triangle corner. Position has 2 or 3 components; a missing
// z is 0. Color defaults to the scene color and Normal to the face normal.
type Vertex struct {
	Position []float32 `yaml:"position"`
	Color    Color     `yaml:"color,omitempty"`
	Normal   []float32 `yaml:"normal,omitempty"`
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	trirast.Logger().Debug("scene: loaded",
		"path", path,
		"name", s.Name,
		"triangles", len(s.Triangles),
		"pipeline", s.Pipeline,
	)
	return s, nil
}

// Parse decodes a scene, fills in defaults and validates it.
// Unknown fields are rejected.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	s.SetDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// SetDefaults fills unset fields: version 1, viewport equal to the output
// size, the gouraud pipeline, black background, red flat color and the
// default camera.
func (s *Scene) SetDefaults() {
	if s.Version == 0 {
		s.Version = Version
	}
	if s.Viewport.Width == 0 {
		s.Viewport.Width = s.Width
	}
	if s.Viewport.Height == 0 {
		s.Viewport.Height = s.Height
	}
	if s.Pipeline == "" {
		s.Pipeline = PipelineGouraud
	}
	if !s.Background.Set {
		s.Background = Color{Color: trirast.Black, Set: true}
	}
	if !s.Color.Set {
		s.Color = Color{Color: trirast.Red, Set: true}
	}

	def := camera.Default()
	if s.Camera.Position == nil {
		s.Camera.Position = def.Position[:]
	}
	if s.Camera.FOV == 0 {
		s.Camera.FOV = def.FOV
	}
	if s.Camera.Near == 0 {
		s.Camera.Near = def.Near
	}
}

// Validate reports the first problem found in the scene. It expects
// SetDefaults to have run.
func (s *Scene) Validate() error {
	if s.Version != Version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: output %dx%d", ErrInvalidSize, s.Width, s.Height)
	}
	if s.Viewport.Width < 0 || s.Viewport.Height < 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidSize, s.Viewport.Width, s.Viewport.Height)
	}
	if s.Viewport.Width > s.Width || s.Viewport.Height > s.Height {
		return fmt.Errorf("%w: viewport %dx%d exceeds output %dx%d",
			ErrInvalidSize, s.Viewport.Width, s.Viewport.Height, s.Width, s.Height)
	}
	switch s.Pipeline {
	case PipelineFlat, PipelineGouraud, PipelineNormals, PipelineBarycentric:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPipeline, s.Pipeline)
	}
	if err := s.Camera.validate(); err != nil {
		return err
	}
	if len(s.Triangles) == 0 {
		return ErrNoTriangles
	}
	for i, tri := range s.Triangles {
		if len(tri.Vertices) != 3 {
			return fmt.Errorf("triangle %d: %w: got %d", i, ErrBadVertexCount, len(tri.Vertices))
		}
		for j, v := range tri.Vertices {
			if n := len(v.Position); n != 2 && n != 3 {
				return fmt.Errorf("triangle %d vertex %d: %w: position has %d components", i, j, ErrBadVector, n)
			}
			if n := len(v.Normal); n != 0 && n != 3 {
				return fmt.Errorf("triangle %d vertex %d: %w: normal has %d components", i, j, ErrBadVector, n)
			}
		}
	}
	return nil
}

func (c *Camera) validate() error {
	if len(c.Position) != 3 {
		return fmt.Errorf("%w: camera position has %d components", ErrBadVector, len(c.Position))
	}
	if n := len(c.Target); n != 0 && n != 3 {
		return fmt.Errorf("%w: camera target has %d components", ErrBadVector, n)
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("%w: fov %v", ErrBadCamera, c.FOV)
	}
	if c.Near <= 0 {
		return fmt.Errorf("%w: near %v", ErrBadCamera, c.Near)
	}
	return nil
}

// View returns the camera described by the scene.
func (s *Scene) View() camera.Camera {
	c := camera.Camera{
		Position: vec3(s.Camera.Position),
		FOV:      s.Camera.FOV,
		Near:     s.Camera.Near,
	}
	if len(s.Camera.Target) == 3 {
		c.Target = vec3(s.Camera.Target)
		c.HasTarget = true
	}
	return c
}

// vec3 converts a validated 2 or 3 component slice.
func vec3(v []float32) trirast.Vec3 {
	var out trirast.Vec3
	copy(out[:], v)
	return out
}
