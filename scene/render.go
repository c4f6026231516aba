package scene

import (
	"fmt"

	"github.com/gogpu/trirast"
	"github.com/gogpu/trirast/camera"
	"github.com/gogpu/trirast/shaders"
)

// Render clears fb to the background color and draws the scene from its
// own camera. fb must match the scene's output size.
func (s *Scene) Render(fb *trirast.Framebuffer, opts ...trirast.Option) error {
	return s.RenderFrom(fb, s.View(), opts...)
}

// RenderFrom is like Render but uses cam instead of the scene camera.
func (s *Scene) RenderFrom(fb *trirast.Framebuffer, cam camera.Camera, opts ...trirast.Option) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if fb.Width() != s.Width || fb.Height() != s.Height {
		return fmt.Errorf("%w: framebuffer %dx%d, scene %dx%d",
			ErrInvalidSize, fb.Width(), fb.Height(), s.Width, s.Height)
	}

	fb.Clear(s.Background.Color)

	vw, vh := s.Viewport.Width, s.Viewport.Height
	ow, oh := fb.Width(), fb.Height()
	out := fb.Data()

	switch s.Pipeline {
	case PipelineFlat:
		trirast.Rasterize(shaders.Flat{Color: s.Color.Color}, s.flatTriangles(), out, vw, vh, ow, oh, opts...)
	case PipelineGouraud:
		p := shaders.Gouraud{ViewProjection: cam.ViewProjection(vw, vh)}
		trirast.Rasterize(p, s.colorTriangles(), out, vw, vh, ow, oh, opts...)
	case PipelineNormals:
		p := shaders.Normals{ViewProjection: cam.ViewProjection(vw, vh)}
		trirast.Rasterize(p, s.normalTriangles(), out, vw, vh, ow, oh, opts...)
	case PipelineBarycentric:
		p := shaders.Barycentric{
			ViewProjection: cam.ViewProjection(vw, vh),
			Fog:            s.Fog,
			FogColor:       s.FogColor.Color,
		}
		trirast.Rasterize(p, s.cornerTriangles(), out, vw, vh, ow, oh, opts...)
	}
	return nil
}

func (s *Scene) flatTriangles() [][3]trirast.Vec2 {
	tris := make([][3]trirast.Vec2, len(s.Triangles))
	for i, t := range s.Triangles {
		for j, v := range t.Vertices {
			tris[i][j] = vec3(v.Position).XY()
		}
	}
	return tris
}

func (s *Scene) colorTriangles() [][3]shaders.ColorVertex {
	tris := make([][3]shaders.ColorVertex, len(s.Triangles))
	for i, t := range s.Triangles {
		for j, v := range t.Vertices {
			c := s.Color.Color
			if v.Color.Set {
				c = v.Color.Color
			}
			tris[i][j] = shaders.ColorVertex{
				Position: vec3(v.Position),
				Color:    c.Vec().XYZ(),
			}
		}
	}
	return tris
}

func (s *Scene) normalTriangles() [][3]shaders.NormalVertex {
	tris := make([][3]shaders.NormalVertex, len(s.Triangles))
	for i, t := range s.Triangles {
		a, b, c := vec3(t.Vertices[0].Position), vec3(t.Vertices[1].Position), vec3(t.Vertices[2].Position)
		face := shaders.FaceNormal(a, b, c)
		for j, v := range t.Vertices {
			n := face
			if len(v.Normal) == 3 {
				n = vec3(v.Normal)
			}
			tris[i][j] = shaders.NormalVertex{Position: vec3(v.Position), Normal: n}
		}
	}
	return tris
}

func (s *Scene) cornerTriangles() [][3]shaders.CornerVertex {
	tris := make([][3]shaders.CornerVertex, len(s.Triangles))
	for i, t := range s.Triangles {
		v := t.Vertices
		tris[i] = shaders.Corners(vec3(v[0].Position), vec3(v[1].Position), vec3(v[2].Position))
	}
	return tris
}
