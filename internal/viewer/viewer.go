// Package viewer holds the camera and frame state of the interactive viewer,
// independent of any window system.
package viewer

import (
	"github.com/gogpu/trirast"
	"github.com/gogpu/trirast/camera"
	"github.com/gogpu/trirast/scene"
)

// Speed is the camera speed in world units per second.
const Speed = 1.5

// Input is the movement keys held during one tick.
type Input struct {
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool
}

// Viewer renders a scene from a movable camera.
type Viewer struct {
	scene *scene.Scene
	cam   camera.Camera
	fb    *trirast.Framebuffer
	opts  []trirast.Option
}

// New starts at the scene camera. opts are passed to every render.
func New(s *scene.Scene, opts ...trirast.Option) *Viewer {
	return &Viewer{
		scene: s,
		cam:   s.View(),
		fb:    trirast.NewFramebuffer(s.Width, s.Height),
		opts:  opts,
	}
}

// Step moves the camera for dt seconds of input.
func (v *Viewer) Step(in Input, dt float32) {
	var d trirast.Vec3
	if in.Forward {
		d[2] -= 1
	}
	if in.Back {
		d[2] += 1
	}
	if in.Left {
		d[0] -= 1
	}
	if in.Right {
		d[0] += 1
	}
	if in.Up {
		d[1] += 1
	}
	if in.Down {
		d[1] -= 1
	}
	if d == (trirast.Vec3{}) {
		return
	}
	v.cam = v.cam.Move(d.Mul(Speed * dt))
}

// Frame clears and redraws the framebuffer from the current camera.
func (v *Viewer) Frame() (*trirast.Framebuffer, error) {
	if err := v.scene.RenderFrom(v.fb, v.cam, v.opts...); err != nil {
		return nil, err
	}
	return v.fb, nil
}

// Camera returns the current camera.
func (v *Viewer) Camera() camera.Camera {
	return v.cam
}

// Size returns the framebuffer size.
func (v *Viewer) Size() (width, height int) {
	return v.fb.Width(), v.fb.Height()
}
