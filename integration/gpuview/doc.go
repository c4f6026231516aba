// Package gpuview presents trirast framebuffers in GPU windows.
//
// The data flow is:
//
//	trirast.Rasterize -> Framebuffer (CPU) -> GPU Texture -> Window
//
// # Architecture
//
// Presenter owns one GPU texture sized like the framebuffer:
//
//   - The texture is created lazily on the first Present, through the
//     drawer's gpucontext.TextureCreator
//   - Later frames upload into the same texture via
//     gpucontext.TextureUpdater, or only the changed rows via
//     gpucontext.TextureRegionUpdater
//   - Resize drops the texture; the next Present creates a new one
//   - Sizes are compared as gputypes.Extent3D, and a texture that reports
//     a format other than the framebuffer's RGBA8Unorm is rejected
//
// # Usage
//
//	fb := trirast.NewFramebuffer(800, 600)
//	view, _ := gpuview.New(800, 600)
//	defer view.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    fb.Clear(trirast.Black)
//	    trirast.Rasterize(pipeline, triangles, fb.Data(), 800, 600, 800, 600)
//	    view.Present(fb, dc.AsTextureDrawer())
//	})
//
// # Thread Safety
//
// Presenter is NOT safe for concurrent use.
//
// # Integration Without Circular Imports
//
// This package only depends on the gpucontext interfaces, so any host that
// implements gpucontext.TextureDrawer can display trirast output without
// trirast importing a GPU backend.
package gpuview
