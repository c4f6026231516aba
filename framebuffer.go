package trirast

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// Framebuffer owns a pixel buffer in the layout Rasterize writes:
// row-major, 4 bytes per pixel (R, G, B, A), stride = width*4.
//
// Rasterize only writes R, G and B. The fourth byte keeps whatever Clear
// put there, which makes the buffer directly usable as an opaque RGBA
// image or texture.
type Framebuffer struct {
	width  int
	height int
	data   []uint8
}

// NewFramebuffer creates a zeroed framebuffer with the given dimensions.
// It panics if width or height is not positive.
func NewFramebuffer(width, height int) *Framebuffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("trirast: invalid framebuffer size %dx%d", width, height))
	}
	return &Framebuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*BytesPerPixel),
	}
}

// Width returns the width of the framebuffer.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the height of the framebuffer.
func (f *Framebuffer) Height() int {
	return f.height
}

// Stride returns the distance in bytes between two rows.
func (f *Framebuffer) Stride() int {
	return f.width * BytesPerPixel
}

// Data returns the raw pixel data, suitable as the output argument of
// Rasterize.
func (f *Framebuffer) Data() []uint8 {
	return f.data
}

// Clear fills every pixel, including the fourth byte, with a color.
func (f *Framebuffer) Clear(c Color) {
	r := ChannelByte(c.R)
	g := ChannelByte(c.G)
	b := ChannelByte(c.B)
	a := ChannelByte(c.A)

	for i := 0; i < len(f.data); i += BytesPerPixel {
		f.data[i+0] = r
		f.data[i+1] = g
		f.data[i+2] = b
		f.data[i+3] = a
	}
}

// PixelAt returns the four bytes of the pixel at (x, y).
// Out-of-bounds coordinates return zeros.
func (f *Framebuffer) PixelAt(x, y int) [4]byte {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return [4]byte{}
	}
	i := (y*f.width + x) * BytesPerPixel
	return [4]byte(f.data[i : i+4])
}

// Format returns the GPU texture format matching the buffer layout.
func (f *Framebuffer) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Extent returns the buffer size as a GPU texture extent.
func (f *Framebuffer) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(f.width),
		Height:             uint32(f.height),
		DepthOrArrayLayers: 1,
	}
}

// ToImage copies the framebuffer into a new image.RGBA.
func (f *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.data)
	return img
}

// Scaled returns a copy resized to width x height with nearest-neighbour
// sampling, which keeps pixel edges sharp when enlarging small renders.
func (f *Framebuffer) Scaled(width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), f.ToImage(), f.Bounds(), xdraw.Src, nil)
	return dst
}

// SavePNG saves the framebuffer to a PNG file.
func (f *Framebuffer) SavePNG(path string) error {
	return saveImage(path, f.ToImage(), png.Encode)
}

// SaveBMP saves the framebuffer to a BMP file.
func (f *Framebuffer) SaveBMP(path string) error {
	return saveImage(path, f.ToImage(), bmp.Encode)
}

func saveImage(path string, img image.Image, encode func(io.Writer, image.Image) error) error {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := encode(file, img); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// At implements the image.Image interface.
func (f *Framebuffer) At(x, y int) color.Color {
	p := f.PixelAt(x, y)
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Bounds implements the image.Image interface.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Framebuffer) ColorModel() color.Model {
	return color.RGBAModel
}
