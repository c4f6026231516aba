package gpuview

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/trirast"
)

// Common errors returned by Presenter operations.
var (
	// ErrClosed is returned when operations are attempted on a closed presenter.
	ErrClosed = errors.New("gpuview: presenter is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("gpuview: invalid dimensions")

	// ErrNoCreator is returned when the drawer has no texture creator.
	ErrNoCreator = errors.New("gpuview: drawer has no TextureCreator")

	// ErrSizeMismatch is returned when the framebuffer and presenter sizes differ.
	ErrSizeMismatch = errors.New("gpuview: framebuffer size mismatch")

	// ErrNotDrawable is returned when the creator returns no texture.
	ErrNotDrawable = errors.New("gpuview: creator returned no texture")

	// ErrFormatMismatch is returned when the created texture does not use
	// the framebuffer's pixel format.
	ErrFormatMismatch = errors.New("gpuview: texture format mismatch")
)

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// textureFormatter is implemented by textures that report their format.
type textureFormatter interface {
	Format() gputypes.TextureFormat
}

// Presenter uploads framebuffers to a GPU texture and draws it.
//
// Presenter is NOT safe for concurrent use.
type Presenter struct {
	texture gpucontext.Texture
	width   int
	height  int
	closed  bool
}

// New creates a presenter for width x height framebuffers.
func New(width, height int) (*Presenter, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Presenter{width: width, height: height}, nil
}

// Size returns the framebuffer size the presenter accepts.
func (p *Presenter) Size() (width, height int) {
	return p.width, p.height
}

// Extent returns the texture extent the presenter uploads to.
func (p *Presenter) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(p.width),
		Height:             uint32(p.height),
		DepthOrArrayLayers: 1,
	}
}

// Texture returns the current GPU texture, or nil before the first upload.
func (p *Presenter) Texture() gpucontext.Texture {
	return p.texture
}

// Present uploads fb and draws it at (0, 0).
func (p *Presenter) Present(fb *trirast.Framebuffer, dc gpucontext.TextureDrawer) error {
	return p.PresentAt(fb, dc, 0, 0)
}

// PresentAt uploads fb and draws it with its top-left corner at (x, y).
func (p *Presenter) PresentAt(fb *trirast.Framebuffer, dc gpucontext.TextureDrawer, x, y float32) error {
	if p.closed {
		return ErrClosed
	}
	tex, err := p.Upload(fb, dc.TextureCreator())
	if err != nil {
		return err
	}
	return dc.DrawTexture(tex, x, y)
}

// Upload copies fb into the texture, creating it with creator when needed.
// creator may be nil once the texture exists and can be updated in place.
func (p *Presenter) Upload(fb *trirast.Framebuffer, creator gpucontext.TextureCreator) (gpucontext.Texture, error) {
	if p.closed {
		return nil, ErrClosed
	}
	if err := p.checkSize(fb); err != nil {
		return nil, err
	}

	if p.texture != nil {
		if updater, ok := p.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(fb.Data()); err != nil {
				return nil, fmt.Errorf("gpuview: texture update failed: %w", err)
			}
			return p.texture, nil
		}
		trirast.Logger().Warn("gpuview: texture cannot be updated, recreating")
		p.dropTexture()
	}

	return p.create(fb, creator)
}

// UploadRows copies rows [y0, y1) of fb into the existing texture. Textures
// without region updates get a full upload. Without a texture it behaves
// like Upload.
func (p *Presenter) UploadRows(fb *trirast.Framebuffer, creator gpucontext.TextureCreator, y0, y1 int) (gpucontext.Texture, error) {
	if p.closed {
		return nil, ErrClosed
	}
	if err := p.checkSize(fb); err != nil {
		return nil, err
	}
	y0 = max(y0, 0)
	y1 = min(y1, p.height)
	if y0 >= y1 {
		if p.texture != nil {
			return p.texture, nil
		}
		return p.create(fb, creator)
	}

	region, ok := p.texture.(gpucontext.TextureRegionUpdater)
	if !ok {
		return p.Upload(fb, creator)
	}
	stride := fb.Stride()
	rows := fb.Data()[y0*stride : y1*stride]
	if err := region.UpdateRegion(0, y0, p.width, y1-y0, rows); err != nil {
		return nil, fmt.Errorf("gpuview: region update failed: %w", err)
	}
	return p.texture, nil
}

func (p *Presenter) create(fb *trirast.Framebuffer, creator gpucontext.TextureCreator) (gpucontext.Texture, error) {
	if creator == nil {
		return nil, ErrNoCreator
	}
	tex, err := creator.NewTextureFromRGBA(p.width, p.height, fb.Data())
	if err != nil {
		return nil, fmt.Errorf("gpuview: NewTextureFromRGBA failed: %w", err)
	}
	if tex == nil {
		return nil, ErrNotDrawable
	}
	if f, ok := tex.(textureFormatter); ok && f.Format() != fb.Format() {
		if destroyer, ok := tex.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		return nil, fmt.Errorf("%w: texture %v, framebuffer %v", ErrFormatMismatch, f.Format(), fb.Format())
	}
	p.texture = tex
	return tex, nil
}

func (p *Presenter) checkSize(fb *trirast.Framebuffer) error {
	if got, want := fb.Extent(), p.Extent(); got != want {
		return fmt.Errorf("%w: framebuffer %dx%d, presenter %dx%d",
			ErrSizeMismatch, got.Width, got.Height, want.Width, want.Height)
	}
	return nil
}

// Resize changes the accepted framebuffer size. The texture is destroyed
// and recreated on the next upload.
func (p *Presenter) Resize(width, height int) error {
	if p.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if p.width == width && p.height == height {
		return nil
	}
	p.dropTexture()
	p.width = width
	p.height = height
	return nil
}

func (p *Presenter) dropTexture() {
	if destroyer, ok := p.texture.(textureDestroyer); ok {
		destroyer.Destroy()
	}
	p.texture = nil
}

// Close releases the texture. Close is idempotent.
func (p *Presenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.dropTexture()
	return nil
}
