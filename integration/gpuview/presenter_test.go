package gpuview

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/trirast"
)

// mockTexture implements gpucontext.Texture and TextureUpdater for testing.
type mockTexture struct {
	width     int
	height    int
	data      []byte
	destroyed bool
	updated   int
	failNext  bool
}

func (m *mockTexture) Width() int  { return m.width }
func (m *mockTexture) Height() int { return m.height }

func (m *mockTexture) UpdateData(data []byte) error {
	if m.failNext {
		m.failNext = false
		return errors.New("mock update failed")
	}
	m.data = bytes.Clone(data)
	m.updated++
	return nil
}

func (m *mockTexture) Destroy() {
	m.destroyed = true
}

// regionTexture adds TextureRegionUpdater.
type regionTexture struct {
	mockTexture
	regions [][4]int
}

func (m *regionTexture) UpdateRegion(x, y, w, h int, data []byte) error {
	m.regions = append(m.regions, [4]int{x, y, w, h})
	copy(m.data[y*m.width*4:], data)
	return nil
}

// staticTexture cannot be updated in place.
type staticTexture struct {
	width, height int
	destroyed     bool
}

func (s *staticTexture) Width() int  { return s.width }
func (s *staticTexture) Height() int { return s.height }
func (s *staticTexture) Destroy()    { s.destroyed = true }

// formatTexture reports its pixel format.
type formatTexture struct {
	mockTexture
	format gputypes.TextureFormat
}

func (f *formatTexture) Format() gputypes.TextureFormat { return f.format }

// mockCreator implements gpucontext.TextureCreator for testing.
type mockCreator struct {
	created  []gpucontext.Texture
	failNext bool
	returns  func(w, h int, data []byte) gpucontext.Texture
}

func (m *mockCreator) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if m.failNext {
		m.failNext = false
		return nil, errors.New("mock texture creation failed")
	}
	var tex gpucontext.Texture
	if m.returns != nil {
		tex = m.returns(width, height, data)
	} else {
		tex = &mockTexture{width: width, height: height, data: bytes.Clone(data)}
	}
	if tex != nil {
		m.created = append(m.created, tex)
	}
	return tex, nil
}

// mockDrawer implements gpucontext.TextureDrawer for testing.
type mockDrawer struct {
	creator   gpucontext.TextureCreator
	drawn     gpucontext.Texture
	x, y      float32
	drawCount int
}

func (m *mockDrawer) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	m.drawn, m.x, m.y = tex, x, y
	m.drawCount++
	return nil
}

func (m *mockDrawer) TextureCreator() gpucontext.TextureCreator {
	if m.creator == nil {
		return nil
	}
	return m.creator
}

func newDrawer() (*mockDrawer, *mockCreator) {
	c := &mockCreator{}
	return &mockDrawer{creator: c}, c
}

func redFrame(w, h int) *trirast.Framebuffer {
	fb := trirast.NewFramebuffer(w, h)
	fb.Clear(trirast.Red)
	return fb
}

// =============================================================================
// Creation
// =============================================================================

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr error
	}{
		{"valid", 800, 600, nil},
		{"zero width", 0, 600, ErrInvalidDimensions},
		{"negative height", 800, -1, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.w, tt.h)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil {
				if w, h := p.Size(); w != tt.w || h != tt.h {
					t.Errorf("Size() = %dx%d, want %dx%d", w, h, tt.w, tt.h)
				}
				if p.Texture() != nil {
					t.Error("Texture() should be nil before the first Present")
				}
			}
		})
	}
}

// =============================================================================
// Present
// =============================================================================

func TestPresent_CreatesTextureLazily(t *testing.T) {
	p, _ := New(4, 2)
	dc, creator := newDrawer()
	fb := redFrame(4, 2)

	if err := p.Present(fb, dc); err != nil {
		t.Fatalf("Present() = %v", err)
	}

	if len(creator.created) != 1 {
		t.Fatalf("created %d textures, want 1", len(creator.created))
	}
	tex := creator.created[0].(*mockTexture)
	if tex.width != 4 || tex.height != 2 {
		t.Errorf("texture size = %dx%d, want 4x2", tex.width, tex.height)
	}
	if !bytes.Equal(tex.data, fb.Data()) {
		t.Error("texture data does not match framebuffer")
	}
	if dc.drawn != tex || dc.drawCount != 1 {
		t.Errorf("drawn = %v (count %d), want the created texture once", dc.drawn, dc.drawCount)
	}
}

func TestPresent_ReusesTexture(t *testing.T) {
	p, _ := New(4, 2)
	dc, creator := newDrawer()
	fb := redFrame(4, 2)

	for range 3 {
		if err := p.Present(fb, dc); err != nil {
			t.Fatalf("Present() = %v", err)
		}
	}
	fb.Clear(trirast.Blue)
	if err := p.PresentAt(fb, dc, 10, 20); err != nil {
		t.Fatalf("PresentAt() = %v", err)
	}

	if len(creator.created) != 1 {
		t.Fatalf("created %d textures, want 1", len(creator.created))
	}
	tex := creator.created[0].(*mockTexture)
	if tex.updated != 3 {
		t.Errorf("updated = %d, want 3", tex.updated)
	}
	if !bytes.Equal(tex.data, fb.Data()) {
		t.Error("texture does not hold the last frame")
	}
	if dc.x != 10 || dc.y != 20 {
		t.Errorf("drawn at (%v, %v), want (10, 20)", dc.x, dc.y)
	}
}

func TestPresent_Errors(t *testing.T) {
	t.Run("no creator", func(t *testing.T) {
		p, _ := New(2, 2)
		err := p.Present(redFrame(2, 2), &mockDrawer{})
		if !errors.Is(err, ErrNoCreator) {
			t.Errorf("Present() = %v, want %v", err, ErrNoCreator)
		}
	})

	t.Run("size mismatch", func(t *testing.T) {
		p, _ := New(2, 2)
		dc, _ := newDrawer()
		err := p.Present(redFrame(3, 2), dc)
		if !errors.Is(err, ErrSizeMismatch) {
			t.Errorf("Present() = %v, want %v", err, ErrSizeMismatch)
		}
		if dc.drawCount != 0 {
			t.Error("nothing should be drawn on error")
		}
	})

	t.Run("creation failure", func(t *testing.T) {
		p, _ := New(2, 2)
		dc, creator := newDrawer()
		creator.failNext = true
		if err := p.Present(redFrame(2, 2), dc); err == nil {
			t.Error("Present() = nil, want creation error")
		}
		// The next frame retries.
		if err := p.Present(redFrame(2, 2), dc); err != nil {
			t.Errorf("retry Present() = %v", err)
		}
	})

	t.Run("nil texture", func(t *testing.T) {
		p, _ := New(2, 2)
		dc, creator := newDrawer()
		creator.returns = func(int, int, []byte) gpucontext.Texture { return nil }
		err := p.Present(redFrame(2, 2), dc)
		if !errors.Is(err, ErrNotDrawable) {
			t.Errorf("Present() = %v, want %v", err, ErrNotDrawable)
		}
	})

	t.Run("update failure", func(t *testing.T) {
		p, _ := New(2, 2)
		dc, creator := newDrawer()
		fb := redFrame(2, 2)
		if err := p.Present(fb, dc); err != nil {
			t.Fatal(err)
		}
		creator.created[0].(*mockTexture).failNext = true
		if err := p.Present(fb, dc); err == nil {
			t.Error("Present() = nil, want update error")
		}
	})

	t.Run("closed", func(t *testing.T) {
		p, _ := New(2, 2)
		dc, _ := newDrawer()
		_ = p.Close()
		if err := p.Present(redFrame(2, 2), dc); !errors.Is(err, ErrClosed) {
			t.Errorf("Present() = %v, want %v", err, ErrClosed)
		}
	})
}

func TestPresent_RecreatesStaticTexture(t *testing.T) {
	p, _ := New(2, 2)
	dc, creator := newDrawer()
	creator.returns = func(w, h int, _ []byte) gpucontext.Texture {
		return &staticTexture{width: w, height: h}
	}

	fb := redFrame(2, 2)
	for range 2 {
		if err := p.Present(fb, dc); err != nil {
			t.Fatalf("Present() = %v", err)
		}
	}

	if len(creator.created) != 2 {
		t.Fatalf("created %d textures, want 2", len(creator.created))
	}
	if !creator.created[0].(*staticTexture).destroyed {
		t.Error("old texture was not destroyed")
	}
}

func TestPresent_TextureFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  gputypes.TextureFormat
		wantErr error
	}{
		{"matching", gputypes.TextureFormatRGBA8Unorm, nil},
		{"swapped channels", gputypes.TextureFormatBGRA8Unorm, ErrFormatMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := New(2, 2)
			dc, creator := newDrawer()
			creator.returns = func(w, h int, data []byte) gpucontext.Texture {
				return &formatTexture{
					mockTexture: mockTexture{width: w, height: h, data: bytes.Clone(data)},
					format:      tt.format,
				}
			}

			err := p.Present(redFrame(2, 2), dc)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Present() = %v, want %v", err, tt.wantErr)
			}
			tex := creator.created[0].(*formatTexture)
			if tt.wantErr != nil {
				if !tex.destroyed {
					t.Error("rejected texture was not destroyed")
				}
				if p.Texture() != nil || dc.drawCount != 0 {
					t.Error("rejected texture was kept or drawn")
				}
				return
			}
			if p.Texture() != tex || dc.drawCount != 1 {
				t.Error("matching texture was not kept and drawn")
			}
		})
	}
}

func TestExtent(t *testing.T) {
	p, _ := New(640, 480)
	want := gputypes.Extent3D{Width: 640, Height: 480, DepthOrArrayLayers: 1}
	if got := p.Extent(); got != want {
		t.Errorf("Extent() = %+v, want %+v", got, want)
	}
	if got := trirast.NewFramebuffer(640, 480).Extent(); got != want {
		t.Errorf("framebuffer Extent() = %+v, want %+v", got, want)
	}

	_ = p.Resize(3, 1)
	want = gputypes.Extent3D{Width: 3, Height: 1, DepthOrArrayLayers: 1}
	if got := p.Extent(); got != want {
		t.Errorf("Extent() after Resize = %+v, want %+v", got, want)
	}
}

// =============================================================================
// Partial uploads
// =============================================================================

func TestUploadRows(t *testing.T) {
	p, _ := New(2, 4)
	creator := &mockCreator{
		returns: func(w, h int, data []byte) gpucontext.Texture {
			return &regionTexture{mockTexture: mockTexture{width: w, height: h, data: bytes.Clone(data)}}
		},
	}

	fb := redFrame(2, 4)
	if _, err := p.Upload(fb, creator); err != nil {
		t.Fatal(err)
	}

	copy(fb.Data()[2*fb.Stride():], bytes.Repeat([]byte{9}, fb.Stride()))
	if _, err := p.UploadRows(fb, nil, 2, 3); err != nil {
		t.Fatalf("UploadRows() = %v", err)
	}

	tex := creator.created[0].(*regionTexture)
	if len(tex.regions) != 1 || tex.regions[0] != [4]int{0, 2, 2, 1} {
		t.Errorf("regions = %v, want [[0 2 2 1]]", tex.regions)
	}
	if !bytes.Equal(tex.data, fb.Data()) {
		t.Error("texture does not match framebuffer after region upload")
	}
}

func TestUploadRows_FallsBackToFullUpload(t *testing.T) {
	p, _ := New(2, 2)
	creator := &mockCreator{}
	fb := redFrame(2, 2)

	// No texture yet: creates one.
	if _, err := p.UploadRows(fb, creator, 0, 1); err != nil {
		t.Fatal(err)
	}
	// No region support: full update.
	if _, err := p.UploadRows(fb, creator, 0, 1); err != nil {
		t.Fatal(err)
	}
	// Empty range: nothing to do.
	if _, err := p.UploadRows(fb, creator, 5, 9); err != nil {
		t.Fatal(err)
	}

	tex := creator.created[0].(*mockTexture)
	if len(creator.created) != 1 || tex.updated != 1 {
		t.Errorf("created %d, updated %d, want 1 and 1", len(creator.created), tex.updated)
	}
}

// =============================================================================
// Resize and Close
// =============================================================================

func TestResize(t *testing.T) {
	p, _ := New(2, 2)
	dc, creator := newDrawer()
	if err := p.Present(redFrame(2, 2), dc); err != nil {
		t.Fatal(err)
	}

	if err := p.Resize(2, 2); err != nil {
		t.Fatalf("Resize(same) = %v", err)
	}
	if p.Texture() == nil {
		t.Fatal("Resize to the same size dropped the texture")
	}

	if err := p.Resize(3, 1); err != nil {
		t.Fatalf("Resize() = %v", err)
	}
	if !creator.created[0].(*mockTexture).destroyed {
		t.Error("old texture was not destroyed")
	}
	if err := p.Present(redFrame(3, 1), dc); err != nil {
		t.Fatalf("Present() after resize = %v", err)
	}
	if len(creator.created) != 2 {
		t.Errorf("created %d textures, want 2", len(creator.created))
	}

	if err := p.Resize(0, 1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(0, 1) = %v, want %v", err, ErrInvalidDimensions)
	}
}

func TestClose(t *testing.T) {
	p, _ := New(2, 2)
	dc, creator := newDrawer()
	if err := p.Present(redFrame(2, 2), dc); err != nil {
		t.Fatal(err)
	}

	if err := p.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("second Close() = %v", err)
	}
	if !creator.created[0].(*mockTexture).destroyed {
		t.Error("Close did not destroy the texture")
	}
	if err := p.Resize(4, 4); !errors.Is(err, ErrClosed) {
		t.Errorf("Resize() after Close = %v, want %v", err, ErrClosed)
	}
}
