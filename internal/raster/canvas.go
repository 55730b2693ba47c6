// Package raster implements the software canvas: an *image.RGBA surface with
// text through golang.org/x/image/font and image scaling through imaging.
// It is the headless backend used by snapshots and tests.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/agiangrant/stackui/retained"
)

// DefaultFontSize is used for fonts with a zero size.
const DefaultFontSize = 16

const maxScaledImages = 64

var newFace = opentype.NewFace

// Options configures a Canvas.
type Options struct {
	// FontData is a TTF/OTF file. Empty selects Go Regular.
	FontData []byte

	// SnapshotDir receives frame-NNNNN.png on every Present when set.
	SnapshotDir string
}

// Canvas is a retained.Canvas drawing into memory.
type Canvas struct {
	mu       sync.Mutex
	img      *image.RGBA
	font     *opentype.Font
	faces    map[float32]font.Face
	fallback font.Face // DefaultFontSize, used when a size fails
	scaled   map[scaledKey]*image.NRGBA

	snapshotDir string
	frames      int
}

type scaledKey struct {
	src  image.Image
	w, h int
}

var _ retained.Canvas = (*Canvas)(nil)

// New creates a canvas of the given size.
func New(size retained.Size, opts Options) (*Canvas, error) {
	data := opts.FontData
	if len(data) == 0 {
		data = goregular.TTF
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	fallback, err := newFace(f, &opentype.FaceOptions{Size: DefaultFontSize, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("create default face: %w", err)
	}
	if opts.SnapshotDir != "" {
		if err := os.MkdirAll(opts.SnapshotDir, 0o755); err != nil {
			return nil, fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	return &Canvas{
		img:         newSurface(size),
		font:        f,
		faces:       map[float32]font.Face{DefaultFontSize: fallback},
		fallback:    fallback,
		scaled:      make(map[scaledKey]*image.NRGBA),
		snapshotDir: opts.SnapshotDir,
	}, nil
}

// LoadFont reads a font file for Options.FontData.
func LoadFont(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}
	return data, nil
}

func newSurface(size retained.Size) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, int(size.Width), int(size.Height)))
}

// face returns the cached face for a size. Callers hold mu.
func (c *Canvas) face(f retained.Font) font.Face {
	size := f.Size
	if size <= 0 {
		size = DefaultFontSize
	}
	if face, ok := c.faces[size]; ok {
		return face
	}
	face, err := newFace(c.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("raster: font size %g: %v; using %d", size, err, DefaultFontSize)
		face = c.fallback
	}
	c.faces[size] = face
	return face
}

// Measure returns the advance width and line height of text.
func (c *Canvas) Measure(f retained.Font, text string) retained.Size {
	c.mu.Lock()
	defer c.mu.Unlock()
	face := c.face(f)
	height := face.Metrics().Height.Ceil()
	if text == "" {
		return retained.Size{Height: uint32(height)}
	}
	width := font.MeasureString(face, text).Ceil()
	return retained.Size{Width: uint32(width), Height: uint32(height)}
}

// Clear fills the surface with color, replacing what was there.
func (c *Canvas) Clear(rgba uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(toColor(rgba)), image.Point{}, draw.Src)
}

// FillRect blends color over r.
func (c *Canvas) FillRect(r retained.Rect, rgba uint32) {
	if rgba&0xff == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	dst := toRect(r).Intersect(c.img.Bounds())
	if dst.Empty() {
		return
	}
	draw.Draw(c.img, dst, image.NewUniform(toColor(rgba)), image.Point{}, draw.Over)
}

// DrawText draws text with its top-left at r's origin, clipped to r.
func (c *Canvas) DrawText(r retained.Rect, f retained.Font, text string, rgba uint32) {
	if text == "" || rgba&0xff == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	clip := toRect(r).Intersect(c.img.Bounds())
	if clip.Empty() {
		return
	}
	face := c.face(f)
	d := font.Drawer{
		Dst:  c.img.SubImage(clip).(*image.RGBA),
		Src:  image.NewUniform(toColor(rgba)),
		Face: face,
		Dot:  fixed.P(r.X, r.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// DrawImage scales img to fit r, keeping its aspect ratio, and centers it.
func (c *Canvas) DrawImage(r retained.Rect, img image.Image) {
	if img == nil || r.Width == 0 || r.Height == 0 {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	w, h := fitSize(b.Dx(), b.Dy(), int(r.Width), int(r.Height))
	c.mu.Lock()
	defer c.mu.Unlock()
	scaled := c.scale(img, w, h)
	at := image.Pt(r.X+(int(r.Width)-w)/2, r.Y+(int(r.Height)-h)/2)
	dst := image.Rectangle{Min: at, Max: at.Add(image.Pt(w, h))}.Intersect(c.img.Bounds())
	if dst.Empty() {
		return
	}
	draw.Draw(c.img, dst, scaled, dst.Min.Sub(at), draw.Over)
}

// scale resizes img, caching by source when the image value is comparable.
func (c *Canvas) scale(img image.Image, w, h int) *image.NRGBA {
	if !reflect.TypeOf(img).Comparable() {
		return imaging.Resize(img, w, h, imaging.Lanczos)
	}
	key := scaledKey{src: img, w: w, h: h}
	if out, ok := c.scaled[key]; ok {
		return out
	}
	if len(c.scaled) >= maxScaledImages {
		clear(c.scaled)
	}
	out := imaging.Resize(img, w, h, imaging.Lanczos)
	c.scaled[key] = out
	return out
}

// fitSize scales (sw, sh) to the largest size inside (dw, dh) with the same ratio.
func fitSize(sw, sh, dw, dh int) (int, int) {
	if sw*dh > sh*dw {
		h := sh * dw / sw
		return dw, max(h, 1)
	}
	w := sw * dh / sh
	return max(w, 1), dh
}

// Size returns the surface size.
func (c *Canvas) Size() retained.Size {
	c.mu.Lock()
	defer c.mu.Unlock()
	b := c.img.Bounds()
	return retained.Size{Width: uint32(b.Dx()), Height: uint32(b.Dy())}
}

// Resize replaces the surface. Contents are discarded.
func (c *Canvas) Resize(size retained.Size) error {
	if size.Width == 0 || size.Height == 0 {
		return fmt.Errorf("invalid surface size %dx%d", size.Width, size.Height)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.img = newSurface(size)
	return nil
}

// Present finishes a frame, writing a snapshot when a directory is configured.
func (c *Canvas) Present() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames++
	if c.snapshotDir == "" {
		return nil
	}
	path := filepath.Join(c.snapshotDir, fmt.Sprintf("frame-%05d.png", c.frames))
	if err := imaging.Save(c.img, path); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

// Frames returns the number of presented frames.
func (c *Canvas) Frames() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}

// Image returns a copy of the current surface.
func (c *Canvas) Image() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out
}

// SavePNG writes the current surface to path.
func (c *Canvas) SavePNG(path string) error {
	if err := imaging.Save(c.Image(), path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func toColor(rgba uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(rgba >> 24),
		G: uint8(rgba >> 16),
		B: uint8(rgba >> 8),
		A: uint8(rgba),
	}
}

func toRect(r retained.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}
