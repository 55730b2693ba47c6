// Package term hosts the engine in a terminal. One cell is one layout unit;
// bubbletea drives the frame loop and input, lipgloss renders colours.
package term

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
	"github.com/mattn/go-runewidth"

	"github.com/agiangrant/stackui/retained"
)

// halfBlock shows the top pixel as foreground and the bottom as background.
const halfBlock = '▀'

// Cell is a single character cell.
type Cell struct {
	// Rune is 0 in the trailing half of a wide character.
	Rune rune
	FG   uint32
	BG   uint32
}

// Canvas is a retained.Canvas backed by a grid of cells.
type Canvas struct {
	cells  []Cell
	width  int
	height int

	// limit is the terminal size; rendering is cropped to it when set.
	limit retained.Size
	frame string
}

var _ retained.Canvas = (*Canvas)(nil)

// NewCanvas creates a grid of width x height cells.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.resize(width, height)
	return c
}

func (c *Canvas) resize(width, height int) {
	c.width, c.height = width, height
	c.cells = make([]Cell, width*height)
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' '}
	}
}

// InBounds reports whether (x, y) is a cell of the grid.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Get returns the cell at (x, y), or an empty cell out of bounds.
func (c *Canvas) Get(x, y int) Cell {
	if !c.InBounds(x, y) {
		return Cell{Rune: ' '}
	}
	return c.cells[y*c.width+x]
}

func (c *Canvas) set(x, y int, cell Cell) {
	if c.InBounds(x, y) {
		c.cells[y*c.width+x] = cell
	}
}

// Measure returns the display width of text in cells. Lines are one cell tall.
func (c *Canvas) Measure(_ retained.Font, text string) retained.Size {
	return retained.Size{Width: uint32(runewidth.StringWidth(text)), Height: 1}
}

// Clear resets every cell to a blank with the given background.
func (c *Canvas) Clear(rgba uint32) {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', BG: rgba}
	}
}

// FillRect paints the background of the cells in r. Opaque fills erase the
// text underneath; translucent fills blend and keep it.
func (c *Canvas) FillRect(r retained.Rect, rgba uint32) {
	alpha := rgba & 0xff
	if alpha == 0 {
		return
	}
	c.eachCell(r, func(cell *Cell) {
		if alpha == 0xff {
			*cell = Cell{Rune: ' ', BG: rgba}
			return
		}
		cell.BG = blend(cell.BG, rgba)
		cell.FG = blend(cell.FG, rgba)
	})
}

func (c *Canvas) eachCell(r retained.Rect, fn func(*Cell)) {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.Right(), c.width), min(r.Bottom(), c.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			fn(&c.cells[y*c.width+x])
		}
	}
}

// DrawText writes text on the first row of r, clipped to r. The cells keep
// their background.
func (c *Canvas) DrawText(r retained.Rect, _ retained.Font, text string, rgba uint32) {
	if r.Height == 0 || r.Y < 0 || r.Y >= c.height {
		return
	}
	right := min(r.Right(), c.width)
	x := r.X
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > right {
			break
		}
		if x >= 0 {
			bg := c.Get(x, r.Y).BG
			c.set(x, r.Y, Cell{Rune: ch, FG: rgba, BG: bg})
			for i := 1; i < w; i++ {
				c.set(x+i, r.Y, Cell{FG: rgba, BG: bg})
			}
		}
		x += w
	}
}

// DrawImage renders img with half blocks, two pixels per cell, scaled to fit r.
func (c *Canvas) DrawImage(r retained.Rect, img image.Image) {
	if img == nil || r.Width == 0 || r.Height == 0 {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	w, h := fit(b.Dx(), b.Dy(), int(r.Width), int(r.Height)*2)
	scaled := imaging.Resize(img, w, h, imaging.Box)
	ox := r.X + (int(r.Width)-w)/2
	oy := r.Y + (int(r.Height)-(h+1)/2)/2
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			cx, cy := ox+x, oy+y/2
			if !c.InBounds(cx, cy) {
				continue
			}
			under := c.Get(cx, cy).BG
			top := blend(under, toRGBA(scaled.NRGBAAt(x, y)))
			bottom := under
			if y+1 < h {
				bottom = blend(under, toRGBA(scaled.NRGBAAt(x, y+1)))
			}
			c.set(cx, cy, Cell{Rune: halfBlock, FG: top, BG: bottom})
		}
	}
}

func fit(sw, sh, dw, dh int) (int, int) {
	if sw*dh > sh*dw {
		return dw, max(sh*dw/sw, 1)
	}
	return max(sw*dh/sh, 1), dh
}

// Size returns the grid size in cells.
func (c *Canvas) Size() retained.Size {
	return retained.Size{Width: uint32(c.width), Height: uint32(c.height)}
}

// Resize changes the grid. A terminal window cannot be resized from inside,
// so a root larger than the terminal is cropped by Present.
func (c *Canvas) Resize(size retained.Size) error {
	if int(size.Width) != c.width || int(size.Height) != c.height {
		c.resize(int(size.Width), int(size.Height))
	}
	return nil
}

// SetLimit records the terminal size reported by the host.
func (c *Canvas) SetLimit(size retained.Size) {
	c.limit = size
}

// Present renders the grid into the frame returned by Frame.
func (c *Canvas) Present() error {
	c.frame = c.render()
	return nil
}

// Frame returns the last presented frame as styled terminal output.
func (c *Canvas) Frame() string {
	return c.frame
}

func (c *Canvas) render() string {
	width, height := c.width, c.height
	if c.limit.Width > 0 {
		width = min(width, int(c.limit.Width))
	}
	if c.limit.Height > 0 {
		height = min(height, int(c.limit.Height))
	}

	lines := make([]string, 0, height)
	var run strings.Builder
	for y := 0; y < height; y++ {
		var line strings.Builder
		var style Cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			line.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(style.FG))).
				Background(lipgloss.Color(hex(style.BG))).
				Render(run.String()))
			run.Reset()
		}
		for x := 0; x < width; x++ {
			cell := c.Get(x, y)
			if cell.Rune == 0 {
				continue
			}
			if run.Len() > 0 && (cell.FG != style.FG || cell.BG != style.BG) {
				flush()
			}
			style = cell
			run.WriteRune(cell.Rune)
		}
		flush()
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// String returns the grid as plain text, one line per row.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			if r := c.Get(x, y).Rune; r != 0 {
				b.WriteRune(r)
			}
		}
		if y < c.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// blend composites src (0xRRGGBBAA) over an opaque dst.
func blend(dst, src uint32) uint32 {
	a := src & 0xff
	if a == 0xff {
		return src
	}
	mix := func(shift uint) uint32 {
		d := (dst >> shift) & 0xff
		s := (src >> shift) & 0xff
		return ((s*a + d*(0xff-a)) / 0xff) << shift
	}
	return mix(24) | mix(16) | mix(8) | 0xff
}

func toRGBA(c color.NRGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

func hex(rgba uint32) string {
	return fmt.Sprintf("#%06x", rgba>>8)
}
