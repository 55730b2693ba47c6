package retained

import (
	"strings"
	"unicode"

	"github.com/agiangrant/stackui/tw"
)

// ============================================================================
// TextBuffer
// ============================================================================

// TextBuffer holds single-line editable text with a cursor and selection.
// Positions are rune indices; 0 is before the first rune.
type TextBuffer struct {
	content []rune
	cursor  int

	// selectionAnchor is where the selection started. No selection when
	// it equals cursor.
	selectionAnchor int

	maxLength  int // 0 = no limit
	password   bool
	charFilter func(r rune) bool
}

// NewTextBuffer creates a buffer holding text with the cursor at the end.
func NewTextBuffer(text string) *TextBuffer {
	b := &TextBuffer{content: []rune(text)}
	b.cursor = len(b.content)
	b.selectionAnchor = b.cursor
	return b
}

// Text returns the current text content.
func (b *TextBuffer) Text() string { return string(b.content) }

// Length returns the number of runes.
func (b *TextBuffer) Length() int { return len(b.content) }

func (b *TextBuffer) Cursor() int { return b.cursor }

// SetCursor moves the cursor, clearing the selection.
func (b *TextBuffer) SetCursor(pos int) {
	b.cursor = b.clampPosition(pos)
	b.selectionAnchor = b.cursor
}

// Selection returns the selection range with start <= end.
// Returns (cursor, cursor) if nothing is selected.
func (b *TextBuffer) Selection() (int, int) {
	if b.selectionAnchor < b.cursor {
		return b.selectionAnchor, b.cursor
	}
	return b.cursor, b.selectionAnchor
}

func (b *TextBuffer) HasSelection() bool { return b.selectionAnchor != b.cursor }

func (b *TextBuffer) SelectAll() {
	b.selectionAnchor = 0
	b.cursor = len(b.content)
}

// Insert replaces the selection with text, dropping newlines and runes
// rejected by the filter, and truncating at the maximum length.
// Reports whether the content changed.
func (b *TextBuffer) Insert(text string) bool {
	text = strings.NewReplacer("\n", "", "\r", "").Replace(text)
	runes := []rune(text)

	if b.charFilter != nil {
		filtered := runes[:0]
		for _, r := range runes {
			if b.charFilter(r) {
				filtered = append(filtered, r)
			}
		}
		runes = filtered
	}

	start, end := b.Selection()
	if b.maxLength > 0 {
		available := max(b.maxLength-(len(b.content)-(end-start)), 0)
		if len(runes) > available {
			runes = runes[:available]
		}
	}
	if len(runes) == 0 && start == end {
		return false
	}

	content := make([]rune, 0, len(b.content)-(end-start)+len(runes))
	content = append(content, b.content[:start]...)
	content = append(content, runes...)
	content = append(content, b.content[end:]...)
	b.content = content
	b.cursor = start + len(runes)
	b.selectionAnchor = b.cursor
	return true
}

// Delete removes runes. count > 0 deletes forward, count < 0 backward.
// A selection is deleted whatever the count. Reports whether the content changed.
func (b *TextBuffer) Delete(count int) bool {
	if b.deleteSelection() {
		return true
	}
	switch {
	case count > 0:
		end := min(b.cursor+count, len(b.content))
		return b.deleteRange(b.cursor, end)
	case count < 0:
		return b.deleteRange(max(b.cursor+count, 0), b.cursor)
	}
	return false
}

// DeleteWord deletes the next word when forward, else the previous one.
func (b *TextBuffer) DeleteWord(forward bool) bool {
	if b.deleteSelection() {
		return true
	}
	if forward {
		return b.deleteRange(b.cursor, b.findWordEnd(b.cursor))
	}
	return b.deleteRange(b.findWordStart(b.cursor), b.cursor)
}

func (b *TextBuffer) deleteSelection() bool {
	start, end := b.Selection()
	return b.deleteRange(start, end)
}

func (b *TextBuffer) deleteRange(start, end int) bool {
	if start >= end {
		return false
	}
	b.content = append(b.content[:start], b.content[end:]...)
	b.cursor = start
	b.selectionAnchor = start
	return true
}

// MoveCursor moves the cursor by delta runes. If extend is true the
// selection grows; otherwise a selection collapses to the end in the
// direction of travel.
func (b *TextBuffer) MoveCursor(delta int, extend bool) {
	if !extend && b.HasSelection() {
		start, end := b.Selection()
		if delta < 0 {
			b.cursor = start
		} else {
			b.cursor = end
		}
		b.selectionAnchor = b.cursor
		return
	}
	b.moveTo(b.cursor+delta, extend)
}

// MoveWord moves the cursor by one word.
func (b *TextBuffer) MoveWord(forward bool, extend bool) {
	if forward {
		b.moveTo(b.findWordEnd(b.cursor), extend)
	} else {
		b.moveTo(b.findWordStart(b.cursor), extend)
	}
}

func (b *TextBuffer) MoveToStart(extend bool) { b.moveTo(0, extend) }

func (b *TextBuffer) MoveToEnd(extend bool) { b.moveTo(len(b.content), extend) }

func (b *TextBuffer) moveTo(pos int, extend bool) {
	b.cursor = b.clampPosition(pos)
	if !extend {
		b.selectionAnchor = b.cursor
	}
}

// DisplayText returns the text to draw, masked in password mode.
func (b *TextBuffer) DisplayText() string {
	if !b.password {
		return string(b.content)
	}
	return strings.Repeat("•", len(b.content))
}

func (b *TextBuffer) clampPosition(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.content) {
		return len(b.content)
	}
	return pos
}

func (b *TextBuffer) findWordStart(pos int) int {
	// Skip any whitespace before cursor
	for pos > 0 && unicode.IsSpace(b.content[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(b.content[pos-1]) {
		pos--
	}
	return pos
}

func (b *TextBuffer) findWordEnd(pos int) int {
	length := len(b.content)
	// Skip any whitespace after cursor
	for pos < length && unicode.IsSpace(b.content[pos]) {
		pos++
	}
	for pos < length && !unicode.IsSpace(b.content[pos]) {
		pos++
	}
	return pos
}

// ============================================================================
// TextBox
// ============================================================================

// TextBoxWidget is a focusable single-line text input. The application owns
// the value: OnValueChanged reports every edit and the next tree is built
// from the updated state.
type TextBoxWidget[S any] struct {
	widgetBase
	buffer      *TextBuffer
	placeholder string
	onChange    func(*S, string)
	onSubmit    func(*S, string)

	// Layout of the last render, used to place the cursor from a click.
	scroll  int   // first visible rune
	offsets []int // x of each visible rune boundary, relative to the text origin
}

// TextBox creates a text input holding value.
func TextBox[S any](value, placeholder string, classes string) *TextBoxWidget[S] {
	tb := &TextBoxWidget[S]{
		widgetBase:  newWidgetBase(KindTextBox, classes),
		buffer:      NewTextBuffer(value),
		placeholder: placeholder,
	}
	tb.canFocus = true
	tb.setText(value)
	return tb
}

func (tb *TextBoxWidget[S]) Node() Node[S] { return WidgetNode[S](tb) }

func (tb *TextBoxWidget[S]) WithID(id WidgetID) *TextBoxWidget[S] {
	tb.id = id
	return tb
}

func (tb *TextBoxWidget[S]) WithSize(width, height uint32) *TextBoxWidget[S] {
	tb.setSize(width, height)
	return tb
}

// OnValueChanged sets the callback invoked with the text after every edit.
func (tb *TextBoxWidget[S]) OnValueChanged(fn func(*S, string)) *TextBoxWidget[S] {
	tb.onChange = fn
	return tb
}

// OnSubmit sets the callback invoked with the text when Enter is pressed.
func (tb *TextBoxWidget[S]) OnSubmit(fn func(*S, string)) *TextBoxWidget[S] {
	tb.onSubmit = fn
	return tb
}

// Password masks the displayed characters.
func (tb *TextBoxWidget[S]) Password() *TextBoxWidget[S] {
	tb.buffer.password = true
	return tb
}

// MaxLength limits the value to n runes.
func (tb *TextBoxWidget[S]) MaxLength(n int) *TextBoxWidget[S] {
	tb.buffer.maxLength = n
	return tb
}

// Filter rejects typed runes for which allow returns false.
func (tb *TextBoxWidget[S]) Filter(allow func(r rune) bool) *TextBoxWidget[S] {
	tb.buffer.charFilter = allow
	return tb
}

func (tb *TextBoxWidget[S]) Buffer() *TextBuffer { return tb.buffer }

func (tb *TextBoxWidget[S]) Value() string { return tb.buffer.Text() }

func (tb *TextBoxWidget[S]) AssignTextDimensions(measured Size) {
	tb.requireText("AssignTextDimensions")
	tb.text.Measured = measured
	pad := tb.padding(Insets{})
	if !tb.fixedW {
		tb.frame.Width = max(CurrentTheme().TextBoxWidth, pad.Horizontal()+1)
	}
	if !tb.fixedH {
		tb.frame.Height = measured.Height + pad.Vertical()
	}
}

func (tb *TextBoxWidget[S]) Click(*S) {}

// Press places the cursor under the pointer.
func (tb *TextBoxWidget[S]) Press(_ *S, at Point) {
	tb.buffer.SetCursor(tb.cursorAt(at))
}

func (tb *TextBoxWidget[S]) cursorAt(at Point) int {
	if len(tb.offsets) == 0 {
		return tb.buffer.Length()
	}
	x := at.X - tb.frame.Inset(tb.padding(Insets{})).X
	best := 0
	for i, off := range tb.offsets {
		if abs(off-x) < abs(tb.offsets[best]-x) {
			best = i
		}
	}
	return tb.scroll + best
}

func (tb *TextBoxWidget[S]) Update(app *S, ev Event) {
	b := tb.buffer
	changed := false
	switch ev.Kind {
	case EventTextInput:
		changed = b.Insert(ev.Text)
	case EventPointerDown:
		if ev.IsPrimary() && tb.frame.Contains(ev.Point()) {
			tb.Press(app, ev.Point())
		}
	case EventKeyDown:
		extend := ev.Mods.Shift()
		word := ev.Mods.Ctrl() || ev.Mods.Alt()
		switch ev.Key {
		case KeyBackspace:
			if word {
				changed = b.DeleteWord(false)
			} else {
				changed = b.Delete(-1)
			}
		case KeyDelete:
			if word {
				changed = b.DeleteWord(true)
			} else {
				changed = b.Delete(1)
			}
		case KeyLeft:
			if word {
				b.MoveWord(false, extend)
			} else {
				b.MoveCursor(-1, extend)
			}
		case KeyRight:
			if word {
				b.MoveWord(true, extend)
			} else {
				b.MoveCursor(1, extend)
			}
		case KeyHome:
			b.MoveToStart(extend)
		case KeyEnd:
			b.MoveToEnd(extend)
		case KeyA:
			if ev.Mods.Ctrl() || ev.Mods.Super() {
				b.SelectAll()
			}
		case KeyEnter:
			if tb.onSubmit != nil {
				tb.onSubmit(app, b.Text())
			}
		}
	}
	if changed {
		tb.text.Text = b.Text()
		if tb.onChange != nil {
			tb.onChange(app, b.Text())
		}
	}
}

// CarryFrom keeps the cursor, selection and scroll when the rebuilt box
// holds the same text.
func (tb *TextBoxWidget[S]) CarryFrom(prev Widget[S]) {
	p, ok := prev.(*TextBoxWidget[S])
	if !ok || p.buffer.Text() != tb.buffer.Text() {
		return
	}
	tb.buffer.cursor = p.buffer.cursor
	tb.buffer.selectionAnchor = p.buffer.selectionAnchor
	tb.scroll = p.scroll
	tb.offsets = p.offsets
}

func (tb *TextBoxWidget[S]) Render(c Canvas, state WidgetState) {
	p := tb.resolve(state)
	paintBox(c, tb.frame, p)

	inner := tb.frame.Inset(tb.padding(Insets{}))
	font := fontOf(p, tb.text.Font)
	fg := tw.Color(p.TextColor, CurrentTheme().Foreground)
	focused := state == StateFocused

	display := []rune(tb.buffer.DisplayText())
	if len(display) == 0 {
		tb.scroll, tb.offsets = 0, []int{0}
		if tb.placeholder != "" {
			c.DrawText(inner, font, tb.placeholder, dim(fg))
		}
		if focused {
			tb.drawCursor(c, inner, font, 0, fg)
		}
		return
	}

	// Scroll so the cursor stays inside the box.
	cursor := tb.buffer.Cursor()
	tb.scroll = min(tb.scroll, cursor)
	for tb.scroll < cursor && c.Measure(font, string(display[tb.scroll:cursor])).Width >= inner.Width {
		tb.scroll++
	}
	visible := display[tb.scroll:]

	tb.offsets = tb.offsets[:0]
	for i := 0; i <= len(visible); i++ {
		x := 0
		if i > 0 {
			x = int(c.Measure(font, string(visible[:i])).Width)
		}
		tb.offsets = append(tb.offsets, x)
		if x > int(inner.Width) {
			break
		}
	}

	if focused && tb.buffer.HasSelection() {
		start, end := tb.buffer.Selection()
		x0, x1 := tb.offsetOf(start), tb.offsetOf(end)
		sel := tw.Color(p.BorderColor, fg)&0xffffff00 | 0x60
		c.FillRect(Rect{X: inner.X + x0, Y: inner.Y, Width: uint32(x1 - x0), Height: inner.Height}, sel)
	}
	c.DrawText(inner, font, string(visible), fg)
	if focused {
		tb.drawCursor(c, inner, font, tb.offsetOf(cursor), fg)
	}
}

// offsetOf returns the x of rune boundary pos relative to the text origin,
// clamped to the visible range.
func (tb *TextBoxWidget[S]) offsetOf(pos int) int {
	i := pos - tb.scroll
	switch {
	case i < 0:
		return 0
	case i >= len(tb.offsets):
		return tb.offsets[len(tb.offsets)-1]
	}
	return tb.offsets[i]
}

func (tb *TextBoxWidget[S]) drawCursor(c Canvas, inner Rect, font Font, x int, color uint32) {
	line := c.Measure(font, "")
	c.FillRect(Rect{X: inner.X + x, Y: inner.Y + centerOffset(inner.Height, line.Height), Width: 1, Height: line.Height}, color)
}

// dim halves a colour's alpha.
func dim(c uint32) uint32 {
	return c&0xffffff00 | (c&0xff)/2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
