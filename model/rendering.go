package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearScreen = "\033[H\033[2J"
)

// TerminalRenderer paints a universe as text. It keeps a glyph per cell and
// only repaints the indices listed in the universe diff.
type TerminalRenderer struct {
	out    io.Writer
	au     aurora.Aurora
	width  int
	glyphs []string
}

// NewTerminalRenderer writes to out, with ANSI colors when color is set
func NewTerminalRenderer(out io.Writer, color bool) *TerminalRenderer {
	return &TerminalRenderer{out: out, au: aurora.NewAurora(color)}
}

func (r *TerminalRenderer) glyph(c Cell) string {
	if c == Alive {
		return r.au.Green(gridPosBlock).String()
	}
	return gridPosEmpty
}

// Sync repaints every cell of u. Call it after attaching a new universe.
func (r *TerminalRenderer) Sync(u *Universe) {
	r.width = u.Width()
	if len(r.glyphs) != u.Size() {
		r.glyphs = make([]string, u.Size())
	}
	for i, c := range u.Cells() {
		r.glyphs[i] = r.glyph(c)
	}
}

// Update repaints only the cells in u's diff. A universe of a different shape
// than the last synced one is repainted in full.
func (r *TerminalRenderer) Update(u *Universe) {
	if r.width != u.Width() || len(r.glyphs) != u.Size() {
		r.Sync(u)
		return
	}
	cells := u.Cells()
	for _, idx := range u.Diff() {
		r.glyphs[idx] = r.glyph(cells[idx])
	}
}

// Display writes the current frame
func (r *TerminalRenderer) Display() error {
	var b strings.Builder
	for i, g := range r.glyphs {
		b.WriteString(g)
		if (i+1)%r.width == 0 {
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := fmt.Fprint(r.out, clearScreen)
	return err
}
