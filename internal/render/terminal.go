// Package render provides Canvas implementations for the game world.
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Screen is the part of tcell.Screen the terminal canvas draws through
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Terminal draws playfield coordinates onto terminal cells, scaling the
// field to fill the screen. Each cell is painted by its background color.
type Terminal struct {
	screen         Screen
	fieldW, fieldH float64
	cols, rows     int
	style          tcell.Style
}

func NewTerminal(screen Screen, fieldW, fieldH float64) *Terminal {
	t := &Terminal{
		screen: screen,
		fieldW: fieldW,
		fieldH: fieldH,
		style:  tcell.StyleDefault,
	}
	t.Resize()
	return t
}

// Resize picks up a new screen size. Call it after a tcell.EventResize.
func (t *Terminal) Resize() {
	t.cols, t.rows = t.screen.Size()
}

// Cell maps a playfield point to the terminal cell containing it
func (t *Terminal) Cell(x, y float64) (col, row int) {
	col = int(math.Floor(x / t.fieldW * float64(t.cols)))
	row = int(math.Floor(y / t.fieldH * float64(t.rows)))
	return col, row
}

// cellCenter maps a cell back to the playfield point at its middle
func (t *Terminal) cellCenter(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) * t.fieldW / float64(t.cols)
	y = (float64(row) + 0.5) * t.fieldH / float64(t.rows)
	return x, y
}

func (t *Terminal) set(col, row int, style tcell.Style) {
	if col < 0 || row < 0 || col >= t.cols || row >= t.rows {
		return
	}
	t.screen.SetContent(col, row, ' ', nil, style)
}

func (t *Terminal) rect(x, y, w, h float64, style tcell.Style) {
	c0, r0 := t.Cell(x, y)
	c1, r1 := t.Cell(x+w, y+h)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			t.set(col, row, style)
		}
	}
}

func (t *Terminal) ClearRect(x, y, w, h float64) {
	t.rect(x, y, w, h, tcell.StyleDefault)
}

func (t *Terminal) SetFillStyle(color string) {
	t.style = tcell.StyleDefault.Background(tcell.GetColor(color))
}

func (t *Terminal) FillRect(x, y, w, h float64) {
	t.rect(x, y, w, h, t.style)
}

// FillCircle paints every cell whose center lies inside the circle. The
// cell under the center is always painted so small bodies stay visible.
func (t *Terminal) FillCircle(x, y, r float64) {
	c0, r0 := t.Cell(x-r, y-r)
	c1, r1 := t.Cell(x+r, y+r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cx, cy := t.cellCenter(col, row)
			if (cx-x)*(cx-x)+(cy-y)*(cy-y) <= r*r {
				t.set(col, row, t.style)
			}
		}
	}
	col, row := t.Cell(x, y)
	t.set(col, row, t.style)
}

// StrokeLine steps from one end to the other one cell at a time
func (t *Terminal) StrokeLine(x1, y1, x2, y2 float64) {
	c0, r0 := t.Cell(x1, y1)
	c1, r1 := t.Cell(x2, y2)
	steps := max(abs(c1-c0), abs(r1-r0))
	if steps == 0 {
		t.set(c0, r0, t.style)
		return
	}
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		col := c0 + int(math.Round(f*float64(c1-c0)))
		row := r0 + int(math.Round(f*float64(r1-r0)))
		t.set(col, row, t.style)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
