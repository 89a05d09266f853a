package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mark is one label on a face. X and Y are offsets from the center
// normalised to the label ring, x to the right and y downward.
type Mark struct {
	Label    string
	X, Y     float64
	Active   bool
	Disabled bool
}

// Face draws a clock face on a character grid. Cells are about twice as
// tall as wide, so a round face uses Rows = Cols/2.
type Face struct {
	Marks []Mark
	// HandX, HandY is the hand tip in the same units as the marks.
	HandX, HandY float64
	ShowHand     bool
	Cols, Rows   int
	// Radius is the label ring radius as a fraction of the half width.
	Radius float64
	Dimmed bool
}

type cellKind uint8

const (
	cellBlank cellKind = iota
	cellHand
	cellCenter
	cellMark
	cellMarkActive
	cellMarkDisabled
)

type cell struct {
	ch   rune
	kind cellKind
}

var (
	faceMarkStyle     = lipgloss.NewStyle().Foreground(ColorText)
	faceActiveStyle   = lipgloss.NewStyle().Foreground(ColorBase).Background(ColorAccent).Bold(true)
	faceDisabledStyle = lipgloss.NewStyle().Foreground(ColorDisabled)
	faceHandStyle     = lipgloss.NewStyle().Foreground(ColorAccent)
)

func (f Face) center() (float64, float64) {
	return float64(f.Cols-1) / 2, float64(f.Rows-1) / 2
}

func (f Face) extent() (float64, float64) {
	r := f.Radius
	if r <= 0 || r > 1 {
		r = 0.85
	}
	return float64(f.Cols) / 2 * r, float64(f.Rows) / 2 * r
}

// CellFraction maps a cell to the matching point of the face, as fractions
// of its width and height measured from the top-left corner.
func (f Face) CellFraction(col, row int) (float64, float64) {
	if f.Cols <= 0 || f.Rows <= 0 {
		return 0, 0
	}
	return (float64(col) + 0.5) / float64(f.Cols), (float64(row) + 0.5) / float64(f.Rows)
}

// Contains reports whether a cell lies on the face.
func (f Face) Contains(col, row int) bool {
	return col >= 0 && row >= 0 && col < f.Cols && row < f.Rows
}

func (f Face) Render() string {
	if f.Cols <= 0 || f.Rows <= 0 {
		return ""
	}
	grid := make([][]cell, f.Rows)
	for r := range grid {
		grid[r] = make([]cell, f.Cols)
		for c := range grid[r] {
			grid[r][c] = cell{ch: ' '}
		}
	}
	put := func(col, row int, ch rune, kind cellKind) {
		if col >= 0 && row >= 0 && col < f.Cols && row < f.Rows {
			grid[row][col] = cell{ch: ch, kind: kind}
		}
	}

	cx, cy := f.center()
	hx, hy := f.extent()
	if f.ShowHand {
		length := math.Hypot(f.HandX*hx, f.HandY*hy)
		steps := int(math.Ceil(length * 2))
		for i := 1; i <= steps; i++ {
			t := 0.8 * float64(i) / float64(steps)
			put(round(cx+f.HandX*t*hx), round(cy+f.HandY*t*hy), '·', cellHand)
		}
	}
	put(round(cx), round(cy), '●', cellCenter)

	for _, m := range f.Marks {
		kind := cellMark
		switch {
		case f.Dimmed || m.Disabled:
			kind = cellMarkDisabled
		case m.Active:
			kind = cellMarkActive
		}
		label := []rune(m.Label)
		start := round(cx+m.X*hx) - len(label)/2
		row := round(cy + m.Y*hy)
		for i, ch := range label {
			put(start+i, row, ch, kind)
		}
	}

	lines := make([]string, f.Rows)
	for r, row := range grid {
		lines[r] = renderCells(row)
	}
	return strings.Join(lines, "\n")
}

func renderCells(row []cell) string {
	var b strings.Builder
	for i := 0; i < len(row); {
		j := i
		var run []rune
		for j < len(row) && row[j].kind == row[i].kind {
			run = append(run, row[j].ch)
			j++
		}
		b.WriteString(styleFor(row[i].kind).Render(string(run)))
		i = j
	}
	return b.String()
}

func styleFor(kind cellKind) lipgloss.Style {
	switch kind {
	case cellHand, cellCenter:
		return faceHandStyle
	case cellMarkActive:
		return faceActiveStyle
	case cellMarkDisabled:
		return faceDisabledStyle
	case cellMark:
		return faceMarkStyle
	}
	return lipgloss.NewStyle()
}

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
