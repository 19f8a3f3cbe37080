package pdf

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/dochtml"
)

// defaultFontSize is used for glyphs that carry no font size.
const defaultFontSize = 10.0

// spaceGap is the gap, in multiples of the font size, that separates words.
const spaceGap = 0.15

// glyph is a positioned piece of text as reported by the PDF content stream.
// Y grows upwards, so the top of the page has the largest Y.
type glyph struct {
	X, Y, W, Size float64
	S             string
}

func (g glyph) size() float64 {
	if g.Size > 0 {
		return g.Size
	}
	return defaultFontSize
}

// end returns the right edge of the glyph. Fonts without width tables
// report W as zero, so the width is then estimated from the font size.
func (g glyph) end() float64 {
	if g.W > 0 {
		return g.X + g.W
	}
	return g.X + g.size()*0.5*float64(utf8.RuneCountInString(g.S))
}

// cell is a run of text on one row, positioned by its first glyph.
type cell struct {
	text       string
	x, y, size float64
}

// layout groups glyphs into rows of cells and finds tables among them.
type layout struct {
	cellGap      float64
	minTableRows int
}

// rows returns the page's text rows from top to bottom. Each row is split
// into cells wherever the horizontal gap exceeds cellGap font sizes.
// Rows with no visible text are dropped.
func (l layout) rows(gs []glyph) [][]cell {
	gs = append([]glyph(nil), gs...)
	sort.SliceStable(gs, func(i, j int) bool {
		if gs[i].Y != gs[j].Y {
			return gs[i].Y > gs[j].Y
		}
		return gs[i].X < gs[j].X
	})

	var rows [][]cell
	var line []glyph
	flush := func() {
		if cells := l.cells(line); len(cells) > 0 {
			rows = append(rows, cells)
		}
		line = line[:0]
	}

	for _, g := range gs {
		if g.S == "" {
			continue
		}
		if len(line) > 0 && line[0].Y-g.Y > line[0].size()*0.5 {
			flush()
		}
		line = append(line, g)
	}
	flush()

	return rows
}

func (l layout) cells(line []glyph) []cell {
	if len(line) == 0 {
		return nil
	}
	sorted := append([]glyph(nil), line...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var cells []cell
	var sb strings.Builder
	first := sorted[0]
	emit := func() {
		if text := strings.TrimSpace(sb.String()); text != "" {
			cells = append(cells, cell{text: text, x: first.X, y: first.Y, size: first.size()})
		}
		sb.Reset()
	}

	for i, g := range sorted {
		if i > 0 {
			prev := sorted[i-1]
			gap := g.X - prev.end()
			switch {
			case gap > l.cellGap*g.size():
				emit()
			case gap > spaceGap*g.size():
				if !strings.HasSuffix(sb.String(), " ") && !strings.HasPrefix(g.S, " ") {
					sb.WriteByte(' ')
				}
			}
		}
		if strings.TrimSpace(sb.String()) == "" && strings.TrimSpace(g.S) != "" {
			first = g
		}
		sb.WriteString(g.S)
	}
	emit()

	return cells
}

// pageText joins the cells of each row with a space and the rows with newlines.
func pageText(rows [][]cell) string {
	lines := make([]string, 0, len(rows))
	for _, cells := range rows {
		texts := make([]string, 0, len(cells))
		for _, c := range cells {
			texts = append(texts, c.text)
		}
		lines = append(lines, strings.Join(texts, " "))
	}
	return strings.Join(lines, "\n")
}

// tables returns every run of at least minTableRows consecutive rows that
// have two or more cells. Inside a run, a single-cell row stays in the
// table when it starts on one of the table's columns and follows the
// previous row at no more than 1.5 times the widest row pitch seen so far;
// its other cells are left empty.
func (l layout) tables(rows [][]cell) []dochtml.Table {
	var tables []dochtml.Table
	var run [][]cell
	var cols []float64
	multi := 0
	pitch := 0.0

	closeRun := func() {
		if multi >= l.minTableRows {
			tables = append(tables, newTable(run, cols))
		}
		run, cols, multi, pitch = nil, nil, 0, 0
	}

	for _, cells := range rows {
		if len(run) > 0 {
			d := run[len(run)-1][0].y - cells[0].y
			if len(cells) >= 2 {
				pitch = max(pitch, d)
			} else if column(cols, cells[0]) < 0 || d > 1.5*pitch {
				closeRun()
				continue
			}
		} else if len(cells) < 2 {
			continue
		}
		if len(cells) >= 2 {
			multi++
			cols = addColumns(cols, cells)
		}
		run = append(run, cells)
	}
	closeRun()

	return tables
}

// addColumns merges the start positions of cells into cols, keeping cols sorted.
func addColumns(cols []float64, cells []cell) []float64 {
	for _, c := range cells {
		if column(cols, c) >= 0 {
			continue
		}
		cols = append(cols, c.x)
	}
	sort.Float64s(cols)
	return cols
}

// column returns the index of the column c starts on, or -1.
func column(cols []float64, c cell) int {
	for i, x := range cols {
		if math.Abs(x-c.x) <= c.size {
			return i
		}
	}
	return -1
}

func newTable(rows [][]cell, cols []float64) dochtml.Table {
	table := dochtml.Table{Rows: make([]dochtml.Row, 0, len(rows))}
	for _, cells := range rows {
		row := dochtml.Row{Cells: make([]string, len(cols))}
		next := 0
		for _, c := range cells {
			i := column(cols, c)
			if i < next {
				i = next
			}
			if i >= len(row.Cells) {
				break
			}
			row.Cells[i] = c.text
			next = i + 1
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
