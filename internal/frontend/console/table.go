package console

import (
	"strings"
	"unicode/utf8"

	"github.com/cory-johannsen/fairplay/internal/game/rules"
)

// Corner is the header of the table's first column: rows are the computer's
// move, columns the player's.
const Corner = `v PC\User >`

// RenderTable formats t as a boxed, left-aligned text table.
//
// Postcondition: Returns one line per border, header and row, each ending in "\n".
func RenderTable(t rules.Table, color bool) string {
	st := styler(color)
	n := t.Size()

	header := make([]string, n+1)
	header[0] = Corner
	copy(header[1:], t.Moves)

	rows := make([][]string, n)
	for r := 0; r < n; r++ {
		row := make([]string, n+1)
		row[0] = t.Moves[r]
		for c := 0; c < n; c++ {
			row[c+1] = st.paint(relationColor(t.At(r, c)), t.At(r, c).String())
		}
		rows[r] = row
	}

	widths := make([]int, n+1)
	for i, h := range header {
		widths[i] = width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	border := borderLine(widths)
	b.WriteString(border)
	writeRow(&b, header, widths, func(s string) string { return st.paint(Bold, s) })
	b.WriteString(border)
	for _, row := range rows {
		writeRow(&b, row, widths, nil)
	}
	b.WriteString(border)
	return b.String()
}

func relationColor(r rules.Relation) string {
	switch r {
	case rules.Win:
		return Green
	case rules.Lose:
		return Red
	default:
		return Dim
	}
}

func width(s string) int { return utf8.RuneCountInString(StripANSI(s)) }

func borderLine(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int, style func(string) string) {
	b.WriteByte('|')
	for i, cell := range cells {
		pad := widths[i] - width(cell)
		if style != nil {
			cell = style(cell)
		}
		b.WriteByte(' ')
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(" |")
	}
	b.WriteByte('\n')
}
