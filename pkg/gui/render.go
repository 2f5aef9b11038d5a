package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
	"github.com/qnkhuat/peerchess/pkg/engine"
	"github.com/rivo/tview"
)

const (
	numrows = 8
	numcols = 8
)

// The table has the ranks in column 0 and the files in the last row. The
// local side is drawn at the bottom.

// posToCell maps a table position to a board cell, false for the labels.
func posToCell(row, col int) (int, bool) {
	if row < 0 || row >= numrows || col < 1 || col > numcols {
		return 0, false
	}
	return (numrows-row-1)*numcols + col - 1, true
}

// cellToPos is the inverse of posToCell.
func cellToPos(cell int) (row, col int) {
	c, r := engine.Coords(cell)
	return numrows - r - 1, c + 1
}

// squareBg returns the theme's color for a cell, marks first.
func squareBg(snap engine.Snapshot, cell int, t Theme) tcell.Color {
	c := snap.Cells[cell]
	col, row := engine.Coords(cell)
	switch {
	case c.Selected:
		return t.SquareHigh
	case c.Available:
		return t.SquareHint
	case c.InCheck:
		return t.SquareCheck
	case cell == snap.LastFrom || cell == snap.LastTo:
		return t.SquareLast
	case (row+col)%2 == 0:
		return t.SquareDark
	default:
		return t.SquareLight
	}
}

// RenderTable draws the snapshot into table.
func RenderTable(table *tview.Table, snap engine.Snapshot, t Theme) {
	for r := 0; r < numrows; r++ {
		first, _ := posToCell(r, 1)
		rank := engine.Square(first, snap.Whites).Rank()
		table.SetCell(r, 0, tview.NewTableCell(rank.String()).
			SetTextColor(t.Rank).
			SetAlign(tview.AlignCenter).
			SetSelectable(false))
	}
	table.SetCell(numrows, 0, tview.NewTableCell("").SetSelectable(false))
	for f := 1; f <= numcols; f++ {
		cell, _ := posToCell(numrows-1, f)
		file := engine.Square(cell, snap.Whites).File()
		table.SetCell(numrows, f, tview.NewTableCell(fmt.Sprintf(" %s", file.String())).
			SetTextColor(t.File).
			SetAlign(tview.AlignCenter).
			SetSelectable(false))
	}

	for cell := range snap.Cells {
		row, col := cellToPos(cell)
		p := snap.Cells[cell].Kind.Piece()
		fg := t.Black
		if p.Color() == chess.White {
			fg = t.White
		}
		table.SetCell(row, col, tview.NewTableCell(fmt.Sprintf(" %s ", p.String())).
			SetAlign(tview.AlignCenter).
			SetTextColor(fg).
			SetBackgroundColor(squareBg(snap, cell, t)))
	}
}
