package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/peerchess/pkg"
	"github.com/qnkhuat/peerchess/pkg/engine"
	"github.com/rivo/tview"
)

// GUI is the full screen front end.
type GUI struct {
	App    *tview.Application
	Board  *tview.Table
	Status *tview.TextView
	Info   *tview.TextView
	Layout *tview.Grid
	Theme  Theme
	match  *pkg.Match
}

func New(m *pkg.Match, theme Theme) *GUI {
	app := tview.NewApplication()
	board := tview.NewTable()
	status := tview.NewTextView().SetTextColor(theme.Msg)
	info := tview.NewTextView().SetDynamicColors(true)

	sidebar := tview.NewGrid().
		SetRows(3, -1).
		SetColumns(-1).
		AddItem(status, 0, 0, 1, 1, 0, 0, false).
		AddItem(info, 1, 0, 1, 1, 0, 0, false)

	layout := tview.NewGrid().
		SetRows(-1, 10, -1).
		SetColumns(-1, 30, 30, -1).
		AddItem(tview.NewBox(), 0, 0, 1, 4, 0, 0, false).
		AddItem(tview.NewBox(), 2, 0, 1, 4, 0, 0, false).
		AddItem(board, 1, 1, 1, 1, 0, 0, true).
		AddItem(sidebar, 1, 2, 1, 1, 0, 0, false)

	g := &GUI{
		App:    app,
		Board:  board,
		Status: status,
		Info:   info,
		Layout: layout,
		Theme:  theme,
		match:  m,
	}
	g.initTable()
	g.draw(m.Engine.Snapshot(), m.Status())
	return g
}

func (g *GUI) initTable() {
	g.Board.SetSelectable(true, true)
	g.Board.Select(numrows-1, 1).SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			g.Stop()
		}
	}).SetSelectedFunc(func(row, col int) {
		if cell, ok := posToCell(row, col); ok {
			c, r := engine.Coords(cell)
			g.match.Select(c, r)
		}
	})
}

// Update implements pkg.Observer.
func (g *GUI) Update(snap engine.Snapshot, status pkg.Status) {
	g.App.QueueUpdateDraw(func() {
		g.draw(snap, status)
	})
}

func (g *GUI) draw(snap engine.Snapshot, status pkg.Status) {
	RenderTable(g.Board, snap, g.Theme)
	g.Status.SetText(string(status))
	g.Info.SetText(fmt.Sprintf("Game %s\nYou are %s (%s)\nPress Esc to quit",
		g.match.ID.String()[:8], g.match.Name, pkg.ColorOf(snap.Whites)))
}

// Run blocks until the user quits or Stop is called.
func (g *GUI) Run() error {
	g.match.SetObserver(g)
	return g.App.SetRoot(g.Layout, true).EnableMouse(true).Run()
}

func (g *GUI) Stop() {
	g.App.Stop()
}
