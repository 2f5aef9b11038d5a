package gui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/qnkhuat/peerchess/pkg"
	"github.com/qnkhuat/peerchess/pkg/engine"
)

var (
	consoleDark  = color.New(color.BgHiBlack, color.FgHiWhite)
	consoleLight = color.New(color.BgWhite, color.FgBlack)
	consoleHigh  = color.New(color.BgYellow, color.FgBlack)
	consoleHint  = color.New(color.BgGreen, color.FgBlack)
	consoleCheck = color.New(color.BgRed, color.FgWhite)
	consoleLast  = color.New(color.BgCyan, color.FgBlack)
	consoleLabel = color.New(color.Faint)
	consoleMsg   = color.New(color.FgRed, color.Bold)
)

func consoleStyle(snap engine.Snapshot, cell int) *color.Color {
	c := snap.Cells[cell]
	col, row := engine.Coords(cell)
	switch {
	case c.Selected:
		return consoleHigh
	case c.Available:
		return consoleHint
	case c.InCheck:
		return consoleCheck
	case cell == snap.LastFrom || cell == snap.LastTo:
		return consoleLast
	case (row+col)%2 == 0:
		return consoleDark
	default:
		return consoleLight
	}
}

// Draw prints the board with the local side at the bottom, then the status.
func Draw(w io.Writer, snap engine.Snapshot, status pkg.Status) {
	for r := numrows - 1; r >= 0; r-- {
		first := r * numcols
		consoleLabel.Fprintf(w, "%s ", engine.Square(first, snap.Whites).Rank())
		for c := 0; c < numcols; c++ {
			cell := first + c
			consoleStyle(snap, cell).Fprintf(w, " %s ", snap.Cells[cell].Kind.Piece())
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, "  ")
	for c := 0; c < numcols; c++ {
		consoleLabel.Fprintf(w, " %s ", engine.Square(c, snap.Whites).File())
	}
	fmt.Fprintln(w)
	consoleMsg.Fprintln(w, status)
}

// Console is the line mode front end, used when stdin is not a terminal
// or when asked for. Each input word names a square to select.
type Console struct {
	match *pkg.Match
	in    io.Reader
	out   io.Writer
	mu    sync.Mutex
}

func NewConsole(m *pkg.Match, in io.Reader, out io.Writer) *Console {
	return &Console{match: m, in: in, out: out}
}

// Update implements pkg.Observer.
func (c *Console) Update(snap engine.Snapshot, status pkg.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	Draw(c.out, snap, status)
}

// Run reads squares until "quit", end of input or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	c.match.SetObserver(c)
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errc:
			return err
		case line := <-lines:
			for _, word := range strings.Fields(line) {
				if word == "quit" || word == "q" {
					return nil
				}
				c.selectSquare(word)
			}
		}
	}
}

func (c *Console) selectSquare(name string) {
	cell, err := engine.ParseSquare(strings.ToLower(name), c.match.Color().Whites())
	if err != nil {
		c.mu.Lock()
		consoleMsg.Fprintf(c.out, "%v\n", err)
		c.mu.Unlock()
		return
	}
	col, row := engine.Coords(cell)
	c.match.Select(col, row)
}
