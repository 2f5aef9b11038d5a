package gui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/qnkhuat/peerchess/pkg"
)

func TestConsoleRunStopsOnQuit(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	m := pkg.NewMatch(pkg.RoleServer, pkg.White)
	c := NewConsole(m, strings.NewReader("e2 zz\nquit\ne4\n"), &out)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), string(pkg.StatusConnecting)) {
		t.Fatalf("board not drawn on start:\n%s", out.String())
	}
	if !strings.Contains(out.String(), `"zz"`) {
		t.Fatalf("bad square not reported:\n%s", out.String())
	}
}

func TestConsoleRunEndsWithInput(t *testing.T) {
	var out bytes.Buffer
	m := pkg.NewMatch(pkg.RoleClient, pkg.Black)
	if err := NewConsole(m, strings.NewReader("a7\n"), &out).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}
