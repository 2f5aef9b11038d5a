package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qnkhuat/peerchess/pkg"
	"github.com/qnkhuat/peerchess/pkg/engine"
	"github.com/qnkhuat/peerchess/pkg/gui"
	"github.com/qnkhuat/peerchess/pkg/logging"
	"golang.org/x/term"
)

func main() {
	create := flag.Bool("create", getenb("PEERCHESS_CREATE", false), "create a game and wait for the opponent")
	port := flag.Int("port", getenvInt("PEERCHESS_PORT", pkg.ServerPort), "port to listen on with -create")
	connect := flag.String("connect", getenv("PEERCHESS_CONNECT", ""), `join a game at "<ip>:<port>"`)
	whites := flag.Bool("whites", getenb("PEERCHESS_WHITES", false), "play whites (the server's choice wins)")
	timeout := flag.Duration("timeout", getenvDuration("PEERCHESS_TIMEOUT", pkg.DefaultTimeout), "how long to wait for the opponent")
	logPath := flag.String("log", getenv("PEERCHESS_LOG", "./log"), "path to log file")
	debug := flag.Bool("debug", getenb("PEERCHESS_DEBUG", false), "log protocol traffic")
	strict := flag.Bool("strict", getenb("PEERCHESS_STRICT", false), "reject illegal moves from the opponent")
	console := flag.Bool("console", getenb("PEERCHESS_CONSOLE", false), "line mode instead of the full screen board")
	themeName := flag.String("theme", getenv("PEERCHESS_THEME", gui.ThemeBasic.Name), "board theme name or path to a JSON theme file")
	flag.Parse()

	if *create == (*connect != "") {
		fmt.Fprintln(os.Stderr, "exactly one of -create or -connect is required")
		flag.Usage()
		os.Exit(2)
	}
	theme, err := gui.LoadTheme(*themeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	role := pkg.RoleClient
	if *create {
		role = pkg.RoleServer
	}
	logging.InitLog(*logPath, fmt.Sprintf("%s: ", role))
	logging.Debug = *debug

	var opts []engine.Option
	if *strict {
		opts = append(opts, engine.Strict())
	}
	m := pkg.NewMatch(role, pkg.ColorOf(*whites), opts...)
	log.Printf("New %s %s as %s", role, m.ID, m.Name)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- play(ctx, m, *create, *port, *connect, *timeout)
	}()

	var runErr error
	if *console || !term.IsTerminal(int(os.Stdin.Fd())) {
		cons := gui.NewConsole(m, os.Stdin, os.Stdout)
		runErr = runUntil(ctx, done, func() error { return cons.Run(ctx) }, func() {})
	} else {
		g := gui.New(m, theme)
		runErr = runUntil(ctx, done, g.Run, g.Stop)
	}
	stop()
	m.Engine.Clear()
	if !pkg.Disconnected(runErr) {
		log.Printf("Exit: %v", runErr)
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
	log.Printf("Bye")
}

// play connects to the opponent and runs the match to its end.
func play(ctx context.Context, m *pkg.Match, create bool, port int, addr string, timeout time.Duration) error {
	var (
		p   *pkg.Peer
		err error
	)
	if create {
		p, err = pkg.Listen(ctx, port, timeout)
	} else {
		p, err = pkg.NewClient(addr, timeout).Connect(ctx)
	}
	if err != nil {
		return err
	}
	return m.Run(ctx, p)
}

// runUntil runs the front end until the user quits or the game ends. The
// front end stays up after the game ends so the final board can be seen;
// its own exit then reports the game's result.
func runUntil(ctx context.Context, done <-chan error, front func() error, stopFront func()) error {
	frontDone := make(chan error, 1)
	go func() { frontDone <- front() }()

	select {
	case err := <-frontDone:
		return err
	case <-ctx.Done():
		stopFront()
		<-frontDone
		return nil
	case err := <-done:
		if !pkg.Disconnected(err) {
			stopFront()
			<-frontDone
			return err
		}
		log.Printf("Game over: %v", err)
		return <-frontDone
	}
}
