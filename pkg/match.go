package pkg

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/qnkhuat/peerchess/pkg/engine"
	"github.com/qnkhuat/peerchess/pkg/logging"
)

type Role int

const (
	RoleServer Role = iota
	RoleClient
)

func (r Role) String() string {
	if r == RoleServer {
		return "server"
	}
	return "client"
}

// Observer is told about every change a front end should draw.
type Observer interface {
	Update(snap engine.Snapshot, status Status)
}

// Match plays one game against a peer. Peer messages, local clicks and
// engine notifications are all handled on the goroutine running Run, so
// the engine only ever sees one caller at a time.
type Match struct {
	ID     uuid.UUID
	Name   string
	Role   Role
	Engine *engine.Engine

	In     chan MessageInterface
	wake   chan struct{}
	clicks chan [2]int
	errc   chan error

	peer      *Peer
	ready     atomic.Bool
	connected atomic.Bool
	finished  atomic.Bool

	mu       sync.Mutex
	observer Observer
	// finished local moves waiting to be relayed, in order
	pending []MessageInterface
}

func NewMatch(role Role, color PlayerColor, opts ...engine.Option) *Match {
	m := &Match{
		ID:     uuid.New(),
		Name:   NewName(),
		Role:   role,
		In:     make(chan MessageInterface, ConnQueueSize),
		wake:   make(chan struct{}, 1),
		clicks: make(chan [2]int, ConnQueueSize),
		errc:   make(chan error, 2),
	}
	m.Engine = engine.New(color.Whites(), m, opts...)
	return m
}

func (m *Match) Color() PlayerColor {
	return ColorOf(m.Engine.Whites())
}

func (m *Match) SetObserver(o Observer) {
	m.mu.Lock()
	m.observer = o
	m.mu.Unlock()
	m.notify()
}

// Ready reports whether colours are settled and moves may be played.
func (m *Match) Ready() bool {
	return m.ready.Load()
}

// MoveDone implements engine.Listener. The move is queued for the game loop
// and never dropped.
func (m *Match) MoveDone(notation string) {
	m.mu.Lock()
	m.pending = append(m.pending, MessageMoveDone{Move: notation})
	m.mu.Unlock()
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

func (m *Match) takePending() []MessageInterface {
	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := m.pending
	m.pending = nil
	return msgs
}

// OpponentMove implements engine.Listener.
func (m *Match) OpponentMove(from, to int) {
	logging.Debugf("[%s] opponent moved %s to %s", m.ID,
		engine.SquareName(from, m.Engine.Whites()), engine.SquareName(to, m.Engine.Whites()))
}

// Select forwards a click on the local board. Clicks before the colours are
// agreed, or after the game ended, are dropped.
func (m *Match) Select(col, row int) {
	select {
	case m.clicks <- [2]int{col, row}:
	default:
	}
}

// Status summarises the game for display.
func (m *Match) Status() Status {
	if m.finished.Load() {
		return StatusDisconnect
	}
	if !m.connected.Load() {
		return StatusConnecting
	}
	if !m.ready.Load() {
		return StatusNegotiating
	}
	snap := m.Engine.Snapshot()
	switch snap.Outcome {
	case engine.Checkmate:
		if snap.SideToMove == snap.Whites {
			return StatusLose
		}
		return StatusWin
	case engine.Stalemate:
		return StatusDraw
	}
	if snap.Wait {
		return StatusTheirTurn
	}
	if snap.InCheck {
		return StatusCheck
	}
	return StatusYourTurn
}

func (m *Match) notify() {
	m.mu.Lock()
	o := m.observer
	m.mu.Unlock()
	if o != nil {
		o.Update(m.Engine.Snapshot(), m.Status())
	}
}

// Run plays the game over p until ctx is done or the connection fails. The
// peer is disconnected on return.
func (m *Match) Run(ctx context.Context, p *Peer) error {
	m.peer = p
	m.connected.Store(true)
	defer func() {
		p.Disconnect()
		m.finished.Store(true)
		m.notify()
	}()
	log.Printf("[%s] Match started as %s (%s) with %s", m.ID, m.Role, m.Color(), p)

	go p.HandleRead(m.In, m.errc)
	go p.HandleWrite(m.errc)
	if m.Role == RoleServer {
		p.Send(NewHello(m.Name))
	}
	m.notify()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-m.errc:
			log.Printf("[%s] Connection lost: %v", m.ID, err)
			return err
		case msg := <-m.In:
			if msg.Type() == TypeMessageMoveDone {
				log.Printf("[%s] Ignored %s from peer", m.ID, msg.Encode())
				continue
			}
			if err := m.handle(msg); err != nil {
				log.Printf("[%s] %v", m.ID, err)
				return err
			}
		case <-m.wake:
			for _, msg := range m.takePending() {
				if err := m.handle(msg); err != nil {
					return err
				}
			}
		case c := <-m.clicks:
			if !m.ready.Load() || m.Engine.Outcome() != engine.InProgress {
				continue
			}
			m.Engine.SelectCell(c[0], c[1])
		}
		m.notify()
	}
}

func (m *Match) handle(msg MessageInterface) error {
	logging.Debugf("[%s] handle %s", m.ID, msg.Type())
	switch msg := msg.(type) {
	case MessageHello:
		log.Printf("[%s] %s", m.ID, msg.Greeting)
		m.peer.Send(MessageColorQuery{})

	case MessageColorQuery:
		m.peer.Send(MessageColor{Color: m.Color()})
		m.ready.Store(true)

	case MessageColor:
		color := msg.Color.Opposite()
		m.Engine.Init(color.Whites())
		m.ready.Store(true)
		log.Printf("[%s] Opponent plays %s, playing %s", m.ID, msg.Color, color)

	case MessageMove:
		if err := m.Engine.ApplyRemote(msg.Move); err != nil {
			return fmt.Errorf("opponent move %q: %w", msg.Move, err)
		}
		m.logOutcome()

	case MessageMoveDone:
		m.peer.Send(MessageMove{Move: msg.Move})
		m.logOutcome()

	default:
		return fmt.Errorf("%w: %s", ErrUnknownMessage, msg.Type())
	}
	return nil
}

func (m *Match) logOutcome() {
	if o := m.Engine.Outcome(); o != engine.InProgress {
		log.Printf("[%s] %s: %s", m.ID, o, m.Engine.FEN())
	}
}

// Disconnected reports whether err only means the game ended normally.
func Disconnected(err error) bool {
	return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, ErrPeerClosed)
}
