package pkg

import (
	"bufio"
	"fmt"
	"log"
	"net"
	"sync"

	"github.com/qnkhuat/peerchess/pkg/logging"
)

const (
	ConnQueueSize = 10
	maxFrameSize  = 4096
)

type PlayerColor int

const (
	White PlayerColor = iota
	Black
	Unknown
)

func ColorOf(whites bool) PlayerColor {
	if whites {
		return White
	}
	return Black
}

func (pc PlayerColor) String() string {
	switch pc {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

// Wire is the colour as written in a color message.
func (pc PlayerColor) Wire() string {
	if pc == White {
		return "whites"
	}
	return "blacks"
}

func (pc PlayerColor) Whites() bool {
	return pc == White
}

func (pc PlayerColor) Opposite() PlayerColor {
	switch pc {
	case White:
		return Black
	case Black:
		return White
	default:
		return Unknown
	}
}

func ParseColor(s string) (PlayerColor, error) {
	switch s {
	case "whites":
		return White, nil
	case "blacks":
		return Black, nil
	}
	return Unknown, fmt.Errorf("%w: bad color %q", ErrUnknownMessage, s)
}

// Peer is the other instance at the end of a TCP connection.
type Peer struct {
	Conn net.Conn
	Out  chan MessageInterface

	done      chan struct{}
	closeOnce sync.Once
}

func NewPeer(conn net.Conn) *Peer {
	return &Peer{
		Conn: conn,
		Out:  make(chan MessageInterface, ConnQueueSize),
		done: make(chan struct{}),
	}
}

func (p *Peer) String() string {
	return p.Conn.RemoteAddr().String()
}

// HandleRead decodes frames into in until the connection fails, then sends
// the cause to errc. Unknown frames are logged and skipped. Nothing is
// reported once Disconnect was called.
func (p *Peer) HandleRead(in chan<- MessageInterface, errc chan<- error) {
	scanner := bufio.NewScanner(p.Conn)
	scanner.Buffer(make([]byte, 0, maxFrameSize), maxFrameSize)
	scanner.Split(ScanFrames)
	for scanner.Scan() {
		frame := scanner.Text()
		if frame == "" {
			continue
		}
		logging.Debugf("recv %q", frame)
		msg, err := Decode(frame)
		if err != nil {
			log.Printf("Received unknown message: %v", err)
			continue
		}
		select {
		case in <- msg:
		case <-p.done:
			return
		}
	}
	err := scanner.Err()
	if err == nil {
		err = ErrPeerClosed
	}
	p.report(errc, err)
}

// HandleWrite sends queued messages until the peer is disconnected or a
// write fails.
func (p *Peer) HandleWrite(errc chan<- error) {
	for {
		select {
		case msg := <-p.Out:
			logging.Debugf("send %q", msg.Encode())
			if _, err := p.Conn.Write(Frame(msg)); err != nil {
				p.report(errc, fmt.Errorf("write %s: %w", msg.Type(), err))
				return
			}
		case <-p.done:
			return
		}
	}
}

// Send queues a message, giving up when the peer is gone.
func (p *Peer) Send(msg MessageInterface) {
	select {
	case p.Out <- msg:
	case <-p.done:
	}
}

func (p *Peer) Disconnect() {
	p.closeOnce.Do(func() {
		close(p.done)
		p.Conn.Close()
	})
}

func (p *Peer) closed() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

func (p *Peer) report(errc chan<- error, err error) {
	if p.closed() {
		return
	}
	select {
	case errc <- err:
	case <-p.done:
	}
}
