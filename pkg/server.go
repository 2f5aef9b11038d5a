package pkg

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"
)

const ServerPort = 3000

// Server waits for the single peer of a game.
type Server struct {
	Listener net.Listener
	Timeout  time.Duration
}

func NewServer(addr string, timeout time.Duration) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	log.Printf("Listening at %s", ln.Addr())
	return &Server{Listener: ln, Timeout: timeout}, nil
}

func (s *Server) Addr() net.Addr {
	return s.Listener.Addr()
}

// Accept returns the first peer to connect and stops listening. If nobody
// connects within the timeout it fails with ErrTimeout.
func (s *Server) Accept(ctx context.Context) (*Peer, error) {
	defer s.Listener.Close()
	dl := NewDeadline(s.Timeout)
	log.Printf("Waiting for opponent (%s left)", dl)
	conn, err := race(ctx, dl, s.Listener.Accept, func() { s.Listener.Close() }, func(c net.Conn) { c.Close() })
	if err != nil {
		return nil, err
	}
	log.Printf("Opponent connected from %s", conn.RemoteAddr())
	return NewPeer(conn), nil
}

// Listen accepts one peer on the given port.
func Listen(ctx context.Context, port int, timeout time.Duration) (*Peer, error) {
	s, err := NewServer(ListenAddress(port), timeout)
	if err != nil {
		return nil, err
	}
	return s.Accept(ctx)
}
