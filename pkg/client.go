package pkg

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"
)

// Client dials the server instance of a game.
type Client struct {
	Address string
	Timeout time.Duration
}

func NewClient(address string, timeout time.Duration) *Client {
	return &Client{Address: address, Timeout: timeout}
}

// Connect dials the server, failing with ErrTimeout when the connection is
// not established in time.
func (cl *Client) Connect(ctx context.Context) (*Peer, error) {
	if err := ValidateAddress(cl.Address); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Printf("Connecting to %s", cl.Address)
	var d net.Dialer
	dial := func() (net.Conn, error) {
		return d.DialContext(ctx, "tcp", cl.Address)
	}
	conn, err := race(ctx, NewDeadline(cl.Timeout), dial, cancel, func(c net.Conn) { c.Close() })
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cl.Address, err)
	}
	log.Printf("Connected to %s", conn.RemoteAddr())
	return NewPeer(conn), nil
}
