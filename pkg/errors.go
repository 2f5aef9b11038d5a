package pkg

import "errors"

var (
	ErrUnknownMessage = errors.New("unknown message")
	ErrTimeout        = errors.New("timed out waiting for peer")
	ErrPeerClosed     = errors.New("peer closed the connection")
)
