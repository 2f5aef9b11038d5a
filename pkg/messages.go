package pkg

import (
	"bytes"
	"fmt"
	"strings"
)

type MessageType int

const (
	TypeMessageHello MessageType = iota
	TypeMessageColorQuery
	TypeMessageColor
	TypeMessageMove
	TypeMessageMoveDone
)

func (m MessageType) String() string {
	switch m {
	case TypeMessageHello:
		return "TypeMessageHello"
	case TypeMessageColorQuery:
		return "TypeMessageColorQuery"
	case TypeMessageColor:
		return "TypeMessageColor"
	case TypeMessageMove:
		return "TypeMessageMove"
	case TypeMessageMoveDone:
		return "TypeMessageMoveDone"
	default:
		return "Unknown MessageType"
	}
}

const (
	helloToken     = "Hello"
	colorQuery     = "color"
	colorPrefix    = "color:"
	movePrefix     = "move:"
	moveDonePrefix = "move_done:"
)

// MessageInterface is one frame of the peer protocol. Encode returns the
// frame text without its terminator.
type MessageInterface interface {
	Type() MessageType
	Encode() string
}

// MessageHello is the server greeting. Any frame containing "Hello" is one.
type MessageHello struct {
	Greeting string
}

func NewHello(name string) MessageHello {
	return MessageHello{Greeting: fmt.Sprintf("%s from chess game server %s", helloToken, name)}
}

func (m MessageHello) Type() MessageType {
	return TypeMessageHello
}

func (m MessageHello) Encode() string {
	if !strings.Contains(m.Greeting, helloToken) {
		return helloToken
	}
	return m.Greeting
}

// MessageColorQuery asks the server which colour it plays.
type MessageColorQuery struct{}

func (m MessageColorQuery) Type() MessageType {
	return TypeMessageColorQuery
}

func (m MessageColorQuery) Encode() string {
	return colorQuery
}

// MessageColor answers a colour query with the sender's own colour.
type MessageColor struct {
	Color PlayerColor
}

func (m MessageColor) Type() MessageType {
	return TypeMessageColor
}

func (m MessageColor) Encode() string {
	return colorPrefix + m.Color.Wire()
}

// MessageMove carries the opponent's move notation.
type MessageMove struct {
	Move string
}

func (m MessageMove) Type() MessageType {
	return TypeMessageMove
}

func (m MessageMove) Encode() string {
	return movePrefix + m.Move
}

// MessageMoveDone is raised locally when the engine finished a move. It never
// travels over the wire; the match turns it into a MessageMove.
type MessageMoveDone struct {
	Move string
}

func (m MessageMoveDone) Type() MessageType {
	return TypeMessageMoveDone
}

func (m MessageMoveDone) Encode() string {
	return moveDonePrefix + m.Move
}

// Decode parses one frame.
func Decode(frame string) (MessageInterface, error) {
	switch {
	case strings.Contains(frame, helloToken):
		return MessageHello{Greeting: frame}, nil
	case frame == colorQuery:
		return MessageColorQuery{}, nil
	case strings.HasPrefix(frame, colorPrefix):
		c, err := ParseColor(strings.TrimPrefix(frame, colorPrefix))
		if err != nil {
			return nil, err
		}
		return MessageColor{Color: c}, nil
	case strings.HasPrefix(frame, moveDonePrefix):
		return MessageMoveDone{Move: strings.TrimPrefix(frame, moveDonePrefix)}, nil
	case strings.HasPrefix(frame, movePrefix):
		return MessageMove{Move: strings.TrimPrefix(frame, movePrefix)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, frame)
}

// Frame returns the wire bytes of a message, newline terminated.
func Frame(m MessageInterface) []byte {
	b := []byte(strings.TrimRight(m.Encode(), "\r\n\x00"))
	return append(b, '\n')
}

// ScanFrames is a bufio.SplitFunc that ends a frame at '\n' or '\x00' and
// drops a trailing '\r'.
func ScanFrames(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexAny(data, "\n\x00"); i >= 0 {
		return i + 1, bytes.TrimRight(data[:i], "\r"), nil
	}
	if atEOF && len(data) > 0 {
		return len(data), bytes.TrimRight(data, "\r"), nil
	}
	return 0, nil, nil
}
