package engine

import "errors"

var (
	ErrBadNotation       = errors.New("bad notation")
	ErrIllegalRemoteMove = errors.New("illegal remote move")
)
