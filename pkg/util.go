package pkg

import (
	"fmt"
	"net"
	"strconv"

	petname "github.com/dustinkirkland/golang-petname"
)

// ListenAddress is the address a server binds for the given port.
func ListenAddress(port int) string {
	return net.JoinHostPort("", strconv.Itoa(port))
}

// ValidateAddress checks that addr has the "<ip>:<port>" form.
func ValidateAddress(addr string) error {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("bad address %q: %w", addr, err)
	}
	if host == "" {
		return fmt.Errorf("bad address %q: missing host", addr)
	}
	if p, err := strconv.Atoi(port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("bad address %q: invalid port", addr)
	}
	return nil
}

// NewName returns a random display name for this instance.
func NewName() string {
	return petname.Generate(2, "-")
}
