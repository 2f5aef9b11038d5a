package logging

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func TestDebugfHonoursSwitch(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	defer func() { Debug = false }()

	Debug = false
	Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("debug output while disabled: %q", buf.String())
	}

	Debug = true
	Debugf("shown %d", 2)
	if !strings.Contains(buf.String(), "DEBUG: shown 2") {
		t.Fatalf("missing debug line, got %q", buf.String())
	}
}
