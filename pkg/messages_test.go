package pkg

import (
	"bufio"
	"errors"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		frame string
		want  MessageInterface
	}{
		{"Hello from chess game server brave-otter", MessageHello{Greeting: "Hello from chess game server brave-otter"}},
		{"Hello", MessageHello{Greeting: "Hello"}},
		{"color", MessageColorQuery{}},
		{"color:whites", MessageColor{Color: White}},
		{"color:blacks", MessageColor{Color: Black}},
		{"move:e2e4", MessageMove{Move: "e2e4"}},
		{"move:0-0-0", MessageMove{Move: "0-0-0"}},
		{"move_done:g1f3", MessageMoveDone{Move: "g1f3"}},
	}
	for _, tt := range tests {
		t.Run(tt.frame, func(t *testing.T) {
			got, err := Decode(tt.frame)
			if err != nil {
				t.Fatalf("Decode(%q): %v", tt.frame, err)
			}
			if got != tt.want {
				t.Fatalf("Decode(%q) = %#v, want %#v", tt.frame, got, tt.want)
			}
			if got.Encode() != tt.frame {
				t.Fatalf("Encode() = %q, want %q", got.Encode(), tt.frame)
			}
		})
	}
}

func TestDecodeUnknown(t *testing.T) {
	for _, frame := range []string{"colour", "color:reds", "mve:e2e4", "bye"} {
		if _, err := Decode(frame); !errors.Is(err, ErrUnknownMessage) {
			t.Fatalf("Decode(%q) err = %v, want ErrUnknownMessage", frame, err)
		}
	}
}

func TestNewHelloIsRecognised(t *testing.T) {
	frame := strings.TrimSuffix(string(Frame(NewHello("quiet-badger"))), "\n")
	msg, err := Decode(frame)
	if err != nil {
		t.Fatal(err)
	}
	if msg.Type() != TypeMessageHello {
		t.Fatalf("type = %s, want %s", msg.Type(), TypeMessageHello)
	}
}

func TestScanFrames(t *testing.T) {
	input := "color\x00move:e2e4\r\n\nmove_done:0-0\x00color:whites"
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Split(ScanFrames)
	var got []string
	for scanner.Scan() {
		if scanner.Text() != "" {
			got = append(got, scanner.Text())
		}
	}
	want := []string{"color", "move:e2e4", "move_done:0-0", "color:whites"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("frames = %q, want %q", got, want)
	}
}

func TestFrameTerminates(t *testing.T) {
	if got := string(Frame(MessageMove{Move: "e7e5"})); got != "move:e7e5\n" {
		t.Fatalf("Frame = %q", got)
	}
	if got := string(Frame(MessageHello{Greeting: "Hello there\n"})); got != "Hello there\n" {
		t.Fatalf("Frame = %q", got)
	}
}

func TestColors(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Fatalf("Opposite is not a swap")
	}
	for _, c := range []PlayerColor{White, Black} {
		got, err := ParseColor(c.Wire())
		if err != nil || got != c {
			t.Fatalf("ParseColor(%q) = %v, %v", c.Wire(), got, err)
		}
	}
	if ColorOf(true) != White || ColorOf(false) != Black {
		t.Fatalf("ColorOf mismatch")
	}
}
