package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette is available here
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for coloring the board
type Theme struct {
	Name        string      `json:"name"`
	SquareDark  tcell.Color `json:"squareDark"`
	SquareLight tcell.Color `json:"squareLight"`
	SquareHigh  tcell.Color `json:"squareHigh"`
	SquareHint  tcell.Color `json:"squareHint"`
	SquareCheck tcell.Color `json:"squareCheck"`
	SquareLast  tcell.Color `json:"squareLast"`
	White       tcell.Color `json:"white"`
	Black       tcell.Color `json:"black"`
	Msg         tcell.Color `json:"msg"`
	Rank        tcell.Color `json:"rank"`
	File        tcell.Color `json:"file"`
}

// ThemeHex is a Theme with colors written as "#rrggbb"
type ThemeHex struct {
	Name        string `json:"name"`
	SquareDark  string `json:"squareDark"`
	SquareLight string `json:"squareLight"`
	SquareHigh  string `json:"squareHigh"`
	SquareHint  string `json:"squareHint"`
	SquareCheck string `json:"squareCheck"`
	SquareLast  string `json:"squareLast"`
	White       string `json:"white"`
	Black       string `json:"black"`
	Msg         string `json:"msg"`
	Rank        string `json:"rank"`
	File        string `json:"file"`
}

// fmtHex returns "#0" for ColorDefault so it survives a round trip
// instead of being read back as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.SquareDark.Hex()),
		fmtHex(t.SquareLight.Hex()),
		fmtHex(t.SquareHigh.Hex()),
		fmtHex(t.SquareHint.Hex()),
		fmtHex(t.SquareCheck.Hex()),
		fmtHex(t.SquareLast.Hex()),
		fmtHex(t.White.Hex()),
		fmtHex(t.Black.Hex()),
		fmtHex(t.Msg.Hex()),
		fmtHex(t.Rank.Hex()),
		fmtHex(t.File.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.SquareDark),
		tcell.GetColor(t.SquareLight),
		tcell.GetColor(t.SquareHigh),
		tcell.GetColor(t.SquareHint),
		tcell.GetColor(t.SquareCheck),
		tcell.GetColor(t.SquareLast),
		tcell.GetColor(t.White),
		tcell.GetColor(t.Black),
		tcell.GetColor(t.Msg),
		tcell.GetColor(t.Rank),
		tcell.GetColor(t.File),
	}
}

// Themes lists the built-in themes
var Themes = []Theme{ThemeBasic, ThemeGreen}

// FindTheme returns the built-in theme with the given name
func FindTheme(want string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}
	return Theme{}, errors.New("theme: no theme found")
}

// LoadTheme returns the built-in theme called want, or else reads want as
// a JSON file holding a ThemeHex
func LoadTheme(want string) (Theme, error) {
	if t, err := FindTheme(want); err == nil {
		return t, nil
	}
	data, err := os.ReadFile(want)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %q: %w", want, err)
	}
	var th ThemeHex
	if err := json.Unmarshal(data, &th); err != nil {
		return Theme{}, fmt.Errorf("theme %q: %w", want, err)
	}
	return th.Theme(), nil
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",        // Name
	tcell.Color188, // SquareDark
	tcell.Color230, // SquareLight
	tcell.Color226, // SquareHigh
	tcell.Color223, // SquareHint
	tcell.Color218, // SquareCheck
	tcell.Color152, // SquareLast
	tcell.Color232, // White
	tcell.Color232, // Black
	tcell.Color160, // Msg
	tcell.Color247, // Rank
	tcell.Color247, // File
}

// ThemeGreen is a tournament board
var ThemeGreen = Theme{
	"green",           // Name
	tcell.Color65,     // SquareDark
	tcell.Color187,    // SquareLight
	tcell.Color221,    // SquareHigh
	tcell.Color150,    // SquareHint
	tcell.Color167,    // SquareCheck
	tcell.Color110,    // SquareLast
	tcell.ColorWhite,  // White
	tcell.ColorBlack,  // Black
	tcell.ColorYellow, // Msg
	tcell.Color250,    // Rank
	tcell.Color250,    // File
}
