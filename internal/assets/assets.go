// Package assets loads the glyph sheet used to draw the game in the terminal.
// The game logic never reads assets; only the renderer asks whether a sheet
// is ready and falls back to flat shapes when it is not.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// RequiredFrames is the number of avatar frames a complete sheet provides.
const RequiredFrames = 3

// ErrIncomplete is returned for sheets that are missing glyphs.
var ErrIncomplete = errors.New("glyph sheet is incomplete")

//go:embed sprites.yaml
var defaultSheetYAML []byte

// Sheet holds the glyphs for every drawable element.
type Sheet struct {
	Name   string       `yaml:"name"`
	Avatar AvatarGlyphs `yaml:"avatar"`
	Pipe   PipeGlyphs   `yaml:"pipe"`
	Ground GroundGlyphs `yaml:"ground"`
}

// AvatarGlyphs are the animation frames of the avatar, one string per frame.
type AvatarGlyphs struct {
	Color  string   `yaml:"color"`
	Frames []string `yaml:"frames"`
}

// PipeGlyphs describe a pipe column.
type PipeGlyphs struct {
	Color     string `yaml:"color"`
	Body      string `yaml:"body"`
	CapTop    string `yaml:"cap_top"`
	CapBottom string `yaml:"cap_bottom"`
}

// GroundGlyphs is a pattern tiled across the ground.
type GroundGlyphs struct {
	Color   string `yaml:"color"`
	Pattern string `yaml:"pattern"`
}

// Load reads a sheet from path, or the embedded sheet when path is empty.
func Load(path string) (*Sheet, error) {
	data := defaultSheetYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("assets: cannot read %s: %w", path, err)
		}
	}
	return Parse(data)
}

// Parse decodes and checks a sheet.
func Parse(data []byte) (*Sheet, error) {
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("assets: cannot parse sheet: %w", err)
	}
	if !s.Ready() {
		return nil, fmt.Errorf("assets: sheet %q: %w", s.Name, ErrIncomplete)
	}
	return &s, nil
}

// Ready reports whether the sheet can draw every element. A nil sheet is not ready.
func (s *Sheet) Ready() bool {
	if s == nil || len(s.Avatar.Frames) < RequiredFrames {
		return false
	}
	for _, f := range s.Avatar.Frames {
		if f == "" {
			return false
		}
	}
	return s.Pipe.Body != "" && s.Ground.Pattern != ""
}

// AvatarFrame returns frame i, wrapping around the available frames.
func (s *Sheet) AvatarFrame(i int) string {
	n := len(s.Avatar.Frames)
	if n == 0 {
		return ""
	}
	return s.Avatar.Frames[((i%n)+n)%n]
}

// PipeBody returns the body rune.
func (s *Sheet) PipeBody() rune {
	return firstRune(s.Pipe.Body, '█')
}

// PipeCaps returns the runes that close the top and bottom pipes at the gap.
func (s *Sheet) PipeCaps() (top, bottom rune) {
	body := s.PipeBody()
	return firstRune(s.Pipe.CapTop, body), firstRune(s.Pipe.CapBottom, body)
}

// GroundRune returns the pattern rune for column x.
func (s *Sheet) GroundRune(x int) rune {
	runes := []rune(s.Ground.Pattern)
	if len(runes) == 0 {
		return '▓'
	}
	return runes[((x%len(runes))+len(runes))%len(runes)]
}

// Colors returns the avatar, pipe and ground colors.
func (s *Sheet) Colors() (avatar, pipe, ground core.Color) {
	return core.ParseColor(s.Avatar.Color), core.ParseColor(s.Pipe.Color), core.ParseColor(s.Ground.Color)
}

func firstRune(s string, fallback rune) rune {
	if s == "" {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
