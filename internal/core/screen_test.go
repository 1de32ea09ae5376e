package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	require.Equal(t, 80, s.Width())
	require.Equal(t, 24, s.Height())

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	assert.Equal(t, 'X', s.Get(5, 5))
	assert.Equal(t, ColorRed, s.GetCell(5, 5).Color)

	// Out of bounds writes are dropped
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ' ', s.Get(100, 0))
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#', ColorGreen)
	assert.Equal(t, Cell{Rune: '#', Color: ColorGreen}, s.GetCell(4, 4))

	s.Clear()
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, blank, s.GetCell(x, y))
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")
	assert.True(t, strings.HasPrefix(s.Row(1)[2:], "Hello"))

	// Clipped at the right boundary
	s.DrawText(18, 0, "Hello")
	assert.Equal(t, 'H', s.Get(18, 0))
	assert.Equal(t, 'e', s.Get(19, 0))
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorWhite)

	x := (20 - 2) / 2
	assert.Equal(t, 'H', s.Get(x, 2))
	assert.Equal(t, 'i', s.Get(x+1, 2))
	assert.Equal(t, ColorWhite, s.GetCell(x, 2).Color)
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(2, 2, 3, 3, '#', ColorGreen)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			assert.Equal(t, '#', s.Get(x, y))
		}
	}
	assert.Equal(t, ' ', s.Get(1, 1))
	assert.Equal(t, ' ', s.Get(5, 5))
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4, ColorDefault)

	assert.Equal(t, '┌', s.Get(1, 1))
	assert.Equal(t, '┐', s.Get(5, 1))
	assert.Equal(t, '└', s.Get(1, 4))
	assert.Equal(t, '┘', s.Get(5, 4))

	for x := 2; x < 5; x++ {
		assert.Equal(t, '─', s.Get(x, 1))
		assert.Equal(t, '─', s.Get(x, 4))
	}
	for y := 2; y < 4; y++ {
		assert.Equal(t, '│', s.Get(1, y))
		assert.Equal(t, '│', s.Get(5, y))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	assert.Equal(t, "AAAAA\nBBBBB\nCCCCC", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	require.Equal(t, 8, s.Width())
	require.Equal(t, 4, s.Height())
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"))

	s.Resize(15, 8)
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"))
	assert.Len(t, s.Row(0), 15)
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)
	assert.Equal(t, "          ", s.Row(-1))
}
