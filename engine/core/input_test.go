package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputMouseEdges(t *testing.T) {
	in := NewInput()
	in.Handle(EventMouseMove{X: 10, Y: 20})
	in.Handle(EventMouseButton{Button: MouseLeft, Down: true})

	assert.True(t, in.MousePressed(MouseLeft))
	assert.True(t, in.MouseHeld(MouseLeft))
	assert.False(t, in.MouseReleased(MouseLeft))

	in.NewFrame()
	in.Handle(EventMouseMove{X: 15, Y: 18})
	assert.False(t, in.MousePressed(MouseLeft), "press edge lasts one frame")
	assert.True(t, in.MouseHeld(MouseLeft))
	dx, dy := in.MouseDelta()
	assert.Equal(t, float32(5), dx)
	assert.Equal(t, float32(-2), dy)

	in.NewFrame()
	in.Handle(EventMouseButton{Button: MouseLeft, Down: false})
	assert.True(t, in.MouseReleased(MouseLeft))
	assert.False(t, in.MouseHeld(MouseLeft))
}

func TestInputKeysAndRepeat(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeyBackspace, Down: true, Mods: ModCtrl})
	assert.True(t, in.KeyPressed(KeyBackspace))
	assert.Equal(t, ModCtrl, in.Mods())

	in.NewFrame()
	in.Handle(EventKey{Key: KeyBackspace, Down: true, Repeat: true})
	assert.True(t, in.KeyPressed(KeyBackspace), "repeats re-trigger the press edge")
	assert.True(t, in.IsKeyDown(KeyBackspace))

	in.NewFrame()
	in.Handle(EventKey{Key: KeyBackspace, Down: false})
	assert.True(t, in.KeyReleased(KeyBackspace))
	assert.False(t, in.KeyPressed(KeyUnknown))
}

func TestInputWheelCharsClipboard(t *testing.T) {
	in := NewInput()
	in.Handle(EventScroll{Yoff: -1})
	in.Handle(EventScroll{Yoff: -2, Xoff: 1})
	in.Handle(EventChar{Char: 'h'})
	in.Handle(EventChar{Char: 'i'})

	wx, wy := in.Wheel()
	assert.Equal(t, float32(1), wx)
	assert.Equal(t, float32(-3), wy)
	assert.Equal(t, []rune("hi"), in.Chars())

	in.SetClipboard("copied")
	assert.Equal(t, "copied", in.Clipboard())

	in.NewFrame()
	wx, wy = in.Wheel()
	assert.Zero(t, wx)
	assert.Zero(t, wy)
	assert.Empty(t, in.Chars())
	assert.Equal(t, "copied", in.Clipboard())
}
