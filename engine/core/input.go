package core

type buttonState struct {
	held, pressed, released bool
}

// Input is a per-frame snapshot assembled from window events. Edges
// (pressed/released), wheel and typed characters live until NewFrame.
type Input struct {
	mouseX, mouseY float32
	prevX, prevY   float32
	buttons        [mouseButtonCount]buttonState
	keys           [keyCount]buttonState
	mods           Mod
	wheelX, wheelY float32
	chars          []rune
	clip           Clipboard
}

func NewInput() *Input { return &Input{clip: &memClipboard{}} }

// UseClipboard wires the system clipboard; nil restores the in-memory one.
func (in *Input) UseClipboard(c Clipboard) {
	if c == nil {
		c = &memClipboard{}
	}
	in.clip = c
}

// NewFrame clears per-frame edges. Call once before polling events.
func (in *Input) NewFrame() {
	in.prevX, in.prevY = in.mouseX, in.mouseY
	for i := range in.buttons {
		in.buttons[i].pressed = false
		in.buttons[i].released = false
	}
	for i := range in.keys {
		in.keys[i].pressed = false
		in.keys[i].released = false
	}
	in.wheelX, in.wheelY = 0, 0
	in.chars = in.chars[:0]
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.mods = e.Mods
		if e.Key <= KeyUnknown || e.Key >= keyCount {
			return
		}
		st := &in.keys[e.Key]
		if e.Down {
			if !st.held || e.Repeat {
				st.pressed = true
			}
			st.held = true
		} else {
			st.held = false
			st.released = true
		}
	case EventMouseMove:
		in.mouseX, in.mouseY = float32(e.X), float32(e.Y)
	case EventMouseButton:
		in.mods = e.Mods
		if e.Button < 0 || e.Button >= mouseButtonCount {
			return
		}
		st := &in.buttons[e.Button]
		if e.Down {
			if !st.held {
				st.pressed = true
			}
			st.held = true
		} else {
			st.held = false
			st.released = true
		}
	case EventScroll:
		in.wheelX += float32(e.Xoff)
		in.wheelY += float32(e.Yoff)
	case EventChar:
		in.chars = append(in.chars, e.Char)
	}
}

func (in *Input) Mouse() (float32, float32) { return in.mouseX, in.mouseY }

func (in *Input) MouseDelta() (float32, float32) {
	return in.mouseX - in.prevX, in.mouseY - in.prevY
}

func (in *Input) MousePressed(b MouseButton) bool  { return in.button(b).pressed }
func (in *Input) MouseHeld(b MouseButton) bool     { return in.button(b).held }
func (in *Input) MouseReleased(b MouseButton) bool { return in.button(b).released }

func (in *Input) KeyPressed(k Key) bool  { return in.key(k).pressed }
func (in *Input) KeyHeld(k Key) bool     { return in.key(k).held }
func (in *Input) KeyReleased(k Key) bool { return in.key(k).released }
func (in *Input) IsKeyDown(k Key) bool   { return in.key(k).held }

func (in *Input) Mods() Mod                 { return in.mods }
func (in *Input) Wheel() (float32, float32) { return in.wheelX, in.wheelY }
func (in *Input) Chars() []rune             { return in.chars }

func (in *Input) Clipboard() string     { return in.clip.Clipboard() }
func (in *Input) SetClipboard(s string) { in.clip.SetClipboard(s) }

func (in *Input) button(b MouseButton) buttonState {
	if b < 0 || b >= mouseButtonCount {
		return buttonState{}
	}
	return in.buttons[b]
}

func (in *Input) key(k Key) buttonState {
	if k <= KeyUnknown || k >= keyCount {
		return buttonState{}
	}
	return in.keys[k]
}

type memClipboard struct{ s string }

func (m *memClipboard) Clipboard() string     { return m.s }
func (m *memClipboard) SetClipboard(s string) { m.s = s }
