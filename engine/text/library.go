package text

import "sync"

// Library maps font names to faces. Unknown names resolve to the fallback
// face, the first one added.
type Library struct {
	mu       sync.RWMutex
	faces    map[string]*Face
	fallback *Face
}

func NewLibrary() *Library {
	return &Library{faces: make(map[string]*Face)}
}

// DefaultLibrary holds the embedded Go fonts under "default", "regular"
// and "mono".
func DefaultLibrary(sizePx float32) (*Library, error) {
	regular, err := Regular(sizePx)
	if err != nil {
		return nil, err
	}
	mono, err := Mono(sizePx)
	if err != nil {
		return nil, err
	}
	l := NewLibrary()
	l.Add("default", regular)
	l.Add("regular", regular)
	l.Add("mono", mono)
	return l, nil
}

func (l *Library) Add(name string, f *Face) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.faces[name] = f
	if l.fallback == nil {
		l.fallback = f
	}
}

func (l *Library) Face(name string) *Face {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if f, ok := l.faces[name]; ok {
		return f
	}
	return l.fallback
}

// Names returns the registered names in no particular order.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.faces))
	for n := range l.faces {
		names = append(names, n)
	}
	return names
}

// MeasureText measures s in the named face at size. An empty library
// measures nothing.
func (l *Library) MeasureText(s, font string, size float32) (w, h float32) {
	f := l.Face(font)
	if f == nil {
		return 0, 0
	}
	return f.Measure(s, size)
}

func (l *Library) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	seen := make(map[*Face]bool)
	for _, f := range l.faces {
		if !seen[f] {
			f.Close()
			seen[f] = true
		}
	}
	clear(l.faces)
	l.fallback = nil
}
