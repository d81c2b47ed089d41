package gui

import (
	"log/slog"
	"reflect"
)

const rootID = "root"

// Stats are the counters of the current (or last finished) frame.
type Stats struct {
	Frame   uint64
	Built   int
	Reused  int
	Orphans int
	DrawOps int
}

// Gui owns the node tree, scope stack and persistent state of one UI.
// It is not safe for concurrent use.
type Gui struct {
	log    *slog.Logger
	input  InputSource
	layout LayoutSolver
	theme  Theme

	surface Surface
	stage   Stage
	root    *Node
	stack   []*Node
	created int

	stores      map[reflect.Type]clearer
	scrolls     map[string]*ScrollState
	scrollStack []*Node

	stats    Stats
	orphaned map[string]struct{}
	items    []zItem
	idBuf    []byte
}

type Option func(*Gui)

func WithLogger(l *slog.Logger) Option { return func(g *Gui) { g.log = l } }
func WithInput(in InputSource) Option  { return func(g *Gui) { g.input = in } }
func WithLayout(s LayoutSolver) Option { return func(g *Gui) { g.layout = s } }
func WithTheme(t Theme) Option         { return func(g *Gui) { g.theme = t } }

func New(opts ...Option) *Gui {
	g := &Gui{
		log:      slog.Default(),
		input:    nopInput{},
		layout:   FlexSolver{},
		theme:    DefaultTheme(),
		stores:   make(map[reflect.Type]clearer),
		scrolls:  make(map[string]*ScrollState),
		orphaned: make(map[string]struct{}),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *Gui) Root() *Node          { return g.root }
func (g *Gui) Stage() Stage         { return g.stage }
func (g *Gui) Surface() Surface     { return g.surface }
func (g *Gui) Input() InputSource   { return g.input }
func (g *Gui) Theme() *Theme        { return &g.theme }
func (g *Gui) Stats() Stats         { return g.stats }
func (g *Gui) Logger() *slog.Logger { return g.log }

// SetInput swaps the input source; nil disables input.
func (g *Gui) SetInput(in InputSource) {
	if in == nil {
		in = nopInput{}
	}
	g.input = in
}

// SetTheme replaces the theme from the next lookup on.
func (g *Gui) SetTheme(t Theme) { g.theme = t }

// CreatedThisPass is the number of nodes constructed since the last
// SetStage.
func (g *Gui) CreatedThisPass() int { return g.created }

// MeasureText measures s with the bound surface. It panics with
// ErrNoSurface outside a frame.
func (g *Gui) MeasureText(s, font string, size float32) (w, h float32) {
	if g.surface == nil {
		panic(ErrNoSurface)
	}
	return g.surface.MeasureText(s, font, size)
}

// Node resolves the node declared at the caller's source line.
func (g *Gui) Node(w, h Size, opts ...NodeOption) *Node {
	return g.NodeAt(Caller(1), w, h, opts...)
}

// NodeAt resolves a node under the current scope. During Build it always
// appends a new node; during Render it returns the node Build created for
// the same id, with an empty draw list.
func (g *Gui) NodeAt(site CallSite, w, h Size, opts ...NodeOption) *Node {
	var o nodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	parent := g.Current()
	ordinal := parent.counter
	parent.counter++
	id := o.id
	if id == "" {
		id = g.synthID(parent, site, ordinal)
	}

	if g.stage == StageRender {
		if n := parent.findChild(id, ordinal); n != nil && !parent.detached {
			n.drawList.Reset()
			n.counter = 0
			g.stats.Reused++
			return n
		}
		return g.orphan(id, parent, w, h)
	}

	n := newNode(id, parent, w, h)
	if !parent.detached {
		parent.children = append(parent.children, n)
	} else {
		n.detached = true
	}
	g.created++
	g.stats.Built++
	return n
}

func (g *Gui) orphan(id string, parent *Node, w, h Size) *Node {
	n := newNode(id, parent, w, h)
	n.detached = true
	g.stats.Orphans++
	if _, seen := g.orphaned[id]; !seen {
		g.orphaned[id] = struct{}{}
		g.log.Warn("gui: node declared in render pass only; build and render must declare the same tree",
			"id", id, "parent", parent.id, "frame", g.stats.Frame)
	}
	return n
}
