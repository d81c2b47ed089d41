package gui

import (
	"runtime"
	"strconv"
	"strings"
)

// CallSite is the source location a node was declared from. Together with the
// parent's ordinal counter it forms the implicit node id.
type CallSite struct {
	File string
	Line int
}

func (c CallSite) String() string {
	return c.File + ":" + strconv.Itoa(c.Line)
}

// Caller captures the call site skip frames above the caller of Caller.
// Widgets call Caller(1) to attribute nodes to their own caller.
func Caller(skip int) CallSite {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallSite{File: "?"}
	}
	return CallSite{File: file, Line: line}
}

type NodeOption func(*nodeOptions)

type nodeOptions struct {
	id string
}

// WithID replaces the call-site id with an explicit one, used verbatim.
// Use it for nodes declared in loops that must survive reordering.
func WithID(id string) NodeOption {
	return func(o *nodeOptions) { o.id = id }
}

// synthID builds parent/file:line#ordinal. Ordinals are unique among
// siblings, so prefixing the parent makes implicit ids unique in the tree.
func (g *Gui) synthID(parent *Node, site CallSite, ordinal int) string {
	b := g.idBuf[:0]
	if parent != nil && parent != g.root {
		b = append(b, parent.id...)
		b = append(b, '/')
	}
	file := site.File
	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		file = file[i+1:]
	}
	b = append(b, file...)
	b = append(b, ':')
	b = strconv.AppendInt(b, int64(site.Line), 10)
	b = append(b, '#')
	b = strconv.AppendInt(b, int64(ordinal), 10)
	g.idBuf = b
	return string(b)
}
