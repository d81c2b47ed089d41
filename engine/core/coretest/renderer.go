// Package coretest provides an in-memory core.Renderer for tests.
package coretest

import (
	"fmt"

	"github.com/hubastard/sprig/engine/core"
)

type handle uint32

func (h handle) PipelineID() uint32 { return uint32(h) }
func (h handle) MeshID() uint32     { return uint32(h) }

type Texture struct {
	ID     uint32
	W, H   int
	Pixels []byte
}

func (t *Texture) TextureID() uint32 { return t.ID }
func (t *Texture) Size() (w, h int)  { return t.W, t.H }

// Renderer records every call it receives. Scissor changes are kept in
// Scissors as "x,y,w,h" strings or "off".
type Renderer struct {
	Textures []*Texture
	Draws    []core.DrawCmd
	Indices  []int
	Scissors []string
	next     uint32
}

var _ core.Renderer = (*Renderer)(nil)

func (r *Renderer) id() uint32 {
	r.next++
	return r.next
}

func (r *Renderer) Resize(w, h int)          {}
func (r *Renderer) Clear(_, _, _, _ float32) {}
func (r *Renderer) Shutdown()                {}

func (r *Renderer) CreatePipeline(core.PipelineDesc) (core.Pipeline, error) {
	return handle(r.id()), nil
}

func (r *Renderer) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if len(desc.Pixels) != desc.Width*desc.Height*4 {
		return nil, fmt.Errorf("coretest: texture %dx%d with %d bytes", desc.Width, desc.Height, len(desc.Pixels))
	}
	t := &Texture{ID: r.id(), W: desc.Width, H: desc.Height, Pixels: desc.Pixels}
	r.Textures = append(r.Textures, t)
	return t, nil
}

func (r *Renderer) CreateMesh(core.MeshDesc) (core.Mesh, error) { return handle(r.id()), nil }

func (r *Renderer) UpdateMesh(_ core.Mesh, _ []float32, indices []uint32) error {
	r.Indices = append(r.Indices, len(indices))
	return nil
}

func (r *Renderer) Draw(cmd core.DrawCmd) { r.Draws = append(r.Draws, cmd) }

func (r *Renderer) SetScissor(x, y, w, h int) {
	r.Scissors = append(r.Scissors, fmt.Sprintf("%d,%d,%d,%d", x, y, w, h))
}

func (r *Renderer) DisableScissor() { r.Scissors = append(r.Scissors, "off") }

func (r *Renderer) GPUVendor() string   { return "coretest" }
func (r *Renderer) GPURenderer() string { return "coretest" }
func (r *Renderer) GPUVersion() string  { return "0" }
