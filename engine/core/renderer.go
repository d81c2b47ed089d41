package core

// Renderer is the GPU device abstraction the 2D batcher draws through.
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	Shutdown()

	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateTexture(desc TextureDesc) (Texture, error)
	CreateMesh(desc MeshDesc) (Mesh, error)
	UpdateMesh(m Mesh, vertices []float32, indices []uint32) error
	Draw(cmd DrawCmd)

	// SetScissor restricts drawing to a framebuffer rectangle given in
	// top-left origin pixels. DisableScissor lifts the restriction.
	SetScissor(x, y, w, h int)
	DisableScissor()

	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
}

type Pipeline interface{ PipelineID() uint32 }

type Texture interface {
	TextureID() uint32
	Size() (w, h int)
}

type Mesh interface{ MeshID() uint32 }

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte
	MinFilter     string // "nearest" | "linear"
	MagFilter     string
	WrapU, WrapV  string // "clamp" | "repeat"
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location uint32
	Size     int32
	Type     AttribType
	Offset   int
}

type VertexLayout struct {
	Stride     int32
	Attributes []VertexAttrib
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

type DrawCmd struct {
	Pipe     Pipeline
	Mesh     Mesh
	Uniforms map[string]any
	Samplers map[string]Texture
}
