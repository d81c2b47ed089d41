package glbackend

import (
	"fmt"
	"log/slog"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/sprig/engine/core"
)

// RendererGL implements core.Renderer on OpenGL 3.3 core.
type RendererGL struct {
	win  core.Window
	log  *slog.Logger
	w, h int

	pipelines []*pipeline
	textures  []*texture
	meshes    []*mesh
}

type pipeline struct {
	program  uint32
	blend    bool
	depth    bool
	uniforms map[string]int32
}

func (p *pipeline) PipelineID() uint32 { return p.program }

type texture struct {
	id   uint32
	w, h int
}

func (t *texture) TextureID() uint32 { return t.id }
func (t *texture) Size() (w, h int)  { return t.w, t.h }

type mesh struct {
	vao, vbo, ebo   uint32
	vertCap, indCap int
	indexCount      int32
}

func (m *mesh) MeshID() uint32 { return m.vao }

func NewRendererGL(win core.Window, _ core.Config, log *slog.Logger) (*RendererGL, error) {
	if log == nil {
		log = slog.Default()
	}
	r := &RendererGL{win: win, log: log}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	log.Info("renderer ready", "vendor", r.GPUVendor(), "renderer", r.GPURenderer(), "version", r.GPUVersion())
	return r, nil
}

func (r *RendererGL) Shutdown() {
	for _, m := range r.meshes {
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		gl.DeleteVertexArrays(1, &m.vao)
	}
	for _, t := range r.textures {
		gl.DeleteTextures(1, &t.id)
	}
	for _, p := range r.pipelines {
		gl.DeleteProgram(p.program)
	}
	r.meshes, r.textures, r.pipelines = nil, nil, nil
}

func (r *RendererGL) Resize(w, h int) {
	r.w, r.h = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) GPUVendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (r *RendererGL) GPURenderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }
func (r *RendererGL) GPUVersion() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }

func (r *RendererGL) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	prog, err := makeProgram(desc.VertexSource, desc.FragmentSource)
	if err != nil {
		return nil, err
	}
	p := &pipeline{program: prog, blend: desc.Blend, depth: desc.DepthTest, uniforms: make(map[string]int32)}
	r.pipelines = append(r.pipelines, p)
	return p, nil
}

func (p *pipeline) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.program, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

func glFilter(s string) int32 {
	if s == "linear" {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func glWrap(s string) int32 {
	if s == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

func (r *RendererGL) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Format != core.TextureRGBA8 {
		return nil, fmt.Errorf("texture: unsupported format %d", desc.Format)
	}
	if want := desc.Width * desc.Height * 4; len(desc.Pixels) != want {
		return nil, fmt.Errorf("texture: %d bytes of pixels for %dx%d, want %d", len(desc.Pixels), desc.Width, desc.Height, want)
	}
	t := &texture{w: desc.Width, h: desc.Height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWrap(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWrap(desc.WrapV))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	r.textures = append(r.textures, t)
	return t, nil
}

func (r *RendererGL) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	if len(desc.Vertices) == 0 || len(desc.Indices) == 0 {
		return nil, fmt.Errorf("mesh: empty vertex or index data")
	}
	m := &mesh{vertCap: len(desc.Vertices), indCap: len(desc.Indices), indexCount: int32(len(desc.Indices))}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(desc.Vertices)*4, gl.Ptr(desc.Vertices), gl.DYNAMIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(desc.Indices)*4, gl.Ptr(desc.Indices), gl.DYNAMIC_DRAW)

	for _, a := range desc.Layout.Attributes {
		if a.Type != core.AttribFloat32 {
			return nil, fmt.Errorf("mesh: unsupported attribute type %d", a.Type)
		}
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointer(a.Location, a.Size, gl.FLOAT, false, desc.Layout.Stride, unsafe.Pointer(uintptr(a.Offset)))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	r.meshes = append(r.meshes, m)
	return m, nil
}

func (r *RendererGL) UpdateMesh(cm core.Mesh, vertices []float32, indices []uint32) error {
	m, ok := cm.(*mesh)
	if !ok {
		return fmt.Errorf("mesh: foreign handle %T", cm)
	}
	if len(vertices) > m.vertCap || len(indices) > m.indCap {
		return fmt.Errorf("mesh: update of %d/%d exceeds capacity %d/%d", len(vertices), len(indices), m.vertCap, m.indCap)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(vertices) > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(m.vao)
	if len(indices) > 0 {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(indices)*4, gl.Ptr(indices))
	}
	gl.BindVertexArray(0)
	m.indexCount = int32(len(indices))
	return nil
}

func (r *RendererGL) Draw(cmd core.DrawCmd) {
	p, ok := cmd.Pipe.(*pipeline)
	if !ok {
		r.log.Error("draw with foreign pipeline", "type", fmt.Sprintf("%T", cmd.Pipe))
		return
	}
	m, ok := cmd.Mesh.(*mesh)
	if !ok {
		r.log.Error("draw with foreign mesh", "type", fmt.Sprintf("%T", cmd.Mesh))
		return
	}

	if p.blend {
		gl.Enable(gl.BLEND)
	} else {
		gl.Disable(gl.BLEND)
	}
	if p.depth {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}

	gl.UseProgram(p.program)
	for name, v := range cmd.Uniforms {
		setUniform(p.location(name), v)
	}
	unit := int32(0)
	for name, t := range cmd.Samplers {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, t.TextureID())
		gl.Uniform1i(p.location(name), unit)
		unit++
	}

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func setUniform(loc int32, v any) {
	if loc < 0 {
		return
	}
	switch val := v.(type) {
	case float32:
		gl.Uniform1f(loc, val)
	case int32:
		gl.Uniform1i(loc, val)
	case int:
		gl.Uniform1i(loc, int32(val))
	case [2]float32:
		gl.Uniform2f(loc, val[0], val[1])
	case [4]float32:
		gl.Uniform4f(loc, val[0], val[1], val[2], val[3])
	case [16]float32:
		gl.UniformMatrix4fv(loc, 1, false, &val[0])
	}
}

// SetScissor takes a top-left origin rectangle; GL's origin is bottom-left.
func (r *RendererGL) SetScissor(x, y, w, h int) {
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(int32(x), int32(r.h-(y+h)), int32(max(0, w)), int32(max(0, h)))
}

func (r *RendererGL) DisableScissor() { gl.Disable(gl.SCISSOR_TEST) }

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
