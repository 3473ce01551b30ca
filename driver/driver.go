// Package driver defines the raw GL binding glkit renders through.
//
// A Driver is a thin immediate-mode wrapper over one GL, GL ES or WebGL
// context. Object handles are opaque integers: each backend maps them to
// its native objects (plain GL names, or js.Value objects on WebGL).
// The zero handle is always "no object".
//
// Drivers are not safe for concurrent use. All calls must come from the
// goroutine (and, for native backends, the OS thread) that owns the
// GL context.
package driver

// Object handles. Zero is the null object.
type (
	Buffer       uint32
	Texture      uint32
	Program      uint32
	Shader       uint32
	Framebuffer  uint32
	Renderbuffer uint32
)

// Uniform is a uniform location. -1 is ignored by GL.
type Uniform int32

// NoUniform is the location GL ignores on upload.
const NoUniform Uniform = -1

// Info describes the live context.
type Info struct {
	Vendor   string
	Renderer string
	Version  string

	// ES is true for OpenGL ES and WebGL contexts.
	ES bool
}

// ActiveInfo describes an active attribute or uniform of a linked program.
type ActiveInfo struct {
	Name string
	Size int
	Type Enum
}

// Driver is the subset of GL that glkit uses.
type Driver interface {
	Info() Info

	// Fixed-function state.
	Enable(capability Enum)
	Disable(capability Enum)
	DepthFunc(fn Enum)
	BlendEquation(mode Enum)
	BlendFunc(sfactor, dfactor Enum)
	CullFace(mode Enum)
	PixelStorei(pname Enum, param int32)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)

	// Buffers.
	CreateBuffer() Buffer
	BindBuffer(target Enum, b Buffer)
	BufferInit(target Enum, size int, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)
	DeleteBuffer(b Buffer)

	// Shaders and programs.
	CreateShader(ty Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)
	CreateProgram() Program
	AttachShader(p Program, s Shader)
	DetachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	BindAttribLocation(p Program, index uint32, name string)
	ActiveAttribs(p Program) []ActiveInfo
	ActiveUniforms(p Program) []ActiveInfo
	GetUniformLocation(p Program, name string) Uniform
	UseProgram(p Program)
	DeleteProgram(p Program)

	// Uniform upload to the program in use.
	Uniform1f(u Uniform, v float32)
	Uniform2f(u Uniform, v0, v1 float32)
	Uniform3f(u Uniform, v0, v1, v2 float32)
	Uniform4f(u Uniform, v0, v1, v2, v3 float32)
	Uniform1i(u Uniform, v int32)
	Uniform2i(u Uniform, v0, v1 int32)
	Uniform3i(u Uniform, v0, v1, v2 int32)
	Uniform4i(u Uniform, v0, v1, v2, v3 int32)
	Uniform1ui(u Uniform, v uint32)
	Uniform2ui(u Uniform, v0, v1 uint32)
	Uniform3ui(u Uniform, v0, v1, v2 uint32)
	Uniform4ui(u Uniform, v0, v1, v2, v3 uint32)
	UniformMatrix2fv(u Uniform, m []float32)
	UniformMatrix3fv(u Uniform, m []float32)
	UniformMatrix4fv(u Uniform, m []float32)

	// Textures.
	CreateTexture() Texture
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t Texture)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte)
	TexParameteri(target, pname Enum, param int32)
	GenerateMipmap(target Enum)
	DeleteTexture(t Texture)

	// Framebuffers and renderbuffers.
	CreateFramebuffer() Framebuffer
	BindFramebuffer(target Enum, fb Framebuffer)
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	CheckFramebufferStatus(target Enum) Enum
	DeleteFramebuffer(fb Framebuffer)
	CreateRenderbuffer() Renderbuffer
	BindRenderbuffer(target Enum, rb Renderbuffer)
	RenderbufferStorage(target, internalFormat Enum, width, height int)
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, rb Renderbuffer)
	DeleteRenderbuffer(rb Renderbuffer)
	ReadPixels(dst []byte, x, y, width, height int, format, ty Enum)

	// Vertex input and draws.
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int, ty Enum, normalized bool, stride, offset int)
	VertexAttribIPointer(index uint32, size int, ty Enum, stride, offset int)
	DrawArrays(mode Enum, first, count int)
	DrawElements(mode Enum, count int, ty Enum, offset int)
}
