package glkit

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/gogpu/glkit/driver"
)

// uniformInfo is an active uniform of a linked program.
type uniformInfo struct {
	loc  driver.Uniform
	ty   driver.Enum
	size int
}

// Shader is a linked GL program whose vertex inputs are described by T.
//
// Attribute slots come from the Context's shared table, so any
// VertexBuffer[T] can be drawn with any Shader[T] of the same Context
// without re-specifying the layout.
type Shader[T Vertex] struct {
	dev      *device
	id       uint32
	program  driver.Program
	layout   vertexLayout
	active   map[string]driver.ActiveInfo
	uniforms map[string]uniformInfo
	released bool
}

// NewShader compiles and links a program from vertex and fragment GLSL
// sources. The Context's headers are prepended to each source.
//
// Compile and link failures are logged with the source and the driver's
// info log, then raised as contract violations. Active attributes are
// bound to their global slots and the program is linked a second time.
func NewShader[T Vertex](c *Context, vertexSrc, fragmentSrc string) *Shader[T] {
	const op = "NewShader"
	log := c.dev.log
	drv := c.dev.drv

	layout := mustLayout[T](log, op)

	// Objects created before a failure are released on the way out.
	var (
		stages  []driver.Shader
		program driver.Program
		linked  bool
	)
	defer func() {
		if linked {
			return
		}
		for _, st := range stages {
			drv.DeleteShader(st)
		}
		if program != 0 {
			drv.DeleteProgram(program)
		}
	}()

	vs := compileStage(c, driver.VERTEX_SHADER, c.vertexHeader, vertexSrc)
	stages = append(stages, vs)
	fs := compileStage(c, driver.FRAGMENT_SHADER, c.fragmentHeader, fragmentSrc)
	stages = append(stages, fs)

	program = drv.CreateProgram()
	if program == 0 {
		violate(log, op, ErrCreateFailed, "program")
	}
	drv.AttachShader(program, vs)
	drv.AttachShader(program, fs)
	linkProgram(c, program)

	active := make(map[string]driver.ActiveInfo)
	for _, a := range drv.ActiveAttribs(program) {
		active[a.Name] = a
		drv.BindAttribLocation(program, c.attributeLocation(a.Name), a.Name)
	}
	linkProgram(c, program)

	drv.DetachShader(program, vs)
	drv.DetachShader(program, fs)
	drv.DeleteShader(vs)
	drv.DeleteShader(fs)
	linked = true

	for i := range layout.attribs {
		layout.attribs[i].slot = c.attributeLocation(layout.attribs[i].name)
	}

	c.nextShaderID++
	s := &Shader[T]{
		dev:      c.dev,
		id:       c.nextShaderID,
		program:  program,
		layout:   layout,
		active:   active,
		uniforms: make(map[string]uniformInfo),
	}

	if c.dev.debug {
		s.checkAttributes(log)
	}

	for _, u := range drv.ActiveUniforms(program) {
		info := uniformInfo{loc: drv.GetUniformLocation(program, u.Name), ty: u.Type, size: u.Size}
		s.uniforms[u.Name] = info
		if base, ok := strings.CutSuffix(u.Name, "[0]"); ok {
			s.uniforms[base] = info
		}
	}

	c.dev.stats.s.Shaders++
	log.Debug("glkit: shader linked",
		"id", s.id,
		"program", program,
		"attributes", len(active),
		"uniforms", len(s.uniforms))
	return s
}

func stageName(ty driver.Enum) string {
	if ty == driver.VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}

func compileStage(c *Context, ty driver.Enum, header, src string) driver.Shader {
	const op = "NewShader"
	drv := c.dev.drv
	s := drv.CreateShader(ty)
	if s == 0 {
		violate(c.dev.log, op, ErrCreateFailed, "%s shader", stageName(ty))
	}
	source := header + "\n" + src
	drv.ShaderSource(s, source)
	drv.CompileShader(s)
	if !drv.ShaderCompiled(s) {
		info := drv.ShaderInfoLog(s)
		c.dev.log.Error("glkit: shader compilation failed",
			"stage", stageName(ty),
			"source", source,
			"log", info)
		drv.DeleteShader(s)
		violate(c.dev.log, op, ErrShaderCompile, "%s shader: %s", stageName(ty), info)
	}
	return s
}

func linkProgram(c *Context, p driver.Program) {
	drv := c.dev.drv
	drv.LinkProgram(p)
	if !drv.ProgramLinked(p) {
		info := drv.ProgramInfoLog(p)
		c.dev.log.Error("glkit: program link failed", "program", p, "log", info)
		violate(c.dev.log, "NewShader", ErrShaderLink, "%s", info)
	}
}

// checkAttributes warns when T and the program disagree on attribute
// names. Drivers drop unused inputs, so a mismatch is never fatal.
func (s *Shader[T]) checkAttributes(log *slog.Logger) {
	var missing []string
	for _, a := range s.layout.attribs {
		if _, ok := s.active[a.name]; !ok {
			missing = append(missing, a.name)
		}
	}
	if len(missing) > 0 || len(s.active) != len(s.layout.attribs) {
		var zero T
		log.Warn("glkit: vertex attributes do not match shader inputs",
			"vertex", fmt.Sprintf("%T", zero),
			"declared", len(s.layout.attribs),
			"active", len(s.active),
			"missing", missing)
	}
}

// ID returns the unique id of the shader within its Context. Uniform
// keys carry it to detect use with another shader.
func (s *Shader[T]) ID() uint32 { return s.id }

// Program returns the driver handle of the linked program.
func (s *Shader[T]) Program() driver.Program { return s.program }

// Attributes returns the active attribute names, sorted.
func (s *Shader[T]) Attributes() []string {
	return slices.Sorted(maps.Keys(s.active))
}

// Uniforms returns the active uniform names, sorted. Arrays appear both
// as "name[0]" and "name".
func (s *Shader[T]) Uniforms() []string {
	return slices.Sorted(maps.Keys(s.uniforms))
}

// Destroy deletes the GL program. It is safe to call more than once.
func (s *Shader[T]) Destroy() {
	if s.released {
		return
	}
	s.released = true
	s.dev.drv.DeleteProgram(s.program)
	s.dev.stats.s.Shaders--
}

// IsReleased reports whether Destroy was called.
func (s *Shader[T]) IsReleased() bool { return s.released }
