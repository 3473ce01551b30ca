// Package drivertest provides a recording driver.Driver for tests.
//
// The fake keeps just enough GL state to answer queries: bound objects,
// buffer sizes, enabled capabilities and vertex arrays. Shader
// reflection is derived from the GLSL source by scanning top-level
// attribute, in and uniform declarations, so tests can compile real
// shader text and see the active attributes a driver would report.
package drivertest

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/glkit/driver"
)

// Call is one recorded driver call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// AttribPointer is a vertex attribute array as seen at draw time.
type AttribPointer struct {
	Index      uint32
	Size       int
	Type       driver.Enum
	Integer    bool
	Normalized bool
	Stride     int
	Offset     int
}

// Draw records one draw call.
type Draw struct {
	Mode        driver.Enum
	First       int
	Count       int
	Indexed     bool
	IndexType   driver.Enum
	Offset      int
	Program     driver.Program
	ArrayBuffer driver.Buffer
	IndexBuffer driver.Buffer
	Attribs     []AttribPointer
}

type shaderObject struct {
	ty       driver.Enum
	src      string
	compiled bool
	log      string
}

type programObject struct {
	shaders  []driver.Shader
	linked   bool
	bindings map[string]uint32
	attribs  []driver.ActiveInfo
	uniforms []driver.ActiveInfo
}

// Driver is a recording fake. The zero value is not usable; call New.
type Driver struct {
	// InfoValue is returned by Info.
	InfoValue driver.Info

	// Elide lists names that are declared in source but not reported as
	// active, the way real drivers drop unused inputs.
	Elide map[string]bool

	// FailCompile makes every compile fail with CompileLog. FailStage
	// narrows it to one shader type when non-zero.
	FailCompile bool
	FailStage   driver.Enum
	CompileLog  string

	// FailLink makes every link fail with LinkLog.
	FailLink bool
	LinkLog  string

	// FailCreate makes Create* return the null handle.
	FailCreate bool

	// FramebufferStatus is returned by CheckFramebufferStatus.
	FramebufferStatus driver.Enum

	Calls []Call
	Draws []Draw

	Enabled     map[driver.Enum]bool
	ViewportXY  [4]int32
	Clear4      [4]float32
	Program     driver.Program
	ActiveUnit  driver.Enum
	Textures    map[driver.Enum]driver.Texture
	Buffers     map[driver.Enum]driver.Buffer
	BufferSizes map[driver.Buffer]int
	Framebuffer driver.Framebuffer

	next     uint32
	shaders  map[driver.Shader]*shaderObject
	programs map[driver.Program]*programObject
	arrays   map[uint32]AttribPointer
	enabled  map[uint32]bool
	deleted  map[string]int
}

// New returns a fake driver reporting a desktop GL context.
func New() *Driver {
	return &Driver{
		InfoValue:         driver.Info{Vendor: "glkit", Renderer: "drivertest", Version: "2.1"},
		Elide:             map[string]bool{},
		FramebufferStatus: driver.FRAMEBUFFER_COMPLETE,
		Enabled:           map[driver.Enum]bool{},
		Textures:          map[driver.Enum]driver.Texture{},
		Buffers:           map[driver.Enum]driver.Buffer{},
		BufferSizes:       map[driver.Buffer]int{},
		shaders:           map[driver.Shader]*shaderObject{},
		programs:          map[driver.Program]*programObject{},
		arrays:            map[uint32]AttribPointer{},
		enabled:           map[uint32]bool{},
		deleted:           map[string]int{},
	}
}

var _ driver.Driver = (*Driver)(nil)

func (d *Driver) record(name string, args ...any) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
}

func (d *Driver) alloc() uint32 {
	if d.FailCreate {
		return 0
	}
	d.next++
	return d.next
}

// Count returns how many times the named call was recorded.
func (d *Driver) Count(name string) int {
	n := 0
	for _, c := range d.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Named returns the recorded calls with the given name, oldest first.
func (d *Driver) Named(name string) []Call {
	var out []Call
	for _, c := range d.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Last returns the most recent call with the given name.
func (d *Driver) Last(name string) (Call, bool) {
	for i := len(d.Calls) - 1; i >= 0; i-- {
		if d.Calls[i].Name == name {
			return d.Calls[i], true
		}
	}
	return Call{}, false
}

// Deleted returns how many objects of a kind ("buffer", "texture", ...) were deleted.
func (d *Driver) Deleted(kind string) int { return d.deleted[kind] }

// ResetCalls clears the call and draw logs but keeps GL state.
func (d *Driver) ResetCalls() {
	d.Calls = nil
	d.Draws = nil
}

// ArrayEnabled reports whether a vertex attribute array is enabled.
func (d *Driver) ArrayEnabled(index uint32) bool { return d.enabled[index] }

// Bindings returns the attribute slots bound on a program, by name.
func (d *Driver) Bindings(p driver.Program) map[string]uint32 {
	if po := d.programs[p]; po != nil {
		return po.bindings
	}
	return nil
}

func (d *Driver) Info() driver.Info { return d.InfoValue }

func (d *Driver) Enable(c driver.Enum) {
	d.record("Enable", c)
	d.Enabled[c] = true
}

func (d *Driver) Disable(c driver.Enum) {
	d.record("Disable", c)
	d.Enabled[c] = false
}

func (d *Driver) DepthFunc(fn driver.Enum)       { d.record("DepthFunc", fn) }
func (d *Driver) BlendEquation(mode driver.Enum) { d.record("BlendEquation", mode) }
func (d *Driver) BlendFunc(s, dst driver.Enum)   { d.record("BlendFunc", s, dst) }
func (d *Driver) CullFace(mode driver.Enum)      { d.record("CullFace", mode) }

func (d *Driver) PixelStorei(pname driver.Enum, param int32) {
	d.record("PixelStorei", pname, param)
}

func (d *Driver) Viewport(x, y, w, h int32) {
	d.record("Viewport", x, y, w, h)
	d.ViewportXY = [4]int32{x, y, w, h}
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.record("ClearColor", r, g, b, a)
	d.Clear4 = [4]float32{r, g, b, a}
}

func (d *Driver) Clear(mask driver.Enum) { d.record("Clear", mask) }

func (d *Driver) CreateBuffer() driver.Buffer {
	b := driver.Buffer(d.alloc())
	d.record("CreateBuffer", b)
	return b
}

func (d *Driver) BindBuffer(target driver.Enum, b driver.Buffer) {
	d.record("BindBuffer", target, b)
	d.Buffers[target] = b
}

func (d *Driver) BufferInit(target driver.Enum, size int, usage driver.Enum) {
	d.record("BufferInit", target, size, usage)
	d.BufferSizes[d.Buffers[target]] = size
}

func (d *Driver) BufferSubData(target driver.Enum, offset int, data []byte) {
	d.record("BufferSubData", target, offset, len(data))
	b := d.Buffers[target]
	if offset+len(data) > d.BufferSizes[b] {
		panic(fmt.Sprintf("drivertest: BufferSubData overflows buffer %d: %d+%d > %d",
			b, offset, len(data), d.BufferSizes[b]))
	}
}

func (d *Driver) DeleteBuffer(b driver.Buffer) {
	d.record("DeleteBuffer", b)
	d.deleted["buffer"]++
	delete(d.BufferSizes, b)
}

func (d *Driver) CreateShader(ty driver.Enum) driver.Shader {
	s := driver.Shader(d.alloc())
	d.record("CreateShader", ty, s)
	if s != 0 {
		d.shaders[s] = &shaderObject{ty: ty}
	}
	return s
}

func (d *Driver) ShaderSource(s driver.Shader, src string) {
	d.record("ShaderSource", s, src)
	if so := d.shaders[s]; so != nil {
		so.src = src
	}
}

func (d *Driver) CompileShader(s driver.Shader) {
	d.record("CompileShader", s)
	so := d.shaders[s]
	if so == nil {
		return
	}
	fail := d.FailCompile && (d.FailStage == 0 || d.FailStage == so.ty)
	so.compiled = !fail
	if fail {
		so.log = d.CompileLog
	}
}

func (d *Driver) ShaderCompiled(s driver.Shader) bool {
	so := d.shaders[s]
	return so != nil && so.compiled
}

func (d *Driver) ShaderInfoLog(s driver.Shader) string {
	if so := d.shaders[s]; so != nil {
		return so.log
	}
	return ""
}

func (d *Driver) DeleteShader(s driver.Shader) {
	d.record("DeleteShader", s)
	d.deleted["shader"]++
	delete(d.shaders, s)
}

func (d *Driver) CreateProgram() driver.Program {
	p := driver.Program(d.alloc())
	d.record("CreateProgram", p)
	if p != 0 {
		d.programs[p] = &programObject{bindings: map[string]uint32{}}
	}
	return p
}

func (d *Driver) AttachShader(p driver.Program, s driver.Shader) {
	d.record("AttachShader", p, s)
	if po := d.programs[p]; po != nil {
		po.shaders = append(po.shaders, s)
	}
}

func (d *Driver) DetachShader(p driver.Program, s driver.Shader) {
	d.record("DetachShader", p, s)
	po := d.programs[p]
	if po == nil {
		return
	}
	for i, x := range po.shaders {
		if x == s {
			po.shaders = append(po.shaders[:i], po.shaders[i+1:]...)
			break
		}
	}
}

func (d *Driver) LinkProgram(p driver.Program) {
	d.record("LinkProgram", p)
	po := d.programs[p]
	if po == nil {
		return
	}
	po.linked = !d.FailLink
	if !po.linked {
		return
	}
	po.attribs, po.uniforms = nil, nil
	seen := map[string]bool{}
	for _, s := range po.shaders {
		so := d.shaders[s]
		if so == nil {
			continue
		}
		for _, decl := range scan(so.src) {
			if d.Elide[decl.name] {
				continue
			}
			switch {
			case decl.uniform:
				if seen["u:"+decl.name] {
					continue
				}
				seen["u:"+decl.name] = true
				name := decl.name
				if decl.array > 0 {
					name += "[0]"
				}
				size := decl.array
				if size == 0 {
					size = 1
				}
				po.uniforms = append(po.uniforms, driver.ActiveInfo{Name: name, Size: size, Type: decl.ty})
			case so.ty == driver.VERTEX_SHADER:
				po.attribs = append(po.attribs, driver.ActiveInfo{Name: decl.name, Size: 1, Type: decl.ty})
			}
		}
	}
}

func (d *Driver) ProgramLinked(p driver.Program) bool {
	po := d.programs[p]
	return po != nil && po.linked
}

func (d *Driver) ProgramInfoLog(driver.Program) string { return d.LinkLog }

func (d *Driver) BindAttribLocation(p driver.Program, index uint32, name string) {
	d.record("BindAttribLocation", p, index, name)
	if po := d.programs[p]; po != nil {
		po.bindings[name] = index
	}
}

func (d *Driver) ActiveAttribs(p driver.Program) []driver.ActiveInfo {
	if po := d.programs[p]; po != nil {
		return po.attribs
	}
	return nil
}

func (d *Driver) ActiveUniforms(p driver.Program) []driver.ActiveInfo {
	if po := d.programs[p]; po != nil {
		return po.uniforms
	}
	return nil
}

func (d *Driver) GetUniformLocation(p driver.Program, name string) driver.Uniform {
	po := d.programs[p]
	if po == nil {
		return driver.NoUniform
	}
	for i, u := range po.uniforms {
		if u.Name == name || strings.TrimSuffix(u.Name, "[0]") == name {
			return driver.Uniform(i)
		}
	}
	return driver.NoUniform
}

func (d *Driver) UseProgram(p driver.Program) {
	d.record("UseProgram", p)
	d.Program = p
}

func (d *Driver) DeleteProgram(p driver.Program) {
	d.record("DeleteProgram", p)
	d.deleted["program"]++
	delete(d.programs, p)
}

func (d *Driver) Uniform1f(u driver.Uniform, v float32)    { d.record("Uniform1f", u, v) }
func (d *Driver) Uniform2f(u driver.Uniform, a, b float32) { d.record("Uniform2f", u, a, b) }
func (d *Driver) Uniform3f(u driver.Uniform, a, b, c float32) {
	d.record("Uniform3f", u, a, b, c)
}
func (d *Driver) Uniform4f(u driver.Uniform, a, b, c, e float32) {
	d.record("Uniform4f", u, a, b, c, e)
}
func (d *Driver) Uniform1i(u driver.Uniform, v int32)    { d.record("Uniform1i", u, v) }
func (d *Driver) Uniform2i(u driver.Uniform, a, b int32) { d.record("Uniform2i", u, a, b) }
func (d *Driver) Uniform3i(u driver.Uniform, a, b, c int32) {
	d.record("Uniform3i", u, a, b, c)
}
func (d *Driver) Uniform4i(u driver.Uniform, a, b, c, e int32) {
	d.record("Uniform4i", u, a, b, c, e)
}
func (d *Driver) Uniform1ui(u driver.Uniform, v uint32)    { d.record("Uniform1ui", u, v) }
func (d *Driver) Uniform2ui(u driver.Uniform, a, b uint32) { d.record("Uniform2ui", u, a, b) }
func (d *Driver) Uniform3ui(u driver.Uniform, a, b, c uint32) {
	d.record("Uniform3ui", u, a, b, c)
}
func (d *Driver) Uniform4ui(u driver.Uniform, a, b, c, e uint32) {
	d.record("Uniform4ui", u, a, b, c, e)
}
func (d *Driver) UniformMatrix2fv(u driver.Uniform, m []float32) {
	d.record("UniformMatrix2fv", u, append([]float32(nil), m...))
}
func (d *Driver) UniformMatrix3fv(u driver.Uniform, m []float32) {
	d.record("UniformMatrix3fv", u, append([]float32(nil), m...))
}
func (d *Driver) UniformMatrix4fv(u driver.Uniform, m []float32) {
	d.record("UniformMatrix4fv", u, append([]float32(nil), m...))
}

func (d *Driver) CreateTexture() driver.Texture {
	t := driver.Texture(d.alloc())
	d.record("CreateTexture", t)
	return t
}

func (d *Driver) ActiveTexture(unit driver.Enum) {
	d.record("ActiveTexture", unit)
	d.ActiveUnit = unit
}

func (d *Driver) BindTexture(target driver.Enum, t driver.Texture) {
	d.record("BindTexture", target, t)
	d.Textures[d.ActiveUnit] = t
}

func (d *Driver) TexImage2D(target driver.Enum, level int, internalFormat driver.Enum, w, h int, format, ty driver.Enum, data []byte) {
	d.record("TexImage2D", target, level, internalFormat, w, h, format, ty, len(data))
}

func (d *Driver) TexParameteri(target, pname driver.Enum, param int32) {
	d.record("TexParameteri", target, pname, param)
}

func (d *Driver) GenerateMipmap(target driver.Enum) { d.record("GenerateMipmap", target) }

func (d *Driver) DeleteTexture(t driver.Texture) {
	d.record("DeleteTexture", t)
	d.deleted["texture"]++
}

func (d *Driver) CreateFramebuffer() driver.Framebuffer {
	fb := driver.Framebuffer(d.alloc())
	d.record("CreateFramebuffer", fb)
	return fb
}

func (d *Driver) BindFramebuffer(target driver.Enum, fb driver.Framebuffer) {
	d.record("BindFramebuffer", target, fb)
	d.Framebuffer = fb
}

func (d *Driver) FramebufferTexture2D(target, attachment, texTarget driver.Enum, t driver.Texture, level int) {
	d.record("FramebufferTexture2D", target, attachment, texTarget, t, level)
}

func (d *Driver) CheckFramebufferStatus(target driver.Enum) driver.Enum {
	d.record("CheckFramebufferStatus", target)
	return d.FramebufferStatus
}

func (d *Driver) DeleteFramebuffer(fb driver.Framebuffer) {
	d.record("DeleteFramebuffer", fb)
	d.deleted["framebuffer"]++
}

func (d *Driver) CreateRenderbuffer() driver.Renderbuffer {
	rb := driver.Renderbuffer(d.alloc())
	d.record("CreateRenderbuffer", rb)
	return rb
}

func (d *Driver) BindRenderbuffer(target driver.Enum, rb driver.Renderbuffer) {
	d.record("BindRenderbuffer", target, rb)
}

func (d *Driver) RenderbufferStorage(target, internalFormat driver.Enum, w, h int) {
	d.record("RenderbufferStorage", target, internalFormat, w, h)
}

func (d *Driver) FramebufferRenderbuffer(target, attachment, rbTarget driver.Enum, rb driver.Renderbuffer) {
	d.record("FramebufferRenderbuffer", target, attachment, rbTarget, rb)
}

func (d *Driver) DeleteRenderbuffer(rb driver.Renderbuffer) {
	d.record("DeleteRenderbuffer", rb)
	d.deleted["renderbuffer"]++
}

// ReadPixels fills dst with the last clear color as RGBA8.
func (d *Driver) ReadPixels(dst []byte, x, y, w, h int, format, ty driver.Enum) {
	d.record("ReadPixels", x, y, w, h, format, ty)
	var px [4]byte
	for i, c := range d.Clear4 {
		px[i] = byte(c*255 + 0.5)
	}
	for i := 0; i+4 <= len(dst); i += 4 {
		copy(dst[i:], px[:])
	}
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray", index)
	d.enabled[index] = true
}

func (d *Driver) DisableVertexAttribArray(index uint32) {
	d.record("DisableVertexAttribArray", index)
	d.enabled[index] = false
}

func (d *Driver) VertexAttribPointer(index uint32, size int, ty driver.Enum, normalized bool, stride, offset int) {
	d.record("VertexAttribPointer", index, size, ty, normalized, stride, offset)
	d.arrays[index] = AttribPointer{Index: index, Size: size, Type: ty, Normalized: normalized, Stride: stride, Offset: offset}
}

func (d *Driver) VertexAttribIPointer(index uint32, size int, ty driver.Enum, stride, offset int) {
	d.record("VertexAttribIPointer", index, size, ty, stride, offset)
	d.arrays[index] = AttribPointer{Index: index, Size: size, Type: ty, Integer: true, Stride: stride, Offset: offset}
}

func (d *Driver) DrawArrays(mode driver.Enum, first, count int) {
	d.record("DrawArrays", mode, first, count)
	d.Draws = append(d.Draws, d.snapshot(Draw{Mode: mode, First: first, Count: count}))
}

func (d *Driver) DrawElements(mode driver.Enum, count int, ty driver.Enum, offset int) {
	d.record("DrawElements", mode, count, ty, offset)
	d.Draws = append(d.Draws, d.snapshot(Draw{Mode: mode, Count: count, Indexed: true, IndexType: ty, Offset: offset}))
}

func (d *Driver) snapshot(dr Draw) Draw {
	dr.Program = d.Program
	dr.ArrayBuffer = d.Buffers[driver.ARRAY_BUFFER]
	dr.IndexBuffer = d.Buffers[driver.ELEMENT_ARRAY_BUFFER]
	for i, on := range d.enabled {
		if on {
			dr.Attribs = append(dr.Attribs, d.arrays[i])
		}
	}
	slices.SortFunc(dr.Attribs, func(a, b AttribPointer) int { return cmp.Compare(a.Index, b.Index) })
	return dr
}
