//go:build darwin || linux || openbsd || windows

package mobile

import (
	"golang.org/x/mobile/gl"

	"github.com/gogpu/glkit/driver"
)

// program converts a handle. Init is set so that 0 reaches the driver
// as 0 and unbinds.
func program(p driver.Program) gl.Program {
	return gl.Program{Init: true, Value: uint32(p)}
}

func shader(s driver.Shader) gl.Shader { return gl.Shader{Value: uint32(s)} }

func uniform(u driver.Uniform) gl.Uniform { return gl.Uniform{Value: int32(u)} }

func (d *Driver) CreateShader(ty driver.Enum) driver.Shader {
	return driver.Shader(d.gl.CreateShader(gl.Enum(ty)).Value)
}

func (d *Driver) ShaderSource(s driver.Shader, src string) { d.gl.ShaderSource(shader(s), src) }
func (d *Driver) CompileShader(s driver.Shader)            { d.gl.CompileShader(shader(s)) }
func (d *Driver) ShaderInfoLog(s driver.Shader) string     { return d.gl.GetShaderInfoLog(shader(s)) }
func (d *Driver) DeleteShader(s driver.Shader)             { d.gl.DeleteShader(shader(s)) }

func (d *Driver) ShaderCompiled(s driver.Shader) bool {
	return d.gl.GetShaderi(shader(s), gl.COMPILE_STATUS) != gl.FALSE
}

func (d *Driver) CreateProgram() driver.Program {
	return driver.Program(d.gl.CreateProgram().Value)
}

func (d *Driver) AttachShader(p driver.Program, s driver.Shader) {
	d.gl.AttachShader(program(p), shader(s))
}

func (d *Driver) DetachShader(p driver.Program, s driver.Shader) {
	d.gl.DetachShader(program(p), shader(s))
}

func (d *Driver) LinkProgram(p driver.Program)           { d.gl.LinkProgram(program(p)) }
func (d *Driver) ProgramInfoLog(p driver.Program) string { return d.gl.GetProgramInfoLog(program(p)) }
func (d *Driver) UseProgram(p driver.Program)            { d.gl.UseProgram(program(p)) }
func (d *Driver) DeleteProgram(p driver.Program)         { d.gl.DeleteProgram(program(p)) }

func (d *Driver) ProgramLinked(p driver.Program) bool {
	return d.gl.GetProgrami(program(p), gl.LINK_STATUS) != gl.FALSE
}

func (d *Driver) BindAttribLocation(p driver.Program, index uint32, name string) {
	d.gl.BindAttribLocation(program(p), gl.Attrib{Value: uint(index)}, name)
}

func (d *Driver) ActiveAttribs(p driver.Program) []driver.ActiveInfo {
	n := d.gl.GetProgrami(program(p), gl.ACTIVE_ATTRIBUTES)
	out := make([]driver.ActiveInfo, 0, n)
	for i := range n {
		name, size, ty := d.gl.GetActiveAttrib(program(p), uint32(i))
		out = append(out, driver.ActiveInfo{Name: name, Size: size, Type: driver.Enum(ty)})
	}
	return out
}

func (d *Driver) ActiveUniforms(p driver.Program) []driver.ActiveInfo {
	n := d.gl.GetProgrami(program(p), gl.ACTIVE_UNIFORMS)
	out := make([]driver.ActiveInfo, 0, n)
	for i := range n {
		name, size, ty := d.gl.GetActiveUniform(program(p), uint32(i))
		out = append(out, driver.ActiveInfo{Name: name, Size: size, Type: driver.Enum(ty)})
	}
	return out
}

func (d *Driver) GetUniformLocation(p driver.Program, name string) driver.Uniform {
	return driver.Uniform(d.gl.GetUniformLocation(program(p), name).Value)
}

func (d *Driver) Uniform1f(u driver.Uniform, v float32)      { d.gl.Uniform1f(uniform(u), v) }
func (d *Driver) Uniform2f(u driver.Uniform, v0, v1 float32) { d.gl.Uniform2f(uniform(u), v0, v1) }
func (d *Driver) Uniform3f(u driver.Uniform, v0, v1, v2 float32) {
	d.gl.Uniform3f(uniform(u), v0, v1, v2)
}

func (d *Driver) Uniform4f(u driver.Uniform, v0, v1, v2, v3 float32) {
	d.gl.Uniform4f(uniform(u), v0, v1, v2, v3)
}

func (d *Driver) Uniform1i(u driver.Uniform, v int32) { d.gl.Uniform1i(uniform(u), int(v)) }
func (d *Driver) Uniform2i(u driver.Uniform, v0, v1 int32) {
	d.gl.Uniform2i(uniform(u), int(v0), int(v1))
}

func (d *Driver) Uniform3i(u driver.Uniform, v0, v1, v2 int32) {
	d.gl.Uniform3i(uniform(u), v0, v1, v2)
}

func (d *Driver) Uniform4i(u driver.Uniform, v0, v1, v2, v3 int32) {
	d.gl.Uniform4i(uniform(u), v0, v1, v2, v3)
}

// ES 2 has no unsigned uniforms. The values go through the signed
// setters, which is what the GLSL 100 int declaration expects.

func (d *Driver) Uniform1ui(u driver.Uniform, v uint32) { d.Uniform1i(u, int32(v)) }

func (d *Driver) Uniform2ui(u driver.Uniform, v0, v1 uint32) {
	d.Uniform2i(u, int32(v0), int32(v1))
}

func (d *Driver) Uniform3ui(u driver.Uniform, v0, v1, v2 uint32) {
	d.Uniform3i(u, int32(v0), int32(v1), int32(v2))
}

func (d *Driver) Uniform4ui(u driver.Uniform, v0, v1, v2, v3 uint32) {
	d.Uniform4i(u, int32(v0), int32(v1), int32(v2), int32(v3))
}

func (d *Driver) UniformMatrix2fv(u driver.Uniform, m []float32) {
	d.gl.UniformMatrix2fv(uniform(u), m)
}
func (d *Driver) UniformMatrix3fv(u driver.Uniform, m []float32) {
	d.gl.UniformMatrix3fv(uniform(u), m)
}
func (d *Driver) UniformMatrix4fv(u driver.Uniform, m []float32) {
	d.gl.UniformMatrix4fv(uniform(u), m)
}
