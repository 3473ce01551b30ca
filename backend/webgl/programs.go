//go:build js && wasm

package webgl

import (
	"syscall/js"

	"github.com/gogpu/glkit/driver"
)

func (d *Driver) CreateShader(ty driver.Enum) driver.Shader {
	return driver.Shader(d.put(d.ctx.Call("createShader", int(ty))))
}

func (d *Driver) ShaderSource(s driver.Shader, src string) {
	d.ctx.Call("shaderSource", d.get(uint32(s)), src)
}

func (d *Driver) CompileShader(s driver.Shader) { d.ctx.Call("compileShader", d.get(uint32(s))) }

func (d *Driver) ShaderCompiled(s driver.Shader) bool {
	return paramVal(d.ctx.Call("getShaderParameter", d.get(uint32(s)), int(driver.COMPILE_STATUS))) != 0
}

func (d *Driver) ShaderInfoLog(s driver.Shader) string {
	return d.ctx.Call("getShaderInfoLog", d.get(uint32(s))).String()
}

func (d *Driver) DeleteShader(s driver.Shader) { d.ctx.Call("deleteShader", d.drop(uint32(s))) }

func (d *Driver) CreateProgram() driver.Program {
	return driver.Program(d.put(d.ctx.Call("createProgram")))
}

func (d *Driver) AttachShader(p driver.Program, s driver.Shader) {
	d.ctx.Call("attachShader", d.get(uint32(p)), d.get(uint32(s)))
}

func (d *Driver) DetachShader(p driver.Program, s driver.Shader) {
	d.ctx.Call("detachShader", d.get(uint32(p)), d.get(uint32(s)))
}

func (d *Driver) LinkProgram(p driver.Program) { d.ctx.Call("linkProgram", d.get(uint32(p))) }

func (d *Driver) ProgramLinked(p driver.Program) bool {
	return paramVal(d.ctx.Call("getProgramParameter", d.get(uint32(p)), int(driver.LINK_STATUS))) != 0
}

func (d *Driver) ProgramInfoLog(p driver.Program) string {
	return d.ctx.Call("getProgramInfoLog", d.get(uint32(p))).String()
}

func (d *Driver) BindAttribLocation(p driver.Program, index uint32, name string) {
	d.ctx.Call("bindAttribLocation", d.get(uint32(p)), index, name)
}

func (d *Driver) ActiveAttribs(p driver.Program) []driver.ActiveInfo {
	return d.active(p, driver.ACTIVE_ATTRIBUTES, "getActiveAttrib")
}

func (d *Driver) ActiveUniforms(p driver.Program) []driver.ActiveInfo {
	return d.active(p, driver.ACTIVE_UNIFORMS, "getActiveUniform")
}

func (d *Driver) active(p driver.Program, pname driver.Enum, method string) []driver.ActiveInfo {
	prog := d.get(uint32(p))
	n := paramVal(d.ctx.Call("getProgramParameter", prog, int(pname)))
	out := make([]driver.ActiveInfo, 0, n)
	for i := range n {
		info := d.ctx.Call(method, prog, i)
		if info.IsNull() {
			continue
		}
		out = append(out, driver.ActiveInfo{
			Name: info.Get("name").String(),
			Size: info.Get("size").Int(),
			Type: driver.Enum(info.Get("type").Int()),
		})
	}
	return out
}

// GetUniformLocation hands out a small integer per location object.
func (d *Driver) GetUniformLocation(p driver.Program, name string) driver.Uniform {
	loc := d.ctx.Call("getUniformLocation", d.get(uint32(p)), name)
	if loc.IsNull() || loc.IsUndefined() {
		return driver.NoUniform
	}
	d.uniforms[d.nextLoc] = loc
	d.nextLoc++
	return driver.Uniform(d.nextLoc - 1)
}

func (d *Driver) UseProgram(p driver.Program) { d.ctx.Call("useProgram", d.get(uint32(p))) }

func (d *Driver) DeleteProgram(p driver.Program) { d.ctx.Call("deleteProgram", d.drop(uint32(p))) }

func (d *Driver) loc(u driver.Uniform) js.Value {
	if v, ok := d.uniforms[int32(u)]; ok {
		return v
	}
	return js.Null()
}

func (d *Driver) Uniform1f(u driver.Uniform, v float32) { d.ctx.Call("uniform1f", d.loc(u), v) }

func (d *Driver) Uniform2f(u driver.Uniform, v0, v1 float32) {
	d.ctx.Call("uniform2f", d.loc(u), v0, v1)
}

func (d *Driver) Uniform3f(u driver.Uniform, v0, v1, v2 float32) {
	d.ctx.Call("uniform3f", d.loc(u), v0, v1, v2)
}

func (d *Driver) Uniform4f(u driver.Uniform, v0, v1, v2, v3 float32) {
	d.ctx.Call("uniform4f", d.loc(u), v0, v1, v2, v3)
}

func (d *Driver) Uniform1i(u driver.Uniform, v int32) { d.ctx.Call("uniform1i", d.loc(u), v) }

func (d *Driver) Uniform2i(u driver.Uniform, v0, v1 int32) {
	d.ctx.Call("uniform2i", d.loc(u), v0, v1)
}

func (d *Driver) Uniform3i(u driver.Uniform, v0, v1, v2 int32) {
	d.ctx.Call("uniform3i", d.loc(u), v0, v1, v2)
}

func (d *Driver) Uniform4i(u driver.Uniform, v0, v1, v2, v3 int32) {
	d.ctx.Call("uniform4i", d.loc(u), v0, v1, v2, v3)
}

// Unsigned setters exist from WebGL 2 on. WebGL 1 takes the signed path.

func (d *Driver) Uniform1ui(u driver.Uniform, v uint32) {
	if d.version < 2 {
		d.Uniform1i(u, int32(v))
		return
	}
	d.ctx.Call("uniform1ui", d.loc(u), v)
}

func (d *Driver) Uniform2ui(u driver.Uniform, v0, v1 uint32) {
	if d.version < 2 {
		d.Uniform2i(u, int32(v0), int32(v1))
		return
	}
	d.ctx.Call("uniform2ui", d.loc(u), v0, v1)
}

func (d *Driver) Uniform3ui(u driver.Uniform, v0, v1, v2 uint32) {
	if d.version < 2 {
		d.Uniform3i(u, int32(v0), int32(v1), int32(v2))
		return
	}
	d.ctx.Call("uniform3ui", d.loc(u), v0, v1, v2)
}

func (d *Driver) Uniform4ui(u driver.Uniform, v0, v1, v2, v3 uint32) {
	if d.version < 2 {
		d.Uniform4i(u, int32(v0), int32(v1), int32(v2), int32(v3))
		return
	}
	d.ctx.Call("uniform4ui", d.loc(u), v0, v1, v2, v3)
}

func (d *Driver) UniformMatrix2fv(u driver.Uniform, m []float32) {
	d.ctx.Call("uniformMatrix2fv", d.loc(u), false, float32Array(m))
}

func (d *Driver) UniformMatrix3fv(u driver.Uniform, m []float32) {
	d.ctx.Call("uniformMatrix3fv", d.loc(u), false, float32Array(m))
}

func (d *Driver) UniformMatrix4fv(u driver.Uniform, m []float32) {
	d.ctx.Call("uniformMatrix4fv", d.loc(u), false, float32Array(m))
}

func float32Array(m []float32) js.Value {
	a := js.Global().Get("Float32Array").New(len(m))
	for i, v := range m {
		a.SetIndex(i, v)
	}
	return a
}
