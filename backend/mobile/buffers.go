//go:build darwin || linux || openbsd || windows

package mobile

import (
	"golang.org/x/mobile/gl"

	"github.com/gogpu/glkit/driver"
)

func (d *Driver) CreateBuffer() driver.Buffer {
	return driver.Buffer(d.gl.CreateBuffer().Value)
}

func (d *Driver) BindBuffer(target driver.Enum, b driver.Buffer) {
	d.gl.BindBuffer(gl.Enum(target), gl.Buffer{Value: uint32(b)})
}

func (d *Driver) BufferInit(target driver.Enum, size int, usage driver.Enum) {
	d.gl.BufferInit(gl.Enum(target), size, gl.Enum(usage))
}

func (d *Driver) BufferSubData(target driver.Enum, offset int, data []byte) {
	d.gl.BufferSubData(gl.Enum(target), offset, data)
}

func (d *Driver) DeleteBuffer(b driver.Buffer) {
	d.gl.DeleteBuffer(gl.Buffer{Value: uint32(b)})
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	d.gl.EnableVertexAttribArray(gl.Attrib{Value: uint(index)})
}

func (d *Driver) DisableVertexAttribArray(index uint32) {
	d.gl.DisableVertexAttribArray(gl.Attrib{Value: uint(index)})
}

func (d *Driver) VertexAttribPointer(index uint32, size int, ty driver.Enum, normalized bool, stride, offset int) {
	d.gl.VertexAttribPointer(gl.Attrib{Value: uint(index)}, size, gl.Enum(ty), normalized, stride, offset)
}

// VertexAttribIPointer has no ES 2 counterpart; the attribute is
// declared unnormalized so integer values arrive as floats.
func (d *Driver) VertexAttribIPointer(index uint32, size int, ty driver.Enum, stride, offset int) {
	d.gl.VertexAttribPointer(gl.Attrib{Value: uint(index)}, size, gl.Enum(ty), false, stride, offset)
}

func (d *Driver) DrawArrays(mode driver.Enum, first, count int) {
	d.gl.DrawArrays(gl.Enum(mode), first, count)
}

func (d *Driver) DrawElements(mode driver.Enum, count int, ty driver.Enum, offset int) {
	d.gl.DrawElements(gl.Enum(mode), count, gl.Enum(ty), offset)
}
