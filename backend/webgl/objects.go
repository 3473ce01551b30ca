//go:build js && wasm

package webgl

import (
	"syscall/js"

	"github.com/gogpu/glkit/driver"
)

func (d *Driver) CreateBuffer() driver.Buffer {
	return driver.Buffer(d.put(d.ctx.Call("createBuffer")))
}

func (d *Driver) BindBuffer(target driver.Enum, b driver.Buffer) {
	d.ctx.Call("bindBuffer", int(target), d.get(uint32(b)))
}

func (d *Driver) BufferInit(target driver.Enum, size int, usage driver.Enum) {
	d.ctx.Call("bufferData", int(target), size, int(usage))
}

func (d *Driver) BufferSubData(target driver.Enum, offset int, data []byte) {
	d.ctx.Call("bufferSubData", int(target), offset, d.bytes(data))
}

func (d *Driver) DeleteBuffer(b driver.Buffer) {
	d.ctx.Call("deleteBuffer", d.drop(uint32(b)))
}

func (d *Driver) CreateTexture() driver.Texture {
	return driver.Texture(d.put(d.ctx.Call("createTexture")))
}

func (d *Driver) ActiveTexture(unit driver.Enum) { d.ctx.Call("activeTexture", int(unit)) }

func (d *Driver) BindTexture(target driver.Enum, t driver.Texture) {
	d.ctx.Call("bindTexture", int(target), d.get(uint32(t)))
}

func (d *Driver) TexImage2D(target driver.Enum, level int, internalFormat driver.Enum, width, height int, format, ty driver.Enum, data []byte) {
	d.ctx.Call("texImage2D", int(target), level, int(internalFormat), width, height, 0, int(format), int(ty), d.bytes(data))
}

func (d *Driver) TexParameteri(target, pname driver.Enum, param int32) {
	d.ctx.Call("texParameteri", int(target), int(pname), param)
}

func (d *Driver) GenerateMipmap(target driver.Enum) { d.ctx.Call("generateMipmap", int(target)) }

func (d *Driver) DeleteTexture(t driver.Texture) {
	d.ctx.Call("deleteTexture", d.drop(uint32(t)))
}

func (d *Driver) CreateFramebuffer() driver.Framebuffer {
	return driver.Framebuffer(d.put(d.ctx.Call("createFramebuffer")))
}

func (d *Driver) BindFramebuffer(target driver.Enum, fb driver.Framebuffer) {
	d.ctx.Call("bindFramebuffer", int(target), d.get(uint32(fb)))
}

func (d *Driver) FramebufferTexture2D(target, attachment, texTarget driver.Enum, t driver.Texture, level int) {
	d.ctx.Call("framebufferTexture2D", int(target), int(attachment), int(texTarget), d.get(uint32(t)), level)
}

func (d *Driver) CheckFramebufferStatus(target driver.Enum) driver.Enum {
	return driver.Enum(d.ctx.Call("checkFramebufferStatus", int(target)).Int())
}

func (d *Driver) DeleteFramebuffer(fb driver.Framebuffer) {
	d.ctx.Call("deleteFramebuffer", d.drop(uint32(fb)))
}

func (d *Driver) CreateRenderbuffer() driver.Renderbuffer {
	return driver.Renderbuffer(d.put(d.ctx.Call("createRenderbuffer")))
}

func (d *Driver) BindRenderbuffer(target driver.Enum, rb driver.Renderbuffer) {
	d.ctx.Call("bindRenderbuffer", int(target), d.get(uint32(rb)))
}

func (d *Driver) RenderbufferStorage(target, internalFormat driver.Enum, width, height int) {
	d.ctx.Call("renderbufferStorage", int(target), int(internalFormat), width, height)
}

func (d *Driver) FramebufferRenderbuffer(target, attachment, rbTarget driver.Enum, rb driver.Renderbuffer) {
	d.ctx.Call("framebufferRenderbuffer", int(target), int(attachment), int(rbTarget), d.get(uint32(rb)))
}

func (d *Driver) DeleteRenderbuffer(rb driver.Renderbuffer) {
	d.ctx.Call("deleteRenderbuffer", d.drop(uint32(rb)))
}

func (d *Driver) ReadPixels(dst []byte, x, y, width, height int, format, ty driver.Enum) {
	d.resizeByteBuffer(len(dst))
	view := d.byteBuf.Call("subarray", 0, len(dst))
	d.ctx.Call("readPixels", x, y, width, height, int(format), int(ty), view)
	js.CopyBytesToGo(dst, view)
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	d.ctx.Call("enableVertexAttribArray", index)
}

func (d *Driver) DisableVertexAttribArray(index uint32) {
	d.ctx.Call("disableVertexAttribArray", index)
}

func (d *Driver) VertexAttribPointer(index uint32, size int, ty driver.Enum, normalized bool, stride, offset int) {
	d.ctx.Call("vertexAttribPointer", index, size, int(ty), normalized, stride, offset)
}

// VertexAttribIPointer needs WebGL 2. On WebGL 1 the attribute is
// declared unnormalized and reaches the shader as float.
func (d *Driver) VertexAttribIPointer(index uint32, size int, ty driver.Enum, stride, offset int) {
	if d.version < 2 {
		d.VertexAttribPointer(index, size, ty, false, stride, offset)
		return
	}
	d.ctx.Call("vertexAttribIPointer", index, size, int(ty), stride, offset)
}

func (d *Driver) DrawArrays(mode driver.Enum, first, count int) {
	d.ctx.Call("drawArrays", int(mode), first, count)
}

func (d *Driver) DrawElements(mode driver.Enum, count int, ty driver.Enum, offset int) {
	d.ctx.Call("drawElements", int(mode), count, int(ty), offset)
}
