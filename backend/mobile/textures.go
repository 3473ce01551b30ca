//go:build darwin || linux || openbsd || windows

package mobile

import (
	"golang.org/x/mobile/gl"

	"github.com/gogpu/glkit/driver"
)

func texture(t driver.Texture) gl.Texture { return gl.Texture{Value: uint32(t)} }

func (d *Driver) CreateTexture() driver.Texture {
	return driver.Texture(d.gl.CreateTexture().Value)
}

func (d *Driver) ActiveTexture(unit driver.Enum) { d.gl.ActiveTexture(gl.Enum(unit)) }

func (d *Driver) BindTexture(target driver.Enum, t driver.Texture) {
	d.gl.BindTexture(gl.Enum(target), texture(t))
}

func (d *Driver) TexImage2D(target driver.Enum, level int, internalFormat driver.Enum, width, height int, format, ty driver.Enum, data []byte) {
	d.gl.TexImage2D(gl.Enum(target), level, int(internalFormat), width, height, gl.Enum(format), gl.Enum(ty), data)
}

func (d *Driver) TexParameteri(target, pname driver.Enum, param int32) {
	d.gl.TexParameteri(gl.Enum(target), gl.Enum(pname), int(param))
}

func (d *Driver) GenerateMipmap(target driver.Enum) { d.gl.GenerateMipmap(gl.Enum(target)) }
func (d *Driver) DeleteTexture(t driver.Texture)    { d.gl.DeleteTexture(texture(t)) }

func (d *Driver) CreateFramebuffer() driver.Framebuffer {
	return driver.Framebuffer(d.gl.CreateFramebuffer().Value)
}

func (d *Driver) BindFramebuffer(target driver.Enum, fb driver.Framebuffer) {
	d.gl.BindFramebuffer(gl.Enum(target), gl.Framebuffer{Value: uint32(fb)})
}

func (d *Driver) FramebufferTexture2D(target, attachment, texTarget driver.Enum, t driver.Texture, level int) {
	d.gl.FramebufferTexture2D(gl.Enum(target), gl.Enum(attachment), gl.Enum(texTarget), texture(t), level)
}

func (d *Driver) CheckFramebufferStatus(target driver.Enum) driver.Enum {
	return driver.Enum(d.gl.CheckFramebufferStatus(gl.Enum(target)))
}

func (d *Driver) DeleteFramebuffer(fb driver.Framebuffer) {
	d.gl.DeleteFramebuffer(gl.Framebuffer{Value: uint32(fb)})
}

func (d *Driver) CreateRenderbuffer() driver.Renderbuffer {
	return driver.Renderbuffer(d.gl.CreateRenderbuffer().Value)
}

func (d *Driver) BindRenderbuffer(target driver.Enum, rb driver.Renderbuffer) {
	d.gl.BindRenderbuffer(gl.Enum(target), gl.Renderbuffer{Value: uint32(rb)})
}

func (d *Driver) RenderbufferStorage(target, internalFormat driver.Enum, width, height int) {
	d.gl.RenderbufferStorage(gl.Enum(target), gl.Enum(internalFormat), width, height)
}

func (d *Driver) FramebufferRenderbuffer(target, attachment, rbTarget driver.Enum, rb driver.Renderbuffer) {
	d.gl.FramebufferRenderbuffer(gl.Enum(target), gl.Enum(attachment), gl.Enum(rbTarget), gl.Renderbuffer{Value: uint32(rb)})
}

func (d *Driver) DeleteRenderbuffer(rb driver.Renderbuffer) {
	d.gl.DeleteRenderbuffer(gl.Renderbuffer{Value: uint32(rb)})
}

func (d *Driver) ReadPixels(dst []byte, x, y, width, height int, format, ty driver.Enum) {
	d.gl.ReadPixels(dst, x, y, width, height, gl.Enum(format), gl.Enum(ty))
}
