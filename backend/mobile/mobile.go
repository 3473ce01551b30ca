//go:build darwin || linux || openbsd || windows

package mobile

import (
	"strings"

	"golang.org/x/mobile/gl"

	"github.com/gogpu/glkit/driver"
)

// Driver adapts a gl.Context to driver.Driver.
type Driver struct {
	gl gl.Context
}

var _ driver.Driver = (*Driver)(nil)

// New wraps ctx.
func New(ctx gl.Context) *Driver {
	return &Driver{gl: ctx}
}

// GL returns the wrapped context.
func (d *Driver) GL() gl.Context { return d.gl }

// Info queries the vendor, renderer and version strings.
func (d *Driver) Info() driver.Info {
	version := d.gl.GetString(gl.VERSION)
	return driver.Info{
		Vendor:   d.gl.GetString(gl.VENDOR),
		Renderer: d.gl.GetString(gl.RENDERER),
		Version:  version,
		ES:       strings.Contains(version, "OpenGL ES"),
	}
}

func (d *Driver) Enable(capability driver.Enum)  { d.gl.Enable(gl.Enum(capability)) }
func (d *Driver) Disable(capability driver.Enum) { d.gl.Disable(gl.Enum(capability)) }
func (d *Driver) DepthFunc(fn driver.Enum)       { d.gl.DepthFunc(gl.Enum(fn)) }
func (d *Driver) BlendEquation(mode driver.Enum) { d.gl.BlendEquation(gl.Enum(mode)) }
func (d *Driver) CullFace(mode driver.Enum)      { d.gl.CullFace(gl.Enum(mode)) }
func (d *Driver) Clear(mask driver.Enum)         { d.gl.Clear(gl.Enum(mask)) }

func (d *Driver) BlendFunc(sfactor, dfactor driver.Enum) {
	d.gl.BlendFunc(gl.Enum(sfactor), gl.Enum(dfactor))
}

func (d *Driver) PixelStorei(pname driver.Enum, param int32) {
	d.gl.PixelStorei(gl.Enum(pname), param)
}

func (d *Driver) Viewport(x, y, width, height int32) {
	d.gl.Viewport(int(x), int(y), int(width), int(height))
}

func (d *Driver) ClearColor(r, g, b, a float32) { d.gl.ClearColor(r, g, b, a) }
