//go:build js && wasm

package webgl

import (
	"errors"
	"syscall/js"

	"github.com/gogpu/glkit/driver"
)

// ErrNotSupported is returned when the canvas provides no WebGL context.
var ErrNotSupported = errors.New("webgl: not supported")

// Driver adapts a WebGLRenderingContext to driver.Driver.
type Driver struct {
	ctx     js.Value
	version int

	objects  map[uint32]js.Value
	uniforms map[int32]js.Value
	nextID   uint32
	nextLoc  int32

	byteBuf js.Value
}

var _ driver.Driver = (*Driver)(nil)

// New requests a WebGL 2 context from canvas and falls back to WebGL 1.
func New(canvas js.Value) (*Driver, error) {
	args := map[string]any{
		"antialias":             false,
		"premultipliedAlpha":    false,
		"preserveDrawingBuffer": true,
	}
	version := 2
	ctx := canvas.Call("getContext", "webgl2", args)
	if ctx.IsNull() {
		version = 1
		ctx = canvas.Call("getContext", "webgl", args)
	}
	if ctx.IsNull() {
		return nil, ErrNotSupported
	}
	return NewFromContext(ctx, version), nil
}

// NewFromContext wraps an existing context. version is 1 or 2.
func NewFromContext(ctx js.Value, version int) *Driver {
	return &Driver{
		ctx:      ctx,
		version:  version,
		objects:  make(map[uint32]js.Value),
		uniforms: make(map[int32]js.Value),
	}
}

// Version reports the WebGL major version.
func (d *Driver) Version() int { return d.version }

func (d *Driver) put(v js.Value) uint32 {
	if v.IsNull() || v.IsUndefined() {
		return 0
	}
	d.nextID++
	d.objects[d.nextID] = v
	return d.nextID
}

func (d *Driver) get(id uint32) js.Value {
	if id == 0 {
		return js.Null()
	}
	if v, ok := d.objects[id]; ok {
		return v
	}
	return js.Null()
}

func (d *Driver) drop(id uint32) js.Value {
	v := d.get(id)
	delete(d.objects, id)
	return v
}

func (d *Driver) Info() driver.Info {
	return driver.Info{
		Vendor:   d.ctx.Call("getParameter", int(glVendor)).String(),
		Renderer: d.ctx.Call("getParameter", int(glRenderer)).String(),
		Version:  d.ctx.Call("getParameter", int(glVersion)).String(),
		ES:       true,
	}
}

const (
	glVendor   driver.Enum = 0x1f00
	glRenderer driver.Enum = 0x1f01
	glVersion  driver.Enum = 0x1f02
)

func (d *Driver) Enable(capability driver.Enum)  { d.ctx.Call("enable", int(capability)) }
func (d *Driver) Disable(capability driver.Enum) { d.ctx.Call("disable", int(capability)) }
func (d *Driver) DepthFunc(fn driver.Enum)       { d.ctx.Call("depthFunc", int(fn)) }
func (d *Driver) BlendEquation(mode driver.Enum) { d.ctx.Call("blendEquation", int(mode)) }
func (d *Driver) CullFace(mode driver.Enum)      { d.ctx.Call("cullFace", int(mode)) }
func (d *Driver) Clear(mask driver.Enum)         { d.ctx.Call("clear", int(mask)) }

func (d *Driver) BlendFunc(sfactor, dfactor driver.Enum) {
	d.ctx.Call("blendFunc", int(sfactor), int(dfactor))
}

func (d *Driver) PixelStorei(pname driver.Enum, param int32) {
	d.ctx.Call("pixelStorei", int(pname), param)
}

func (d *Driver) Viewport(x, y, width, height int32) {
	d.ctx.Call("viewport", x, y, width, height)
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.ctx.Call("clearColor", r, g, b, a)
}

// bytes copies data into a reusable Uint8Array and returns a view of
// exactly len(data) bytes.
func (d *Driver) bytes(data []byte) js.Value {
	if len(data) == 0 {
		return js.Null()
	}
	d.resizeByteBuffer(len(data))
	view := d.byteBuf.Call("subarray", 0, len(data))
	js.CopyBytesToJS(view, data)
	return view
}

func (d *Driver) resizeByteBuffer(n int) {
	if !d.byteBuf.IsUndefined() && d.byteBuf.Length() >= n {
		return
	}
	d.byteBuf = js.Global().Get("Uint8Array").New(n)
}

func paramVal(v js.Value) int {
	switch v.Type() {
	case js.TypeBoolean:
		if v.Bool() {
			return 1
		}
		return 0
	case js.TypeNumber:
		return v.Int()
	}
	return 0
}
