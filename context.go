package glkit

import (
	"log/slog"
	"maps"
	"math"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glkit/driver"
)

// esHeader is the GLSL preamble for GL ES 2.0 and WebGL 1 drivers.
const esHeader = "#version 100\nprecision mediump float;"

// device is the state every resource shares with its Context: the live
// driver, the logger and the allocation counters. Resources keep a
// pointer to it so they can release their GL objects on their own.
type device struct {
	drv   driver.Driver
	log   *slog.Logger
	stats *stats
	debug bool

	// framebuffer is the framebuffer bound by the open render pass.
	framebuffer driver.Framebuffer
}

// pipelineFlags caches the fixed-function capabilities a pipeline toggles.
type pipelineFlags struct {
	depthTest  bool
	alphaBlend bool
	faceCull   bool
}

// Context is the state tracker for one GL context.
//
// It caches the viewport, the clear color and the depth, blend and cull
// capabilities so that redundant driver calls are skipped, and it owns
// the attribute-name-to-slot table shared by every shader it compiles.
//
// A Context is created once, after the native GL context is current,
// and must only be used from the goroutine that owns that GL context.
type Context struct {
	dev  *device
	info driver.Info

	width, height int32

	viewport   [2]int32
	clearColor gputypes.Color
	flags      pipelineFlags

	attributes   map[string]uint32
	nextShaderID uint32

	vertexHeader   string
	fragmentHeader string

	pass *RenderPass
}

// NewContext wraps a current GL context and applies glkit's default state:
// opaque black clear color, depth testing with LEQUAL, blending disabled
// but configured for straight alpha, back-face culling, and unpack
// alignment 1. On desktop profiles the sRGB framebuffer conversion is
// turned off.
func NewContext(drv driver.Driver, opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}

	info := drv.Info()
	c := &Context{
		dev:        &device{drv: drv, log: log, stats: &stats{}, debug: o.debug},
		info:       info,
		width:      o.width,
		height:     o.height,
		attributes: make(map[string]uint32),
	}
	switch {
	case o.headersSet:
		c.vertexHeader, c.fragmentHeader = o.vertexHeader, o.fragmentHeader
	case info.ES:
		c.vertexHeader, c.fragmentHeader = esHeader, esHeader
	default:
		c.vertexHeader, c.fragmentHeader = DefaultVertexHeader, DefaultFragmentHeader
	}

	c.applyDefaults()

	log.Info("glkit: context created",
		"vendor", info.Vendor,
		"renderer", info.Renderer,
		"version", info.Version,
		"es", info.ES,
		"debug", o.debug)
	return c
}

func (c *Context) applyDefaults() {
	drv := c.dev.drv
	if !c.info.ES && !nativeES {
		drv.Disable(driver.FRAMEBUFFER_SRGB)
	}

	c.clearColor = gputypes.ColorBlack
	drv.ClearColor(0, 0, 0, 1)

	drv.Enable(driver.DEPTH_TEST)
	drv.DepthFunc(driver.LEQUAL)

	drv.Disable(driver.BLEND)
	drv.BlendEquation(driver.FUNC_ADD)
	drv.BlendFunc(driver.SRC_ALPHA, driver.ONE_MINUS_SRC_ALPHA)

	drv.Enable(driver.CULL_FACE)
	drv.CullFace(driver.BACK)

	drv.PixelStorei(driver.UNPACK_ALIGNMENT, 1)

	c.viewport = [2]int32{-1, -1}
	c.flags = pipelineFlags{depthTest: true, alphaBlend: false, faceCull: true}
}

// Reset re-applies the default GL state and invalidates every cache.
// Call it after the platform recreated the GL surface or context. The
// attribute slot table and shader ids are kept; resources created on a
// lost context must be recreated by the caller.
func (c *Context) Reset() {
	if c.pass != nil {
		c.pass.End()
	}
	c.info = c.dev.drv.Info()
	c.applyDefaults()
	c.dev.log.Debug("glkit: context reset")
}

// Driver returns the underlying driver.
func (c *Context) Driver() driver.Driver { return c.dev.drv }

// Info returns the driver description captured at creation or last Reset.
func (c *Context) Info() driver.Info { return c.info }

// Debug reports whether runtime contract checks are enabled.
func (c *Context) Debug() bool { return c.dev.debug }

// Headers returns the GLSL preambles prepended to vertex and fragment sources.
func (c *Context) Headers() (vertex, fragment string) {
	return c.vertexHeader, c.fragmentHeader
}

// SetWindowSize records the window size in pixels. It takes effect at the
// next screen render pass.
func (c *Context) SetWindowSize(width, height int) {
	c.width = int32(width)   //nolint:gosec // G115: window sizes fit int32
	c.height = int32(height) //nolint:gosec // G115: window sizes fit int32
}

// WindowSize returns the window size in pixels.
func (c *Context) WindowSize() (width, height int) {
	return int(c.width), int(c.height)
}

// TrackWindow keeps the window size current from resize events.
// Callbacks must be delivered on the goroutine that owns the Context.
func (c *Context) TrackWindow(src gpucontext.EventSource) {
	src.OnResize(func(width, height int) {
		c.SetWindowSize(width, height)
	})
}

// SyncWindow sets the window size from a provider, converting logical
// points to pixels with its scale factor.
func (c *Context) SyncWindow(wp gpucontext.WindowProvider) {
	w, h := wp.Size()
	sf := wp.ScaleFactor()
	if sf <= 0 {
		sf = 1
	}
	c.SetWindowSize(int(math.Round(float64(w)*sf)), int(math.Round(float64(h)*sf)))
}

// Viewport sets the GL viewport to (0, 0, width, height). The driver is
// only called when the size differs from the cached one.
func (c *Context) Viewport(width, height int32) {
	if c.viewport == [2]int32{width, height} {
		return
	}
	c.dev.drv.Viewport(0, 0, width, height)
	c.viewport = [2]int32{width, height}
}

// setClearColor updates the GL clear color when it changed.
func (c *Context) setClearColor(col gputypes.Color) {
	if c.clearColor == col {
		return
	}
	c.dev.drv.ClearColor(float32(col.R), float32(col.G), float32(col.B), float32(col.A))
	c.clearColor = col
}

// setCapability toggles a GL capability when the cached value differs.
func (c *Context) setCapability(capability driver.Enum, cached *bool, want bool) {
	if *cached == want {
		return
	}
	if want {
		c.dev.drv.Enable(capability)
	} else {
		c.dev.drv.Disable(capability)
	}
	*cached = want
}

// attributeLocation returns the slot for an attribute name. Slots are
// handed out in order of first appearance and never change.
func (c *Context) attributeLocation(name string) uint32 {
	if loc, ok := c.attributes[name]; ok {
		return loc
	}
	loc := uint32(len(c.attributes)) //nolint:gosec // G115: attribute count is small
	c.attributes[name] = loc
	return loc
}

// AttributeLocations returns a copy of the attribute slot table.
func (c *Context) AttributeLocations() map[string]uint32 {
	return maps.Clone(c.attributes)
}

// Stats returns the live resource counters.
func (c *Context) Stats() Stats { return c.dev.stats.snapshot() }
