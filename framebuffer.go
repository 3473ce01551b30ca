package glkit

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glkit/driver"
)

// FramebufferConfig describes a square offscreen render target.
type FramebufferConfig struct {
	// Size is the width and height in pixels. Must be a power of two.
	Size int

	// Depth attaches a 16-bit depth renderbuffer.
	Depth bool

	// Wrap is the addressing of the color texture on both axes.
	Wrap gputypes.AddressMode
}

// Framebuffer is an offscreen render target with an RGBA color texture
// and an optional depth buffer.
type Framebuffer struct {
	dev      *device
	id       driver.Framebuffer
	color    *Texture
	depth    driver.Renderbuffer
	size     int
	released bool
}

// NewFramebuffer creates a framebuffer. Its color texture is persistent,
// so it stays bound when sampled alongside other textures.
func (c *Context) NewFramebuffer(cfg FramebufferConfig) *Framebuffer {
	const op = "NewFramebuffer"
	log := c.dev.log
	drv := c.dev.drv
	if !isPowerOfTwo(cfg.Size) {
		violate(log, op, ErrNotPowerOfTwo, "framebuffer size %d", cfg.Size)
	}

	color := newTexture(c.dev, TextureConfig{
		Size:       cfg.Size,
		Channel:    RGBA,
		WrapS:      cfg.Wrap,
		WrapT:      cfg.Wrap,
		Persistent: true,
	}, nil)
	color.owned = true

	id := drv.CreateFramebuffer()
	if id == 0 {
		color.release()
		violate(log, op, ErrCreateFailed, "framebuffer")
	}
	drv.BindFramebuffer(driver.FRAMEBUFFER, id)
	drv.FramebufferTexture2D(driver.FRAMEBUFFER, driver.COLOR_ATTACHMENT0, driver.TEXTURE_2D, color.id, 0)

	fb := &Framebuffer{dev: c.dev, id: id, color: color, size: cfg.Size}
	c.dev.stats.s.Framebuffers++
	if cfg.Depth {
		rb := drv.CreateRenderbuffer()
		if rb == 0 {
			drv.BindFramebuffer(driver.FRAMEBUFFER, c.dev.framebuffer)
			fb.Destroy()
			violate(log, op, ErrCreateFailed, "depth renderbuffer")
		}
		drv.BindRenderbuffer(driver.RENDERBUFFER, rb)
		drv.RenderbufferStorage(driver.RENDERBUFFER, driver.DEPTH_COMPONENT16, cfg.Size, cfg.Size)
		drv.FramebufferRenderbuffer(driver.FRAMEBUFFER, driver.DEPTH_ATTACHMENT, driver.RENDERBUFFER, rb)
		drv.BindRenderbuffer(driver.RENDERBUFFER, 0)
		fb.depth = rb
	}

	status := drv.CheckFramebufferStatus(driver.FRAMEBUFFER)
	drv.BindFramebuffer(driver.FRAMEBUFFER, c.dev.framebuffer)
	if status != driver.FRAMEBUFFER_COMPLETE {
		fb.Destroy()
		violate(log, op, ErrIncompleteFramebuffer, "status 0x%x", uint32(status))
	}

	log.Debug("glkit: framebuffer created", "id", id, "size", cfg.Size, "depth", cfg.Depth)
	return fb
}

// Size returns the width and height in pixels.
func (fb *Framebuffer) Size() int { return fb.size }

// Texture returns the color attachment. It can be sampled in a pipeline
// that does not render into fb.
func (fb *Framebuffer) Texture() *Texture { return fb.color }

// HasDepth reports whether a depth buffer is attached.
func (fb *Framebuffer) HasDepth() bool { return fb.depth != 0 }

// ID returns the driver handle.
func (fb *Framebuffer) ID() driver.Framebuffer { return fb.id }

// ReadPixels reads the color attachment back as RGBA8, bottom row first.
// The framebuffer bound by an open render pass is restored afterwards.
func (fb *Framebuffer) ReadPixels() []byte {
	if fb.released {
		violate(fb.dev.log, "Framebuffer.ReadPixels", ErrResourceDestroyed, "framebuffer %d", fb.id)
	}
	drv := fb.dev.drv
	dst := make([]byte, fb.size*fb.size*4)
	drv.BindFramebuffer(driver.FRAMEBUFFER, fb.id)
	drv.ReadPixels(dst, 0, 0, fb.size, fb.size, driver.RGBA, driver.UNSIGNED_BYTE)
	drv.BindFramebuffer(driver.FRAMEBUFFER, fb.dev.framebuffer)
	return dst
}

// Destroy deletes the framebuffer, its depth buffer and its color
// texture. It is safe to call more than once.
func (fb *Framebuffer) Destroy() {
	if fb.released {
		return
	}
	fb.released = true
	drv := fb.dev.drv
	drv.DeleteFramebuffer(fb.id)
	if fb.depth != 0 {
		drv.DeleteRenderbuffer(fb.depth)
	}
	fb.color.release()
	fb.dev.stats.s.Framebuffers--
}

// IsReleased reports whether Destroy was called.
func (fb *Framebuffer) IsReleased() bool { return fb.released }
