package glkit

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glkit/driver"
)

// Channel is the pixel layout of a texture.
type Channel uint8

const (
	// RGBA has four 8-bit channels.
	RGBA Channel = iota
	// RGB has three 8-bit channels.
	RGB
	// Alpha has a single 8-bit alpha channel.
	Alpha
)

// String returns the string representation of Channel.
func (ch Channel) String() string {
	switch ch {
	case RGBA:
		return "RGBA"
	case RGB:
		return "RGB"
	case Alpha:
		return "Alpha"
	default:
		return fmt.Sprintf("Channel(%d)", int(ch))
	}
}

// BytesPerPixel returns the size of one texel.
func (ch Channel) BytesPerPixel() int {
	switch ch {
	case RGB:
		return 3
	case Alpha:
		return 1
	default:
		return 4
	}
}

func (ch Channel) format() driver.Enum {
	switch ch {
	case RGB:
		return driver.RGB
	case Alpha:
		return driver.ALPHA
	default:
		return driver.RGBA
	}
}

func wrapMode(m gputypes.AddressMode) int32 {
	switch m {
	case gputypes.AddressModeRepeat:
		return int32(driver.REPEAT)
	case gputypes.AddressModeMirrorRepeat:
		return int32(driver.MIRRORED_REPEAT)
	default:
		return int32(driver.CLAMP_TO_EDGE)
	}
}

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// TextureConfig describes a square 2D texture.
type TextureConfig struct {
	// Size is the width and height in pixels. Must be a power of two.
	Size int

	// Channel is the pixel layout. The zero value is RGBA.
	Channel Channel

	// Mipmap generates a full mip chain and samples it trilinearly.
	Mipmap bool

	// WrapS and WrapT select the addressing per axis. The zero value
	// clamps to the edge.
	WrapS gputypes.AddressMode
	WrapT gputypes.AddressMode

	// Persistent textures keep their texture unit locked for the rest of
	// the pipeline once bound as a uniform.
	Persistent bool
}

// Texture is a square 2D GL texture.
type Texture struct {
	dev        *device
	id         driver.Texture
	size       int
	channel    Channel
	persistent bool
	owned      bool
	released   bool
}

// NewTexture uploads a square texture. data must hold Size*Size pixels
// of the configured channel, rows packed without padding. A nil data
// allocates storage without initializing it.
func (c *Context) NewTexture(cfg TextureConfig, data []byte) *Texture {
	const op = "NewTexture"
	log := c.dev.log
	if !isPowerOfTwo(cfg.Size) {
		violate(log, op, ErrNotPowerOfTwo, "texture size %d", cfg.Size)
	}
	want := cfg.Size * cfg.Size * cfg.Channel.BytesPerPixel()
	if data != nil && len(data) != want {
		violate(log, op, ErrDataLength, "%d bytes for a %dx%d %s texture, want %d",
			len(data), cfg.Size, cfg.Size, cfg.Channel, want)
	}
	return newTexture(c.dev, cfg, data)
}

func newTexture(dev *device, cfg TextureConfig, data []byte) *Texture {
	id := dev.drv.CreateTexture()
	if id == 0 {
		violate(dev.log, "NewTexture", ErrCreateFailed, "texture")
	}

	drv := dev.drv
	format := cfg.Channel.format()
	drv.BindTexture(driver.TEXTURE_2D, id)
	drv.TexImage2D(driver.TEXTURE_2D, 0, format, cfg.Size, cfg.Size, format, driver.UNSIGNED_BYTE, data)
	drv.TexParameteri(driver.TEXTURE_2D, driver.TEXTURE_WRAP_S, wrapMode(cfg.WrapS))
	drv.TexParameteri(driver.TEXTURE_2D, driver.TEXTURE_WRAP_T, wrapMode(cfg.WrapT))
	if cfg.Mipmap {
		drv.GenerateMipmap(driver.TEXTURE_2D)
		drv.TexParameteri(driver.TEXTURE_2D, driver.TEXTURE_MIN_FILTER, int32(driver.LINEAR_MIPMAP_LINEAR))
	} else {
		drv.TexParameteri(driver.TEXTURE_2D, driver.TEXTURE_MIN_FILTER, int32(driver.LINEAR))
	}
	drv.TexParameteri(driver.TEXTURE_2D, driver.TEXTURE_MAG_FILTER, int32(driver.LINEAR))
	drv.BindTexture(driver.TEXTURE_2D, 0)

	dev.stats.addTexture(cfg.Size * cfg.Size * cfg.Channel.BytesPerPixel())
	dev.log.Debug("glkit: texture created",
		"id", id,
		"size", cfg.Size,
		"channel", cfg.Channel,
		"mipmap", cfg.Mipmap,
		"persistent", cfg.Persistent)
	return &Texture{
		dev:        dev,
		id:         id,
		size:       cfg.Size,
		channel:    cfg.Channel,
		persistent: cfg.Persistent,
	}
}

// Size returns the width and height in pixels.
func (t *Texture) Size() int { return t.size }

// Channel returns the pixel layout.
func (t *Texture) Channel() Channel { return t.channel }

// Persistent reports whether binding the texture locks its unit.
func (t *Texture) Persistent() bool { return t.persistent }

// ID returns the driver handle.
func (t *Texture) ID() driver.Texture { return t.id }

// Destroy deletes the GL texture. It is safe to call more than once.
// Textures owned by a Framebuffer are destroyed with it.
func (t *Texture) Destroy() {
	if t.released || t.owned {
		return
	}
	t.release()
}

func (t *Texture) release() {
	if t.released {
		return
	}
	t.released = true
	t.dev.drv.DeleteTexture(t.id)
	t.dev.stats.removeTexture(t.size * t.size * t.channel.BytesPerPixel())
}

// IsReleased reports whether the GL texture was deleted.
func (t *Texture) IsReleased() bool { return t.released }
