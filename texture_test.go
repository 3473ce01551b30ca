package glkit

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glkit/driver"
	"github.com/gogpu/glkit/driver/drivertest"
)

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{-4, false}, {0, false}, {1, true}, {2, true}, {3, false}, {4, true},
		{6, false}, {8, true}, {12, false}, {1024, true}, {1023, false},
	}
	for _, tt := range tests {
		if got := isPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("isPowerOfTwo(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestNewTextureValidation(t *testing.T) {
	tests := []struct {
		size    int
		channel Channel
		n       int
		err     error
	}{
		{4, RGBA, 64, nil},
		{4, RGB, 48, nil},
		{4, Alpha, 16, nil},
		{4, RGB, 47, ErrDataLength},
		{4, RGBA, 48, ErrDataLength},
		{3, RGBA, 36, ErrNotPowerOfTwo},
		{0, RGBA, 0, ErrNotPowerOfTwo},
		{1, Alpha, 1, nil},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%s/%d", tt.size, tt.channel, tt.n), func(t *testing.T) {
			c, _ := newTestContext(t)
			cfg := TextureConfig{Size: tt.size, Channel: tt.channel}
			data := make([]byte, tt.n)
			if tt.err != nil {
				mustPanic(t, tt.err, func() { c.NewTexture(cfg, data) })
				return
			}
			mustNotPanic(t, func() { c.NewTexture(cfg, data) })
		})
	}
}

// texParams returns the TexParameteri values keyed by parameter name.
func texParams(d *drivertest.Driver) map[driver.Enum]int32 {
	params := map[driver.Enum]int32{}
	for _, call := range d.Named("TexParameteri") {
		params[call.Args[1].(driver.Enum)] = call.Args[2].(int32)
	}
	return params
}

func TestNewTextureParameters(t *testing.T) {
	tests := []struct {
		name    string
		cfg     TextureConfig
		mipmaps int
		want    map[driver.Enum]int32
	}{
		{
			name: "default",
			cfg:  TextureConfig{Size: 8},
			want: map[driver.Enum]int32{
				driver.TEXTURE_WRAP_S:     int32(driver.CLAMP_TO_EDGE),
				driver.TEXTURE_WRAP_T:     int32(driver.CLAMP_TO_EDGE),
				driver.TEXTURE_MIN_FILTER: int32(driver.LINEAR),
				driver.TEXTURE_MAG_FILTER: int32(driver.LINEAR),
			},
		},
		{
			name:    "mipmap repeat",
			cfg:     TextureConfig{Size: 8, Mipmap: true, WrapS: gputypes.AddressModeRepeat, WrapT: gputypes.AddressModeMirrorRepeat},
			mipmaps: 1,
			want: map[driver.Enum]int32{
				driver.TEXTURE_WRAP_S:     int32(driver.REPEAT),
				driver.TEXTURE_WRAP_T:     int32(driver.MIRRORED_REPEAT),
				driver.TEXTURE_MIN_FILTER: int32(driver.LINEAR_MIPMAP_LINEAR),
				driver.TEXTURE_MAG_FILTER: int32(driver.LINEAR),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, d := newTestContext(t)
			d.ResetCalls()
			tex := c.NewTexture(tt.cfg, make([]byte, 8*8*4))

			got := texParams(d)
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("param 0x%x = 0x%x, want 0x%x", k, got[k], v)
				}
			}
			if n := d.Count("GenerateMipmap"); n != tt.mipmaps {
				t.Errorf("GenerateMipmap calls = %d, want %d", n, tt.mipmaps)
			}
			img, _ := d.Last("TexImage2D")
			if img.Args[2] != driver.RGBA || img.Args[3] != 8 || img.Args[7] != 8*8*4 {
				t.Errorf("TexImage2D args = %v", img.Args)
			}
			if last, _ := d.Last("BindTexture"); last.Args[1] != driver.Texture(0) {
				t.Error("texture left bound after creation")
			}
			if tex.Size() != 8 || tex.Channel() != RGBA || tex.Persistent() {
				t.Errorf("texture = size %d channel %s persistent %v", tex.Size(), tex.Channel(), tex.Persistent())
			}
		})
	}
}

func TestChannel(t *testing.T) {
	tests := []struct {
		ch     Channel
		bytes  int
		format driver.Enum
	}{
		{RGBA, 4, driver.RGBA},
		{RGB, 3, driver.RGB},
		{Alpha, 1, driver.ALPHA},
	}
	for _, tt := range tests {
		t.Run(tt.ch.String(), func(t *testing.T) {
			if got := tt.ch.BytesPerPixel(); got != tt.bytes {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bytes)
			}
			if got := tt.ch.format(); got != tt.format {
				t.Errorf("format() = 0x%x, want 0x%x", got, tt.format)
			}
		})
	}
}

func TestTextureDestroy(t *testing.T) {
	c, d := newTestContext(t)
	tex := c.NewTexture(TextureConfig{Size: 2}, nil)
	tex.Destroy()
	tex.Destroy()
	if d.Deleted("texture") != 1 || !tex.IsReleased() {
		t.Errorf("deleted textures = %d", d.Deleted("texture"))
	}

	s := NewShader[uvVertex](c, uvVS, uvFS)
	key := Uniform[*Texture](s, "tex")
	c.WithRenderPass(ScreenTarget(), RenderPassInfo{}, func(pass *RenderPass) {
		WithPipeline(pass, s, PipelineInfo{}, func(p *Pipeline[uvVertex]) {
			mustPanic(t, ErrResourceDestroyed, func() { p.BindTexture(key, tex, false) })
			mustPanic(t, ErrResourceDestroyed, func() { SetUniform(p, key, nil) })
		})
	})
}

func checker(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 128, B: 0, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{A: 64})
			}
		}
	}
	return img
}

func TestImagePixels(t *testing.T) {
	img := checker(2)

	rgba := ImagePixels(img, 2, RGBA)
	if len(rgba) != 16 || rgba[0] != 255 || rgba[1] != 128 || rgba[3] != 255 || rgba[7] != 64 {
		t.Errorf("RGBA pixels = %v", rgba)
	}
	rgb := ImagePixels(img, 2, RGB)
	if len(rgb) != 12 || rgb[0] != 255 || rgb[1] != 128 || rgb[2] != 0 {
		t.Errorf("RGB pixels = %v", rgb)
	}
	alpha := ImagePixels(img, 2, Alpha)
	if len(alpha) != 4 || alpha[0] != 255 || alpha[1] != 64 {
		t.Errorf("Alpha pixels = %v", alpha)
	}

	scaled := ImagePixels(checker(3), 4, RGBA)
	if len(scaled) != 4*4*4 {
		t.Errorf("scaled length = %d, want 64", len(scaled))
	}
}

func TestNewTextureFromImage(t *testing.T) {
	c, d := newTestContext(t)
	tex := c.NewTextureFromImage(TextureConfig{Size: 4, Channel: RGB}, checker(5))
	if tex.Size() != 4 {
		t.Errorf("Size() = %d", tex.Size())
	}
	img, _ := d.Last("TexImage2D")
	if img.Args[7] != 4*4*3 {
		t.Errorf("uploaded %v bytes, want 48", img.Args[7])
	}
	mustPanic(t, ErrNotPowerOfTwo, func() { c.NewTextureFromImage(TextureConfig{Size: 5}, checker(5)) })
}
