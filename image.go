package glkit

import (
	"image"

	"golang.org/x/image/draw"
)

// ImagePixels converts img to tightly packed pixels of a size x size
// texture with the given channel layout. Images of another size are
// resampled with Catmull-Rom. Row 0 is the top row of the image.
func ImagePixels(img image.Image, size int, ch Channel) []byte {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}

	switch ch {
	case RGB:
		out := make([]byte, 0, size*size*3)
		for i := 0; i < len(dst.Pix); i += 4 {
			out = append(out, dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2])
		}
		return out
	case Alpha:
		out := make([]byte, 0, size*size)
		for i := 3; i < len(dst.Pix); i += 4 {
			out = append(out, dst.Pix[i])
		}
		return out
	default:
		return dst.Pix
	}
}

// NewTextureFromImage uploads img as a texture of cfg.Size pixels,
// resampling when the image has another size.
func (c *Context) NewTextureFromImage(cfg TextureConfig, img image.Image) *Texture {
	if !isPowerOfTwo(cfg.Size) {
		violate(c.dev.log, "NewTextureFromImage", ErrNotPowerOfTwo, "texture size %d", cfg.Size)
	}
	return c.NewTexture(cfg, ImagePixels(img, cfg.Size, cfg.Channel))
}
