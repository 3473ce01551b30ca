package main

import (
	"os"
	"path/filepath"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glkit"
	"github.com/gogpu/glkit/assets"
	"github.com/gogpu/glkit/internal/config"
)

type colorVertex struct {
	Pos   [2]float32
	Color [3]float32
}

func (colorVertex) Attributes() []glkit.Attribute {
	return []glkit.Attribute{
		{Name: "position", Format: gputypes.VertexFormatFloat32x2},
		{Name: "color", Format: gputypes.VertexFormatFloat32x3},
	}
}

type quadVertex struct {
	Pos [2]float32
	UV  [2]float32
}

func (quadVertex) Attributes() []glkit.Attribute {
	return []glkit.Attribute{
		{Name: "position", Format: gputypes.VertexFormatFloat32x2},
		{Name: "uv", Format: gputypes.VertexFormatFloat32x2},
	}
}

const triangleVert = `attribute vec2 position;
attribute vec3 color;
uniform float angle;
varying vec3 v_color;
void main() {
	float c = cos(angle);
	float s = sin(angle);
	v_color = color;
	gl_Position = vec4(c*position.x - s*position.y, s*position.x + c*position.y, 0.0, 1.0);
}`

const triangleFrag = `varying vec3 v_color;
void main() { gl_FragColor = vec4(v_color, 1.0); }`

const quadVert = `attribute vec2 position;
attribute vec2 uv;
varying vec2 v_uv;
void main() { v_uv = uv; gl_Position = vec4(position, 0.0, 1.0); }`

const quadFrag = `varying vec2 v_uv;
uniform sampler2D tex;
uniform vec4 tint;
void main() { gl_FragColor = texture2D(tex, v_uv) * tint; }`

// logoName is the optional texture drawn over the scene when the assets
// directory provides textures/logo.png.
const logoName = "logo"

// scene renders a rotating triangle into an offscreen framebuffer and
// composites it onto the target as a textured quad.
type scene struct {
	ctx   *glkit.Context
	clear gputypes.Color

	triangle *glkit.Shader[colorVertex]
	triVB    *glkit.VertexBuffer[colorVertex]
	angle    glkit.UniformKey[float32]

	quad   *glkit.Shader[quadVertex]
	quadVB *glkit.VertexBuffer[quadVertex]
	logoVB *glkit.VertexBuffer[quadVertex]
	quadIB *glkit.IndexBuffer
	tex    glkit.UniformKey[*glkit.Texture]
	tint   glkit.UniformKey[glkit.Vec4]

	offscreen *glkit.Framebuffer

	assets *assets.Set
	logo   *assets.Texture
}

func newScene(ctx *glkit.Context, cfg *config.Config) (*scene, error) {
	s := &scene{ctx: ctx, clear: cfg.Render.Clear()}

	s.triangle = glkit.NewShader[colorVertex](ctx, triangleVert, triangleFrag)
	s.angle = glkit.Uniform[float32](s.triangle, "angle")
	s.triVB = glkit.NewVertexBuffer[colorVertex](ctx, 3, glkit.Static)
	s.triVB.Data(0, []colorVertex{
		{Pos: [2]float32{0, 0.7}, Color: [3]float32{1, 0.2, 0.2}},
		{Pos: [2]float32{-0.6, -0.5}, Color: [3]float32{0.2, 1, 0.2}},
		{Pos: [2]float32{0.6, -0.5}, Color: [3]float32{0.2, 0.2, 1}},
	})

	s.quad = glkit.NewShader[quadVertex](ctx, quadVert, quadFrag)
	s.tex = glkit.Uniform[*glkit.Texture](s.quad, "tex")
	s.tint = glkit.Uniform[glkit.Vec4](s.quad, "tint")
	s.quadVB = newQuad(ctx, 0.9)
	s.logoVB = newQuad(ctx, 0.25)
	s.quadIB = ctx.NewIndexBuffer(6, glkit.Static)
	s.quadIB.Data(0, []uint16{0, 1, 2, 2, 3, 0})

	s.offscreen = ctx.NewFramebuffer(glkit.FramebufferConfig{
		Size:  cfg.Output.Size,
		Depth: true,
	})

	logoPath := filepath.Join(cfg.Assets.Dir, filepath.FromSlash(assets.TexturePath(logoName)))
	if _, err := os.Stat(logoPath); cfg.Assets.Dir != "" && err == nil {
		s.assets = assets.NewSet(assets.NewLoader(cfg.Assets.Dir))
		logo, err := assets.LoadTexture(s.assets, logoName, glkit.TextureConfig{Mipmap: cfg.Render.Mipmap}, cfg.Assets.Watch)
		if err != nil {
			s.destroy()
			return nil, err
		}
		s.logo = logo
	}
	return s, nil
}

func newQuad(ctx *glkit.Context, half float32) *glkit.VertexBuffer[quadVertex] {
	vb := glkit.NewVertexBuffer[quadVertex](ctx, 4, glkit.Static)
	vb.Data(0, []quadVertex{
		{Pos: [2]float32{-half, -half}, UV: [2]float32{0, 0}},
		{Pos: [2]float32{half, -half}, UV: [2]float32{1, 0}},
		{Pos: [2]float32{half, half}, UV: [2]float32{1, 1}},
		{Pos: [2]float32{-half, half}, UV: [2]float32{0, 1}},
	})
	return vb
}

// update builds assets whose files finished loading. A failed asset keeps
// its previous texture, or is skipped until it loads.
func (s *scene) update() error {
	if s.assets == nil {
		return nil
	}
	return s.assets.Update(s.ctx)
}

// frame draws one frame at time t seconds into target.
func (s *scene) frame(target glkit.RenderTarget, t float32) {
	ctx := s.ctx

	black := gputypes.ColorBlack
	ctx.WithRenderPass(glkit.FramebufferTarget(s.offscreen), glkit.RenderPassInfo{
		ClearColor: &black,
		ClearDepth: true,
	}, func(pass *glkit.RenderPass) {
		glkit.WithPipeline(pass, s.triangle, glkit.PipelineInfo{DepthTest: true}, func(p *glkit.Pipeline[colorVertex]) {
			glkit.SetUniform(p, s.angle, t)
			p.Draw(glkit.Triangles, s.triVB, nil, 0, 3)
		})
	})

	bg := s.clear
	ctx.WithRenderPass(target, glkit.RenderPassInfo{
		ClearColor: &bg,
		ClearDepth: true,
	}, func(pass *glkit.RenderPass) {
		glkit.WithPipeline(pass, s.quad, glkit.PipelineInfo{}, func(p *glkit.Pipeline[quadVertex]) {
			glkit.SetUniform(p, s.tex, s.offscreen.Texture())
			glkit.SetUniform(p, s.tint, glkit.Vec4{1, 1, 1, 1})
			p.Draw(glkit.Triangles, s.quadVB, s.quadIB, 0, 6)
		})
		if s.logo == nil || !s.logo.Loaded() {
			return
		}
		glkit.WithPipeline(pass, s.quad, glkit.PipelineInfo{AlphaBlend: true}, func(p *glkit.Pipeline[quadVertex]) {
			glkit.SetUniform(p, s.tex, s.logo.Get())
			glkit.SetUniform(p, s.tint, glkit.Vec4{1, 1, 1, 0.8})
			p.Draw(glkit.Triangles, s.logoVB, s.quadIB, 0, 6)
		})
	})
}

// destroy releases every GL object and stops the asset loader.
func (s *scene) destroy() {
	if s.assets != nil {
		s.assets.Destroy()
		if err := s.assets.Loader().Close(); err != nil {
			glkit.Logger().Warn("gldemo: closing asset loader", "err", err)
		}
	}
	for _, d := range []interface{ Destroy() }{
		s.offscreen, s.quadIB, s.logoVB, s.quadVB, s.quad, s.triVB, s.triangle,
	} {
		d.Destroy()
	}
}
