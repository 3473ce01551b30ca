// Package glkit provides typed GPU resources and pipeline state on top of
// a single immediate-mode OpenGL, OpenGL ES or WebGL context.
//
// # Overview
//
// glkit is not a renderer. It wraps the handful of GL objects a small
// game or visualization needs (vertex and index buffers, textures,
// framebuffers, shader programs) in handles whose compatibility is
// checked by the Go type system where possible and at runtime otherwise.
//
//   - A VertexBuffer[T] can only be drawn through a Pipeline[T], which can
//     only be opened with a Shader[T].
//   - A UniformKey[U] can only be set with a value of type U, and in
//     debug builds only on a pipeline bound to the shader it came from.
//   - Render passes and pipelines are scoped: ending them restores the
//     framebuffer, texture and program bindings.
//
// # Quick Start
//
//	ctx := glkit.NewContext(drv, glkit.WithWindowSize(800, 600))
//
//	shader := glkit.NewShader[ColorVertex](ctx, vertexSrc, fragmentSrc)
//	tint := glkit.Uniform[glkit.Vec4](shader, "tint")
//
//	vb := glkit.NewVertexBuffer[ColorVertex](ctx, 3, glkit.Static)
//	vb.Data(0, triangle)
//
//	black := gputypes.ColorBlack
//	ctx.WithRenderPass(glkit.ScreenTarget(), glkit.RenderPassInfo{ClearColor: &black, ClearDepth: true},
//	    func(pass *glkit.RenderPass) {
//	        glkit.WithPipeline(pass, shader, glkit.PipelineInfo{DepthTest: true},
//	            func(p *glkit.Pipeline[ColorVertex]) {
//	                glkit.SetUniform(p, tint, glkit.Vec4{1, 1, 1, 1})
//	                p.Draw(glkit.Triangles, vb, nil, 0, 3)
//	            })
//	    })
//
// # State Tracking
//
// The Context caches the viewport, clear color and the depth test,
// blending and face culling capabilities. Only changes reach the driver.
// Attribute names are assigned global slots in order of first appearance
// across all shaders of a Context, so vertex layouts never depend on the
// program they are drawn with.
//
// # Errors
//
// Misuse of the API (out-of-bounds writes and draws, invalid texture
// sizes, shader compile failures, mismatched uniform types) panics with a
// *ContractError that wraps one of the Err* sentinels. Checks that the
// type system cannot express and that cost a lookup per call are
// controlled by WithDebug and default to off in builds with the
// glrelease tag.
//
// # Threading
//
// A Context and every resource created from it must be used from the
// goroutine that owns the GL context. See host/egl for running GL work on
// a dedicated OS thread.
//
// # Drivers
//
// glkit talks to GL through driver.Driver. backend/mobile implements it
// over golang.org/x/mobile/gl for desktop GL ES, Android and iOS, and
// backend/webgl over WebGL in the browser. driver/drivertest provides a
// recording fake for tests.
package glkit
