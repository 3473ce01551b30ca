package glkit

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glkit/driver"
)

// RenderTarget selects where a render pass draws: the window or a
// Framebuffer.
type RenderTarget struct {
	fb *Framebuffer
}

// ScreenTarget returns the default framebuffer of the window.
func ScreenTarget() RenderTarget { return RenderTarget{} }

// FramebufferTarget returns an offscreen target.
func FramebufferTarget(fb *Framebuffer) RenderTarget { return RenderTarget{fb: fb} }

// IsScreen reports whether the target is the window.
func (t RenderTarget) IsScreen() bool { return t.fb == nil }

// Framebuffer returns the offscreen framebuffer, or nil for the screen.
func (t RenderTarget) Framebuffer() *Framebuffer { return t.fb }

// RenderPassInfo configures the clears at the start of a render pass.
type RenderPassInfo struct {
	// ClearColor clears the color buffer when non-nil.
	ClearColor *gputypes.Color

	// ClearDepth clears the depth buffer.
	ClearDepth bool
}

// RenderPassState represents the state of a render pass.
type RenderPassState int

const (
	// RenderPassStateRecording means the pass is open and accepts pipelines.
	RenderPassStateRecording RenderPassState = iota

	// RenderPassStateEnded means the pass has been ended.
	RenderPassStateEnded
)

// String returns the string representation of RenderPassState.
func (s RenderPassState) String() string {
	switch s {
	case RenderPassStateRecording:
		return "Recording"
	case RenderPassStateEnded:
		return "Ended"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// ender is an open pipeline of any vertex type.
type ender interface {
	End()
}

// RenderPass is a scoped use of the Context against one target.
//
// Only one render pass may be open per Context, and it must be ended
// before the next one begins. Prefer WithRenderPass, which ends the pass
// on every exit path.
//
// State Machine:
//
//	Recording -> End() -> Ended
type RenderPass struct {
	ctx      *Context
	target   RenderTarget
	width    int32
	height   int32
	state    RenderPassState
	pipeline ender
}

// BeginRenderPass binds target, sets the viewport to its size and
// performs the requested clears.
func (c *Context) BeginRenderPass(target RenderTarget, info RenderPassInfo) *RenderPass {
	const op = "BeginRenderPass"
	log := c.dev.log
	drv := c.dev.drv
	if c.pass != nil {
		violate(log, op, ErrPassActive, "")
	}

	p := &RenderPass{ctx: c, target: target}
	if fb := target.fb; fb != nil {
		if fb.released {
			violate(log, op, ErrResourceDestroyed, "framebuffer %d", fb.id)
		}
		drv.BindFramebuffer(driver.FRAMEBUFFER, fb.id)
		c.dev.framebuffer = fb.id
		p.width = int32(fb.size)  //nolint:gosec // G115: framebuffer sizes fit int32
		p.height = int32(fb.size) //nolint:gosec // G115: framebuffer sizes fit int32
	} else {
		p.width, p.height = c.width, c.height
	}

	c.Viewport(p.width, p.height)

	switch {
	case info.ClearColor != nil:
		c.setClearColor(*info.ClearColor)
		mask := driver.COLOR_BUFFER_BIT
		if info.ClearDepth {
			mask |= driver.DEPTH_BUFFER_BIT
		}
		drv.Clear(mask)
	case info.ClearDepth:
		drv.Clear(driver.DEPTH_BUFFER_BIT)
	}

	c.pass = p
	return p
}

// WithRenderPass runs fn inside a render pass and ends the pass when fn
// returns or panics.
func (c *Context) WithRenderPass(target RenderTarget, info RenderPassInfo, fn func(*RenderPass)) {
	p := c.BeginRenderPass(target, info)
	defer p.End()
	fn(p)
}

// State returns the current pass state.
func (p *RenderPass) State() RenderPassState {
	if p == nil {
		return RenderPassStateEnded
	}
	return p.state
}

// IsEnded returns true if the pass has been ended.
func (p *RenderPass) IsEnded() bool { return p.State() == RenderPassStateEnded }

// Target returns the pass target.
func (p *RenderPass) Target() RenderTarget { return p.target }

// Size returns the viewport size of the pass.
func (p *RenderPass) Size() (width, height int) { return int(p.width), int(p.height) }

// Context returns the Context the pass was opened on.
func (p *RenderPass) Context() *Context { return p.ctx }

// End ends an open pipeline, then unbinds an offscreen target. Calling
// End on an ended pass does nothing.
func (p *RenderPass) End() {
	if p.state == RenderPassStateEnded {
		return
	}
	if p.pipeline != nil {
		p.pipeline.End()
	}
	if p.target.fb != nil {
		p.ctx.dev.drv.BindFramebuffer(driver.FRAMEBUFFER, 0)
		p.ctx.dev.framebuffer = 0
	}
	p.state = RenderPassStateEnded
	if p.ctx.pass == p {
		p.ctx.pass = nil
	}
}

// checkRecording raises a contract violation unless the pass is open.
func (p *RenderPass) checkRecording(op string) {
	if p.state != RenderPassStateRecording {
		violate(p.ctx.dev.log, op, ErrPassEnded, "")
	}
}
