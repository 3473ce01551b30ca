// Package mobile implements driver.Driver on top of golang.org/x/mobile/gl.
//
// x/mobile/gl queues calls from any goroutine onto the thread that owns
// the GL context. The owner drains the queue through the gl.Worker
// returned alongside the context, see host/egl for a complete loop.
//
// The binding exposes the OpenGL ES 2 surface, so unsigned uniforms are
// uploaded through the signed setters and integer vertex attributes are
// declared with VertexAttribPointer.
package mobile
