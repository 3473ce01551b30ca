//go:build js || android || ios

package glkit

// Default GLSL preambles for WebGL and GL ES 2.0.
const (
	DefaultVertexHeader   = esHeader
	DefaultFragmentHeader = esHeader
)

const nativeES = true
