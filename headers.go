//go:build !js && !android && !ios

package glkit

// Default GLSL preambles for desktop OpenGL.
const (
	DefaultVertexHeader   = "#version 110"
	DefaultFragmentHeader = "#version 110"
)

// nativeES reports whether the build target only has GL ES.
const nativeES = false
