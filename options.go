package glkit

import "log/slog"

// Option configures a Context during creation.
//
// Example:
//
//	ctx := glkit.NewContext(drv,
//	    glkit.WithWindowSize(1280, 720),
//	    glkit.WithLogger(slog.Default()),
//	)
type Option func(*options)

// options holds optional configuration for Context creation.
type options struct {
	vertexHeader   string
	fragmentHeader string
	headersSet     bool
	logger         *slog.Logger
	debug          bool
	width, height  int32
}

// defaultOptions returns the default context options.
func defaultOptions() options {
	return options{
		debug: debugChecks,
	}
}

// WithHeaders overrides the GLSL preambles prepended to every vertex and
// fragment shader. By default the header matches the platform and the
// driver profile; see DefaultVertexHeader.
func WithHeaders(vertex, fragment string) Option {
	return func(o *options) {
		o.vertexHeader = vertex
		o.fragmentHeader = fragment
		o.headersSet = true
	}
}

// WithLogger sets the logger for one Context. Without it the Context uses
// the package logger from SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithDebug enables or disables runtime contract checks that are not
// enforced by the type system: attribute mismatch warnings, unknown
// uniform names and cross-shader uniform keys. The default is on unless
// built with the glrelease tag.
func WithDebug(enabled bool) Option {
	return func(o *options) {
		o.debug = enabled
	}
}

// WithWindowSize sets the initial window size in pixels.
func WithWindowSize(width, height int) Option {
	return func(o *options) {
		o.width = int32(width)   //nolint:gosec // G115: window sizes fit int32
		o.height = int32(height) //nolint:gosec // G115: window sizes fit int32
	}
}
