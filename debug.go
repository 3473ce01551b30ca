//go:build !glrelease

package glkit

const debugChecks = true
