//go:build glrelease

package glkit

const debugChecks = false
