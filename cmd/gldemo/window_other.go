//go:build !cgo || !(linux || darwin || windows)

package main

import (
	"errors"

	"github.com/gogpu/glkit/internal/config"
)

func runWindow(*config.Config) error {
	return errors.New("gldemo: windowed mode needs cgo on linux, darwin or windows; use -headless")
}
