// Command gldemo renders a rotating triangle through an offscreen
// framebuffer with glkit, either in a window or headless into a PNG.
//
// Settings are read from gldemo.toml in the working directory when
// present; flags override them.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/glkit"
	"github.com/gogpu/glkit/internal/config"
)

func main() {
	var (
		configPath  = flag.String("config", "", "configuration file (default: "+config.FileName+" if present)")
		headless    = flag.Bool("headless", false, "render offscreen and write a PNG")
		backendName = flag.String("backend", "", "headless backend name (default: first available)")
		output      = flag.String("output", "", "PNG output path")
		frames      = flag.Int("frames", 1, "frames to render in headless mode")
		verbose     = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	glkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *headless {
		cfg.Output.Headless = true
	}
	if *backendName != "" {
		cfg.Output.Backend = *backendName
	}
	if *output != "" {
		cfg.Output.Path = *output
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if cfg.Output.Headless {
		err = runHeadless(&cfg, *frames)
	} else {
		err = runWindow(&cfg)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads path, or gldemo.toml from the working directory when
// path is empty. A missing default file yields the defaults.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		found, err := config.Find(".")
		if err != nil || found == "" {
			return config.Default(), err
		}
		path = found
	}
	return config.Load(path)
}
