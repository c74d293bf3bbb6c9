package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagSeed       = flag.Int("seed", -1, "Planet noise seed")
	flagDepth      = flag.Int("depth", -1, "Subdivision depth")
	flagRadius     = flag.Float64("radius", 0, "Planet radius")
	flagDistance   = flag.Float64("distance", 0, "Orbital distance in AU")
	flagListen     = flag.String("listen", "", "Server listen address")
	flagDB         = flag.String("db", "", "Catalog database path (enables the catalog)")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ParseArgs parses flags from args instead of os.Args, for subcommands.
func ParseArgs(args []string) error {
	return flag.CommandLine.Parse(args)
}

// Args returns the arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed >= 0 {
		cfg.Planet.Seed = *flagSeed
	}
	if *flagDepth >= 0 {
		cfg.Planet.SubdivisionDepth = *flagDepth
	}
	if *flagRadius > 0 {
		cfg.Planet.Radius = float32(*flagRadius)
	}
	if *flagDistance > 0 {
		cfg.Planet.DistanceAU = *flagDistance
	}
	if *flagListen != "" {
		cfg.Server.Listen = *flagListen
	}
	if *flagDB != "" {
		cfg.Catalog.Enabled = true
		cfg.Catalog.Path = *flagDB
	}
	if *flagWindowed {
		cfg.Viewer.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Viewer.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Viewer.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewer.Height = *flagHeight
	}
}
