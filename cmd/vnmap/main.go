package main

import (
	"fmt"
	"os"

	"vnmap/internal/config"
	"vnmap/internal/logger"
	"vnmap/internal/scene"
	"vnmap/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"VNMAP_CONFIG" description:"Path to configuration file (built-in defaults when empty)"`
	Strict     bool   `long:"strict"           description:"Abort on the first malformed coordinate line"`
	Check      bool   `long:"check"            description:"Load and filter the inputs, print a summary and exit"`

	Args struct {
		Boundary string `positional-arg-name:"BOUNDARY" description:"Decimal boundary file (lat,lon per line)"`
		Zone     string `positional-arg-name:"ZONE"     description:"DMS zone file"`
	} `positional-args:"yes"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Setup Logging
	opts.Logger.Setup()
	defer opts.Logger.Close()

	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			opts.Logger.Fatal(fmt.Errorf("%s: %w", opts.ConfigFile, err), "Failed to load configuration")
		}
	}
	if opts.Args.Boundary != "" {
		cfg.Boundary.Path = opts.Args.Boundary
	}
	if opts.Args.Zone != "" {
		cfg.Zone.Path = opts.Args.Zone
	}
	if opts.Strict {
		cfg.Strict = true
	}

	sc, err := scene.Build(cfg)
	if err != nil {
		opts.Logger.Fatal(err, "Failed to build map")
	}

	if opts.Check {
		st := sc.Stats
		fmt.Printf("boundary: %d points (%d lines, %d skipped, %d filtered)\n",
			len(sc.Boundary), st.BoundaryLines, st.BoundarySkipped, st.BoundaryDropped)
		fmt.Printf("zone:     %d points (%d lines, %d skipped)\n", len(sc.Zone), st.ZoneLines, st.ZoneSkipped)
		fmt.Printf("landmarks: %d  circles: %d\n", len(sc.Landmarks), len(sc.Circles))
		if bbox, ok := sc.Extent(); ok {
			fmt.Printf("extent:   lon [%.5f, %.5f] lat [%.5f, %.5f]\n", bbox.MinX, bbox.MaxX, bbox.MinY, bbox.MaxY)
		}
		return
	}

	m, err := tui.New(sc)
	if err != nil {
		opts.Logger.Fatal(err, "Nothing to display")
	}

	// the alternate screen owns the terminal from here on
	opts.Logger.Detach()
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Error().Err(err).Msg("Viewer failed")
		fmt.Fprintf(os.Stderr, "vnmap: %v\n", err)
		_ = opts.Logger.Close()
		os.Exit(1)
	}
}
