package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/term"

	"github.com/agiangrant/stackui"
	"github.com/agiangrant/stackui/internal/assets"
	"github.com/agiangrant/stackui/internal/ffi"
	"github.com/agiangrant/stackui/internal/raster"
	termui "github.com/agiangrant/stackui/internal/term"
	"github.com/agiangrant/stackui/retained"
)

// Run implements the 'stackui run' command
func Run(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to stackui.toml (default: search upwards)")
	backend := fs.String("backend", "", "Backend: raster, term or native (default: from config)")
	fs.Parse(args)

	config, dir, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	kind := pickBackend(*backend, config.Backend.Kind, term.IsTerminal(int(os.Stdout.Fd())))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	images, err := assets.Load(ctx, dir, config.Assets.Images)
	if err != nil {
		return err
	}
	build := BuildDemo(images)

	switch kind {
	case stackui.BackendTerm:
		err = runTerm(ctx, config, build)
	case stackui.BackendNative:
		err = runNative(ctx, config, build)
	case stackui.BackendRaster:
		err = runRaster(ctx, config, dir, build)
	default:
		return fmt.Errorf("unknown backend %q", kind)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loadConfig loads the configuration and returns the directory relative
// asset paths resolve against.
func loadConfig(path string) (stackui.Config, string, error) {
	if path == "" {
		if found, err := stackui.FindConfig(); err == nil {
			path = found
		}
	}
	config, err := stackui.LoadConfig(path)
	if err != nil {
		return config, "", err
	}
	dir := "."
	if path != "" {
		dir = filepath.Dir(path)
	}
	return config, dir, nil
}

// pickBackend resolves the flag, then the config, then the terminal check.
func pickBackend(flagKind, configKind string, tty bool) string {
	switch {
	case flagKind != "":
		return flagKind
	case configKind != "":
		return configKind
	case tty:
		return stackui.BackendTerm
	}
	return stackui.BackendRaster
}

func loopConfig(config stackui.Config, viewport retained.Size) retained.LoopConfig[DemoState] {
	lc := retained.DefaultLoopConfig[DemoState]()
	lc.TargetFPS = config.Loop.FPS
	lc.Viewport = viewport
	lc.Debug = config.Loop.Debug
	return lc
}

func runTerm(ctx context.Context, config stackui.Config, build func(DemoState) retained.View[DemoState]) error {
	retained.SetTheme(config.Theme.Apply(retained.TerminalTheme()))

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}
	viewport := retained.Size{Width: uint32(width), Height: uint32(height)}

	// bubbletea owns the terminal; keep log output off it.
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	canvas := termui.NewCanvas(width, height)
	canvas.SetLimit(viewport)
	events := retained.NewEventQueue()
	loop := retained.NewLoop(DemoState{Volume: 50}, build, canvas, events, loopConfig(config, viewport))
	host := termui.NewHost(canvas, events, loop.Step, config.Loop.FPS)
	return termui.Run(ctx, host)
}

func runNative(ctx context.Context, config stackui.Config, build func(DemoState) retained.View[DemoState]) error {
	retained.SetTheme(config.Theme.Apply(retained.DefaultTheme()))

	canvas, err := ffi.Open(ffi.Config{
		Library: config.Backend.Library,
		Title:   config.Window.Title,
		Width:   config.Window.Width,
		Height:  config.Window.Height,
	})
	if err != nil {
		return err
	}
	defer canvas.Close()
	log.Printf("ffi: renderer version %s", canvas.Version())

	loop := retained.NewLoop(DemoState{Volume: 50}, build, canvas, canvas, loopConfig(config, config.Viewport()))
	return loop.Run(ctx)
}

func runRaster(ctx context.Context, config stackui.Config, dir string, build func(DemoState) retained.View[DemoState]) error {
	canvas, err := newRaster(config, dir)
	if err != nil {
		return err
	}
	if config.Backend.SnapshotDir == "" {
		log.Printf("raster backend without snapshot_dir: frames are not saved")
	}
	loop := retained.NewLoop(DemoState{Volume: 50}, build, canvas, retained.NewEventQueue(), loopConfig(config, config.Viewport()))
	return loop.Run(ctx)
}

func newRaster(config stackui.Config, dir string) (*raster.Canvas, error) {
	retained.SetTheme(config.Theme.Apply(retained.DefaultTheme()))

	opts := raster.Options{}
	if config.Backend.SnapshotDir != "" {
		opts.SnapshotDir = resolve(dir, config.Backend.SnapshotDir)
	}
	if config.Backend.Font != "" {
		data, err := raster.LoadFont(resolve(dir, config.Backend.Font))
		if err != nil {
			return nil, err
		}
		opts.FontData = data
	}
	return raster.New(config.Viewport(), opts)
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
