package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/agiangrant/stackui"
	"github.com/agiangrant/stackui/internal/assets"
	"github.com/agiangrant/stackui/internal/raster"
	"github.com/agiangrant/stackui/retained"
)

// Snapshot implements the 'stackui snapshot' command
func Snapshot(args []string) error {
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to stackui.toml (default: search upwards)")
	script := fs.String("script", "", "TOML event script to replay")
	out := fs.String("out", "frame.png", "Output PNG")
	fs.Parse(args)

	config, dir, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	var events []retained.Event
	if *script != "" {
		events, err = raster.LoadScript(*script)
		if err != nil {
			return err
		}
	}

	images, err := assets.Load(context.Background(), dir, config.Assets.Images)
	if err != nil {
		return err
	}

	state, err := RenderSnapshot(config, dir, BuildDemo(images), events, *out)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s (count=%d, volume=%.0f)\n", *out, state.Count, state.Volume)
	return nil
}

// RenderSnapshot replays events one per frame on the raster backend and
// writes the final frame to out. It stops early when an event quits.
func RenderSnapshot(config stackui.Config, dir string, build func(DemoState) retained.View[DemoState], events []retained.Event, out string) (DemoState, error) {
	canvas, err := newRaster(config, dir)
	if err != nil {
		return DemoState{}, err
	}
	queue := retained.NewEventQueue()
	loop := retained.NewLoop(DemoState{Volume: 50}, build, canvas, queue, loopConfig(config, config.Viewport()))

	if _, err := loop.Step(); err != nil {
		return loop.State(), err
	}
	for _, ev := range events {
		queue.Push(ev)
		quit, err := loop.Step()
		if err != nil {
			return loop.State(), err
		}
		if quit {
			break
		}
	}
	// Render the state produced by the last event.
	if !loop.Done() {
		if _, err := loop.Step(); err != nil {
			return loop.State(), err
		}
	}
	if err := canvas.SavePNG(out); err != nil {
		return loop.State(), err
	}
	return loop.State(), nil
}
