package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/agiangrant/stackui"
)

// Init implements the 'stackui init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	title := fs.String("title", "", "Window title")
	backend := fs.String("backend", "", "Backend: raster, term or native (default: auto)")
	force := fs.Bool("force", false, "Overwrite an existing stackui.toml")
	fs.Parse(args)

	return initConfig(stackui.ConfigFile, *title, *backend, *force)
}

func initConfig(path, title, backend string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	config := stackui.DefaultConfig()
	if title != "" {
		config.Window.Title = title
	}
	switch backend {
	case "", stackui.BackendRaster, stackui.BackendTerm, stackui.BackendNative:
		config.Backend.Kind = backend
	default:
		return fmt.Errorf("invalid backend kind %q", backend)
	}

	if err := stackui.SaveConfig(path, config); err != nil {
		return err
	}
	fmt.Printf("  ✓ Created %s\n", path)
	return nil
}
