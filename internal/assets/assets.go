// Package assets preloads images named in the configuration.
package assets

import (
	"context"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"sort"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel decodes.
const DefaultConcurrency = 4

// Images is a read-only set of decoded images keyed by name.
type Images struct {
	images map[string]image.Image
}

// Get returns the image registered under name.
func (im *Images) Get(name string) (image.Image, bool) {
	if im == nil {
		return nil, false
	}
	img, ok := im.images[name]
	return img, ok
}

// Names returns the loaded names in sorted order.
func (im *Images) Names() []string {
	if im == nil {
		return nil
	}
	names := make([]string, 0, len(im.images))
	for name := range im.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load decodes every file in paths concurrently. Relative paths resolve
// against dir. The first failure cancels the rest and is returned.
func Load(ctx context.Context, dir string, paths map[string]string) (*Images, error) {
	var (
		mu     sync.Mutex
		images = make(map[string]image.Image, len(paths))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultConcurrency)
	for name, path := range paths {
		name, path := name, path
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := imaging.Open(path, imaging.AutoOrientation(true))
			if err != nil {
				return fmt.Errorf("load image %q from %s: %w", name, path, err)
			}
			mu.Lock()
			images[name] = img
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(images) > 0 {
		log.Printf("assets: loaded %d images", len(images))
	}
	return &Images{images: images}, nil
}
