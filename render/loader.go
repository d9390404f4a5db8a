package render

import (
	"context"
	"image"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ImageSource fetches and decodes one sheet image.
type ImageSource interface {
	LoadImage(ctx context.Context, path string) (image.Image, error)
}

// Loader loads every sheet of a variant concurrently.
type Loader struct {
	source   ImageSource
	metadata SheetMetadata
	logger   *log.Logger
}

// NewLoader returns a loader. A nil metadata strategy selects
// AspectRatioMetadata; a nil logger selects log.Default().
func NewLoader(source ImageSource, metadata SheetMetadata, logger *log.Logger) *Loader {
	if metadata == nil {
		metadata = AspectRatioMetadata{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{source: source, metadata: metadata, logger: logger}
}

// Load requests every animation in sources and returns once all requests
// have settled. Failed animations are logged and left out of the set; there
// is no retry and no timeout beyond ctx.
func (l *Loader) Load(ctx context.Context, sources map[string]string) *SpriteSet {
	set := NewSpriteSet()
	if l.source == nil {
		l.logger.Printf("no image source configured, skipping %d sprites", len(sources))
		return set
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	for name, path := range sources {
		g.Go(func() error {
			img, err := l.source.LoadImage(ctx, path)
			if err != nil {
				l.logger.Printf("failed to load sprite for %s at %s: %v", name, path, err)
				return nil
			}
			sheet, err := l.metadata.Sheet(path, img)
			if err != nil {
				l.logger.Printf("failed to read sheet for %s at %s: %v", name, path, err)
				return nil
			}

			mu.Lock()
			set.Register(name, sheet)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return set
}
