package usecase

import (
	"context"
	"fmt"
	"sync"

	"folio/internal/core"
	"folio/internal/domain"
	"folio/internal/logging"
)

// Page banners known to the site.
const (
	PageHome    = "home"
	PageGallery = "gallery"
)

// CarouselUseCase mounts carousels for page banners and tracks them so
// none outlives the server.
type CarouselUseCase interface {
	Banner(page string) (domain.CarouselConfig, error)
	Mount(ctx context.Context, page string) (*core.Carousel, error)
	Unmount(c *core.Carousel) error
	Mounted() int
	Close() error
}

type carouselInteractor struct {
	banners map[string]domain.CarouselConfig
	opts    []core.Option

	mu      sync.Mutex
	mounted map[string]*core.Carousel
}

// NewCarouselUseCase creates the registry over the configured banners.
func NewCarouselUseCase(banners map[string]domain.CarouselConfig, opts ...core.Option) (CarouselUseCase, error) {
	copied := make(map[string]domain.CarouselConfig, len(banners))
	for page, cfg := range banners {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("banner %s: %w", page, err)
		}
		copied[page] = cfg
	}
	return &carouselInteractor{
		banners: copied,
		opts:    opts,
		mounted: make(map[string]*core.Carousel),
	}, nil
}

// Banner returns the configuration for page.
func (u *carouselInteractor) Banner(page string) (domain.CarouselConfig, error) {
	cfg, ok := u.banners[page]
	if !ok {
		return domain.CarouselConfig{}, fmt.Errorf("%w: %s", domain.ErrUnknownPage, page)
	}
	return cfg, nil
}

// Mount starts a carousel for page. It is torn down by Unmount, Close or
// when ctx ends.
func (u *carouselInteractor) Mount(ctx context.Context, page string) (*core.Carousel, error) {
	cfg, err := u.Banner(page)
	if err != nil {
		return nil, err
	}
	c, err := core.NewCarousel(ctx, cfg, u.opts...)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	u.mounted[c.ID()] = c
	u.mu.Unlock()

	go func() {
		<-c.Done()
		u.mu.Lock()
		delete(u.mounted, c.ID())
		u.mu.Unlock()
	}()
	logging.Debugf("mounted %s carousel %s", page, c.ID())
	return c, nil
}

// Unmount tears c down and waits for its timer to be released.
func (u *carouselInteractor) Unmount(c *core.Carousel) error {
	if c == nil {
		return nil
	}
	err := c.Close()
	u.mu.Lock()
	delete(u.mounted, c.ID())
	u.mu.Unlock()
	return err
}

// Mounted returns the number of live carousels.
func (u *carouselInteractor) Mounted() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.mounted)
}

// Close unmounts every live carousel.
func (u *carouselInteractor) Close() error {
	u.mu.Lock()
	live := make([]*core.Carousel, 0, len(u.mounted))
	for _, c := range u.mounted {
		live = append(live, c)
	}
	u.mu.Unlock()

	var firstErr error
	for _, c := range live {
		if err := u.Unmount(c); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
