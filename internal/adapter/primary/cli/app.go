package cli

import (
	"net/http"
	"time"

	"folio/internal/adapter/secondary/probe"
	"folio/internal/adapter/secondary/repository"
	"folio/internal/adapter/secondary/sink"
	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/logging"
	"folio/internal/usecase"
)

const probeTimeout = 5 * time.Second

// app holds the use cases wired from one site configuration.
type app struct {
	site      config.Site
	gallery   usecase.GalleryUseCase
	contact   usecase.ContactUseCase
	carousels usecase.CarouselUseCase
}

func loadSite() (config.Site, error) {
	repo, err := repository.NewFileRepository(cfgPath)
	if err != nil {
		return config.Site{}, err
	}
	return repo.Load()
}

// newProber checks candidates over HTTP when a base URL is configured and
// against the assets directory otherwise.
func newProber(site config.Site) (domain.ImageProber, error) {
	if site.Gallery.BaseURL != "" {
		return probe.NewHTTPProber(site.Gallery.BaseURL, &http.Client{Timeout: probeTimeout})
	}
	return probe.NewDirProber(site.AssetsDir, "/assets"), nil
}

func newApp(site config.Site) (*app, error) {
	prober, err := newProber(site)
	if err != nil {
		return nil, err
	}
	gallery, err := usecase.NewGalleryUseCase(prober, site.Gallery.Candidates)
	if err != nil {
		return nil, err
	}
	contact, err := usecase.NewContactUseCase(sink.NewLogSink(logging.L()), site.SessionTTL)
	if err != nil {
		return nil, err
	}
	carousels, err := usecase.NewCarouselUseCase(map[string]domain.CarouselConfig{
		usecase.PageHome:    site.HomeBanner,
		usecase.PageGallery: site.GalleryBanner,
	})
	if err != nil {
		return nil, err
	}
	return &app{
		site:      site,
		gallery:   gallery,
		contact:   contact,
		carousels: carousels,
	}, nil
}
