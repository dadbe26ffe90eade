package config

import (
	"time"

	"folio/internal/domain"
)

// Site is the configuration of the whole website.
type Site struct {
	Addr          string
	AssetsDir     string
	Gallery       Gallery
	HomeBanner    domain.CarouselConfig
	GalleryBanner domain.CarouselConfig
	SessionTTL    time.Duration
}

// Gallery configures the gallery image probe.
type Gallery struct {
	// BaseURL, when set, makes the probe issue HEAD requests against it.
	// Otherwise candidates are looked up under AssetsDir.
	BaseURL    string
	Candidates []string
}

// Store persists the site configuration so the CLI and server share it.
type Store interface {
	Load() (Site, error)
	Save(Site) error
}

var (
	// DefaultAddr is the HTTP bind address.
	DefaultAddr = "127.0.0.1:7070"
	// DefaultAssetsDir is served under /assets.
	DefaultAssetsDir = "public/assets"
	// DefaultSessionTTL is how long an idle contact session is kept.
	DefaultSessionTTL = 30 * time.Minute
)

// DefaultCandidates is the list of gallery images probed on load.
func DefaultCandidates() []string {
	return []string{
		"/assets/gallery/family.png",
		"/assets/gallery/family_1.png",
		"/assets/gallery/family_2.png",
		"/assets/gallery/gallery-4.svg",
		"/assets/gallery/gallery-5.svg",
		"/assets/gallery/gallery-6.svg",
	}
}

// Default returns the initial configuration.
func Default() Site {
	return Site{
		Addr:      DefaultAddr,
		AssetsDir: DefaultAssetsDir,
		Gallery: Gallery{
			Candidates: DefaultCandidates(),
		},
		HomeBanner: domain.CarouselConfig{
			Slides: []domain.Slide{
				{ID: "1", Source: "/assets/gallery/family.png", Caption: "Gallery Banner"},
				{ID: "2", Source: "/assets/gallery/family_2.png", Caption: "Gallery Banner 2"},
			},
			Autoplay: true,
			Interval: domain.DefaultInterval,
		},
		GalleryBanner: domain.CarouselConfig{
			Slides: []domain.Slide{
				{ID: "1", Source: "/assets/gallery/family.png", Caption: "Gallery Banner"},
				{ID: "2", Source: "/assets/gallery/family_1.png", Caption: "Gallery Banner 2"},
			},
			Autoplay: false,
			Interval: domain.DefaultInterval,
		},
		SessionTTL: DefaultSessionTTL,
	}
}
