package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"folio/internal/config"
	"folio/internal/domain"
)

// FileRepository implements config.Store using a YAML file.
// This is a secondary adapter.
type FileRepository struct {
	path string
	mu   sync.Mutex
}

var _ config.Store = (*FileRepository)(nil)

// NewFileRepository creates a new file-based site config repository.
func NewFileRepository(path string) (*FileRepository, error) {
	if path == "" {
		return nil, errors.New("path is required")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	return &FileRepository{path: path}, nil
}

// Path returns the backing file path.
func (f *FileRepository) Path() string {
	return f.path
}

// persistedData represents the YAML structure on disk.
type persistedData struct {
	Addr          string          `yaml:"addr"`
	AssetsDir     string          `yaml:"assetsDir"`
	SessionTTL    string          `yaml:"sessionTTL,omitempty"`
	Gallery       persistedProbe  `yaml:"gallery"`
	HomeBanner    persistedBanner `yaml:"homeBanner"`
	GalleryBanner persistedBanner `yaml:"galleryBanner"`
}

type persistedProbe struct {
	BaseURL    string   `yaml:"baseURL,omitempty"`
	Candidates []string `yaml:"candidates"`
}

type persistedBanner struct {
	Autoplay *bool            `yaml:"autoplay,omitempty"`
	Interval string           `yaml:"interval,omitempty"`
	Slides   []persistedSlide `yaml:"slides"`
}

type persistedSlide struct {
	ID      string `yaml:"id,omitempty"`
	Source  string `yaml:"src"`
	Caption string `yaml:"alt,omitempty"`
}

// Load reads the configuration from disk, or returns defaults if the file
// does not exist.
func (f *FileRepository) Load() (config.Site, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Default(), nil
		}
		return config.Site{}, fmt.Errorf("read config: %w", err)
	}

	var persisted persistedData
	if err := yaml.Unmarshal(data, &persisted); err != nil {
		return config.Site{}, fmt.Errorf("unmarshal config: %w", err)
	}

	def := config.Default()
	site := config.Site{
		Addr:      persisted.Addr,
		AssetsDir: persisted.AssetsDir,
		Gallery: config.Gallery{
			BaseURL:    persisted.Gallery.BaseURL,
			Candidates: persisted.Gallery.Candidates,
		},
	}
	if site.Gallery.Candidates == nil {
		site.Gallery.Candidates = def.Gallery.Candidates
	}
	if persisted.SessionTTL != "" {
		ttl, err := time.ParseDuration(persisted.SessionTTL)
		if err != nil {
			return config.Site{}, fmt.Errorf("parse sessionTTL: %w", err)
		}
		site.SessionTTL = ttl
	}
	if site.HomeBanner, err = persisted.HomeBanner.toDomain(def.HomeBanner); err != nil {
		return config.Site{}, fmt.Errorf("homeBanner: %w", err)
	}
	if site.GalleryBanner, err = persisted.GalleryBanner.toDomain(def.GalleryBanner); err != nil {
		return config.Site{}, fmt.Errorf("galleryBanner: %w", err)
	}

	return config.Normalize(site)
}

func (p persistedBanner) toDomain(def domain.CarouselConfig) (domain.CarouselConfig, error) {
	cfg := def
	if p.Autoplay != nil {
		cfg.Autoplay = *p.Autoplay
	}
	if p.Interval != "" {
		d, err := time.ParseDuration(p.Interval)
		if err != nil {
			return cfg, fmt.Errorf("parse interval: %w", err)
		}
		cfg.Interval = d
	}
	if p.Slides != nil {
		cfg.Slides = make([]domain.Slide, len(p.Slides))
		for i, s := range p.Slides {
			cfg.Slides[i] = domain.Slide{ID: s.ID, Source: s.Source, Caption: s.Caption}
		}
	}
	return cfg, nil
}

func fromDomain(cfg domain.CarouselConfig) persistedBanner {
	autoplay := cfg.Autoplay
	p := persistedBanner{
		Autoplay: &autoplay,
		Interval: cfg.Interval.String(),
		Slides:   make([]persistedSlide, len(cfg.Slides)),
	}
	for i, s := range cfg.Slides {
		p.Slides[i] = persistedSlide{ID: s.ID, Source: s.Source, Caption: s.Caption}
	}
	return p
}

// Marshal encodes site in the on-disk YAML layout.
func Marshal(site config.Site) ([]byte, error) {
	persisted := persistedData{
		Addr:      site.Addr,
		AssetsDir: site.AssetsDir,
		Gallery: persistedProbe{
			BaseURL:    site.Gallery.BaseURL,
			Candidates: site.Gallery.Candidates,
		},
		HomeBanner:    fromDomain(site.HomeBanner),
		GalleryBanner: fromDomain(site.GalleryBanner),
	}
	if site.SessionTTL > 0 {
		persisted.SessionTTL = site.SessionTTL.String()
	}

	data, err := yaml.Marshal(persisted)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// Save persists the configuration to disk.
func (f *FileRepository) Save(site config.Site) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := Marshal(site)
	if err != nil {
		return err
	}

	// Atomic write
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write tmp: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("rename tmp: %w", err)
	}

	return nil
}

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return config.DefaultPath()
}
