package config

import (
	"fmt"
	"strings"
	"time"
)

// Normalize fills zero values with defaults and rejects invalid ones.
func Normalize(cfg Site) (Site, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		cfg.Addr = DefaultAddr
	}
	if strings.TrimSpace(cfg.AssetsDir) == "" {
		cfg.AssetsDir = DefaultAssetsDir
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.SessionTTL < time.Minute {
		return cfg, fmt.Errorf("sessionTTL must be >=1m")
	}
	for i, c := range cfg.Gallery.Candidates {
		if strings.TrimSpace(c) == "" {
			return cfg, fmt.Errorf("gallery candidate %d is empty", i)
		}
	}
	if err := cfg.HomeBanner.Validate(); err != nil {
		return cfg, fmt.Errorf("homeBanner: %w", err)
	}
	if err := cfg.GalleryBanner.Validate(); err != nil {
		return cfg, fmt.Errorf("galleryBanner: %w", err)
	}
	return cfg, nil
}
