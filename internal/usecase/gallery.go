package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"folio/internal/domain"
	"folio/internal/logging"
)

// GalleryUseCase builds the gallery image list by probing candidates.
type GalleryUseCase interface {
	Load(ctx context.Context) domain.GalleryOutcome
	Candidates() []string
}

type galleryInteractor struct {
	prober     domain.ImageProber
	candidates []string
}

// NewGalleryUseCase creates a gallery use case over a fixed candidate list.
func NewGalleryUseCase(prober domain.ImageProber, candidates []string) (GalleryUseCase, error) {
	if prober == nil {
		return nil, errors.New("prober is required")
	}
	return &galleryInteractor{
		prober:     prober,
		candidates: append([]string(nil), candidates...),
	}, nil
}

// Candidates returns the probed paths in order.
func (g *galleryInteractor) Candidates() []string {
	return append([]string(nil), g.candidates...)
}

// Load checks every candidate in order, one at a time, and keeps the ones
// that exist. A failing check counts as a missing image. The outcome is
// Failed only when the probe could not start.
func (g *galleryInteractor) Load(ctx context.Context) domain.GalleryOutcome {
	if err := ctx.Err(); err != nil {
		logging.Warnf("gallery probe not started: %v", err)
		return domain.GalleryOutcome{Kind: domain.GalleryFailed, Message: domain.GalleryFailedMessage}
	}

	var images []domain.Slide
	for i, path := range g.candidates {
		ok, err := g.prober.Exists(ctx, path)
		if err != nil {
			logging.L().Debug("gallery candidate skipped", zap.String("path", path), zap.Error(err))
			continue
		}
		if !ok {
			logging.Tracef("gallery candidate missing: %s", path)
			continue
		}
		images = append(images, domain.Slide{
			ID:      strconv.Itoa(i),
			Source:  path,
			Caption: fmt.Sprintf("Gallery Image %d", i+1),
		})
	}

	if len(images) == 0 {
		return domain.GalleryOutcome{Kind: domain.GalleryEmpty, Message: domain.GalleryEmptyMessage}
	}
	logging.Infof("gallery probe: %d of %d candidates found", len(images), len(g.candidates))
	return domain.GalleryOutcome{Kind: domain.GalleryReady, Images: images}
}
