package domain

// CarouselService provides the pure index arithmetic for carousels.
// It has no side effects and holds no state.
type CarouselService struct{}

// NewCarouselService creates a new carousel service.
func NewCarouselService() *CarouselService {
	return &CarouselService{}
}

// Next returns the index after current, wrapping to 0.
// With no slides the index stays at 0.
func (s *CarouselService) Next(current, count int) int {
	if count <= 0 {
		return 0
	}
	return (current + 1) % count
}

// Previous returns the index before current, wrapping to count-1.
func (s *CarouselService) Previous(current, count int) int {
	if count <= 0 {
		return 0
	}
	return (current - 1 + count) % count
}

// GoTo validates a direct navigation target.
func (s *CarouselService) GoTo(index, count int) (int, error) {
	if index < 0 || index >= count {
		return 0, ErrSlideOutOfRange
	}
	return index, nil
}

// Clamp keeps current valid for a new slide count. An index that no longer
// fits resets to the first slide.
func (s *CarouselService) Clamp(current, count int) int {
	if count <= 0 || current < 0 || current >= count {
		return 0
	}
	return current
}

// ShouldRun reports whether the auto-advance timer must be armed.
func (s *CarouselService) ShouldRun(cfg CarouselConfig) bool {
	return cfg.Autoplay && len(cfg.Slides) > 0 && cfg.Interval > 0
}
