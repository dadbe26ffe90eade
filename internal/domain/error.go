package domain

import "errors"

var (
	// ErrSlideOutOfRange indicates a direct navigation outside the slide bounds.
	ErrSlideOutOfRange = errors.New("slide index out of range")

	// ErrInvalidInterval indicates a non-positive autoplay interval.
	ErrInvalidInterval = errors.New("interval must be positive")

	// ErrMissingSource indicates a slide without image content.
	ErrMissingSource = errors.New("slide source is required")

	// ErrUnknownField indicates a field name outside the contact form.
	ErrUnknownField = errors.New("unknown form field")

	// ErrCarouselClosed indicates a command sent after teardown.
	ErrCarouselClosed = errors.New("carousel is closed")

	// ErrUnknownPage indicates a page without a banner.
	ErrUnknownPage = errors.New("unknown page")

	// ErrSessionNotFound indicates an unknown or expired contact session.
	ErrSessionNotFound = errors.New("contact session not found")
)
