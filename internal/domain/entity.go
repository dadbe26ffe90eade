package domain

import (
	"strconv"
	"time"
)

// Slide is one entry in a carousel's ordered image sequence.
type Slide struct {
	ID      string
	Source  string
	Caption string
}

// Key returns the slide's stable identity, falling back to its position.
func (s Slide) Key(pos int) string {
	if s.ID != "" {
		return s.ID
	}
	return strconv.Itoa(pos)
}

// CarouselConfig holds the options a carousel is constructed with.
type CarouselConfig struct {
	Slides   []Slide
	Autoplay bool
	Interval time.Duration
}

// DefaultInterval is the time between automatic advances when none is given.
const DefaultInterval = 5 * time.Second

// DefaultCarouselConfig returns an autoplaying config over slides.
func DefaultCarouselConfig(slides []Slide) CarouselConfig {
	return CarouselConfig{
		Slides:   slides,
		Autoplay: true,
		Interval: DefaultInterval,
	}
}

// Validate checks the config values.
func (c CarouselConfig) Validate() error {
	if c.Interval <= 0 {
		return ErrInvalidInterval
	}
	for _, s := range c.Slides {
		if s.Source == "" {
			return ErrMissingSource
		}
	}
	return nil
}

// FieldName identifies a contact form field.
type FieldName string

const (
	FieldFullName FieldName = "fullName"
	FieldEmail    FieldName = "email"
	FieldPhone    FieldName = "phone"
	FieldSubject  FieldName = "subject"
	FieldMessage  FieldName = "message"
)

// Fields lists every contact form field in display order.
var Fields = []FieldName{FieldFullName, FieldEmail, FieldPhone, FieldSubject, FieldMessage}

// ParseFieldName converts transport input into a FieldName.
func ParseFieldName(s string) (FieldName, error) {
	for _, f := range Fields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", ErrUnknownField
}

// Values maps each field to its current text.
type Values map[FieldName]string

// Errors maps a field to its current error message. Valid fields are absent.
type Errors map[FieldName]string

// Touched records which fields have been blurred or submitted.
type Touched map[FieldName]bool

// EmptyValues returns a Values map with every field set to "".
func EmptyValues() Values {
	v := make(Values, len(Fields))
	for _, f := range Fields {
		v[f] = ""
	}
	return v
}

// Clone returns a copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// SubmitSuccessMessage is shown after an accepted submission.
const SubmitSuccessMessage = "Thank you! Your message has been sent successfully."

// Submission is an accepted contact form.
type Submission struct {
	SessionID   string
	Values      Values
	SubmittedAt time.Time
}

// GalleryKind tags the result of a gallery probe.
type GalleryKind int

const (
	GalleryReady GalleryKind = iota
	GalleryEmpty
	GalleryFailed
)

func (k GalleryKind) String() string {
	switch k {
	case GalleryReady:
		return "ready"
	case GalleryEmpty:
		return "empty"
	case GalleryFailed:
		return "failed"
	default:
		return "unknown"
	}
}

const (
	// GalleryEmptyMessage is shown when no candidate exists.
	GalleryEmptyMessage = "No images found in gallery. Please add images to public/assets/gallery/"
	// GalleryFailedMessage is shown when the probe could not run.
	GalleryFailedMessage = "Error loading gallery images. Please check the gallery folder."
)

// GalleryOutcome is the result of probing the gallery candidates.
type GalleryOutcome struct {
	Kind    GalleryKind
	Images  []Slide
	Message string
}

// Find returns the image with the given id.
func (o GalleryOutcome) Find(id string) (Slide, bool) {
	for _, img := range o.Images {
		if img.ID == id {
			return img, true
		}
	}
	return Slide{}, false
}
