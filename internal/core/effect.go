package core

import (
	"time"

	"folio/internal/domain"
)

// EffectType represents the type of side effect to be performed.
type EffectType string

const (
	EffectArmTimer    EffectType = "ArmTimer"
	EffectDisarmTimer EffectType = "DisarmTimer"
	EffectPublish     EffectType = "Publish"
)

// Effect represents a side effect that the carousel runtime performs.
// The reducer produces Effects without executing them.
type Effect struct {
	Type     EffectType
	Interval time.Duration
	View     View
}

// Event represents an input to the carousel reducer.
type Event struct {
	Type EventType
	Data interface{}
}

// EventType represents the type of event.
type EventType string

const (
	EventNext      EventType = "Next"
	EventPrevious  EventType = "Previous"
	EventGoTo      EventType = "GoTo"
	EventTick      EventType = "Tick"
	EventConfigure EventType = "Configure"
	EventSetSlides EventType = "SetSlides"
	EventTeardown  EventType = "Teardown"
	EventSnapshot  EventType = "Snapshot"
)

// GoToData carries the target of a direct navigation.
type GoToData struct {
	Index int
}

// ConfigureData carries new autoplay settings.
type ConfigureData struct {
	Autoplay bool
	Interval time.Duration
}

// SetSlidesData replaces the slide sequence.
type SetSlidesData struct {
	Slides []domain.Slide
}

// State is the carousel's complete state.
type State struct {
	Config      domain.CarouselConfig
	ActiveIndex int
	TimerArmed  bool
	Closed      bool
}

// SlideCount returns the number of slides.
func (s State) SlideCount() int {
	return len(s.Config.Slides)
}

// SlideView is one slide as the rendering layer sees it.
type SlideView struct {
	Slide domain.Slide
	Key   string
	// Index is the 0-based navigation target, Position the 1-based label.
	Index    int
	Position int
	Active   bool
}

// View is the rendering contract of a carousel. Controls are only present
// when there is at least one slide.
type View struct {
	Empty       bool
	ActiveIndex int
	SlideCount  int
	Autoplay    bool
	Controls    bool
	Slides      []SlideView
}

// View derives the renderable output from s.
func (s State) View() View {
	n := s.SlideCount()
	v := View{
		Empty:      n == 0,
		SlideCount: n,
		Autoplay:   s.Config.Autoplay,
		Controls:   n > 0,
	}
	if n == 0 {
		return v
	}
	v.ActiveIndex = s.ActiveIndex
	v.Slides = make([]SlideView, n)
	for i, sl := range s.Config.Slides {
		v.Slides[i] = SlideView{
			Slide:    sl,
			Key:      sl.Key(i),
			Index:    i,
			Position: i + 1,
			Active:   i == s.ActiveIndex,
		}
	}
	return v
}
