package core

import (
	"fmt"

	"folio/internal/domain"
)

var service = domain.NewCarouselService()

// NewState builds the mount-time state for cfg and the effects needed to
// start it. The slide slice is copied so callers cannot mutate it later.
func NewState(cfg domain.CarouselConfig) (State, []Effect, error) {
	if err := cfg.Validate(); err != nil {
		return State{}, nil, err
	}
	cfg.Slides = append([]domain.Slide(nil), cfg.Slides...)
	state := State{Config: cfg}
	var effects []Effect
	if service.ShouldRun(cfg) {
		state.TimerArmed = true
		effects = append(effects, Effect{Type: EffectArmTimer, Interval: cfg.Interval})
	}
	return state, effects, nil
}

// HandleEvent is a pure function that takes current state and an event,
// and returns the new state along with effects to be executed.
func HandleEvent(state State, event Event) (State, []Effect, error) {
	if state.Closed {
		return state, nil, domain.ErrCarouselClosed
	}
	switch event.Type {
	case EventNext:
		return move(state, service.Next(state.ActiveIndex, state.SlideCount()))
	case EventPrevious:
		return move(state, service.Previous(state.ActiveIndex, state.SlideCount()))
	case EventTick:
		if !state.TimerArmed {
			return state, nil, nil
		}
		return move(state, service.Next(state.ActiveIndex, state.SlideCount()))
	case EventGoTo:
		data, ok := event.Data.(GoToData)
		if !ok {
			return state, nil, fmt.Errorf("invalid GoToData")
		}
		idx, err := service.GoTo(data.Index, state.SlideCount())
		if err != nil {
			return state, nil, err
		}
		return move(state, idx)
	case EventConfigure:
		data, ok := event.Data.(ConfigureData)
		if !ok {
			return state, nil, fmt.Errorf("invalid ConfigureData")
		}
		return handleConfigure(state, data)
	case EventSetSlides:
		data, ok := event.Data.(SetSlidesData)
		if !ok {
			return state, nil, fmt.Errorf("invalid SetSlidesData")
		}
		return handleSetSlides(state, data)
	case EventTeardown:
		return handleTeardown(state)
	case EventSnapshot:
		return state, nil, nil
	default:
		return state, nil, fmt.Errorf("unknown event type: %s", event.Type)
	}
}

func move(state State, idx int) (State, []Effect, error) {
	if state.SlideCount() == 0 || idx == state.ActiveIndex {
		return state, nil, nil
	}
	newState := state
	newState.ActiveIndex = idx
	return newState, []Effect{{Type: EffectPublish, View: newState.View()}}, nil
}

func handleConfigure(state State, data ConfigureData) (State, []Effect, error) {
	cfg := state.Config
	cfg.Autoplay = data.Autoplay
	if data.Interval != 0 {
		cfg.Interval = data.Interval
	}
	if err := cfg.Validate(); err != nil {
		return state, nil, err
	}

	newState := state
	newState.Config = cfg
	effects := retime(state, &newState)
	if cfg.Autoplay != state.Config.Autoplay {
		effects = append(effects, Effect{Type: EffectPublish, View: newState.View()})
	}
	return newState, effects, nil
}

func handleSetSlides(state State, data SetSlidesData) (State, []Effect, error) {
	cfg := state.Config
	cfg.Slides = append([]domain.Slide(nil), data.Slides...)
	if err := cfg.Validate(); err != nil {
		return state, nil, err
	}

	newState := state
	newState.Config = cfg
	newState.ActiveIndex = service.Clamp(state.ActiveIndex, len(cfg.Slides))
	effects := retime(state, &newState)
	effects = append(effects, Effect{Type: EffectPublish, View: newState.View()})
	return newState, effects, nil
}

func handleTeardown(state State) (State, []Effect, error) {
	newState := state
	newState.Closed = true
	newState.TimerArmed = false
	if state.TimerArmed {
		return newState, []Effect{{Type: EffectDisarmTimer}}, nil
	}
	return newState, nil, nil
}

// retime compares the timer-relevant settings of prev and next and emits
// the arm or disarm effect. Arming always replaces any running timer.
func retime(prev State, next *State) []Effect {
	if !service.ShouldRun(next.Config) {
		next.TimerArmed = false
		if prev.TimerArmed {
			return []Effect{{Type: EffectDisarmTimer}}
		}
		return nil
	}
	changed := !prev.TimerArmed ||
		prev.Config.Interval != next.Config.Interval ||
		prev.SlideCount() != next.SlideCount()
	next.TimerArmed = true
	if !changed {
		return nil
	}
	return []Effect{{Type: EffectArmTimer, Interval: next.Config.Interval}}
}
