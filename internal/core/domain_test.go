package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/domain"
)

func effectTypes(effects []Effect) []EffectType {
	out := make([]EffectType, 0, len(effects))
	for _, e := range effects {
		out = append(out, e.Type)
	}
	return out
}

func TestNewStateArmsOnlyWhenRunnable(t *testing.T) {
	_, effects, err := NewState(domain.DefaultCarouselConfig(slides(2)))
	require.NoError(t, err)
	assert.Equal(t, []EffectType{EffectArmTimer}, effectTypes(effects))

	st, effects, err := NewState(domain.DefaultCarouselConfig(nil))
	require.NoError(t, err)
	assert.Empty(t, effects)
	assert.False(t, st.TimerArmed)
}

func TestNewStateCopiesSlides(t *testing.T) {
	in := slides(2)
	st, _, err := NewState(domain.DefaultCarouselConfig(in))
	require.NoError(t, err)
	in[0].Source = "/changed.png"
	assert.NotEqual(t, "/changed.png", st.Config.Slides[0].Source)
}

func TestHandleEventTickWithoutTimerIsIgnored(t *testing.T) {
	st, _, err := NewState(domain.CarouselConfig{Slides: slides(3), Interval: time.Second})
	require.NoError(t, err)

	next, effects, err := HandleEvent(st, Event{Type: EventTick})
	require.NoError(t, err)
	assert.Empty(t, effects)
	assert.Equal(t, 0, next.ActiveIndex)
}

func TestHandleEventNextPublishes(t *testing.T) {
	st, _, err := NewState(domain.CarouselConfig{Slides: slides(3), Interval: time.Second})
	require.NoError(t, err)

	next, effects, err := HandleEvent(st, Event{Type: EventNext})
	require.NoError(t, err)
	require.Equal(t, []EffectType{EffectPublish}, effectTypes(effects))
	assert.Equal(t, 1, effects[0].View.ActiveIndex)
	assert.Equal(t, 1, next.ActiveIndex)
}

func TestHandleEventTeardown(t *testing.T) {
	st, _, err := NewState(domain.DefaultCarouselConfig(slides(2)))
	require.NoError(t, err)

	closed, effects, err := HandleEvent(st, Event{Type: EventTeardown})
	require.NoError(t, err)
	assert.Equal(t, []EffectType{EffectDisarmTimer}, effectTypes(effects))
	assert.True(t, closed.Closed)

	_, _, err = HandleEvent(closed, Event{Type: EventNext})
	assert.ErrorIs(t, err, domain.ErrCarouselClosed)
}

func TestHandleEventRejectsBadPayloads(t *testing.T) {
	st, _, err := NewState(domain.DefaultCarouselConfig(slides(2)))
	require.NoError(t, err)

	for _, typ := range []EventType{EventGoTo, EventConfigure, EventSetSlides} {
		_, _, err := HandleEvent(st, Event{Type: typ, Data: "nope"})
		assert.Error(t, err, "event %s", typ)
	}
	_, _, err = HandleEvent(st, Event{Type: "Spin"})
	assert.Error(t, err)
}

func TestHandleEventSameSettingsKeepTimer(t *testing.T) {
	st, _, err := NewState(domain.DefaultCarouselConfig(slides(2)))
	require.NoError(t, err)

	_, effects, err := HandleEvent(st, Event{Type: EventConfigure, Data: ConfigureData{Autoplay: true}})
	require.NoError(t, err)
	assert.Empty(t, effects)
}
