package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"folio/internal/domain"
	"folio/internal/logging"
)

// Carousel runs one mounted carousel. All transitions are applied by a
// single event loop goroutine, which also owns the auto-advance ticker.
type Carousel struct {
	id        string
	newTicker TickerFactory

	mu        sync.RWMutex
	state     State
	observers map[int]func(View)
	nextObs   int

	eventCh chan eventRequest
	done    chan struct{}
}

type eventRequest struct {
	event    Event
	resultCh chan error
}

// Option configures a Carousel.
type Option func(*Carousel)

// WithTickerFactory replaces the ticker used for auto-advance.
func WithTickerFactory(f TickerFactory) Option {
	return func(c *Carousel) {
		if f != nil {
			c.newTicker = f
		}
	}
}

// WithID sets the instance id used in logs.
func WithID(id string) Option {
	return func(c *Carousel) {
		if id != "" {
			c.id = id
		}
	}
}

// NewCarousel mounts a carousel over cfg and starts its event loop. The
// carousel is torn down by Close or when ctx is cancelled.
func NewCarousel(ctx context.Context, cfg domain.CarouselConfig, opts ...Option) (*Carousel, error) {
	state, effects, err := NewState(cfg)
	if err != nil {
		return nil, err
	}
	c := &Carousel{
		id:        uuid.NewString(),
		newTicker: NewTimeTicker,
		state:     state,
		observers: make(map[int]func(View)),
		eventCh:   make(chan eventRequest),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	logging.L().Debug("carousel mounted",
		zap.String("id", c.id),
		zap.Int("slides", state.SlideCount()),
		zap.Bool("autoplay", state.Config.Autoplay),
		zap.Duration("interval", state.Config.Interval))
	go c.loop(ctx, effects)
	return c, nil
}

// ID returns the instance id.
func (c *Carousel) ID() string {
	return c.id
}

func (c *Carousel) loop(ctx context.Context, initial []Effect) {
	defer close(c.done)

	var ticker Ticker
	var tickC <-chan time.Time
	stop := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tickC = nil
		}
	}
	defer stop()

	apply := func(effects []Effect) {
		for _, eff := range effects {
			switch eff.Type {
			case EffectArmTimer:
				stop()
				ticker = c.newTicker(eff.Interval)
				tickC = ticker.C()
				logging.Tracef("carousel %s: timer armed (%s)", c.id, eff.Interval)
			case EffectDisarmTimer:
				stop()
				logging.Tracef("carousel %s: timer released", c.id)
			case EffectPublish:
				c.publish(eff.View)
			}
		}
	}
	handle := func(ev Event) error {
		c.mu.Lock()
		newState, effects, err := HandleEvent(c.state, ev)
		if err != nil {
			c.mu.Unlock()
			return err
		}
		c.state = newState
		c.mu.Unlock()
		apply(effects)
		return nil
	}

	apply(initial)
	for {
		select {
		case <-ctx.Done():
			_ = handle(Event{Type: EventTeardown})
			logging.L().Debug("carousel unmounted", zap.String("id", c.id), zap.String("reason", "context"))
			return
		case req := <-c.eventCh:
			err := handle(req.event)
			req.resultCh <- err
			if req.event.Type == EventTeardown && err == nil {
				logging.L().Debug("carousel unmounted", zap.String("id", c.id))
				return
			}
		case <-tickC:
			if err := handle(Event{Type: EventTick}); err != nil {
				logging.Warnf("carousel %s: tick: %v", c.id, err)
			}
		}
	}
}

func (c *Carousel) send(ev Event) error {
	ch := make(chan error, 1)
	select {
	case c.eventCh <- eventRequest{event: ev, resultCh: ch}:
	case <-c.done:
		return domain.ErrCarouselClosed
	}
	return <-ch
}

func (c *Carousel) publish(v View) {
	c.mu.RLock()
	fns := make([]func(View), 0, len(c.observers))
	for _, fn := range c.observers {
		fns = append(fns, fn)
	}
	c.mu.RUnlock()
	for _, fn := range fns {
		fn(v)
	}
}

// Next advances to the following slide, wrapping at the end.
func (c *Carousel) Next() error {
	return c.send(Event{Type: EventNext})
}

// Previous moves to the preceding slide, wrapping at the start.
func (c *Carousel) Previous() error {
	return c.send(Event{Type: EventPrevious})
}

// GoTo jumps to index. Indices outside the slide range are rejected with
// domain.ErrSlideOutOfRange and leave the carousel unchanged.
func (c *Carousel) GoTo(index int) error {
	return c.send(Event{Type: EventGoTo, Data: GoToData{Index: index}})
}

// Configure changes the autoplay settings. A zero interval keeps the
// current one.
func (c *Carousel) Configure(autoplay bool, interval time.Duration) error {
	return c.send(Event{Type: EventConfigure, Data: ConfigureData{Autoplay: autoplay, Interval: interval}})
}

// SetSlides replaces the slide sequence.
func (c *Carousel) SetSlides(slides []domain.Slide) error {
	return c.send(Event{Type: EventSetSlides, Data: SetSlidesData{Slides: slides}})
}

// Snapshot returns the view after every previously queued event has been
// applied.
func (c *Carousel) Snapshot() (View, error) {
	if err := c.send(Event{Type: EventSnapshot}); err != nil {
		return View{}, err
	}
	return c.View(), nil
}

// View returns the current renderable state.
func (c *Carousel) View() View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.View()
}

// TimerArmed reports whether the auto-advance timer is active.
func (c *Carousel) TimerArmed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.TimerArmed
}

// OnChange registers fn to be called from the event loop after every
// visible change. fn must not call back into the carousel. The returned
// func removes the observer.
func (c *Carousel) OnChange(fn func(View)) func() {
	c.mu.Lock()
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.observers, id)
		c.mu.Unlock()
	}
}

// Close tears the carousel down and waits until its timer is released.
// It is safe to call more than once.
func (c *Carousel) Close() error {
	err := c.send(Event{Type: EventTeardown})
	if err != nil && !errors.Is(err, domain.ErrCarouselClosed) {
		return err
	}
	<-c.done
	return nil
}

// Done is closed once the event loop has exited.
func (c *Carousel) Done() <-chan struct{} {
	return c.done
}
