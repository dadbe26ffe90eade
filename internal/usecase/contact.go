package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"folio/internal/core"
	"folio/internal/domain"
	"folio/internal/logging"
)

// ContactUseCase keeps one contact form per visitor session.
type ContactUseCase interface {
	Start(ctx context.Context)
	Ensure(sessionID string) string
	State(sessionID string) (core.FormState, error)
	Change(sessionID string, field domain.FieldName, value string) (core.FormState, error)
	Blur(sessionID string, field domain.FieldName) (core.FormState, error)
	Submit(ctx context.Context, sessionID string) (core.FormState, bool, error)
	Sweep(now time.Time) int
}

type contactSession struct {
	form     *core.Form
	lastSeen time.Time
}

type contactInteractor struct {
	sink domain.SubmissionSink
	ttl  time.Duration
	now  func() time.Time

	mu       sync.Mutex
	sessions map[string]*contactSession
}

// ContactOption configures the contact use case.
type ContactOption func(*contactInteractor)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) ContactOption {
	return func(c *contactInteractor) {
		if now != nil {
			c.now = now
		}
	}
}

// NewContactUseCase creates a contact use case delivering accepted forms
// to sink. Sessions idle for longer than ttl are dropped by Sweep.
func NewContactUseCase(sink domain.SubmissionSink, ttl time.Duration, opts ...ContactOption) (ContactUseCase, error) {
	if sink == nil {
		return nil, errors.New("sink is required")
	}
	if ttl <= 0 {
		return nil, errors.New("ttl must be positive")
	}
	c := &contactInteractor{
		sink:     sink,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*contactSession),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Start sweeps idle sessions until ctx is cancelled.
func (c *contactInteractor) Start(ctx context.Context) {
	go c.loop(ctx)
}

func (c *contactInteractor) loop(ctx context.Context) {
	ticker := time.NewTicker(c.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.Sweep(c.now()); n > 0 {
				logging.Debugf("dropped %d idle contact sessions", n)
			}
		}
	}
}

// Ensure returns sessionID if it is live, otherwise a new session id.
func (c *contactInteractor) Ensure(sessionID string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.sessions[sessionID]; ok {
		s.lastSeen = c.now()
		return sessionID
	}
	id := uuid.NewString()
	c.sessions[id] = &contactSession{form: core.NewForm(), lastSeen: c.now()}
	return id
}

func (c *contactInteractor) withForm(sessionID string, fn func(*core.Form)) (core.FormState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[sessionID]
	if !ok {
		return core.FormState{}, domain.ErrSessionNotFound
	}
	s.lastSeen = c.now()
	if fn != nil {
		fn(s.form)
	}
	return s.form.State(), nil
}

// State returns the session's form.
func (c *contactInteractor) State(sessionID string) (core.FormState, error) {
	return c.withForm(sessionID, nil)
}

// Change stores a new field value.
func (c *contactInteractor) Change(sessionID string, field domain.FieldName, value string) (core.FormState, error) {
	return c.withForm(sessionID, func(f *core.Form) { f.HandleChange(field, value) })
}

// Blur touches a field and recomputes its error.
func (c *contactInteractor) Blur(sessionID string, field domain.FieldName) (core.FormState, error) {
	return c.withForm(sessionID, func(f *core.Form) { f.HandleBlur(field) })
}

// Submit validates the whole form. Accepted forms are handed to the sink
// after the form has been reset.
func (c *contactInteractor) Submit(ctx context.Context, sessionID string) (core.FormState, bool, error) {
	var (
		submitted domain.Values
		accepted  bool
	)
	state, err := c.withForm(sessionID, func(f *core.Form) {
		submitted, accepted = f.HandleSubmit()
	})
	if err != nil || !accepted {
		return state, false, err
	}

	sub := domain.Submission{
		SessionID:   sessionID,
		Values:      submitted,
		SubmittedAt: c.now(),
	}
	if err := c.sink.Deliver(ctx, sub); err != nil {
		logging.Errorf("deliver contact submission: %v", err)
	}
	return state, true, nil
}

// Sweep drops sessions idle since before now-ttl and returns how many.
func (c *contactInteractor) Sweep(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	dropped := 0
	for id, s := range c.sessions {
		if now.Sub(s.lastSeen) > c.ttl {
			delete(c.sessions, id)
			dropped++
		}
	}
	return dropped
}
