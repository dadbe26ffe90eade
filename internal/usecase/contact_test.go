package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/domain"
)

type memorySink struct {
	mu   sync.Mutex
	subs []domain.Submission
}

func (s *memorySink) Deliver(_ context.Context, sub domain.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, sub)
	return nil
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newContact(t *testing.T) (ContactUseCase, *memorySink, *manualClock) {
	t.Helper()
	sink := &memorySink{}
	clock := &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	uc, err := NewContactUseCase(sink, time.Minute, WithClock(clock.Now))
	require.NoError(t, err)
	return uc, sink, clock
}

func TestContactSessionLifecycle(t *testing.T) {
	uc, sink, _ := newContact(t)
	sid := uc.Ensure("")
	require.NotEmpty(t, sid)
	assert.Equal(t, sid, uc.Ensure(sid))

	_, err := uc.Change(sid, domain.FieldFullName, "John Doe")
	require.NoError(t, err)
	_, err = uc.Change(sid, domain.FieldEmail, "john@example.com")
	require.NoError(t, err)
	_, err = uc.Change(sid, domain.FieldPhone, "+1 555 123 4567")
	require.NoError(t, err)
	st, err := uc.Change(sid, domain.FieldMessage, "This is a valid contact message.")
	require.NoError(t, err)
	assert.True(t, st.SubmitEnabled)

	st, ok, err := uc.Submit(context.Background(), sid)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.SubmitSuccessMessage, st.SubmitStatus)
	assert.Equal(t, domain.EmptyValues(), st.Values)

	require.Len(t, sink.subs, 1)
	assert.Equal(t, "John Doe", sink.subs[0].Values[domain.FieldFullName])
	assert.Equal(t, sid, sink.subs[0].SessionID)
}

func TestContactRejectedSubmitIsNotDelivered(t *testing.T) {
	uc, sink, _ := newContact(t)
	sid := uc.Ensure("")
	_, err := uc.Change(sid, domain.FieldFullName, "Jo")
	require.NoError(t, err)

	st, ok, err := uc.Submit(context.Background(), sid)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "Full name must be at least 3 characters.", st.Visible[domain.FieldFullName])
	assert.Equal(t, "Email is required.", st.Visible[domain.FieldEmail])
	assert.Empty(t, sink.subs)
}

func TestContactBlur(t *testing.T) {
	uc, _, _ := newContact(t)
	sid := uc.Ensure("")

	st, err := uc.Blur(sid, domain.FieldFullName)
	require.NoError(t, err)
	assert.Equal(t, "Full name is required.", st.Visible[domain.FieldFullName])

	st, err = uc.Blur(sid, domain.FieldSubject)
	require.NoError(t, err)
	assert.NotContains(t, st.Visible, domain.FieldSubject)
}

func TestContactUnknownSession(t *testing.T) {
	uc, _, _ := newContact(t)
	_, err := uc.State("nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, _, err = uc.Submit(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestContactSweepDropsIdleSessions(t *testing.T) {
	uc, _, clock := newContact(t)
	idle := uc.Ensure("")
	clock.Advance(45 * time.Second)
	active := uc.Ensure("")
	clock.Advance(30 * time.Second)

	assert.Equal(t, 1, uc.Sweep(clock.Now()))
	_, err := uc.State(idle)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = uc.State(active)
	assert.NoError(t, err)
	assert.NotEqual(t, idle, uc.Ensure(idle), "expired ids are replaced")
}

func TestContactStartStopsWithContext(t *testing.T) {
	uc, _, _ := newContact(t)
	ctx, cancel := context.WithCancel(context.Background())
	uc.Start(ctx)
	cancel()
}

func TestNewContactUseCaseValidates(t *testing.T) {
	_, err := NewContactUseCase(nil, time.Minute)
	assert.Error(t, err)
	_, err = NewContactUseCase(&memorySink{}, 0)
	assert.Error(t, err)
}
