package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"folio/internal/adapter/secondary/probe"
	"folio/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingProber struct {
	mu      sync.Mutex
	calls   []string
	results map[string]bool
	errs    map[string]error
}

func (p *recordingProber) Exists(_ context.Context, path string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, path)
	if err := p.errs[path]; err != nil {
		return false, err
	}
	return p.results[path], nil
}

func TestGalleryLoadKeepsExistingInOrder(t *testing.T) {
	candidates := []string{"/a.png", "/b.png", "/c.svg", "/d.svg"}
	prober := &recordingProber{
		results: map[string]bool{"/b.png": true, "/d.svg": true, "/c.svg": true},
		errs:    map[string]error{"/c.svg": errors.New("connection reset")},
	}
	uc, err := NewGalleryUseCase(prober, candidates)
	require.NoError(t, err)

	out := uc.Load(context.Background())
	assert.Equal(t, domain.GalleryReady, out.Kind)
	want := []domain.Slide{
		{ID: "1", Source: "/b.png", Caption: "Gallery Image 2"},
		{ID: "3", Source: "/d.svg", Caption: "Gallery Image 4"},
	}
	if diff := cmp.Diff(want, out.Images); diff != "" {
		t.Fatalf("images mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, candidates, prober.calls, "every candidate is checked once, in order")
}

func TestGalleryLoadEmpty(t *testing.T) {
	uc, err := NewGalleryUseCase(probe.NewStaticProber(), []string{"/a.png", "/b.png"})
	require.NoError(t, err)

	out := uc.Load(context.Background())
	assert.Equal(t, domain.GalleryEmpty, out.Kind)
	assert.Equal(t, domain.GalleryEmptyMessage, out.Message)
	assert.Empty(t, out.Images)
}

func TestGalleryLoadNoCandidatesIsEmpty(t *testing.T) {
	uc, err := NewGalleryUseCase(probe.NewStaticProber(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.GalleryEmpty, uc.Load(context.Background()).Kind)
}

func TestGalleryLoadAllFailuresIsEmpty(t *testing.T) {
	boom := errors.New("unreachable")
	prober := &recordingProber{errs: map[string]error{"/a.png": boom, "/b.png": boom}}
	uc, err := NewGalleryUseCase(prober, []string{"/a.png", "/b.png"})
	require.NoError(t, err)

	out := uc.Load(context.Background())
	assert.Equal(t, domain.GalleryEmpty, out.Kind)
	assert.Equal(t, domain.GalleryEmptyMessage, out.Message)
	assert.Empty(t, out.Images)
	assert.Len(t, prober.calls, 2)
}

func TestGalleryLoadCancelledBeforeStart(t *testing.T) {
	prober := &recordingProber{}
	uc, err := NewGalleryUseCase(prober, []string{"/a.png"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := uc.Load(ctx)
	assert.Equal(t, domain.GalleryFailed, out.Kind)
	assert.Empty(t, prober.calls)
}

func TestNewGalleryUseCaseRequiresProber(t *testing.T) {
	_, err := NewGalleryUseCase(nil, nil)
	assert.Error(t, err)
}

func TestGalleryCandidatesIsACopy(t *testing.T) {
	uc, err := NewGalleryUseCase(probe.NewStaticProber(), []string{"/a.png"})
	require.NoError(t, err)
	c := uc.Candidates()
	c[0] = "/changed.png"
	assert.Equal(t, []string{"/a.png"}, uc.Candidates())
}
