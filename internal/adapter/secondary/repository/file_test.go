package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	repo, err := NewFileRepository(filepath.Join(t.TempDir(), "nested", "site.yaml"))
	require.NoError(t, err)

	site, err := repo.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(config.Default(), site); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveThenLoad(t *testing.T) {
	repo, err := NewFileRepository(filepath.Join(t.TempDir(), "site.yaml"))
	require.NoError(t, err)

	site := config.Default()
	site.Addr = "0.0.0.0:8080"
	site.Gallery.BaseURL = "https://example.com"
	site.HomeBanner.Interval = 3 * time.Second
	site.GalleryBanner.Autoplay = true
	require.NoError(t, repo.Save(site))

	got, err := repo.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(site, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	_, err = os.Stat(repo.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err), "tmp file is renamed away")
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: 127.0.0.1:9000
homeBanner:
  interval: 2s
`), 0o644))
	repo, err := NewFileRepository(path)
	require.NoError(t, err)

	site, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", site.Addr)
	assert.Equal(t, 2*time.Second, site.HomeBanner.Interval)
	assert.True(t, site.HomeBanner.Autoplay)
	assert.Len(t, site.HomeBanner.Slides, 2)
	assert.Equal(t, config.DefaultCandidates(), site.Gallery.Candidates)
}

func TestLoadRejectsBadInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("homeBanner:\n  interval: soon\n"), 0o644))
	repo, err := NewFileRepository(path)
	require.NoError(t, err)

	_, err = repo.Load()
	assert.Error(t, err)
}

func TestNewFileRepositoryRequiresPath(t *testing.T) {
	_, err := NewFileRepository("")
	assert.Error(t, err)
}
