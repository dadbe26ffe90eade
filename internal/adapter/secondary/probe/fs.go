package probe

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"folio/internal/domain"
)

// FSProber implements domain.ImageProber by looking paths up in a file
// system. URL paths under prefix map to the root of files.
type FSProber struct {
	files  fs.FS
	prefix string
}

// NewFSProber creates a prober over files. Paths must start with prefix
// (for example "/assets"), which is stripped before the lookup.
func NewFSProber(files fs.FS, prefix string) *FSProber {
	return &FSProber{files: files, prefix: "/" + strings.Trim(prefix, "/")}
}

// NewDirProber is NewFSProber over a directory on disk.
func NewDirProber(dir, prefix string) *FSProber {
	return NewFSProber(os.DirFS(dir), prefix)
}

var _ domain.ImageProber = (*FSProber)(nil)

// Exists reports whether path names a regular file.
func (p *FSProber) Exists(ctx context.Context, urlPath string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	clean := path.Clean("/" + urlPath)
	if clean != p.prefix && !strings.HasPrefix(clean, p.prefix+"/") {
		return false, nil
	}
	name := strings.TrimPrefix(strings.TrimPrefix(clean, p.prefix), "/")
	if name == "" {
		return false, nil
	}
	info, err := fs.Stat(p.files, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", name, err)
	}
	return info.Mode().IsRegular(), nil
}
