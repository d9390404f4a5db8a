package assets

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Sheets dropped next to this file are compiled into the binary.
//
//go:embed *
var assetsFS embed.FS

var ErrNotFound = errors.New("assets: not found")

// Source loads sprite sheets from the embedded assets first and then from
// each root directory on disk.
type Source struct {
	fsys  fs.FS
	roots []string
}

// NewSource returns a Source searching roots after the embedded assets. With
// no roots the working directory is used.
func NewSource(roots ...string) *Source {
	if len(roots) == 0 {
		roots = []string{"."}
	}
	return &Source{fsys: assetsFS, roots: roots}
}

// NewFSSource loads only from fsys. Useful for tests and alternative packs.
func NewFSSource(fsys fs.FS) *Source {
	return &Source{fsys: fsys}
}

// LoadImage reads and decodes the image at path.
func (s *Source) LoadImage(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := s.LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return img, nil
}

// LoadFile returns the raw bytes of path.
func (s *Source) LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, fmt.Errorf("%w: empty path", ErrNotFound)
	}
	if s.fsys != nil {
		if b, err := fs.ReadFile(s.fsys, clean); err == nil {
			return b, nil
		}
	}
	for _, root := range s.roots {
		p := filepath.FromSlash(path)
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, p)
		}
		if b, err := os.ReadFile(p); err == nil {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(strings.ToLower(s), "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := strings.TrimPrefix(filepath.ToSlash(filepath.Clean(path)), "./")
	if len(s) > len("assets/") && strings.EqualFold(s[:len("assets/")], "assets/") {
		return s[len("assets/"):]
	}
	return s
}
