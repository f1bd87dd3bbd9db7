package infra

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore writes uploaded dish images to a directory served by the
// image server and returns the public URL of the stored file.
type ImageStore struct {
	dir     string
	baseURL string
}

func NewImageStore(dir, baseURL string) *ImageStore {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &ImageStore{dir: dir, baseURL: baseURL}
}

func (s *ImageStore) Save(originalName string, src io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}

	// Random prefix avoids collisions between same-named uploads.
	name := uuid.NewString() + "_" + filepath.Base(originalName)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return s.baseURL + name, nil
}
