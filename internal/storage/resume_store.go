package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ResumeStore writes uploaded resumes to a local directory. Files get a
// generated name (timestamp + random suffix + original extension) so
// concurrent uploads can't collide and originals can't overwrite each other.
type ResumeStore struct {
	dir string
}

func NewResumeStore(dir string) (*ResumeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ResumeStore{dir: dir}, nil
}

// Dir returns the directory the store writes into, for static serving.
func (s *ResumeStore) Dir() string { return s.dir }

// Save persists the uploaded file and returns its path relative to the
// server root, e.g. "uploads/resume-1712345-ab12cd34.pdf".
func (s *ResumeStore) Save(file *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(file.Filename)
	name := fmt.Sprintf("resume-%d-%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dstPath := filepath.Join(s.dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write %s: %w", dstPath, err)
	}
	return dstPath, nil
}
