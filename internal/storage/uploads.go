package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var slugPattern = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Uploads manages the on-disk tree of candidate submissions:
//
//	<root>/<jobID>/<slugged-email>_<millis>/resume_<uuid>.pdf
//	<root>/<jobID>/<slugged-email>_<millis>/interview_<uuid>.webm
//
// Stored paths are absolute; Open refuses anything that resolves
// outside the root so a corrupted database row cannot be used to read
// arbitrary files.
type Uploads struct {
	root string
}

func New(root string) (*Uploads, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload root: %w", err)
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}

	return &Uploads{root: abs}, nil
}

func (u *Uploads) Root() string {
	return u.root
}

// CandidateDir creates and returns a fresh directory for one submission.
func (u *Uploads) CandidateDir(jobID string, email string) (string, error) {
	folder := fmt.Sprintf("%s_%d", slugPattern.ReplaceAllString(email, "_"), time.Now().UnixMilli())
	dir := filepath.Join(u.root, filepath.Base(jobID), folder)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create candidate dir: %w", err)
	}

	return dir, nil
}

// SaveFile streams src into dir/name and returns the absolute path.
func (u *Uploads) SaveFile(dir string, name string, src io.Reader) (string, error) {
	dest := filepath.Join(dir, name)

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create %q: %w", name, err)
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dest)
		return "", fmt.Errorf("write %q: %w", name, err)
	}

	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close %q: %w", name, err)
	}

	return dest, nil
}

// Open opens a previously stored file after confirming it still lives
// under the upload root.
func (u *Uploads) Open(path string) (*os.File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", path, err)
	}

	if abs != u.root && !strings.HasPrefix(abs, u.root+string(filepath.Separator)) {
		return nil, fmt.Errorf("path %q escapes upload root", path)
	}

	return os.Open(abs)
}
