package document

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"
)

// LoadFile reads a YAML document from path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}
	return Load(data)
}

// SaveFile writes the document to path atomically: the YAML is written to a
// temp file first and renamed into place, so readers never observe a partial
// document.
func (d *Document) SaveFile(path string) error {
	data, err := d.Dump()
	if err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}

// FileLock guards cross-process read-modify-write cycles on a document file
// with an advisory lock held on a sibling lock file.
type FileLock struct {
	flock *flock.Flock
}

// NewFileLock creates a lock for the document at path.
func NewFileLock(path string) *FileLock {
	return &FileLock{flock: flock.New(path + ".lock")}
}

// Lock acquires the lock, retrying until ctx is done.
func (l *FileLock) Lock(ctx context.Context) error {
	locked, err := l.flock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire document lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("document lock not acquired")
	}
	return nil
}

// Unlock releases the lock.
func (l *FileLock) Unlock() error {
	return l.flock.Unlock()
}
