package shelfstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"readtrack/internal/bookshelf"
	"readtrack/internal/faults"
	"readtrack/internal/fileutil"
)

const (
	defaultLockTimeout = 5 * time.Second
	lockRetryDelay     = 50 * time.Millisecond
	backupSuffix       = ".bak"
	lockSuffix         = ".lock"
)

// Option customizes a Store.
type Option func(*Store)

// WithBackup keeps a copy of the previous document at <path>.bak on every save.
func WithBackup(enabled bool) Option {
	return func(s *Store) {
		s.backup = enabled
	}
}

// WithLockTimeout bounds how long Load and Save wait for the file lock.
func WithLockTimeout(timeout time.Duration) Option {
	return func(s *Store) {
		if timeout > 0 {
			s.lockTimeout = timeout
		}
	}
}

// Store persists one bookshelf document on disk.
type Store struct {
	path        string
	backup      bool
	lockTimeout time.Duration
	lock        *flock.Flock
}

// New returns a store for the document at path. The file does not need to
// exist yet.
func New(path string, opts ...Option) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, faults.Invalid("open shelf store", "shelf file path is empty")
	}
	s := &Store{
		path:        path,
		lockTimeout: defaultLockTimeout,
		lock:        flock.New(path + lockSuffix),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the document location.
func (s *Store) Path() string {
	return s.path
}

// BackupPath returns where the previous document is kept when backups are on.
func (s *Store) BackupPath() string {
	return s.path + backupSuffix
}

// Exists reports whether the document is present.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// Load reads the whole document and rebuilds the bookshelf. A missing file is
// an I/O failure wrapping fs.ErrNotExist.
func (s *Store) Load(ctx context.Context, events bookshelf.EventRecorder) (*bookshelf.Bookshelf, error) {
	if err := s.acquire(ctx, false); err != nil {
		return nil, err
	}
	defer s.release()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, faults.Wrap(faults.ErrIOFailure, "load shelf", s.path, err)
	}
	return Unmarshal(data, events)
}

// Save replaces the document with shelf. Encoding happens before the file is
// touched, so an encoding failure leaves the previous document intact.
func (s *Store) Save(ctx context.Context, shelf *bookshelf.Bookshelf) error {
	data, err := Marshal(shelf)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return faults.Wrap(faults.ErrIOFailure, "save shelf", fmt.Sprintf("create directory %q", dir), err)
		}
	}

	if err := s.acquire(ctx, true); err != nil {
		return err
	}
	defer s.release()

	if s.backup {
		if err := fileutil.CopyFile(s.path, s.BackupPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return faults.Wrap(faults.ErrIOFailure, "save shelf", "backup previous document", err)
		}
	}
	if err := fileutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return faults.Wrap(faults.ErrIOFailure, "save shelf", s.path, err)
	}
	return nil
}

func (s *Store) acquire(ctx context.Context, exclusive bool) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			return faults.Wrap(faults.ErrIOFailure, "lock shelf", s.path, err)
		}
	}
	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	var (
		ok  bool
		err error
	)
	if exclusive {
		ok, err = s.lock.TryLockContext(lockCtx, lockRetryDelay)
	} else {
		ok, err = s.lock.TryRLockContext(lockCtx, lockRetryDelay)
	}
	if err != nil {
		return faults.Wrap(faults.ErrIOFailure, "lock shelf", s.path, err)
	}
	if !ok {
		return faults.Wrap(faults.ErrIOFailure, "lock shelf", fmt.Sprintf("%s is locked by another process", s.path), nil)
	}
	return nil
}

func (s *Store) release() {
	_ = s.lock.Unlock()
}
