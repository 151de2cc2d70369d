package draft

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

const lockFileName = ".lock"

// FileBackend stores each key as a file under dir. A flock on dir/.lock
// serialises access across processes; mu does the same inside one process,
// since a flock is held per handle rather than per goroutine.
type FileBackend struct {
	mu   sync.Mutex
	dir  string
	lock *flock.Flock
}

// NewFileBackend creates dir if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create draft dir: %w", err)
	}
	return &FileBackend{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, lockFileName)),
	}, nil
}

// DefaultDir is the per-user draft directory used by the terminal wizard.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "userdash", "drafts"), nil
}

func (b *FileBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if err := b.rlock(ctx); err != nil {
		return nil, err
	}
	defer b.unlock()

	data, err := os.ReadFile(b.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

// Set writes through a temp file and rename so readers never see a partial value.
func (b *FileBackend) Set(ctx context.Context, key string, val []byte) error {
	if err := b.wlock(ctx); err != nil {
		return err
	}
	defer b.unlock()

	tmp, err := os.CreateTemp(b.dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(val); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, b.path(key))
}

func (b *FileBackend) Delete(ctx context.Context, keys ...string) error {
	if err := b.wlock(ctx); err != nil {
		return err
	}
	defer b.unlock()

	var errs []error
	for _, k := range keys {
		if err := os.Remove(b.path(k)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, url.QueryEscape(key))
}

const lockRetry = 10 * time.Millisecond

func (b *FileBackend) rlock(ctx context.Context) error {
	return b.acquire(ctx, b.lock.TryRLockContext)
}

func (b *FileBackend) wlock(ctx context.Context) error {
	return b.acquire(ctx, b.lock.TryLockContext)
}

func (b *FileBackend) acquire(ctx context.Context, try func(context.Context, time.Duration) (bool, error)) error {
	b.mu.Lock()
	ok, err := try(ctx, lockRetry)
	if err == nil && !ok {
		err = ErrLockNotAcquired
	}
	if err != nil {
		b.mu.Unlock()
		return fmt.Errorf("lock draft dir: %w", err)
	}
	return nil
}

func (b *FileBackend) unlock() {
	_ = b.lock.Unlock()
	b.mu.Unlock()
}
