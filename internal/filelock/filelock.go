// Package filelock writes report files safely when several tagsearch runs
// target the same --output path, e.g. from editor hooks or cron jobs.
package filelock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

// ErrLockTimeout is returned when LockWithTimeout gives up.
var ErrLockTimeout = errors.New("timed out waiting for lock")

// retryInterval is the pause between TryLock attempts in LockWithTimeout.
const retryInterval = 10 * time.Millisecond

// LockMetrics describes the most recent acquisition attempt.
type LockMetrics struct {
	Attempts int
	Waited   time.Duration
	TimedOut bool
}

// Monitor receives the metrics of every acquisition attempt.
type Monitor func(path string, metrics LockMetrics)

// FileLock wraps a flock file lock for coordinating access to files.
type FileLock struct {
	flock *flock.Flock
	path  string

	mu      sync.Mutex
	monitor Monitor
}

// NewFileLock creates a new file lock for the given path.
// The lock file will be created at the specified path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// SetMonitor installs fn to be called after each acquisition. nil removes it.
func (fl *FileLock) SetMonitor(fn Monitor) {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	fl.monitor = fn
}

func (fl *FileLock) record(m LockMetrics) {
	fl.mu.Lock()
	monitor := fl.monitor
	fl.mu.Unlock()

	if monitor != nil {
		monitor(fl.path, m)
	}
}

// Lock acquires an exclusive lock on the file, blocking until the lock is available.
// Returns an error if the lock cannot be acquired.
func (fl *FileLock) Lock() error {
	start := time.Now()
	err := fl.flock.Lock()
	fl.record(LockMetrics{Attempts: 1, Waited: time.Since(start)})
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", fl.path, err)
	}
	return nil
}

// LockWithTimeout polls for the lock until it is acquired or timeout elapses,
// in which case the error wraps ErrLockTimeout.
func (fl *FileLock) LockWithTimeout(timeout time.Duration) error {
	start := time.Now()
	deadline := start.Add(timeout)
	attempts := 0

	for {
		attempts++
		acquired, err := fl.TryLock()
		if err != nil {
			fl.record(LockMetrics{Attempts: attempts, Waited: time.Since(start)})
			return err
		}
		if acquired {
			fl.record(LockMetrics{Attempts: attempts, Waited: time.Since(start)})
			return nil
		}
		if !time.Now().Before(deadline) {
			fl.record(LockMetrics{Attempts: attempts, Waited: time.Since(start), TimedOut: true})
			return fmt.Errorf("lock %s after %v: %w", fl.path, timeout, ErrLockTimeout)
		}
		time.Sleep(min(retryInterval, time.Until(deadline)))
	}
}

// TryLock attempts to acquire an exclusive lock on the file without blocking.
// Returns true if the lock was acquired, false if the lock is held by another process.
// Returns an error if the lock operation fails.
func (fl *FileLock) TryLock() (bool, error) {
	acquired, err := fl.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", fl.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock.
// Returns an error if the unlock operation fails.
func (fl *FileLock) Unlock() error {
	err := fl.flock.Unlock()
	if err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

// AtomicWrite writes data to a file atomically using a temp file and rename strategy.
// Readers never see a partial report, even if the write is interrupted.
//
// If the operation fails at any point, the original file (if it exists) remains unchanged.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// Same directory as the target, so the rename stays on one filesystem
	tempFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	// Renamed; nothing left to clean up
	tempFile = nil

	return nil
}

// WriteOptions tunes WriteLocked.
type WriteOptions struct {
	// Timeout bounds the wait for the lock (0 = wait forever)
	Timeout time.Duration
	// Monitor, if set, observes the lock acquisition
	Monitor Monitor
}

// WriteLocked acquires "<path>.lock", writes data atomically to path, then
// releases the lock. Missing parent directories are created first.
//
// The lock file is left in place: removing it after Unlock would let a waiter
// hold the unlinked inode while a newer run locks a fresh file.
// Example: writing to "tags.txt" uses lock file "tags.txt.lock"
func WriteLocked(path string, data []byte, opts WriteOptions) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	lock := NewFileLock(path + ".lock")
	lock.SetMonitor(opts.Monitor)

	var err error
	if opts.Timeout > 0 {
		err = lock.LockWithTimeout(opts.Timeout)
	} else {
		err = lock.Lock()
	}
	if err != nil {
		return err
	}
	defer lock.Unlock()

	return AtomicWrite(path, data)
}
