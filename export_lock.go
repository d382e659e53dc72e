package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// exportLock keeps two generator processes from writing the same icon set
// at once.
type exportLock struct {
	lock *flock.Flock
}

func (l *exportLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if !l.lock.Locked() {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("unlock export lock: %w", err)
	}
	return nil
}

func acquireExportLock(lockPath string) (*exportLock, bool, error) {
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, false, fmt.Errorf("create lock directory: %w", err)
	}
	f := flock.New(lockPath)
	locked, err := f.TryLock()
	if err != nil {
		return nil, false, fmt.Errorf("acquire export lock: %w", err)
	}
	if !locked {
		return nil, true, nil
	}
	return &exportLock{lock: f}, false, nil
}

// exportLockPath keys the lock by the absolute output directory so exports
// into different projects never contend. The user cache directory is
// preferred; the system temp directory covers environments without HOME.
func exportLockPath(outputDir string) string {
	dir, err := filepath.Abs(outputDir)
	if err != nil {
		dir = filepath.Clean(outputDir)
	}
	sum := sha256.Sum256([]byte(dir))
	name := "icongen-" + hex.EncodeToString(sum[:8]) + ".lock"

	root, err := os.UserCacheDir()
	if err != nil || root == "" {
		return filepath.Join(os.TempDir(), "biasai", name)
	}
	return filepath.Join(root, "biasai", name)
}
