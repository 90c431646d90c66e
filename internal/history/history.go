// Package history keeps a small file of recent search queries under
// ~/.exsearch/. Concurrent CLI invocations serialize through a file lock.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/kinlog/exsearch/internal/config"
)

const lockTimeout = 2 * time.Second

// Record appends query to the history file, dropping an earlier duplicate of
// the same query and trimming the file to at most size entries (oldest
// first on disk).
func Record(query string, size int) error {
	query = strings.TrimSpace(query)
	if query == "" || size <= 0 {
		return nil
	}
	path, err := filePath()
	if err != nil {
		return err
	}
	release, err := acquireLock(path + ".lock")
	if err != nil {
		return err
	}
	defer release()

	entries := readAll(path)
	kept := entries[:0]
	for _, e := range entries {
		if e != query {
			kept = append(kept, e)
		}
	}
	kept = append(kept, query)
	if len(kept) > size {
		kept = kept[len(kept)-size:]
	}
	data := strings.Join(kept, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("cannot write history %s: %w", path, err)
	}
	return nil
}

// Recent returns up to n recorded queries, newest first.
func Recent(n int) ([]string, error) {
	path, err := filePath()
	if err != nil {
		return nil, err
	}
	entries := readAll(path)
	var out []string
	for i := len(entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, entries[i])
	}
	return out, nil
}

// Clear removes the history file.
func Clear() error {
	path, err := filePath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot remove history %s: %w", path, err)
	}
	return nil
}

func filePath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return filepath.Join(dir, "history"), nil
}

func readAll(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// acquireLock obtains the per-user history lock, polling until lockTimeout.
func acquireLock(lockPath string) (func(), error) {
	l := flock.New(lockPath)
	deadline := time.Now().Add(lockTimeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, fmt.Errorf("cannot acquire history lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("history is locked by another exsearch process (lock: %s)", lockPath)
		}
		time.Sleep(50 * time.Millisecond)
	}
}
