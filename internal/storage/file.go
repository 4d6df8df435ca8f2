package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File keeps the whole store as a JSON snapshot on disk, loaded at open
// and rewritten on every mutation. Suited to the single-writer usage of
// this system, not to concurrent processes.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]json.RawMessage
}

func OpenFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	f := &File{
		path:   path,
		values: make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &f.values); err != nil {
			return nil, fmt.Errorf("decoding snapshot: %w", err)
		}
	}

	return f, nil
}

func (f *File) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.values[key]
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(v))
	copy(out, v)

	return out, true, nil
}

func (f *File) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !json.Valid(value) {
		return fmt.Errorf("value for %q is not valid JSON", key)
	}

	v := make(json.RawMessage, len(value))
	copy(v, value)
	f.values[key] = v

	return f.flushLocked()
}

func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.values, key)

	return f.flushLocked()
}

func (f *File) Close() error { return nil }

// flushLocked writes the snapshot through a temp file and rename so a
// crash mid-write never truncates the store.
func (f *File) flushLocked() error {
	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}

	return nil
}
