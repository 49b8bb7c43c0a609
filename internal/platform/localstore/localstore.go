// Package localstore is a small persistent key/value store for client side markers,
// the desktop counterpart of browser local storage
package localstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	perr "folio/internal/platform/errors"
	"folio/internal/platform/logger"
)

// Reader is the read side the API client depends on
type Reader interface {
	Get(key string) (string, bool)
}

// Map is an in-memory Reader
type Map map[string]string

// Get implements Reader
func (m Map) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// File is a JSON object on disk holding string values
// Safe for concurrent use; changes are only persisted by Save
type File struct {
	path string

	mu   sync.RWMutex
	data map[string]string
}

// DefaultPath returns <user config dir>/folio/local.json
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "folio", "local.json")
}

// Open reads the store at path. A missing file yields an empty store
func Open(path string) (*File, error) {
	f := &File{path: path, data: map[string]string{}}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Named("localstore").Debug().Str("path", path).Msg("local store missing, starting empty")
		return f, nil
	}
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "read local store %s", path)
	}
	if len(b) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(b, &f.data); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "decode local store %s", path)
	}
	if f.data == nil {
		f.data = map[string]string{}
	}
	return f, nil
}

// Path returns the backing file path
func (f *File) Path() string { return f.path }

// Get implements Reader
func (f *File) Get(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.data[key]
	return v, ok
}

// Set stores value under key
func (f *File) Set(key, value string) {
	f.mu.Lock()
	f.data[key] = value
	f.mu.Unlock()
}

// Delete removes key
func (f *File) Delete(key string) {
	f.mu.Lock()
	delete(f.data, key)
	f.mu.Unlock()
}

// Keys returns every key currently held
func (f *File) Keys() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[string]string, len(f.data))
	for k, v := range f.data {
		out[k] = v
	}
	return out
}

// Save writes the store back to disk through a temp file and rename
func (f *File) Save() error {
	f.mu.RLock()
	b, err := json.MarshalIndent(f.data, "", "  ")
	f.mu.RUnlock()
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "encode local store")
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "create local store dir")
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".local-*.json")
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "create temp file")
	}
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "write local store")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "close local store")
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		_ = os.Remove(tmp.Name())
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "replace local store")
	}
	return nil
}
