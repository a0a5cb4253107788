// Package store persists structured documents as YAML files under a root
// directory. Every write replaces the whole file through a rename, and a
// transaction stages several documents so they land together.
package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

var (
	// ErrExists is returned by Create when the target document already exists.
	ErrExists = errors.New("document already exists")
	// ErrMalformed wraps YAML decode failures.
	ErrMalformed = errors.New("malformed yaml document")
)

// Store reads and writes YAML documents addressed by slash-separated paths
// relative to its root. Writes from one process are serialised.
type Store struct {
	root string
	mu   sync.Mutex
}

// New returns a Store rooted at dir. The directory is created lazily on first write.
func New(dir string) *Store {
	return &Store{root: filepath.Clean(dir)}
}

func (s *Store) Root() string { return s.root }

// Path returns the filesystem path of rel.
func (s *Store) Path(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

func (s *Store) Exists(rel string) bool {
	info, err := os.Stat(s.Path(rel))
	return err == nil && !info.IsDir()
}

// Read decodes the document at rel into out. A missing file yields an error
// wrapping fs.ErrNotExist; an empty file leaves out untouched.
func (s *Store) Read(rel string, out any) error {
	b, err := os.ReadFile(s.Path(rel))
	if err != nil {
		return fmt.Errorf("read %s: %w", rel, err)
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, rel, err)
	}
	return nil
}

func (s *Store) ModTime(rel string) (time.Time, error) {
	info, err := os.Stat(s.Path(rel))
	if err != nil {
		return time.Time{}, fmt.Errorf("stat %s: %w", rel, err)
	}
	return info.ModTime(), nil
}

// Glob returns the relative paths matching a doublestar pattern, sorted.
// A missing root yields no matches.
func (s *Store) Glob(pattern string) ([]string, error) {
	if _, err := os.Stat(s.root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	matches, err := doublestar.Glob(os.DirFS(s.root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Write replaces the document at rel with v.
func (s *Store) Write(ctx context.Context, rel string, v any) error {
	return s.Update(ctx, func(tx *Tx) error {
		return tx.Put(rel, v)
	})
}

// Create writes v to rel, failing with ErrExists if the document is present.
func (s *Store) Create(ctx context.Context, rel string, v any) error {
	return s.Update(ctx, func(tx *Tx) error {
		if tx.Exists(rel) {
			return fmt.Errorf("%s: %w", rel, ErrExists)
		}
		return tx.Put(rel, v)
	})
}

// Update runs fn while holding the store's write lock and commits every
// document staged with Tx.Put once fn returns nil. Each document is written
// to a temporary sibling first; targets are only renamed into place after all
// temporaries were written, so a failure in fn or while staging leaves every
// target untouched.
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &Tx{s: s, staged: map[string][]byte{}}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return tx.commit()
}

// Tx is a write transaction over a Store. Reads observe staged documents.
type Tx struct {
	s      *Store
	order  []string
	staged map[string][]byte
}

func (tx *Tx) Exists(rel string) bool {
	if _, ok := tx.staged[rel]; ok {
		return true
	}
	return tx.s.Exists(rel)
}

func (tx *Tx) Read(rel string, out any) error {
	if b, ok := tx.staged[rel]; ok {
		if err := yaml.Unmarshal(b, out); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformed, rel, err)
		}
		return nil
	}
	return tx.s.Read(rel, out)
}

// Put encodes v and stages it for rel.
func (tx *Tx) Put(rel string, v any) error {
	b, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", rel, err)
	}
	if _, ok := tx.staged[rel]; !ok {
		tx.order = append(tx.order, rel)
	}
	tx.staged[rel] = b
	return nil
}

func (tx *Tx) commit() error {
	temps := make([]string, 0, len(tx.order))
	cleanup := func() {
		for _, t := range temps {
			_ = os.Remove(t)
		}
	}

	for _, rel := range tx.order {
		tmp, err := writeTemp(tx.s.Path(rel), tx.staged[rel])
		if err != nil {
			cleanup()
			return fmt.Errorf("stage %s: %w", rel, err)
		}
		temps = append(temps, tmp)
	}

	for i, rel := range tx.order {
		if err := os.Rename(temps[i], tx.s.Path(rel)); err != nil {
			temps = temps[i:]
			cleanup()
			return fmt.Errorf("commit %s: %w", rel, err)
		}
	}
	return nil
}

func writeTemp(target string, data []byte) (string, error) {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	if err := os.Chmod(f.Name(), 0o644); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// Marshal encodes v as YAML with two-space indentation.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
