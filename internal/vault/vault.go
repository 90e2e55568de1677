// Package vault indexes a directory of Markdown notes and provides safe
// read/write access to their contents.
package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Note identifies a single Markdown file in the vault. Path is relative to
// the vault root with forward slashes; Base is the file name without
// directory or extension.
type Note struct {
	Path string
	Base string
}

// Index holds a point-in-time listing of every note in the vault.
// The watcher triggers rescans when files change on disk; the listing is
// never incrementally maintained.
type Index struct {
	root string

	mu    sync.RWMutex
	notes []Note
	byKey map[string]Note
}

// Open creates an index rooted at dir and performs the initial scan.
// The directory must already exist.
func Open(dir string) (*Index, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("vault: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("vault: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault: root is not a directory: %s", abs)
	}
	ix := &Index{root: abs}
	if err := ix.Rescan(); err != nil {
		return nil, err
	}
	return ix, nil
}

// Root returns the absolute vault root directory.
func (ix *Index) Root() string { return ix.root }

// Rescan walks the vault and rebuilds the note listing.
func (ix *Index) Rescan() error {
	var notes []Note
	err := filepath.WalkDir(ix.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			// Skip hidden directories (e.g. .git, .obsidian).
			if p != ix.root && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		rel, relErr := filepath.Rel(ix.root, p)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		notes = append(notes, Note{Path: rel, Base: BaseName(rel)})
		return nil
	})
	if err != nil {
		return fmt.Errorf("vault: scan: %w", err)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].Path < notes[j].Path })

	byKey := make(map[string]Note, len(notes))
	for _, n := range notes {
		byKey[n.Path] = n
	}

	ix.mu.Lock()
	ix.notes = notes
	ix.byKey = byKey
	ix.mu.Unlock()
	return nil
}

// Notes returns a copy of the current note listing, sorted by path.
func (ix *Index) Notes() []Note {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]Note, len(ix.notes))
	copy(out, ix.notes)
	return out
}

// Resolve looks up a note by vault-relative path. The ".md" extension is
// optional.
func (ix *Index) Resolve(p string) (Note, bool) {
	key := NormalizePath(p)
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	n, ok := ix.byKey[key]
	return n, ok
}

// Read returns the content of the note at the given vault-relative path.
func (ix *Index) Read(p string) (string, error) {
	abs, err := ix.safePath(p)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("vault: read %s: %w", p, err)
	}
	return string(data), nil
}

// Write atomically replaces the content of the note at the given path:
// temp file, fsync, rename. Parent directories are created as needed.
func (ix *Index) Write(p string, content string) error {
	abs, err := ix.safePath(p)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("vault: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".inkwell-tmp-*")
	if err != nil {
		return fmt.Errorf("vault: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.WriteString(content); err != nil {
		return fmt.Errorf("vault: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("vault: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("vault: close temp: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("vault: rename: %w", err)
	}
	success = true
	return nil
}

// Update applies transform to the current content of the note at p and
// writes the result back atomically. A missing file is treated as empty, so
// Update can create notes.
func (ix *Index) Update(p string, transform func(current string) string) error {
	current, err := ix.Read(p)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		current = ""
	}
	return ix.Write(p, transform(current))
}

// NormalizePath canonicalizes a vault-relative note path: forward slashes,
// no leading slash, ".md" extension ensured.
func NormalizePath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "/")
	p = path.Clean(p)
	if p == "." {
		return ""
	}
	if !strings.HasSuffix(strings.ToLower(p), ".md") {
		p += ".md"
	}
	return p
}

// safePath resolves a vault-relative path to an absolute one, rejecting
// anything that escapes the root.
func (ix *Index) safePath(rel string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(NormalizePath(rel)))
	if cleaned == "" || cleaned == "." {
		return "", fmt.Errorf("vault: empty path")
	}
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("vault: absolute paths not allowed: %s", rel)
	}
	joined := filepath.Join(ix.root, cleaned)
	if !strings.HasPrefix(joined, ix.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("vault: path escapes root: %s", rel)
	}
	return joined, nil
}

// BaseName returns a note path's file name without directory or extension.
func BaseName(p string) string {
	name := path.Base(p)
	return strings.TrimSuffix(name, path.Ext(name))
}
