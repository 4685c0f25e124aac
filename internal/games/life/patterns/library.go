package patterns

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-life/internal/registry"
)

// DefaultID is the bundled pattern used when none is requested.
const DefaultID = "glider_106.lif"

// DefaultDir is the directory searched for pattern files named without a path.
const DefaultDir = "Conway_Life"

//go:embed library/*.lif
var library embed.FS

func init() {
	entries, err := fs.ReadDir(library, "library")
	if err != nil {
		panic(fmt.Sprintf("patterns: reading bundled library: %v", err))
	}
	for _, e := range entries {
		id := e.Name()
		data, err := library.ReadFile(path.Join("library", id))
		if err != nil {
			panic(fmt.Sprintf("patterns: reading %s: %v", id, err))
		}
		title := id
		if p, err := Parse(bytes.NewReader(data)); err == nil && p.Name != "" {
			title = p.Name
		}
		registry.Register(id, title, func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		})
	}
}

// LoadFile parses the pattern file at path.
// A missing file is reported as ErrNotFound.
func LoadFile(path string) (*Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening pattern %s: %w", path, err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing pattern %s: %w", path, err)
	}
	return p, nil
}

// Open resolves a pattern reference. ref is tried as a file path, then as a
// file name under dir, then as a bundled pattern ID (with or without the
// ".lif" suffix).
func Open(ref, dir string) (*Pattern, error) {
	if ref == "" {
		ref = DefaultID
	}

	if p, err := LoadFile(ref); !errors.Is(err, ErrNotFound) {
		return p, err
	}
	if dir != "" && !filepath.IsAbs(ref) {
		if p, err := LoadFile(filepath.Join(dir, ref)); !errors.Is(err, ErrNotFound) {
			return p, err
		}
	}

	for _, id := range []string{ref, ref + ".lif"} {
		if !registry.Exists(id) {
			continue
		}
		rc, err := registry.Open(id)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		p, err := Parse(rc)
		if err != nil {
			return nil, fmt.Errorf("parsing bundled pattern %s: %w", id, err)
		}
		return p, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
}

// Entry is a pattern found on disk by a Loader.
type Entry struct {
	ID       string
	Pattern  *Pattern
	FilePath string
}

// Loader handles loading pattern files from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new pattern loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all .lif files under Root.
// Files that fail to parse are skipped. Entries are sorted by ID.
func (l *Loader) LoadAll() ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(l.Root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.ToLower(filepath.Ext(p)) != ".lif" {
			return nil
		}

		pat, err := LoadFile(p)
		if err != nil {
			return nil
		}

		rel, err := filepath.Rel(l.Root, p)
		if err != nil {
			rel = filepath.Base(p)
		}
		entries = append(entries, Entry{ID: filepath.ToSlash(rel), Pattern: pat, FilePath: p})
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: directory %s", ErrNotFound, l.Root)
		}
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})

	return entries, nil
}
