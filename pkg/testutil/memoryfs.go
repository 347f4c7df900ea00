// Package testutil provides the in-memory filesystem environment used by
// resolver and build tests.
package testutil

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// MemoryFS is an in-memory types.FS implementation for tests
type MemoryFS struct {
	files map[string][]byte
	dirs  map[string]bool
}

// NewMemoryFS creates an empty in-memory filesystem
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files: make(map[string][]byte),
		dirs:  map[string]bool{".": true},
	}
}

func normalize(name string) string {
	name = path.Clean(strings.TrimPrefix(name, "/"))
	if name == "" {
		return "."
	}
	return name
}

// Stat implements types.FS
func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	name = normalize(name)
	if data, ok := m.files[name]; ok {
		return &memFileInfo{name: path.Base(name), size: int64(len(data))}, nil
	}
	if m.dirs[name] {
		return &memFileInfo{name: path.Base(name), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

// ReadFile implements types.FS
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	name = normalize(name)
	data, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// WriteFile implements types.FS; parent directories are created implicitly
func (m *MemoryFS) WriteFile(name string, data []byte, _ fs.FileMode) error {
	name = normalize(name)
	m.mkdirs(path.Dir(name))
	stored := make([]byte, len(data))
	copy(stored, data)
	m.files[name] = stored
	return nil
}

// ReadDir implements types.FS
func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	name = normalize(name)
	if !m.dirs[name] {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}

	seen := make(map[string]bool)
	var entries []fs.DirEntry
	add := func(child string, dir bool, size int64) {
		if seen[child] {
			return
		}
		seen[child] = true
		entries = append(entries, &memDirEntry{memFileInfo{name: child, dir: dir, size: size}})
	}

	for p, data := range m.files {
		if path.Dir(p) == name {
			add(path.Base(p), false, int64(len(data)))
		}
	}
	for d := range m.dirs {
		if d != "." && path.Dir(d) == name {
			add(path.Base(d), true, 0)
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// MkdirAll implements types.FS
func (m *MemoryFS) MkdirAll(dir string, _ fs.FileMode) error {
	m.mkdirs(normalize(dir))
	return nil
}

// RemoveAll implements types.FS
func (m *MemoryFS) RemoveAll(target string) error {
	target = normalize(target)
	for p := range m.files {
		if p == target || strings.HasPrefix(p, target+"/") {
			delete(m.files, p)
		}
	}
	for d := range m.dirs {
		if d == target || strings.HasPrefix(d, target+"/") {
			delete(m.dirs, d)
		}
	}
	return nil
}

// Exists reports whether a file or directory exists
func (m *MemoryFS) Exists(name string) bool {
	_, err := m.Stat(name)
	return err == nil
}

func (m *MemoryFS) mkdirs(dir string) {
	for dir != "." && dir != "/" {
		m.dirs[dir] = true
		dir = path.Dir(dir)
	}
	m.dirs["."] = true
}

type memFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i *memFileInfo) Name() string       { return i.name }
func (i *memFileInfo) Size() int64        { return i.size }
func (i *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (i *memFileInfo) ModTime() time.Time { return time.Time{} }
func (i *memFileInfo) IsDir() bool        { return i.dir }
func (i *memFileInfo) Sys() interface{}   { return nil }

type memDirEntry struct {
	info memFileInfo
}

func (e *memDirEntry) Name() string               { return e.info.name }
func (e *memDirEntry) IsDir() bool                { return e.info.dir }
func (e *memDirEntry) Type() fs.FileMode          { return e.info.Mode().Type() }
func (e *memDirEntry) Info() (fs.FileInfo, error) { return &e.info, nil }
