// Package types holds the shared contracts of bindle: the filesystem seam,
// the step and plugin interfaces, and the per-build context they operate on.
package types

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FS is the filesystem interface required for bindle operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	RemoveAll(path string) error
}

// OSFS is the operating-system backed FS used outside of tests
type OSFS struct{}

func (OSFS) Stat(name string) (fs.FileInfo, error)       { return os.Stat(name) }
func (OSFS) ReadFile(name string) ([]byte, error)        { return os.ReadFile(name) }
func (OSFS) ReadDir(name string) ([]fs.DirEntry, error)  { return os.ReadDir(name) }
func (OSFS) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }
func (OSFS) RemoveAll(path string) error                 { return os.RemoveAll(path) }
func (OSFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// NewOSFS returns an operating-system backed FS with all paths interpreted
// relative to root. An empty root or "." uses the process working directory.
func NewOSFS(root string) FS {
	if root == "" || root == "." {
		return OSFS{}
	}
	return rootedFS{root: root}
}

// rootedFS prefixes every path with a base directory
type rootedFS struct {
	root string
}

func (r rootedFS) join(name string) string { return filepath.Join(r.root, name) }

func (r rootedFS) Stat(name string) (fs.FileInfo, error)      { return os.Stat(r.join(name)) }
func (r rootedFS) ReadFile(name string) ([]byte, error)       { return os.ReadFile(r.join(name)) }
func (r rootedFS) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(r.join(name)) }
func (r rootedFS) RemoveAll(path string) error                { return os.RemoveAll(r.join(path)) }
func (r rootedFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(r.join(path), perm)
}
func (r rootedFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(r.join(name), data, perm)
}

// Step is one named, configurable processing stage applied to a matched
// file's contents. Instances are created by a StepFactory which validates
// the options, so a constructed Step is always runnable.
type Step interface {
	// Name returns the registered name of this step
	Name() string

	// Description returns a human-readable description of this step
	Description() string

	// Transform applies the step to the given file contents
	Transform(ctx context.Context, in []byte) ([]byte, error)
}

// StepFactory creates a new step instance with the given options.
// It must reject unknown or ill-typed options.
type StepFactory func(options map[string]interface{}) (Step, error)

// Plugin is a global, per-build hook independent of any single file.
// Before runs exactly once before any file is resolved, After exactly once
// after all assets have been emitted.
type Plugin interface {
	// Name returns the registered name of this plugin
	Name() string

	// Description returns a human-readable description of this plugin
	Description() string

	// Before runs before any resolution happens and may mutate the context
	Before(ctx *BuildContext) error

	// After runs once all assets have been emitted
	After(ctx *BuildContext) error
}

// PluginFactory creates a new plugin instance with the given options
type PluginFactory func(options map[string]interface{}) (Plugin, error)

// Asset is one emitted output file
type Asset struct {
	// Source is the input path relative to the source root
	Source string

	// Path is the emitted path relative to the output directory
	Path string

	// Size is the emitted size in bytes
	Size int

	// Steps lists the step names that were applied, in order
	Steps []string
}

// BuildContext carries the per-build state shared between plugins, steps
// and the emitter. It is constructed once per build and discarded after.
type BuildContext struct {
	// Entry is the configured entry file path
	Entry string

	// SourceDir is the directory containing the entry file
	SourceDir string

	// OutputDir is the directory assets are emitted into
	OutputDir string

	// OutputFilename is the emitted name of the entry file
	OutputFilename string

	// Defines holds constants injected by plugins before the build runs,
	// consumed by emitters such as the html shell
	Defines map[string]string

	// Assets collects every emitted output, in emission order
	Assets []Asset

	// FS is the filesystem everything reads from and writes to
	FS FS

	// StartTime is when the build began
	StartTime time.Time
}

// AddAsset records an emitted asset
func (c *BuildContext) AddAsset(a Asset) {
	c.Assets = append(c.Assets, a)
}

// Define records a constant, overwriting any previous value for the name
func (c *BuildContext) Define(name, value string) {
	if c.Defines == nil {
		c.Defines = make(map[string]string)
	}
	c.Defines[name] = value
}
