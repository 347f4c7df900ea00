package testutil

import (
	"testing"
)

// ProjectConfig describes the files of a test project
type ProjectConfig struct {
	// Files maps relative paths to contents
	Files map[string]string

	// Dirs lists extra empty directories to create
	Dirs []string
}

// TestEnvironment wraps a memory filesystem populated with a project layout
type TestEnvironment struct {
	FS *MemoryFS
	t  *testing.T
}

// NewTestEnvironment creates an empty in-memory test environment
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	return &TestEnvironment{FS: NewMemoryFS(), t: t}
}

// SetupProject writes the given project layout into the environment
func (e *TestEnvironment) SetupProject(cfg ProjectConfig) {
	e.t.Helper()
	for p, content := range cfg.Files {
		if err := e.FS.WriteFile(p, []byte(content), 0644); err != nil {
			e.t.Fatalf("setup file %s: %v", p, err)
		}
	}
	for _, d := range cfg.Dirs {
		if err := e.FS.MkdirAll(d, 0755); err != nil {
			e.t.Fatalf("setup dir %s: %v", d, err)
		}
	}
}
