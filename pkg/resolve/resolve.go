// Package resolve turns import specifiers into file paths using the
// configured alias map and extension list.
package resolve

import (
	"path"
	"sort"
	"strings"

	"github.com/bindle-dev/bindle/pkg/errors"
	"github.com/bindle-dev/bindle/pkg/logging"
	"github.com/bindle-dev/bindle/pkg/types"
	"github.com/rs/zerolog"
)

// Resolver resolves import specifiers against a filesystem. Given the same
// filesystem state it is a pure function of the configured aliases and
// extensions.
type Resolver struct {
	extensions []string
	aliases    map[string]string
	fs         types.FS
	logger     zerolog.Logger
}

// New creates a resolver with the given extension candidates and alias map
func New(extensions []string, aliases map[string]string, fs types.FS) *Resolver {
	return &Resolver{
		extensions: extensions,
		aliases:    aliases,
		fs:         fs,
		logger:     logging.GetLogger("resolve"),
	}
}

// Resolve maps a specifier to an existing file path. Relative specifiers are
// resolved against fromDir, alias prefixes are expanded first (longest alias
// wins), then the literal path and each configured extension are tried in
// order.
func (r *Resolver) Resolve(specifier, fromDir string) (string, error) {
	if specifier == "" {
		return "", errors.New(errors.ErrInvalidInput, "cannot resolve an empty specifier")
	}

	expanded := r.expandAlias(specifier)

	var base string
	if strings.HasPrefix(expanded, "./") || strings.HasPrefix(expanded, "../") {
		base = path.Join(fromDir, expanded)
	} else {
		base = expanded
	}

	for _, candidate := range r.candidates(base) {
		if info, err := r.fs.Stat(candidate); err == nil && !info.IsDir() {
			r.logger.Trace().
				Str("specifier", specifier).
				Str("resolved", candidate).
				Msg("specifier resolved")
			return candidate, nil
		}
	}

	return "", errors.Newf(errors.ErrNotFound,
		"cannot resolve %q from %q", specifier, fromDir).
		WithDetail("specifier", specifier)
}

// expandAlias rewrites the longest matching alias prefix, if any
func (r *Resolver) expandAlias(specifier string) string {
	prefixes := make([]string, 0, len(r.aliases))
	for prefix := range r.aliases {
		prefixes = append(prefixes, prefix)
	}
	sort.Slice(prefixes, func(i, j int) bool { return len(prefixes[i]) > len(prefixes[j]) })

	for _, prefix := range prefixes {
		if specifier == prefix {
			return r.aliases[prefix]
		}
		if strings.HasPrefix(specifier, prefix+"/") {
			return r.aliases[prefix] + strings.TrimPrefix(specifier, prefix)
		}
	}
	return specifier
}

// candidates returns the paths to try for a base path: the literal path
// first, then one per configured extension
func (r *Resolver) candidates(base string) []string {
	out := make([]string, 0, len(r.extensions)+1)
	out = append(out, base)
	if path.Ext(base) == "" {
		for _, ext := range r.extensions {
			out = append(out, base+ext)
		}
	}
	return out
}
