// Package build drives one build invocation: plugins run their before hooks,
// every source file is resolved to its step pipeline and emitted, then the
// after hooks run. One invocation, one logical thread, abort on first error.
package build

import (
	"context"
	"path"
	"strings"
	"time"

	"github.com/bindle-dev/bindle/pkg/config"
	"github.com/bindle-dev/bindle/pkg/errors"
	"github.com/bindle-dev/bindle/pkg/logging"
	"github.com/bindle-dev/bindle/pkg/plugins"
	"github.com/bindle-dev/bindle/pkg/registry"
	"github.com/bindle-dev/bindle/pkg/resolve"
	"github.com/bindle-dev/bindle/pkg/rules"
	"github.com/bindle-dev/bindle/pkg/types"

	_ "github.com/bindle-dev/bindle/pkg/steps"
)

// Result summarizes a completed build
type Result struct {
	// Assets are the emitted outputs, in emission order
	Assets []types.Asset

	// Entry is the resolved entry file path
	Entry string

	// Duration is the wall-clock build time
	Duration time.Duration
}

// Run executes one build over the given configuration and filesystem
func Run(ctx context.Context, cfg *config.Config, fs types.FS) (*Result, error) {
	logger := logging.GetLogger("build")
	done := logging.LogOperationStart(logger, "build")
	defer done()

	start := time.Now()

	refs := make([]plugins.Ref, 0, len(cfg.Plugins))
	for _, p := range cfg.Plugins {
		refs = append(refs, plugins.Ref{Name: p.Name, Options: p.Options})
	}
	pluginSet, err := plugins.NewSet(refs)
	if err != nil {
		return nil, err
	}

	// Resolve the entry through the configured aliases and extensions
	specResolver := resolve.New(cfg.Resolve.Extensions, cfg.Resolve.Alias, fs)
	entry, err := specResolver.Resolve(cfg.Entry, ".")
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEntryNotFound,
			"entry %q does not exist", cfg.Entry)
	}

	bctx := &types.BuildContext{
		Entry:          entry,
		SourceDir:      path.Dir(entry),
		OutputDir:      cfg.Output.Path,
		OutputFilename: cfg.Output.Filename,
		FS:             fs,
		StartTime:      start,
	}

	if err := pluginSet.Before(bctx); err != nil {
		return nil, err
	}

	files, err := collectFiles(fs, bctx.SourceDir)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("files", len(files)).Str("dir", bctx.SourceDir).Msg("source files collected")

	ruleResolver := rules.NewResolver(cfg.Module.Rules)
	for _, rel := range files {
		if err := emitFile(ctx, bctx, ruleResolver, rel); err != nil {
			return nil, err
		}
	}

	if err := pluginSet.After(bctx); err != nil {
		return nil, err
	}

	logger.Info().
		Int("assets", len(bctx.Assets)).
		Dur("duration", time.Since(start)).
		Msg("build complete")

	return &Result{
		Assets:   bctx.Assets,
		Entry:    entry,
		Duration: time.Since(start),
	}, nil
}

// emitFile resolves one source file to its pipeline, runs it, and writes the
// result into the output directory
func emitFile(ctx context.Context, bctx *types.BuildContext, resolver *rules.Resolver, rel string) error {
	logger := logging.GetLogger("build.emit")

	source := path.Join(bctx.SourceDir, rel)
	plan, err := resolver.Resolve(rel)
	if err != nil {
		return err
	}

	content, err := bctx.FS.ReadFile(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "reading %s", source)
	}

	stepNames := make([]string, 0, len(plan))
	for _, resolved := range plan {
		step, err := registry.NewStep(resolved.Name, resolved.Options)
		if err != nil {
			return err
		}

		content, err = step.Transform(ctx, content)
		if err != nil {
			return err
		}
		stepNames = append(stepNames, resolved.Name)
	}

	outRel := rel
	if source == bctx.Entry {
		outRel = bctx.OutputFilename
	}
	target := path.Join(bctx.OutputDir, outRel)

	if dir := path.Dir(target); dir != "." {
		if err := bctx.FS.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrOutputWrite, "creating %s", dir)
		}
	}
	if err := bctx.FS.WriteFile(target, content, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite, "writing %s", target)
	}

	logger.Debug().
		Str("source", source).
		Str("target", target).
		Strs("steps", stepNames).
		Msg("asset emitted")

	bctx.AddAsset(types.Asset{
		Source: rel,
		Path:   outRel,
		Size:   len(content),
		Steps:  stepNames,
	})
	return nil
}

// collectFiles walks dir and returns the relative paths of all regular
// files, in a stable order. Dot-prefixed entries are skipped.
func collectFiles(fs types.FS, dir string) ([]string, error) {
	var out []string

	var walk func(sub string) error
	walk = func(sub string) error {
		entries, err := fs.ReadDir(path.Join(dir, sub))
		if err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "reading directory %s", path.Join(dir, sub))
		}

		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			rel := path.Join(sub, entry.Name())
			if entry.IsDir() {
				if err := walk(rel); err != nil {
					return err
				}
				continue
			}
			out = append(out, rel)
		}
		return nil
	}

	if err := walk(""); err != nil {
		return nil, err
	}
	return out, nil
}
