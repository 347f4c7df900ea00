// Package html implements the html plugin: after the build, an HTML shell
// referencing the emitted bundle is written into the output directory.
package html

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/bindle-dev/bindle/pkg/errors"
	"github.com/bindle-dev/bindle/pkg/logging"
	"github.com/bindle-dev/bindle/pkg/options"
	"github.com/bindle-dev/bindle/pkg/registry"
	"github.com/bindle-dev/bindle/pkg/types"
)

// PluginName is the name used to reference this plugin in config
const PluginName = "html"

// DefaultTitle is used when the options name no other
const DefaultTitle = "bindle app"

// ShellFilename is the name of the emitted HTML shell
const ShellFilename = "index.html"

// Plugin emits an HTML shell referencing the bundle
type Plugin struct {
	title string
}

// New creates an html plugin from its options. `title` overrides the
// document title; when absent, a `title` define wins over the default.
func New(opts map[string]interface{}) (*Plugin, error) {
	if err := options.RejectUnknown(opts, "title"); err != nil {
		return nil, err
	}

	title, _, err := options.String(opts, "title")
	if err != nil {
		return nil, err
	}

	return &Plugin{title: title}, nil
}

// Name returns the registered name of this plugin
func (p *Plugin) Name() string {
	return PluginName
}

// Description returns a human-readable description of this plugin
func (p *Plugin) Description() string {
	return "Emits an HTML shell referencing the bundle"
}

// Before does nothing; the shell can only be written once the bundle exists
func (p *Plugin) Before(*types.BuildContext) error {
	return nil
}

// After writes index.html next to the emitted assets. Constants placed in
// the build context by the define plugin are materialized as globals in an
// inline script, so the bundled code can read them at runtime.
func (p *Plugin) After(ctx *types.BuildContext) error {
	logger := logging.GetLogger("plugins.html")

	title := p.title
	if title == "" {
		title = ctx.Defines["title"]
	}
	if title == "" {
		title = DefaultTitle
	}

	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalEndTags = true

	root := doc.CreateElement("html")
	root.CreateAttr("lang", "en")

	head := root.CreateElement("head")
	meta := head.CreateElement("meta")
	meta.CreateAttr("charset", "utf-8")
	head.CreateElement("title").SetText(title)

	body := root.CreateElement("body")
	body.CreateElement("div").CreateAttr("id", "app")

	if len(ctx.Defines) > 0 {
		body.CreateElement("script").SetText(defineGlobals(ctx.Defines))
	}

	script := body.CreateElement("script")
	script.CreateAttr("src", ctx.OutputFilename)

	doc.Indent(2)
	markup, err := doc.WriteToString()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "serializing HTML shell")
	}
	out := []byte("<!doctype html>\n" + markup)

	target := path.Join(ctx.OutputDir, ShellFilename)
	if err := ctx.FS.WriteFile(target, out, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite, "writing %s", target)
	}

	logger.Debug().Str("path", target).Msg("HTML shell emitted")
	ctx.AddAsset(types.Asset{
		Source: "",
		Path:   ShellFilename,
		Size:   len(out),
		Steps:  []string{PluginName},
	})
	return nil
}

// defineGlobals renders the defined constants as one global assignment per
// line, in a stable order
func defineGlobals(defines map[string]string) string {
	names := make([]string, 0, len(defines))
	for name := range defines {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("globalThis.%s = %q;", name, defines[name]))
	}
	return strings.Join(lines, "\n")
}

func init() {
	err := registry.RegisterPluginFactory(PluginName, func(opts map[string]interface{}) (types.Plugin, error) {
		return New(opts)
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register html plugin: %v", err))
	}
}
