package config

import (
	"github.com/bindle-dev/bindle/pkg/errors"
	"github.com/bindle-dev/bindle/pkg/rules"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Sample returns a fully-populated example configuration: a typed entry file,
// a template-compile rule for component files, a type-check rule that skips
// declaration files, and the built-in plugins.
func Sample() Config {
	return Config{
		Entry: "src/main.ts",
		Output: Output{
			Filename: "build.js",
			Path:     "dist",
		},
		Resolve: Resolve{
			Extensions: []string{".ts", ".js", ".vue"},
			Alias: map[string]string{
				"@": "src",
			},
		},
		Module: Module{
			Rules: []rules.Rule{
				{
					Test:    "*.ts",
					Exclude: "*.d.ts",
					Use: []rules.StepRef{
						{
							Name: "suffix",
							Options: map[string]interface{}{
								"appendSuffixTo": []string{"*.vue"},
								"suffix":         ".ts",
							},
						},
						{
							Name: "exec",
							Options: map[string]interface{}{
								"command": "tsc",
								"args":    []string{"--noEmit", "--stdin"},
							},
						},
					},
				},
				{
					Test: "*.vue",
					Use: []rules.StepRef{
						{
							Name: "exec",
							Options: map[string]interface{}{
								"command": "vue-compiler",
							},
						},
					},
				},
				{
					Test: "*",
					Use:  []rules.StepRef{{Name: "copy"}},
				},
			},
		},
		Plugins: []PluginRef{
			{Name: "clean"},
			{
				Name: "define",
				Options: map[string]interface{}{
					"values": map[string]interface{}{
						"NODE_ENV": "production",
					},
				},
			},
			{
				Name: "html",
				Options: map[string]interface{}{
					"title": "my app",
				},
			},
		},
	}
}

// GenerateSample renders the sample configuration in the given format,
// either "toml" or "yaml"
func GenerateSample(format string) ([]byte, error) {
	sample := Sample()

	switch format {
	case "toml":
		out, err := toml.Marshal(sample)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "marshaling sample config")
		}
		return out, nil
	case "yaml", "yml":
		out, err := yaml.Marshal(sample)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "marshaling sample config")
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown config format %q", format)
	}
}
