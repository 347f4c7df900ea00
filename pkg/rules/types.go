package rules

// StepRef names one processing step inside a rule, together with the options
// handed to that step's processor. The resolver treats both as opaque.
type StepRef struct {
	// Name identifies a registered step processor
	Name string `koanf:"name" toml:"name" yaml:"name"`

	// Options is passed through to the processor untouched
	Options map[string]interface{} `koanf:"options" toml:"options,omitempty" yaml:"options,omitempty"`
}

// Rule maps a file-path pattern to an ordered processing pipeline
type Rule struct {
	// Test is the pattern a file path must match for this rule to apply
	Test string `koanf:"test" toml:"test" yaml:"test"`

	// Exclude, when set and matching, skips this rule for the path even if
	// Test matched
	Exclude string `koanf:"exclude" toml:"exclude,omitempty" yaml:"exclude,omitempty"`

	// Use is the ordered pipeline of steps applied to matched files
	Use []StepRef `koanf:"use" toml:"use" yaml:"use"`
}

// ResolvedStep is one entry of an execution plan: a step to run against a
// file's contents, carrying its options and the index of the rule that
// contributed it.
type ResolvedStep struct {
	Name    string
	Options map[string]interface{}
	Rule    int
}
