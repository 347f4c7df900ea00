package plan

// Message constants
const (
	MsgShort = "Show the step pipeline for one or more files"
	MsgLong  = `The 'plan' command resolves the given paths against the configured rules
and prints the step pipeline each file would go through, without running
anything. Paths are matched the same way the build matches source files:
relative to the source directory.`

	MsgExample = `  # Show the pipeline for a single file
  bindle plan main.ts

  # Show pipelines for several files at once
  bindle plan main.ts App.vue components/nav.ts`
)
