// Package steps ties the built-in step implementations together. Importing
// it registers every built-in step factory.
package steps

import (
	_ "github.com/bindle-dev/bindle/pkg/steps/banner"
	_ "github.com/bindle-dev/bindle/pkg/steps/copy"
	_ "github.com/bindle-dev/bindle/pkg/steps/exec"
	_ "github.com/bindle-dev/bindle/pkg/steps/suffix"
)
