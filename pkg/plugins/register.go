package plugins

import (
	_ "github.com/bindle-dev/bindle/pkg/plugins/clean"
	_ "github.com/bindle-dev/bindle/pkg/plugins/define"
	_ "github.com/bindle-dev/bindle/pkg/plugins/html"
)
