//go:build tools

package genftype

import (
	_ "gotest.tools/gotestsum"
)
