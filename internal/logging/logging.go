// Copyright 2024 genftype Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging configures logrus for diagnostics on stderr.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"genftype/internal/common"
)

// Setup sends logrus output to w at the given level (case insensitive).
// "off" and "none" discard all output.
func Setup(w io.Writer, level string) error {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	switch strings.ToLower(level) {
	case "off", "none":
		logrus.SetOutput(io.Discard)
		return nil
	case "trace":
		logrus.SetLevel(logrus.TraceLevel)
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "", "warn", "warning":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		return fmt.Errorf("%w: unknown log level %q", common.ErrUsage, level)
	}
	logrus.SetOutput(w)
	return nil
}
