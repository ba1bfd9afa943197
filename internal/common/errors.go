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

package common

import "errors"

var (
	ErrUsage              = errors.New("usage error")
	ErrNoLanguage         = errors.New("no language specified")
	ErrUnknownLanguage    = errors.New("unknown programming language")
	ErrTranslateOddLength = errors.New("translation string must have an even length")
	ErrMaskNotSimple      = errors.New("S_IFMT must be a simple mask")
	ErrMaskTooWide        = errors.New("S_IFMT type field is too wide")
	ErrUnknownPlatform    = errors.New("unknown platform")
	ErrUnknownConstant    = errors.New("unknown file type constant")
	ErrPositionOutOfRange = errors.New("position outside of file type table")
)

// usageErrors are configuration errors. The run cannot recover from them and
// the process exits with code 2.
var usageErrors = []error{
	ErrUsage,
	ErrNoLanguage,
	ErrUnknownLanguage,
	ErrTranslateOddLength,
	ErrMaskNotSimple,
	ErrMaskTooWide,
	ErrUnknownPlatform,
	ErrUnknownConstant,
	ErrPositionOutOfRange,
}

// IsUsageError reports whether err is (or wraps) a configuration error.
func IsUsageError(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range usageErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case IsUsageError(err):
		return 2
	default:
		return 1
	}
}
