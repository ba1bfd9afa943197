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

package commands

import (
	"bytes"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"genftype/internal/common"
	"genftype/internal/config"
	"genftype/internal/emit"
	"genftype/internal/ftype"
	"genftype/internal/platform"
)

// build is a finished decoding table and what it was built from.
type build struct {
	platform   *platform.Platform
	mask       ftype.Mask
	table      ftype.Table
	collisions []ftype.Collision
}

// buildTable resolves the platform and builds its table with the configured
// translations.
func (a *app) buildTable() (*build, error) {
	p, err := platform.Resolve(a.fs, a.v.GetString(config.PlatformKey), a.v.GetString(config.PlatformFileKey))
	if err != nil {
		return nil, err
	}

	mask, err := ftype.AnalyzeMask(p.Mask)
	if err != nil {
		return nil, err
	}

	rules, err := ftype.ParseRules(a.v.GetString(config.TranslateKey))
	if err != nil {
		return nil, err
	}

	table, collisions, err := ftype.Build(mask, p.Assignments(), rules)
	if err != nil {
		return nil, fmt.Errorf("platform %s: %w", p.Name, err)
	}

	log.WithFields(log.Fields{
		"platform":   p.Name,
		"mask":       fmt.Sprintf("0x%x", mask.Raw),
		"shift":      mask.Shift,
		"size":       table.Size(),
		"table":      table.String(),
		"collisions": len(collisions),
	}).Debug("built file type table")

	return &build{platform: p, mask: mask, table: table, collisions: collisions}, nil
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	// Unknown names fail before any work; a missing language only once the
	// table is ready to be emitted.
	lang, err := emit.ParseLanguage(a.v.GetString(config.LanguageKey))
	if err != nil && !errors.Is(err, common.ErrNoLanguage) {
		return err
	}

	b, err := a.buildTable()
	if err != nil {
		return err
	}

	if lang == emit.LanguageUnspecified {
		return common.ErrNoLanguage
	}

	var buf bytes.Buffer
	err = emit.Emit(&buf, lang, emit.Params{
		Table:    b.table,
		Mask:     b.mask,
		Platform: b.platform.Name,
		Verbose:  a.v.GetBool(config.VerboseKey),
	})
	if err != nil {
		return err
	}

	return a.writeOutput(cmd, buf.Bytes())
}

// writeOutput writes the finished code to --output, or to stdout.
func (a *app) writeOutput(cmd *cobra.Command, code []byte) error {
	path := common.ExpandHome(a.v.GetString(config.OutputKey))
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(code)
		return err
	}

	if err := afero.WriteFile(a.fs, path, code, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.WithField("path", path).Info("wrote generated code")
	return nil
}
