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
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"genftype/internal/config"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage the settings file",
		Args:  noArgs,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Long: `Write the default settings file unless one already exists.

The file is $GENFTYPE_CONFIG_DIR/settings.yaml (default ~/.genftype), or the
path given with --config.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.settingsPath()
			created, err := config.InitSettings(a.fs, path)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", path)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the settings in effect after flags and environment",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal(config.Effective(a.v))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	})

	return cmd
}
