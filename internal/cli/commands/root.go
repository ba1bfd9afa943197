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
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"genftype/internal/common"
	"genftype/internal/config"
	"genftype/internal/emit"
	"genftype/internal/ftype"
	"genftype/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version info for --version flag
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// getVersionString returns the version string with build info
func getVersionString() string {
	buildDate := formatBuildDate(date)
	if strings.HasSuffix(version, "-dev") {
		// Dev build: include epoch and commit for troubleshooting
		return fmt.Sprintf("%s (%s, epoch: %s, commit: %s)", version, buildDate, date, commit)
	}
	return fmt.Sprintf("%s (%s)", version, buildDate)
}

// formatBuildDate converts epoch timestamp to readable date
func formatBuildDate(epoch string) string {
	ts, err := strconv.ParseInt(epoch, 10, 64)
	if err != nil {
		return epoch
	}
	return time.Unix(ts, 0).UTC().Format("2006-01-02")
}

// app is the state shared by the commands of one invocation.
type app struct {
	v  *viper.Viper
	fs afero.Fs
}

// NewRootCmd builds the command tree. Files are read and written through fs.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{v: viper.New(), fs: fs}

	rootCmd := &cobra.Command{
		Use:   "genftype",
		Short: "Generate a mode_to_ftype lookup table for the platform's S_IFMT",
		Long: `Generate source code that maps the file type bits of a stat() mode word
to the one-character file type shown by ls -l.

The table is derived from the platform's S_IFMT mask and the S_IF* constants it
defines. Each flag can also be set with a GENFTYPE_<FLAG> environment variable
or in the settings file.

Examples:
  genftype --language=C
  genftype --language=perl --translate=dD
  genftype --language=D --platform=solaris --verbose`,
		Version:       getVersionString(),
		Args:          noArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: a.runGenerate,
	}

	flags := rootCmd.PersistentFlags()
	flags.Bool(config.VerboseKey, false, "Prefix the code with INFO comments and log the table")
	flags.String(config.LanguageKey, "", fmt.Sprintf("Language of the generated code (%s)", emit.LanguageNames()))
	flags.String(config.TranslateKey, "", `Mnemonic translations read two characters at a time, e.g. "dD" writes D for directories`)
	flags.String(config.PlatformKey, "host", "Platform profile; see 'genftype platforms'")
	flags.String(config.PlatformFileKey, "", "YAML platform profile, overrides --platform")
	flags.String(config.LogLevelKey, "warn", "Diagnostics level: trace, debug, info, warn, error, off")
	flags.String(config.ConfigKey, "", "Settings file (default: $GENFTYPE_CONFIG_DIR/settings.yaml)")
	rootCmd.Flags().StringP(config.OutputKey, "o", "", "Write the code to this file instead of stdout")

	if err := config.Bind(a.v, rootCmd.PersistentFlags()); err != nil {
		panic("failed to bind flags: " + err.Error())
	}
	if err := config.Bind(a.v, rootCmd.Flags()); err != nil {
		panic("failed to bind flags: " + err.Error())
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("genftype version {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", common.ErrUsage, err)
	})

	rootCmd.AddCommand(
		newLanguagesCmd(),
		newPlatformsCmd(),
		newTableCmd(a),
		newSettingsCmd(a),
	)
	return rootCmd
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return fmt.Errorf("%w: %v", common.ErrUsage, err)
	}
	return nil
}

// init loads the settings file and sets up logging before any command runs.
func (a *app) init(cmd *cobra.Command) error {
	settingsPath := a.settingsPath()
	settings, err := config.LoadSettings(a.fs, settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	settings.Seed(a.v)

	if err := logging.Setup(cmd.ErrOrStderr(), a.v.GetString(config.LogLevelKey)); err != nil {
		return err
	}
	if a.v.GetBool(config.VerboseKey) && !logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.WithField("settings", settingsPath).Trace("loaded settings")
	return nil
}

// settingsPath returns --config, or the default settings file.
func (a *app) settingsPath() string {
	if path := a.v.GetString(config.ConfigKey); path != "" {
		return common.ExpandHome(path)
	}
	return config.SettingsPath()
}

// ReportError prints err and, for configuration errors, a hint on how to fix
// the invocation.
func ReportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	var maskErr *ftype.MaskError
	switch {
	case errors.As(err, &maskErr):
		fmt.Fprintln(w, "That is, it must be a mask that has a single run of 1 bits.")
	case errors.Is(err, common.ErrNoLanguage), errors.Is(err, common.ErrUnknownLanguage):
		printLanguages(w)
	case common.IsUsageError(err):
		fmt.Fprintln(w, "Run 'genftype --help' for usage.")
	}
}

// Main runs the command line and returns the process exit code.
func Main(args []string, stdout, stderr io.Writer) int {
	return run(afero.NewOsFs(), args, stdout, stderr)
}

func run(fs afero.Fs, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd(fs)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		ReportError(stderr, err)
		return common.ExitCode(err)
	}
	return 0
}
