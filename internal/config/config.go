package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"genftype/internal/artifacts"
)

// Viper keys. These are also the command line flag names; the environment
// variable is GENFTYPE_ followed by the key in upper case with "-" as "_".
const (
	// Output language of the generated code.
	LanguageKey = "language"
	// Mnemonic translations, two characters per rule.
	TranslateKey = "translate"
	// Prefix generated code with INFO comments and log the table at debug level.
	VerboseKey = "verbose"
	// Embedded platform profile, or "host".
	PlatformKey = "platform"
	// YAML platform profile; takes precedence over PlatformKey.
	PlatformFileKey = "platform-file"
	// File to write generated code to instead of stdout.
	OutputKey = "output"
	// Diagnostics level: trace, debug, info, warn, error, off.
	LogLevelKey = "log-level"
	// Settings file; defaults to SettingsPath().
	ConfigKey = "config"
)

const envPrefix = "genftype"

// getConfigDir returns the config directory path.
// Uses GENFTYPE_CONFIG_DIR env var if set, otherwise defaults to ~/.genftype.
func getConfigDir() string {
	if dir := os.Getenv("GENFTYPE_CONFIG_DIR"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".genftype")
}

// ConfigDir returns the configuration directory path
func ConfigDir() string {
	return getConfigDir()
}

// SettingsPath returns the settings file path
func SettingsPath() string {
	return filepath.Join(getConfigDir(), "settings.yaml")
}

// Settings are the defaults read from settings.yaml. Flags and environment
// variables override them.
type Settings struct {
	Language  string `yaml:"language"`
	Translate string `yaml:"translate"`
	Platform  string `yaml:"platform"`  // default: "host"
	LogLevel  string `yaml:"log_level"` // default: "warn"
	Verbose   bool   `yaml:"verbose"`
}

// ApplyDefaults fills zero-value fields with their defaults.
func (s *Settings) ApplyDefaults() {
	if s.Platform == "" {
		s.Platform = "host"
	}
	if s.LogLevel == "" {
		s.LogLevel = "warn"
	}
}

// loadDefaultSettings parses default settings from embedded artifact.
func loadDefaultSettings() Settings {
	var settings Settings
	if err := yaml.Unmarshal(artifacts.GlobalSettings, &settings); err != nil {
		panic("failed to parse embedded settings: " + err.Error())
	}
	settings.ApplyDefaults()
	return settings
}

// LoadSettings reads settings from path. A missing file yields the embedded
// defaults.
func LoadSettings(fsys afero.Fs, path string) (*Settings, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			settings := loadDefaultSettings()
			return &settings, nil
		}
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	settings.ApplyDefaults()
	return &settings, nil
}

// InitSettings writes the default settings file to path unless it exists.
// Returns true if the file was created.
func InitSettings(fsys afero.Fs, path string) (bool, error) {
	if _, err := fsys.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := afero.WriteFile(fsys, path, artifacts.GlobalSettings, 0600); err != nil {
		return false, fmt.Errorf("failed to create default settings: %w", err)
	}
	return true, nil
}

// Seed registers settings as the lowest precedence values in v.
func (s *Settings) Seed(v *viper.Viper) {
	v.SetDefault(LanguageKey, s.Language)
	v.SetDefault(TranslateKey, s.Translate)
	v.SetDefault(PlatformKey, s.Platform)
	v.SetDefault(LogLevelKey, s.LogLevel)
	v.SetDefault(VerboseKey, s.Verbose)
}

// Effective returns the settings after flags and environment are applied.
func Effective(v *viper.Viper) Settings {
	return Settings{
		Language:  v.GetString(LanguageKey),
		Translate: v.GetString(TranslateKey),
		Platform:  v.GetString(PlatformKey),
		LogLevel:  v.GetString(LogLevelKey),
		Verbose:   v.GetBool(VerboseKey),
	}
}

// Bind makes every flag in flags readable from v, with GENFTYPE_* environment
// variables taking precedence over flag defaults.
func Bind(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	// Environment variables cannot use "-", replace with "_"
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	var bindErr error
	flags.VisitAll(func(flag *pflag.Flag) {
		if err := v.BindEnv(flag.Name); err != nil && bindErr == nil {
			bindErr = err
		}
		if err := v.BindPFlag(flag.Name, flag); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	return bindErr
}
