package artifacts

import "embed"

// Global artifacts

//go:embed global/settings.yaml
var GlobalSettings []byte

// Platform profiles, one YAML file per platform

//go:embed platforms/*.yaml
var Platforms embed.FS

// Code templates, one per output language

//go:embed templates/*.tmpl
var Templates embed.FS
