package urlhelper

import "path/filepath"

// Config controls the generated URL helper.
type Config struct {
	// Dir receives the helper file; created when missing.
	Dir string `mapstructure:"dir" default:"utils"`
	// File is the helper file name; empty picks one from Language.
	File string `mapstructure:"file" default:""`
	// Language is "go" or "ts".
	Language string `mapstructure:"language" default:"go"`
	// Package is the Go package name of the helper.
	Package string `mapstructure:"package" default:"utils"`
	// Func is the exported function name; empty picks one from Language.
	Func string `mapstructure:"func" default:""`
}

const (
	LanguageGo         = "go"
	LanguageTypeScript = "ts"
)

// FileName returns the helper file name.
func (c Config) FileName() string {
	if c.File != "" {
		return c.File
	}
	if c.Language == LanguageTypeScript {
		return "image_url.ts"
	}
	return "image_url.go"
}

// FuncName returns the helper function name.
func (c Config) FuncName() string {
	if c.Func != "" {
		return c.Func
	}
	if c.Language == LanguageTypeScript {
		return "getImageUrl"
	}
	return "ImageURL"
}

// PackageName returns the Go package name of the helper.
func (c Config) PackageName() string {
	if c.Package != "" {
		return c.Package
	}
	return "utils"
}

// Path returns where the helper is written.
func (c Config) Path() string {
	return filepath.Join(c.Dir, c.FileName())
}
