// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// and validation.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/textreport/pkg/config"
	"github.com/yaklabco/textreport/pkg/fsutil"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.textreport.yml upward search)
//  4. User config ($XDG_CONFIG_HOME/textreport/config.yaml)
//  5. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig || opts.ExplicitPath != ""},
		{"explicit", opts.ExplicitPath, false},
	}

	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}

		fileCfg, err := loadConfigFile(ctx, layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}

		validation := ValidateWithFile(fileCfg, layer.path)
		if !validation.Valid() {
			return nil, &validation.Errors[0]
		}
		for _, w := range validation.Warnings {
			result.Warnings = append(result.Warnings, w.Error())
		}

		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	// Warnings were already reported per file.
	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(ctx context.Context, path string) (*config.Config, error) {
	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
