package config

import (
	"path/filepath"
	"testing"
)

func TestConfig_GetStartDir(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath: ".",
				Flags:       Flags{},
			},
			expected: ".",
		},
		{
			name: "with src path flag",
			config: &Config{
				ProjectPath: "/project",
				Flags: Flags{
					SrcPath: "nested",
				},
			},
			expected: filepath.Join("/project", "nested"),
		},
		{
			name: "absolute src path",
			config: &Config{
				ProjectPath: "/project",
				Flags: Flags{
					SrcPath: "/absolute/path",
				},
			},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetStartDir()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_GetOutputPath(t *testing.T) {
	cfg := &Config{
		ProjectPath:    "/project",
		OutputJSONDir:  "storage",
		OutputJSONFile: "doctest-results.json",
	}

	path := cfg.GetOutputPath()
	expected := filepath.Join("/project", "storage", "doctest-results.json")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("output path should be absolute, got %s", path)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DTP_SRC_DIR", "lib")
	t.Setenv("DTP_OUTPUT_DIR", "out")

	cfg := New()
	if cfg.SrcDir != "lib" {
		t.Errorf("expected src dir override, got %s", cfg.SrcDir)
	}
	if cfg.OutputJSONDir != "out" {
		t.Errorf("expected output dir override, got %s", cfg.OutputJSONDir)
	}
	if cfg.OutputJSONFile != DefaultOutputJSONFile {
		t.Errorf("unset variables must keep defaults, got %s", cfg.OutputJSONFile)
	}
}

func TestNew_Defaults(t *testing.T) {
	cfg := New()
	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("unexpected project path: %s", cfg.ProjectPath)
	}
	if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore) {
		t.Errorf("unexpected ignore list: %v", cfg.PathsToIgnore)
	}
	// Mutating the config must not touch the package default
	cfg.PathsToIgnore[0] = "changed"
	if DefaultPathsToIgnore[0] == "changed" {
		t.Error("config must copy the default ignore list")
	}
}
