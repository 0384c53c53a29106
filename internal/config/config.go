package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	SrcDir      string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Paths to ignore when scanning for modules
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	SrcPath      string
	NameFilter   string
	Examples     bool
	OpenFailures bool
}

// New creates a new Config with defaults, applying any overrides from the
// project's .env file and the environment
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		SrcDir:         DefaultSrcDir,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)

	cfg.applyEnv()
	return cfg
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags
	return cfg
}

// applyEnv loads the project .env file (if present) and applies DTP_*
// overrides. Environment beats defaults, flags beat both.
func (c *Config) applyEnv() {
	// .env file might not exist, that's okay - use environment variables
	envPath := filepath.Join(c.ProjectPath, ".env")
	_ = godotenv.Load(envPath)

	if v := os.Getenv("DTP_PROJECT_PATH"); v != "" {
		c.ProjectPath = v
	}
	if v := os.Getenv("DTP_SRC_DIR"); v != "" {
		c.SrcDir = v
	}
	if v := os.Getenv("DTP_OUTPUT_DIR"); v != "" {
		c.OutputJSONDir = v
	}
	if v := os.Getenv("DTP_OUTPUT_FILE"); v != "" {
		c.OutputJSONFile = v
	}
}

// GetStartDir returns the directory discovery starts from, using the flag
// if provided
func (c *Config) GetStartDir() string {
	if c.Flags.SrcPath != "" {
		if filepath.IsAbs(c.Flags.SrcPath) {
			return c.Flags.SrcPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.SrcPath)
	}
	return c.ProjectPath
}

// GetOutputPath returns the absolute path to the output JSON file, so run
// and failures read the same file regardless of working directory
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
