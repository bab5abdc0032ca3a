package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Default API settings
const (
	// DefaultBaseURL is the production API endpoint, overridable via the
	// QASCAN_API_BASE_URL environment variable or the config file
	DefaultBaseURL = "https://api.facturio.app"

	// DefaultTimeoutSeconds is the per-probe timeout
	DefaultTimeoutSeconds = 15
)

// Default verifier settings
const (
	// DefaultVerifyConcurrency bounds concurrent page checks so the
	// verifier does not overwhelm the backend
	DefaultVerifyConcurrency = 4

	DefaultManifestPath = "qa-manifest.yaml"
	DefaultDistDir      = "dist"
	DefaultIgnoreFile   = ".qascanignore"
)

// BaseURLEnvVar overrides the API base URL at deploy time
const BaseURLEnvVar = "QASCAN_API_BASE_URL"

// Config represents the main configuration structure
type Config struct {
	// API holds backend connection configuration
	API APIConfig `json:"api" mapstructure:"api" yaml:"api"`

	// Run holds test run configuration
	Run RunConfig `json:"run" mapstructure:"run" yaml:"run"`

	// Verify holds dependency verifier configuration
	Verify VerifyConfig `json:"verify" mapstructure:"verify" yaml:"verify"`

	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Session holds session token store configuration
	Session SessionConfig `json:"session" mapstructure:"session" yaml:"session"`
}

// APIConfig holds backend connection settings
type APIConfig struct {
	// BaseURL is the backend API root
	BaseURL string `json:"baseUrl" mapstructure:"base_url" yaml:"base_url"`

	// TimeoutSeconds is the per-probe timeout
	TimeoutSeconds int `json:"timeoutSeconds" mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// RunConfig holds test run settings
type RunConfig struct {
	// System restricts the catalog to one subsystem; empty runs everything
	System string `json:"system" mapstructure:"system" yaml:"system"`

	// LiveNotifications sends real email/SMS instead of mock mode
	LiveNotifications bool `json:"liveNotifications" mapstructure:"live_notifications" yaml:"live_notifications"`

	// KeepData skips post-run cleanup of tracked entities
	KeepData bool `json:"keepData" mapstructure:"keep_data" yaml:"keep_data"`

	// ShowProgress controls the interactive progress bar
	ShowProgress bool `json:"showProgress" mapstructure:"show_progress" yaml:"show_progress"`
}

// VerifyConfig holds dependency verifier settings
type VerifyConfig struct {
	// ManifestPath is the build-time page dependency manifest
	ManifestPath string `json:"manifestPath" mapstructure:"manifest_path" yaml:"manifest_path"`

	// DistDir is the built frontend output the manifest is checked against
	DistDir string `json:"distDir" mapstructure:"dist_dir" yaml:"dist_dir"`

	// Concurrency bounds concurrent page checks
	Concurrency int `json:"concurrency" mapstructure:"concurrency" yaml:"concurrency"`

	// IgnoreFile holds gitignore-style patterns for build artifacts that
	// should not count as missing dependencies (e.g. sourcemaps)
	IgnoreFile string `json:"ignoreFile" mapstructure:"ignore_file" yaml:"ignore_file"`
}

// OutputConfig holds output formatting settings
type OutputConfig struct {
	// Format specifies the output format: text, json, digest
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// Directory is where exported report files are written
	Directory string `json:"directory" mapstructure:"directory" yaml:"directory"`
}

// SessionConfig holds session token store settings
type SessionConfig struct {
	// StorePath overrides the default token store location
	StorePath string `json:"storePath" mapstructure:"store_path" yaml:"store_path"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Run: RunConfig{
			ShowProgress: true,
		},
		Verify: VerifyConfig{
			ManifestPath: DefaultManifestPath,
			DistDir:      DefaultDistDir,
			Concurrency:  DefaultVerifyConcurrency,
			IgnoreFile:   DefaultIgnoreFile,
		},
		Output: OutputConfig{
			Format:    "text",
			Directory: ".",
		},
	}
}

// LoadConfig loads configuration from file or returns default config
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig()
	}
	return loadConfigFromFile(configPath)
}

// loadConfigFromFile reads and parses a configuration file
func loadConfigFromFile(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		// Create a new viper instance to avoid race conditions
		v := viper.New()
		v.SetConfigFile(configPath)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}

		if err := v.Unmarshal(config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	// Deployment-time base URL override wins over file and default
	if envURL := os.Getenv(BaseURLEnvVar); envURL != "" {
		config.API.BaseURL = envURL
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// searchConfigInDirectory searches for configuration files in a specific directory
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for default configuration files in common locations
func findDefaultConfig() string {
	candidates := []string{
		"qascan.yaml",
		"qascan.yml",
		".qascan.yml",
		"qascan.json",
		".qascan.json",
	}

	if config := searchConfigInDirectory(".", candidates); config != "" {
		return config
	}

	// Check XDG config directory (Linux/Mac standard)
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, "qascan"), candidates); config != "" {
			return config
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		configDir := filepath.Join(home, ".config", "qascan")
		if config := searchConfigInDirectory(configDir, candidates); config != "" {
			return config
		}
	}

	// Check QASCAN_CONFIG environment variable as fallback
	if envConfig := os.Getenv("QASCAN_CONFIG"); envConfig != "" {
		if _, err := os.Stat(envConfig); err == nil {
			return envConfig
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if c.API.TimeoutSeconds < 1 {
		return fmt.Errorf("api.timeout_seconds must be >= 1, got %d", c.API.TimeoutSeconds)
	}
	if c.Verify.Concurrency < 1 {
		return fmt.Errorf("verify.concurrency must be >= 1, got %d", c.Verify.Concurrency)
	}
	switch c.Output.Format {
	case "text", "json", "digest":
	default:
		return fmt.Errorf("output.format must be one of text, json, digest, got %q", c.Output.Format)
	}
	return nil
}
