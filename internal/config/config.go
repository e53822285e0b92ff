package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "recondesk.yaml"

// EnvAPIURL overrides the configured API base URL when set.
const EnvAPIURL = "RECONDESK_API_URL"

// defaultBaseURL points at the hosted reconciliation service, which may be
// cold-starting when the client launches.
const defaultBaseURL = "https://exchange-psp-recon.onrender.com"

// Config represents the top-level recondesk.yaml configuration.
type Config struct {
	API    APIConfig    `yaml:"api"`
	UI     UIConfig     `yaml:"ui"`
	Export ExportConfig `yaml:"export"`
}

// APIConfig locates the reconciliation service.
type APIConfig struct {
	BaseURL    string `yaml:"base_url"`
	UploadPath string `yaml:"upload_path"`
}

// UIConfig controls result browsing.
type UIConfig struct {
	PageSize int `yaml:"page_size"`
}

// ExportConfig controls where CSV exports are written.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// Load reads a recondesk.yaml file from disk. Fields absent from the file
// keep their Default values, so a partial config never zeroes the upload
// path or page size.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the built-in service address and page size.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:    defaultBaseURL,
			UploadPath: "/reconcile/upload",
		},
		UI: UIConfig{
			PageSize: 50,
		},
		Export: ExportConfig{
			Dir: ".",
		},
	}
}

// BaseURL resolves the API base URL: the EnvAPIURL environment variable wins
// over the config file value.
func (c *Config) BaseURL() string {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		return v
	}
	return c.API.BaseURL
}

// UploadURL joins the resolved base URL and the upload path.
func (c *Config) UploadURL() string {
	return strings.TrimRight(c.BaseURL(), "/") + c.API.UploadPath
}
