package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fajarshiddiqqq/roommate-interior-be/internal/utils"

	"github.com/joho/godotenv"
	pkgConfig "github.com/kerimovok/go-pkg-utils/config"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port    string
	Env     string
	BaseURL string
}

// AuthConfig holds credential issuing settings
type AuthConfig struct {
	Secret        string
	AdminEmail    string
	AdminPassword string
	TokenTTL      time.Duration
}

// StorageConfig holds metadata document and file directory settings
type StorageConfig struct {
	MetadataPath string `yaml:"metadata_path"`
	FilesDir     string `yaml:"files_dir"`
}

// UploadConfig holds media upload validation settings
type UploadConfig struct {
	MaxFileSize       string   `yaml:"max_file_size"`
	AllowedExtensions []string `yaml:"allowed_extensions"`

	MaxFileSizeBytes int64 `yaml:"-"`
}

// CORSConfig holds cross-origin settings
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins"`
}

// MainConfig is the root configuration, built once at startup and passed
// into each component.
type MainConfig struct {
	Server  ServerConfig  `yaml:"-"`
	Auth    AuthConfig    `yaml:"-"`
	Storage StorageConfig `yaml:"storage"`
	Upload  UploadConfig  `yaml:"upload"`
	CORS    CORSConfig    `yaml:"cors"`
}

// FilesURL returns the public base URL that stored filenames are joined to.
func (c *MainConfig) FilesURL() string {
	return utils.JoinFileURL(c.Server.BaseURL, "files")
}

// Load reads the .env file, the YAML config at path, and the process
// environment into a MainConfig.
func Load(path string) (*MainConfig, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if pkgConfig.GetEnv("GO_ENV") != "production" {
			log.Println("Warning: Failed to load .env file")
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg MainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Upload.MaxFileSize != "" {
		size, err := utils.ParseSizeString(cfg.Upload.MaxFileSize)
		if err != nil {
			return nil, fmt.Errorf("invalid upload.max_file_size: %w", err)
		}
		cfg.Upload.MaxFileSizeBytes = size
	}

	log.Printf("Configuration loaded successfully from %s", path)
	return &cfg, nil
}

// ApplyEnv snapshots environment-backed settings into the config. Called
// after env validation has run so defaults and required checks apply.
func (c *MainConfig) ApplyEnv() {
	c.Server = ServerConfig{
		Port:    pkgConfig.GetEnv("PORT"),
		Env:     pkgConfig.GetEnv("GO_ENV"),
		BaseURL: pkgConfig.GetEnv("BASE_URL"),
	}
	c.Auth = AuthConfig{
		Secret:        pkgConfig.GetEnv("JWT_SECRET"),
		AdminEmail:    pkgConfig.GetEnv("ADMIN_EMAIL"),
		AdminPassword: pkgConfig.GetEnv("ADMIN_PASSWORD"),
		TokenTTL:      24 * time.Hour,
	}
}
