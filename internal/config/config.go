package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config aggregates application settings sourced from environment variables.
type Config struct {
	API        APIConfig        `mapstructure:"api"`
	Admin      AdminConfig      `mapstructure:"admin"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Cloudinary CloudinaryConfig `mapstructure:"cloudinary"`
	S3         S3Config         `mapstructure:"s3"`
	Clamd      ClamdConfig      `mapstructure:"clamd"`
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	Port int `mapstructure:"port"`
}

// AdminConfig contains the single admin account. The defaults are the known
// weak development pair; deployments override them via environment.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// StorageConfig contains the on-disk layout: JSON documents, the public root
// and the local uploads directory.
type StorageConfig struct {
	DataDir    string `mapstructure:"data_dir"`
	PublicDir  string `mapstructure:"public_dir"`
	UploadsDir string `mapstructure:"uploads_dir"`
}

// CloudinaryConfig contains credentials for the hosted image CDN backend.
type CloudinaryConfig struct {
	CloudName string `mapstructure:"cloud_name"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

// Configured reports whether all three Cloudinary credentials are present.
func (c CloudinaryConfig) Configured() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

func (c CloudinaryConfig) partial() bool {
	any := c.CloudName != "" || c.APIKey != "" || c.APISecret != ""
	return any && !c.Configured()
}

// S3Config contains connection options for an S3-compatible banner store.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	Bucket          string `mapstructure:"bucket"`
	PublicURL       string `mapstructure:"public_url"`
}

// Configured reports whether the S3 backend has everything it needs.
func (c S3Config) Configured() bool {
	return c.Endpoint != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" && c.Bucket != ""
}

func (c S3Config) partial() bool {
	any := c.Endpoint != "" || c.AccessKeyID != "" || c.SecretAccessKey != "" || c.Bucket != ""
	return any && !c.Configured()
}

// ClamdConfig contains the optional upload virus-scan daemon address.
type ClamdConfig struct {
	Addr string `mapstructure:"addr"`
}

// BackendKind names the banner storage backend selected at boot.
type BackendKind string

const (
	BackendCloudinary BackendKind = "cloudinary"
	BackendS3         BackendKind = "s3"
	BackendLocal      BackendKind = "local"
)

// BannerBackend derives the storage backend from the configured credentials:
// Cloudinary when its three credentials are set, otherwise S3 when fully
// configured, otherwise local disk. The choice is made once here; nothing
// else inspects the environment.
func (c *Config) BannerBackend() BackendKind {
	switch {
	case c.Cloudinary.Configured():
		return BackendCloudinary
	case c.S3.Configured():
		return BackendS3
	default:
		return BackendLocal
	}
}

// Load reads configuration solely from environment variables (with defaults).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", 3000)
	v.SetDefault("admin.username", "adminsmey")
	v.SetDefault("admin.password", "@@@@wrongpassword168")
	v.SetDefault("storage.data_dir", ".")
	v.SetDefault("storage.public_dir", "public")
	v.SetDefault("storage.uploads_dir", "public/uploads")
	v.SetDefault("s3.use_ssl", false)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"api.port":              "PORT",
		"admin.username":        "ADMIN_USERNAME",
		"admin.password":        "ADMIN_PASSWORD",
		"storage.data_dir":      "DATA_DIR",
		"storage.public_dir":    "PUBLIC_DIR",
		"storage.uploads_dir":   "UPLOADS_DIR",
		"cloudinary.cloud_name": "CLOUDINARY_CLOUD_NAME",
		"cloudinary.api_key":    "CLOUDINARY_API_KEY",
		"cloudinary.api_secret": "CLOUDINARY_API_SECRET",
		"s3.endpoint":           "S3_ENDPOINT",
		"s3.access_key_id":      "S3_ACCESS_KEY_ID",
		"s3.secret_access_key":  "S3_SECRET_ACCESS_KEY",
		"s3.use_ssl":            "S3_USE_SSL",
		"s3.bucket":             "S3_BUCKET",
		"s3.public_url":         "S3_PUBLIC_URL",
		"clamd.addr":            "CLAMD_ADDR",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.API.Port <= 0 {
		return errors.New("port must be positive")
	}
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		return errors.New("admin credentials must not be empty")
	}
	if cfg.Storage.DataDir == "" {
		return errors.New("data dir is required")
	}
	if cfg.Storage.PublicDir == "" {
		return errors.New("public dir is required")
	}
	if cfg.Storage.UploadsDir == "" {
		return errors.New("uploads dir is required")
	}
	if cfg.Cloudinary.partial() {
		return errors.New("cloudinary requires cloud name, api key and api secret together")
	}
	if cfg.S3.partial() {
		return errors.New("s3 requires endpoint, access key, secret key and bucket together")
	}
	return nil
}
