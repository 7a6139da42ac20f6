package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Thumbnail ThumbnailConfig `yaml:"thumbnail"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type StorageConfig struct {
	UploadDir         string   `yaml:"upload_dir"`
	ThumbDir          string   `yaml:"thumb_dir"`
	TempDir           string   `yaml:"temp_dir"`
	DataFile          string   `yaml:"data_file"`
	MaxFileSizeMB     int64    `yaml:"max_file_size_mb"`
	AllowedExtensions []string `yaml:"allowed_extensions"`
	DefaultThumbnail  string   `yaml:"default_thumbnail"`
}

type ThumbnailConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Quality int `yaml:"quality"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

var AppConfig *Config

// LoadConfig reads the yaml config at path. A missing file is not an
// error: the service runs on defaults alone.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	AppConfig = &cfg
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 10000
	}
	// The hosting platform hands out the listen port via PORT.
	if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil && p > 0 {
		cfg.Server.Port = p
	}

	if cfg.Storage.UploadDir == "" {
		cfg.Storage.UploadDir = "static/uploads"
	}
	if cfg.Storage.ThumbDir == "" {
		cfg.Storage.ThumbDir = "static/thumbs"
	}
	if cfg.Storage.TempDir == "" {
		cfg.Storage.TempDir = "static/tmp"
	}
	if cfg.Storage.DataFile == "" {
		cfg.Storage.DataFile = "videos.json"
	}
	if cfg.Storage.MaxFileSizeMB == 0 {
		cfg.Storage.MaxFileSizeMB = 500
	}
	if len(cfg.Storage.AllowedExtensions) == 0 {
		cfg.Storage.AllowedExtensions = []string{".mp4", ".webm", ".mov"}
	}
	if cfg.Storage.DefaultThumbnail == "" {
		cfg.Storage.DefaultThumbnail = "default.jpg"
	}

	if cfg.Thumbnail.Width == 0 {
		cfg.Thumbnail.Width = 640
	}
	if cfg.Thumbnail.Height == 0 {
		cfg.Thumbnail.Height = 360
	}
	if cfg.Thumbnail.Quality == 0 {
		cfg.Thumbnail.Quality = 85
	}
}

// MaxFileSizeBytes is the upload ceiling in bytes.
func (s StorageConfig) MaxFileSizeBytes() int64 {
	return s.MaxFileSizeMB * 1024 * 1024
}
