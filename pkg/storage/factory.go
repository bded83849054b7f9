package storage

import (
	"fmt"
	"os"

	"github.com/northmart/media_bridge/pkg/storage/cloudinary"
	"github.com/northmart/media_bridge/pkg/storage/local"
	"github.com/northmart/media_bridge/pkg/storage/noop"
	"github.com/northmart/media_bridge/pkg/storage/s3"
)

// CredentialEnvVar is the environment variable holding the Cloudinary
// connection credential. It is read at construction time only.
const CredentialEnvVar = "CLOUDINARY_URL"

// Config holds storage configuration.
type Config struct {
	Type       string           `yaml:"type"`
	Local      LocalConfig      `yaml:"local"`
	S3         S3Config         `yaml:"s3"`
	Cloudinary CloudinaryConfig `yaml:"cloudinary"`
}

// LocalConfig holds local storage configuration.
type LocalConfig struct {
	BasePath string `yaml:"base_path"`
}

// S3Config holds S3-compatible storage configuration.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	PathStyle bool   `yaml:"path_style"`
	// PublicBaseURL is an optional CDN or public bucket domain used to
	// build object URLs.
	PublicBaseURL string `yaml:"public_base_url"`
}

// CloudinaryConfig holds Cloudinary storage configuration. The connection
// credential itself never lives in the YAML file; it comes from the
// CLOUDINARY_URL environment variable.
type CloudinaryConfig struct {
	Folder string `yaml:"folder"`
}

// New creates a storage adapter based on configuration.
func New(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		basePath := cfg.Local.BasePath
		if basePath == "" {
			basePath = "data/uploads"
		}
		return local.New(basePath)

	case "s3":
		return s3.New(s3.Config{
			Endpoint:      cfg.S3.Endpoint,
			Region:        cfg.S3.Region,
			Bucket:        cfg.S3.Bucket,
			AccessKey:     cfg.S3.AccessKey,
			SecretKey:     cfg.S3.SecretKey,
			PathStyle:     cfg.S3.PathStyle,
			PublicBaseURL: cfg.S3.PublicBaseURL,
		})

	case "cloudinary":
		return cloudinary.New(cloudinary.Config{
			CredentialURL: os.Getenv(CredentialEnvVar),
			Folder:        cfg.Cloudinary.Folder,
		})

	case "noop", "disabled":
		return noop.New(), nil

	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// DefaultConfig returns the default storage configuration (local storage).
func DefaultConfig() Config {
	return Config{
		Type: "local",
		Local: LocalConfig{
			BasePath: "data/uploads",
		},
		S3: S3Config{
			Region: "us-east-1",
		},
		Cloudinary: CloudinaryConfig{
			Folder: cloudinary.DefaultFolder,
		},
	}
}
