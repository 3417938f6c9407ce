package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"production"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Storage    Storage    `yaml:"storage"`
	CORS       CORS       `yaml:"cors"`
}

type HTTPServer struct {
	Address string `yaml:"address" env:"HTTP_ADDRESS" env-default:":3000"`
}

type Storage struct {
	// Root is the base directory every managed file lives under.
	Root string `yaml:"root" env:"STORAGE_ROOT" env-default:"/data/nft"`
	// PublicBaseURL prefixes the externally reachable URL of stored files.
	PublicBaseURL string `yaml:"public_base_url" env:"PUBLIC_BASE_URL" env-default:"http://localhost:3000/nft"`
	// FileOwner is the "user:group" written files are chowned to.
	// Empty disables the ownership change.
	FileOwner      string `yaml:"file_owner" env:"FILE_OWNER" env-default:""`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"MAX_UPLOAD_BYTES" env-default:"838860800"`
}

type CORS struct {
	// AllowedOrigins defaults to permissive, which is fine for development
	// behind a trusted proxy but should be narrowed in production.
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to config file")
		flag.Parse()
		configPath = *flags
	}

	var cfg Config

	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("config file does not exist at path: %s", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("failed to read config: %s", err)
		}
		return &cfg
	}

	// No config file: defaults plus environment overrides are enough to run.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read config from environment: %s", err)
	}

	return &cfg
}
