package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	pkgconfig "github.com/mustafayildiz-m/iw-project/pkg/config"
	"github.com/mustafayildiz-m/iw-project/pkg/database"
	"github.com/mustafayildiz-m/iw-project/pkg/storage"
)

// Config holds the full application configuration.
type Config struct {
	Server   ServerConfig
	Database database.Config
	Redis    RedisConfig
	JWT      JWTConfig
	Upload   UploadConfig
	Storage  StorageConfig
	Cache    CacheConfig
	CORS     CORSConfig
	LogLevel string
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string
	Port int
}

// RedisConfig holds the redis connection settings.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// JWTConfig holds the token signing settings.
type JWTConfig struct {
	Secret   string
	Duration time.Duration
	Issuer   string
}

// UploadConfig limits what the upload endpoints accept.
type UploadConfig struct {
	MaxSizeBytes int64
	BasePath     string
	URLPrefix    string
}

// StorageConfig selects the blob backend: "local" or "s3".
type StorageConfig struct {
	Backend string
	S3      storage.S3Config
}

// CacheConfig holds the search cache settings.
type CacheConfig struct {
	SearchTTL time.Duration
}

// CORSConfig lists allowed browser origins.
type CORSConfig struct {
	Origins []string
}

// Load reads configuration from config.yaml and the environment. Environment
// variables win over file values.
func Load(configPath string) (*Config, error) {
	v, err := pkgconfig.Load(configPath, "config")
	if err != nil {
		return nil, err
	}

	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("server.host"),
			Port: v.GetInt("server.port"),
		},
		Database: database.Config{
			Driver:          v.GetString("db.driver"),
			Host:            v.GetString("db.host"),
			Port:            v.GetInt("db.port"),
			User:            v.GetString("db.user"),
			Password:        v.GetString("db.password"),
			DBName:          v.GetString("db.name"),
			SSLMode:         v.GetString("db.ssl_mode"),
			FilePath:        v.GetString("db.file_path"),
			MaxIdleConns:    v.GetInt("db.max_idle_conns"),
			MaxOpenConns:    v.GetInt("db.max_open_conns"),
			ConnMaxLifetime: v.GetInt("db.conn_max_lifetime_minutes"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			Secret:   v.GetString("jwt.secret"),
			Duration: v.GetDuration("jwt.duration"),
			Issuer:   v.GetString("jwt.issuer"),
		},
		Upload: UploadConfig{
			MaxSizeBytes: v.GetInt64("upload.max_size_bytes"),
			BasePath:     v.GetString("upload.base_path"),
			URLPrefix:    v.GetString("upload.url_prefix"),
		},
		Storage: StorageConfig{
			Backend: v.GetString("storage.backend"),
			S3: storage.S3Config{
				Endpoint:        v.GetString("storage.s3.endpoint"),
				Region:          v.GetString("storage.s3.region"),
				Bucket:          v.GetString("storage.s3.bucket"),
				AccessKeyID:     v.GetString("storage.s3.access_key_id"),
				SecretAccessKey: v.GetString("storage.s3.secret_access_key"),
				UsePathStyle:    v.GetBool("storage.s3.use_path_style"),
				PublicURL:       v.GetString("storage.s3.public_url"),
			},
		},
		Cache: CacheConfig{
			SearchTTL: v.GetDuration("cache.search_ttl"),
		},
		CORS: CORSConfig{
			Origins: splitOrigins(v.GetString("cors.origins")),
		},
		LogLevel: v.GetString("log.level"),
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)

	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "iw_project")
	v.SetDefault("db.ssl_mode", "disable")
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.max_open_conns", 100)
	v.SetDefault("db.conn_max_lifetime_minutes", 60)

	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("jwt.duration", 24*time.Hour)
	v.SetDefault("jwt.issuer", "iw-project")

	v.SetDefault("upload.max_size_bytes", int64(100*1024*1024))
	v.SetDefault("upload.base_path", "./uploads")
	v.SetDefault("upload.url_prefix", "/uploads")

	v.SetDefault("storage.backend", "local")

	v.SetDefault("cache.search_ttl", 5*time.Minute)

	v.SetDefault("cors.origins",
		"http://localhost:3000,http://localhost:3001,http://localhost:5173,http://localhost:5174")

	v.SetDefault("log.level", "info")
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
