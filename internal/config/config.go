package config

import (
	"time"

	pkgconfig "github.com/supportly-beer/supportly-backend/pkg/config"
	"github.com/supportly-beer/supportly-backend/pkg/storage"
)

type Config struct {
	Server   ServerConfig
	GRPC     GRPCConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Search   SearchConfig
	Mail     MailConfig
	Storage  StorageConfig
	Seed     SeedConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	FrontendURL string `mapstructure:"frontend_url"`
}

type GRPCConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	FilePath        string `mapstructure:"file_path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type JWTConfig struct {
	Secret          string        `mapstructure:"secret"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	TwofaTokenTTL   time.Duration `mapstructure:"twofa_token_ttl"`
	EmailTokenTTL   time.Duration `mapstructure:"email_token_ttl"`
	ResetTokenTTL   time.Duration `mapstructure:"reset_token_ttl"`
	TwofaIssuerName string        `mapstructure:"twofa_issuer_name"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CacheConfig struct {
	Prefix string        `mapstructure:"prefix"`
	TTL    time.Duration `mapstructure:"ttl"`
}

type SearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	Index     string   `mapstructure:"index"`
}

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type StorageConfig struct {
	Backend string              `mapstructure:"backend"` // "local" or "s3"
	Local   storage.LocalConfig `mapstructure:"local"`
	S3      storage.S3Config    `mapstructure:"s3"`
}

type SeedConfig struct {
	AdminEmail string `mapstructure:"admin_email"`
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	v, err := pkgconfig.Load("./config", "config")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.frontend_url", "http://localhost:4200")
	v.SetDefault("grpc.host", "0.0.0.0")
	v.SetDefault("grpc.port", 50051)
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "supportly")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.file_path", "./data/supportly.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.access_token_ttl", "336h")
	v.SetDefault("jwt.twofa_token_ttl", "1m")
	v.SetDefault("jwt.email_token_ttl", "24h")
	v.SetDefault("jwt.reset_token_ttl", "1h")
	v.SetDefault("jwt.twofa_issuer_name", "Supportly")
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.prefix", "supportly")
	v.SetDefault("cache.ttl", "30s")
	v.SetDefault("search.addresses", []string{"http://localhost:9200"})
	v.SetDefault("search.index", "tickets")
	v.SetDefault("mail.host", "localhost")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.from", "noreply@supportly.beer")
	v.SetDefault("storage.backend", "local")
	v.SetDefault("storage.local.base_path", "./data/blobs")
	v.SetDefault("storage.local.public_url", "http://localhost:8080/blobs")
	v.SetDefault("seed.admin_email", "admin@supportly.beer")
	v.SetDefault("log.level", "info")

	// Bind environment variables
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.frontend_url", "FRONTEND_URL")
	v.BindEnv("grpc.port", "GRPC_PORT")
	v.BindEnv("database.driver", "DB_DRIVER")
	v.BindEnv("database.host", "DB_HOST")
	v.BindEnv("database.port", "DB_PORT")
	v.BindEnv("database.user", "DB_USER")
	v.BindEnv("database.password", "DB_PASSWORD")
	v.BindEnv("database.dbname", "DB_NAME")
	v.BindEnv("database.sslmode", "DB_SSLMODE")
	v.BindEnv("database.file_path", "DB_FILE_PATH")
	v.BindEnv("jwt.secret", "JWT_SECRET")
	v.BindEnv("redis.address", "REDIS_ADDRESS")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("search.addresses", "ELASTICSEARCH_ADDRESSES")
	v.BindEnv("search.username", "ELASTICSEARCH_USERNAME")
	v.BindEnv("search.password", "ELASTICSEARCH_PASSWORD")
	v.BindEnv("mail.host", "MAIL_HOST")
	v.BindEnv("mail.port", "MAIL_PORT")
	v.BindEnv("mail.username", "MAIL_USERNAME")
	v.BindEnv("mail.password", "MAIL_PASSWORD")
	v.BindEnv("storage.backend", "STORAGE_BACKEND")
	v.BindEnv("storage.s3.endpoint", "S3_ENDPOINT")
	v.BindEnv("storage.s3.bucket", "S3_BUCKET")
	v.BindEnv("storage.s3.access_key_id", "S3_ACCESS_KEY_ID")
	v.BindEnv("storage.s3.secret_access_key", "S3_SECRET_ACCESS_KEY")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
