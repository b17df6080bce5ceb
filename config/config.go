package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Redis      RedisConfig
	Blob       BlobConfig
	Cloudinary CloudinaryConfig
	GCS        GCSConfig
	Intake     IntakeConfig
	Mail       MailConfig
	Log        LogConfig
	Seed       SeedConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// RateLimit is the number of public intake requests allowed per client IP per minute.
	RateLimit int
	// PublicURL is where the back office is served, e.g. https://reddybook.example
	PublicURL string
}

// SignInURL is the back-office address account mail links to.
func (c ServerConfig) SignInURL() string {
	return strings.TrimRight(c.PublicURL, "/") + "/admin"
}

type DatabaseConfig struct {
	Driver          string // mysql | postgres | sqlite
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	AccessSecret string
	AccessExpiry time.Duration
	Issuer       string
}

// RedisConfig holds the session store address. Empty Addr keeps sessions in process.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type BlobConfig struct {
	Backend  string // local | cloudinary | gcs
	LocalDir string
	// LocalBaseURL prefixes public URLs of locally stored files, e.g. https://example.com/uploads
	LocalBaseURL string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

type GCSConfig struct {
	Bucket          string
	CredentialsFile string
}

type IntakeConfig struct {
	CountryCode string
	Timezone    string
	Brand       string
}

// Location resolves the intake timezone, falling back to UTC on a bad name.
func (c IntakeConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type MailConfig struct {
	SMTPHost    string
	SMTPPort    int
	Username    string
	Password    string
	FromAddress string
}

type LogConfig struct {
	Level  string
	Format string
}

// SeedConfig is used by the seed-admin command when flags are not given.
type SeedConfig struct {
	Email    string
	Password string
}

// Load reads config.yaml (if present) and REDDY_* environment variables on top of defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.SetEnvPrefix("REDDY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		Server: ServerConfig{
			Port:         v.GetString("server.port"),
			Env:          v.GetString("server.env"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			RateLimit:    v.GetInt("server.rate_limit"),
			PublicURL:    v.GetString("server.public_url"),
		},
		Database: DatabaseConfig{
			Driver:          v.GetString("database.driver"),
			DSN:             v.GetString("database.dsn"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			ConnMaxLifetime: v.GetDuration("database.conn_max_lifetime"),
		},
		JWT: JWTConfig{
			AccessSecret: v.GetString("jwt.access_secret"),
			AccessExpiry: v.GetDuration("jwt.access_expiry"),
			Issuer:       v.GetString("jwt.issuer"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Blob: BlobConfig{
			Backend:      v.GetString("blob.backend"),
			LocalDir:     v.GetString("blob.local_dir"),
			LocalBaseURL: v.GetString("blob.local_base_url"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: v.GetString("cloudinary.cloud_name"),
			APIKey:    v.GetString("cloudinary.api_key"),
			APISecret: v.GetString("cloudinary.api_secret"),
		},
		GCS: GCSConfig{
			Bucket:          v.GetString("gcs.bucket"),
			CredentialsFile: v.GetString("gcs.credentials_file"),
		},
		Intake: IntakeConfig{
			CountryCode: v.GetString("intake.country_code"),
			Timezone:    v.GetString("intake.timezone"),
			Brand:       v.GetString("intake.brand"),
		},
		Mail: MailConfig{
			SMTPHost:    v.GetString("mail.smtp_host"),
			SMTPPort:    v.GetInt("mail.smtp_port"),
			Username:    v.GetString("mail.username"),
			Password:    v.GetString("mail.password"),
			FromAddress: v.GetString("mail.from_address"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Seed: SeedConfig{
			Email:    v.GetString("seed.email"),
			Password: v.GetString("seed.password"),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.rate_limit", 30)
	v.SetDefault("server.public_url", "http://localhost:8080")

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.dsn", "reddy:reddy@tcp(localhost:3306)/reddybook?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("jwt.access_secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", 12*time.Hour)
	v.SetDefault("jwt.issuer", "reddybook")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("blob.backend", "local")
	v.SetDefault("blob.local_dir", "./uploads")
	v.SetDefault("blob.local_base_url", "/uploads")

	v.SetDefault("intake.country_code", "91")
	v.SetDefault("intake.timezone", "Asia/Kolkata")
	v.SetDefault("intake.brand", "Reddy Book")

	v.SetDefault("mail.smtp_host", "")
	v.SetDefault("mail.smtp_port", 587)
	v.SetDefault("mail.from_address", "noreply@reddybook.local")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
