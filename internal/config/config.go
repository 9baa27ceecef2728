package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `env:",prefix=SERVER_"`
	Database DatabaseConfig `env:",prefix=DB_"`
	AMQP     AMQPConfig     `env:",prefix=AMQP_"`
	Mail     MailConfig     `env:",prefix=MAIL_"`
	App      AppConfig      `env:",prefix=APP_"`
}

type ServerConfig struct {
	Port           string   `env:"PORT,default=2022"`
	Host           string   `env:"HOST,default=0.0.0.0"`
	ReadTimeout    int      `env:"READ_TIMEOUT,default=15"`  // seconds
	WriteTimeout   int      `env:"WRITE_TIMEOUT,default=15"` // seconds
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,default=*"`
}

// DatabaseConfig holds PostgreSQL configuration. URL (DB_URL) wins over the
// discrete fields when set.
type DatabaseConfig struct {
	URL         string `env:"URL"`
	Host        string `env:"HOST,default=localhost"`
	Port        string `env:"PORT,default=5432"`
	User        string `env:"USER,default=postgres"`
	Password    string `env:"PASSWORD,default=postgres"`
	Name        string `env:"NAME,default=landing"`
	SSLMode     string `env:"SSL_MODE,default=disable"`
	MaxConns    int    `env:"MAX_CONNS,default=10"`
	MinConns    int    `env:"MIN_CONNS,default=5"`
	AutoMigrate bool   `env:"AUTO_MIGRATE,default=true"`
}

// AMQPConfig enables domain event publishing when URL is set.
type AMQPConfig struct {
	URL string `env:"URL"`
}

// MailConfig enables contact-form notifications when Host and NotifyTo are set.
type MailConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT,default=587"`
	User     string `env:"USER"`
	Password string `env:"PASS"`
	From     string `env:"FROM,default=nao-responda@liguemedicina.com"`
	NotifyTo string `env:"NOTIFY_TO"`
}

type AppConfig struct {
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	Version     string `env:"VERSION,default=1.0.0"`
}

// Load reads an optional .env file and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	// .env is optional; real environment variables always take precedence.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}

// GetDatabaseURL returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDatabaseURL() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// GetServerAddr returns the server address
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func (c *AMQPConfig) Enabled() bool {
	return c.URL != ""
}

func (c *MailConfig) Enabled() bool {
	return c.Host != "" && c.NotifyTo != ""
}

func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}
