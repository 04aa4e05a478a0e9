package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type Config struct {
	Port            string   `mapstructure:"PORT"`
	Env             string   `mapstructure:"ENV"`
	Store           string   `mapstructure:"STORE"`
	MongoURI        string   `mapstructure:"MONGO_URI"`
	MongoDatabase   string   `mapstructure:"MONGO_DATABASE"`
	RedisURL        string   `mapstructure:"REDIS_URL"`
	SendGridAPIKey  string   `mapstructure:"SENDGRID_API_KEY"`
	MailFrom        string   `mapstructure:"MAIL_FROM"`
	UploadsDir      string   `mapstructure:"UPLOADS_DIR"`
	ViewsDir        string   `mapstructure:"VIEWS_DIR"`
	LocalesDir      string   `mapstructure:"LOCALES_DIR"`
	LogoPath        string   `mapstructure:"LOGO_PATH"`
	SessionSecret   string   `mapstructure:"SESSION_SECRET"`
	SessionTTLHours int      `mapstructure:"SESSION_TTL_HOURS"`
	CORSOrigins     []string `mapstructure:"-"`
	JobsEnabled     bool     `mapstructure:"JOBS_ENABLED"`
}

var keys = []string{
	"PORT", "ENV", "STORE", "MONGO_URI", "MONGO_DATABASE", "REDIS_URL",
	"SENDGRID_API_KEY", "MAIL_FROM", "UPLOADS_DIR", "VIEWS_DIR", "LOCALES_DIR",
	"LOGO_PATH", "SESSION_SECRET", "SESSION_TTL_HOURS", "CORS_ORIGINS", "JOBS_ENABLED",
}

// Load reads the process environment. The .env file, when present, is
// expected to have been loaded into the environment already.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("STORE", StoreMongo)
	v.SetDefault("MONGO_URI", "mongodb://127.0.0.1:27017")
	v.SetDefault("MONGO_DATABASE", "clinicDB")
	v.SetDefault("MAIL_FROM", "no-reply@clinicdesk.local")
	v.SetDefault("UPLOADS_DIR", "uploads")
	v.SetDefault("VIEWS_DIR", "views")
	v.SetDefault("LOCALES_DIR", "locales")
	v.SetDefault("LOGO_PATH", "logo.png")
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("JOBS_ENABLED", true)

	for _, k := range keys {
		v.BindEnv(k)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	for _, o := range strings.Split(v.GetString("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store {
	case StoreMongo, StoreMemory:
	default:
		return fmt.Errorf("STORE must be %q or %q, got %q", StoreMongo, StoreMemory, c.Store)
	}
	if c.SessionSecret == "" {
		if c.IsProduction() {
			return fmt.Errorf("SESSION_SECRET is required when ENV=production")
		}
		c.SessionSecret = "clinicdesk-dev-secret"
	}
	if c.SessionTTLHours <= 0 {
		c.SessionTTLHours = 24
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
