package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ehr/opsboard/internal/platform/calendar"
	"github.com/ehr/opsboard/internal/platform/submission"
)

type Config struct {
	Port           string        `mapstructure:"PORT"`
	Env            string        `mapstructure:"ENV"`
	DatabaseURL    string        `mapstructure:"DATABASE_URL"`
	DBMaxConns     int32         `mapstructure:"DB_MAX_CONNS"`
	DBMinConns     int32         `mapstructure:"DB_MIN_CONNS"`
	RedisURL       string        `mapstructure:"REDIS_URL"`
	AuthSigningKey string        `mapstructure:"AUTH_SIGNING_KEY"`
	AuthIssuer     string        `mapstructure:"AUTH_ISSUER"`
	AuthAudience   string        `mapstructure:"AUTH_AUDIENCE"`
	CORSOrigins    []string      `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS   float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int           `mapstructure:"RATE_LIMIT_BURST"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	BodyLimit      string        `mapstructure:"BODY_LIMIT"`
	ReferenceDate  string        `mapstructure:"REFERENCE_DATE"`
	ScheduleDate   string        `mapstructure:"SCHEDULE_DATE"`
	SubmissionMode string        `mapstructure:"SUBMISSION_MODE"`
	MigrationsDir  string        `mapstructure:"MIGRATIONS_DIR"`
}

var keys = []string{
	"PORT", "ENV", "DATABASE_URL", "DB_MAX_CONNS", "DB_MIN_CONNS", "REDIS_URL",
	"AUTH_SIGNING_KEY", "AUTH_ISSUER", "AUTH_AUDIENCE", "CORS_ORIGINS",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "REQUEST_TIMEOUT", "BODY_LIMIT",
	"REFERENCE_DATE", "SCHEDULE_DATE", "SUBMISSION_MODE", "MIGRATIONS_DIR",
}

// Load reads the environment, falling back to a .env file in the working
// directory. It does not validate; call Validate before serving.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("BODY_LIMIT", "1M")
	v.SetDefault("REFERENCE_DATE", "2024-10-18")
	v.SetDefault("SCHEDULE_DATE", "2024-10-19")
	v.SetDefault("SUBMISSION_MODE", string(submission.ModeDiscard))
	v.SetDefault("MIGRATIONS_DIR", "migrations")

	// Bind env vars explicitly so Unmarshal picks them up
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// A missing .env is fine.
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// viper splits on commas but keeps the spaces around each origin
	cfg.CORSOrigins = splitList(strings.Join(cfg.CORSOrigins, ","))
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// UsesMemoryStore reports whether the collections live in process memory.
func (c *Config) UsesMemoryStore() bool {
	return c.DatabaseURL == ""
}

// Reference is the date expiry and census figures are computed against.
func (c *Config) Reference() calendar.Date {
	d, _ := calendar.ParseDate(c.ReferenceDate)
	return d
}

// Schedule is the day the appointment views open on.
func (c *Config) Schedule() calendar.Date {
	d, _ := calendar.ParseDate(c.ScheduleDate)
	return d
}

func (c *Config) Submission() submission.Mode {
	return submission.Mode(c.SubmissionMode)
}

// Validate checks that the configuration is safe to run. Outside
// development a signing key is required so real JWT authentication is
// enforced.
func (c *Config) Validate() error {
	if _, err := calendar.ParseDate(c.ReferenceDate); err != nil {
		return fmt.Errorf("REFERENCE_DATE: %w", err)
	}
	if _, err := calendar.ParseDate(c.ScheduleDate); err != nil {
		return fmt.Errorf("SCHEDULE_DATE: %w", err)
	}
	if !c.Submission().Valid() {
		return fmt.Errorf("SUBMISSION_MODE must be %q or %q, got %q",
			submission.ModeDiscard, submission.ModePersist, c.SubmissionMode)
	}
	if !c.IsDev() && c.AuthSigningKey == "" {
		return fmt.Errorf("AUTH_SIGNING_KEY is required when ENV=%q", c.Env)
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	return nil
}
