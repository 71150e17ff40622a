package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Database DatabaseConfig
	Adzuna   AdzunaConfig
	Redis    RedisConfig
	OCR      OCRConfig
	Output   OutputConfig
	Fetch    FetchConfig
}

type AppConfig struct {
	AppName     string `validate:"required"`
	Environment string `validate:"oneof=development staging production"`
	LogLevel    string
}

type HTTPConfig struct {
	Port         string `validate:"required"`
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Path          string `validate:"required"`
	MigrationsDir string `validate:"required"`
}

// AdzunaConfig holds optional API credentials. When AppID or AppKey is
// empty the fetcher degrades to the built-in sample job set.
type AdzunaConfig struct {
	AppID   string
	AppKey  string
	BaseURL string `validate:"required,url"`
	Country string `validate:"required,len=2"`
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type OCRConfig struct {
	Binary    string `validate:"required"`
	Languages string
}

type OutputConfig struct {
	ReportPath string `validate:"required"`
	ChartsDir  string `validate:"required"`
}

type FetchConfig struct {
	Timeout  time.Duration `validate:"min=1s"`
	PerPage  int           `validate:"min=1,max=50"`
	BoardURL string
	Workers  int `validate:"min=1"`
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads configuration from the environment, after a best-effort
// .env load. Only APP settings are hard-required; every domain setting
// carries a default so the CLI works out of the box.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "job-market-analyzer"),
		Environment: opt("APP_ENV", "development"),
		LogLevel:    opt("LOG_LEVEL", "info"),
	}

	cfg.HTTP = HTTPConfig{
		Port:         opt("HTTP_PORT", "8080"),
		ReadTimeout:  optDuration("HTTP_READ_TIMEOUT", 15*time.Second, &missing),
		WriteTimeout: optDuration("HTTP_WRITE_TIMEOUT", 30*time.Second, &missing),
	}

	cfg.Database = DatabaseConfig{
		Path:          opt("DB_PATH", "data/jobanalyzer.db"),
		MigrationsDir: opt("MIGRATIONS_DIR", "migrations"),
	}

	cfg.Adzuna = AdzunaConfig{
		AppID:   opt("ADZUNA_APP_ID", ""),
		AppKey:  opt("ADZUNA_API_KEY", ""),
		BaseURL: opt("ADZUNA_BASE_URL", "https://api.adzuna.com"),
		Country: opt("ADZUNA_COUNTRY", "us"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", ""),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
		TTL:      optDuration("REDIS_TTL", 10*time.Minute, &missing),
	}

	cfg.OCR = OCRConfig{
		Binary:    opt("OCR_BINARY", "tesseract"),
		Languages: opt("OCR_LANGUAGES", "eng"),
	}

	cfg.Output = OutputConfig{
		ReportPath: opt("REPORT_PATH", "analysis_results.txt"),
		ChartsDir:  opt("CHARTS_DIR", "charts"),
	}

	cfg.Fetch = FetchConfig{
		Timeout:  optDuration("FETCH_TIMEOUT", 10*time.Second, &missing),
		PerPage:  optInt("FETCH_PER_PAGE", 50, &missing),
		BoardURL: opt("JOB_BOARD_URL", ""),
		Workers:  optInt("FETCH_WORKERS", 4, &missing),
	}

	// REQUIRE_ADZUNA forces credentialed fetching instead of falling back.
	if parseBool(os.Getenv("REQUIRE_ADZUNA")) {
		_ = req("ADZUNA_APP_ID")
		_ = req("ADZUNA_API_KEY")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// AdzunaConfigured reports whether both API credentials are present.
func (c Config) AdzunaConfigured() bool {
	return c.Adzuna.AppID != "" && c.Adzuna.AppKey != ""
}

// RedisConfigured reports whether a cache host was supplied.
func (c Config) RedisConfigured() bool {
	return c.Redis.Host != ""
}

func optDuration(key string, def time.Duration, missing *[]string) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		*missing = append(*missing, key+" (invalid duration)")
		return def
	}
	return d
}

func optInt(key string, def int, missing *[]string) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*missing = append(*missing, key+" (invalid integer)")
		return def
	}
	return n
}

func parseBool(raw string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && b
}
