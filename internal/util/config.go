package util

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "APP_CONFIG__"

// files earlier in the list take precedence; godotenv never overrides
// variables that are already set
var envFiles = []string{".env", ".env.template"}

type Config struct {
	Env       Environment
	Run       RunConfig
	Api       ApiConfig
	Db        DatabaseConfig
	Deribit   DeribitConfig
	Ingestion IngestionConfig
	Query     QueryConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type RunConfig struct {
	Host string
	Port int
}

func (c RunConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type ApiConfig struct {
	Prefix   string
	Currency string
}

func (c ApiConfig) BasePath() string {
	return c.Prefix + c.Currency
}

type DatabaseConfig struct {
	Url             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type DeribitConfig struct {
	BaseUrl string
	Timeout time.Duration
}

type IngestionConfig struct {
	Tickers      []string
	Schedule     string
	CycleTimeout time.Duration
	// 0 disables the metrics listener
	MetricsPort int
}

type QueryConfig struct {
	AllowedTickers []string
}

type RateLimitConfig struct {
	Rps   float64
	Burst int
}

type LogConfig struct {
	Level  string
	Format string
}

func DefaultConfig() Config {
	return Config{
		Env: Development,
		Run: RunConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		Api: ApiConfig{
			Prefix:   "/v1",
			Currency: "/currency",
		},
		Db: DatabaseConfig{
			MaxOpenConns:    50,
			MaxIdleConns:    10,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Deribit: DeribitConfig{
			BaseUrl: "https://www.deribit.com/api/v2/public",
			Timeout: 10 * time.Second,
		},
		Ingestion: IngestionConfig{
			Tickers:      []string{"btc_usd", "eth_usd"},
			Schedule:     "@every 60s",
			CycleTimeout: 50 * time.Second,
			MetricsPort:  0,
		},
		Query: QueryConfig{
			AllowedTickers: []string{"btc_usd", "eth_usd"},
		},
		RateLimit: RateLimitConfig{
			Rps:   20,
			Burst: 40,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads .env files into the process environment and builds the
// configuration from APP_CONFIG__ variables on top of the defaults.
func LoadConfig() (*Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	return configFromEnv(os.LookupEnv)
}

func configFromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := DefaultConfig()
	r := envReader{lookup: lookup}

	if env, ok := r.get("ENV"); ok {
		cfg.Env = Environment(strings.ToLower(env))
	}

	r.str("RUN__HOST", &cfg.Run.Host)
	r.int("RUN__PORT", &cfg.Run.Port)

	r.str("API__PREFIX", &cfg.Api.Prefix)
	r.str("API__CURRENCY", &cfg.Api.Currency)

	r.str("DB__URL", &cfg.Db.Url)
	r.int("DB__MAX_OPEN_CONNS", &cfg.Db.MaxOpenConns)
	r.int("DB__MAX_IDLE_CONNS", &cfg.Db.MaxIdleConns)
	r.duration("DB__CONN_MAX_LIFETIME", &cfg.Db.ConnMaxLifetime)

	r.str("DERIBIT__BASE_URL", &cfg.Deribit.BaseUrl)
	r.duration("DERIBIT__TIMEOUT", &cfg.Deribit.Timeout)

	r.list("INGESTION__TICKERS", &cfg.Ingestion.Tickers)
	r.str("INGESTION__SCHEDULE", &cfg.Ingestion.Schedule)
	r.duration("INGESTION__CYCLE_TIMEOUT", &cfg.Ingestion.CycleTimeout)
	r.int("INGESTION__METRICS_PORT", &cfg.Ingestion.MetricsPort)

	r.list("QUERY__ALLOWED_TICKERS", &cfg.Query.AllowedTickers)

	r.float("RATE_LIMIT__RPS", &cfg.RateLimit.Rps)
	r.int("RATE_LIMIT__BURST", &cfg.RateLimit.Burst)

	r.str("LOG__LEVEL", &cfg.Log.Level)
	r.str("LOG__FORMAT", &cfg.Log.Format)

	if r.err != nil {
		return nil, r.err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.Db.Url == "" {
		errs = append(errs, fmt.Errorf("%sDB__URL is required", envPrefix))
	}
	if c.Env != Development && c.Env != Production {
		errs = append(errs, fmt.Errorf("unknown environment %q", c.Env))
	}
	if len(c.Ingestion.Tickers) == 0 {
		errs = append(errs, errors.New("at least one ingestion ticker is required"))
	}
	if len(c.Query.AllowedTickers) == 0 {
		errs = append(errs, errors.New("at least one allowed ticker is required"))
	}
	if c.Deribit.Timeout <= 0 {
		errs = append(errs, errors.New("deribit timeout must be positive"))
	}
	return errors.Join(errs...)
}

// envReader collects the first parse error so callers can read every
// variable and check once.
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (r *envReader) get(key string) (string, bool) {
	v, ok := r.lookup(envPrefix + key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func (r *envReader) fail(key, value string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("invalid value %q for %s%s: %w", value, envPrefix, key, err)
	}
}

func (r *envReader) str(key string, dst *string) {
	if v, ok := r.get(key); ok {
		*dst = v
	}
}

func (r *envReader) int(key string, dst *int) {
	v, ok := r.get(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v, err)
		return
	}
	*dst = n
}

func (r *envReader) float(key string, dst *float64) {
	v, ok := r.get(key)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(key, v, err)
		return
	}
	*dst = f
}

func (r *envReader) duration(key string, dst *time.Duration) {
	v, ok := r.get(key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.fail(key, v, err)
		return
	}
	*dst = d
}

func (r *envReader) list(key string, dst *[]string) {
	v, ok := r.get(key)
	if !ok {
		return
	}
	out := []string{}
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	*dst = out
}
