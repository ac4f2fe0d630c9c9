package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile      = ".env"
	defaultAddr         = ":8080"
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 15 * time.Second
	defaultIdleTimeout  = 60 * time.Second
	defaultSiteURL      = "http://localhost:8080"
	defaultSiteTitle    = "ethereum.org"
	defaultContentDir   = "content"
	defaultLanguage     = "en"
	defaultOutDir       = "public"
	defaultWorkers      = 4
	defaultLogLevel     = "info"
	defaultCacheTTL     = 5 * time.Minute
)

var defaultLanguages = []string{"en", "ar", "es", "fa", "ja"}

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server ServerConfig
	Site   SiteConfig
	Build  BuildConfig
	Dev    bool
	Log    LogConfig
}

// ServerConfig configures the development HTTP server.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// SiteConfig describes the content source and site-wide metadata.
type SiteConfig struct {
	URL             string
	Title           string
	ContentDir      string
	DefaultLanguage string
	Languages       []string
	ThemeVariant    string
	CacheTTL        time.Duration
}

// BuildConfig controls the static export.
type BuildConfig struct {
	OutDir  string
	Workers int
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides. An empty path disables it.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration from defaults, the .env file, the process
// environment and the explicit env map, in increasing precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnv, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if value, ok := dotEnv[key]; ok {
			return value, true
		}
		return "", false
	}

	var invalid []string
	duration := func(key string, fallback time.Duration) time.Duration {
		raw, ok := lookup(key)
		if !ok || strings.TrimSpace(raw) == "" {
			return fallback
		}
		d, err := time.ParseDuration(strings.TrimSpace(raw))
		if err != nil || d <= 0 {
			invalid = append(invalid, key)
			return fallback
		}
		return d
	}
	integer := func(key string, fallback int) int {
		raw, ok := lookup(key)
		if !ok || strings.TrimSpace(raw) == "" {
			return fallback
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n <= 0 {
			invalid = append(invalid, key)
			return fallback
		}
		return n
	}
	boolean := func(key string) bool {
		raw, ok := lookup(key)
		if !ok {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "", "0", "false", "no", "off":
			return false
		default:
			return true
		}
	}
	str := func(key, fallback string) string {
		if raw, ok := lookup(key); ok && strings.TrimSpace(raw) != "" {
			return strings.TrimSpace(raw)
		}
		return fallback
	}

	cfg := Config{
		Server: ServerConfig{
			Addr:         str("SITE_ADDR", defaultAddr),
			ReadTimeout:  duration("SITE_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: duration("SITE_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  duration("SITE_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Site: SiteConfig{
			URL:             strings.TrimRight(str("SITE_URL", defaultSiteURL), "/"),
			Title:           str("SITE_TITLE", defaultSiteTitle),
			ContentDir:      str("SITE_CONTENT_DIR", defaultContentDir),
			DefaultLanguage: strings.ToLower(str("SITE_DEFAULT_LANG", defaultLanguage)),
			Languages:       splitList(str("SITE_LANGUAGES", strings.Join(defaultLanguages, ","))),
			ThemeVariant:    str("SITE_THEME_VARIANT", ""),
			CacheTTL:        duration("SITE_CACHE_TTL", defaultCacheTTL),
		},
		Build: BuildConfig{
			OutDir:  str("SITE_OUT_DIR", defaultOutDir),
			Workers: integer("SITE_BUILD_WORKERS", defaultWorkers),
		},
		Dev: boolean("SITE_DEV"),
		Log: LogConfig{
			Level: strings.ToLower(str("SITE_LOG_LEVEL", defaultLogLevel)),
		},
	}

	if !containsString(cfg.Site.Languages, cfg.Site.DefaultLanguage) {
		invalid = append(invalid, "SITE_DEFAULT_LANG")
	}
	if len(invalid) > 0 {
		return Config{}, &ValidationError{fields: invalid}
	}
	return cfg, nil
}

func loadDotEnv(path string) (map[string]string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return values, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" || containsString(out, part) {
			continue
		}
		out = append(out, part)
	}
	return out
}

func containsString(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
