package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultEnv                = "development"
	defaultMaxRequestBodySize = "100KB"

	// EnvProduction is the environment name that strips diagnostics from responses.
	EnvProduction = "production"

	// DriverPostgres stores data in PostgreSQL through GORM.
	DriverPostgres = "postgres"
	// DriverMemory keeps data in process memory.
	DriverMemory = "memory"
)

type Config struct {
	Env  EnvConfig  `json:"env" yaml:"env"`
	HTTP HTTPConfig `json:"http" yaml:"http"`

	Persistence PersistenceConfig `json:"persistence" yaml:"persistence"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Auth AuthConfig `json:"auth" yaml:"auth"`
}

type EnvConfig struct {
	Env         string `json:"env" yaml:"env"`
	ServiceName string `json:"serviceName" yaml:"serviceName"`
	Version     string `json:"version" yaml:"version"`
	Debug       bool   `json:"debug" yaml:"debug"`
	Log         Log    `json:"log" yaml:"log"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

type HTTPConfig struct {
	Port               int    `json:"port" yaml:"port"`
	MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	Timeouts           struct {
		ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"timeouts" yaml:"timeouts"`
	CORS CORSConfig `json:"cors" yaml:"cors"`
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	Origins []string      `json:"origins" yaml:"origins"`
	MaxAge  time.Duration `json:"maxAge" yaml:"maxAge"`
}

// PersistenceConfig selects the store backing the repositories.
type PersistenceConfig struct {
	Driver  string `json:"driver" yaml:"driver"`
	Migrate bool   `json:"migrate" yaml:"migrate"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// MaxDelay is the latency floor applied to login and registration.
	MaxDelay time.Duration `json:"maxDelay" yaml:"maxDelay"`
	Argon    ArgonConfig   `json:"argon" yaml:"argon"`
	JWT      JWTConfig     `json:"jwt" yaml:"jwt"`
}

// ArgonConfig tunes the argon2id password hash. MemoryCost is in KiB.
type ArgonConfig struct {
	HashLength  uint32 `json:"hashLength" yaml:"hashLength"`
	SaltLength  uint32 `json:"saltLength" yaml:"saltLength"`
	TimeCost    uint32 `json:"timeCost" yaml:"timeCost"`
	MemoryCost  uint32 `json:"memoryCost" yaml:"memoryCost"`
	Parallelism uint8  `json:"parallelism" yaml:"parallelism"`
}

// JWTConfig defines how session tokens are signed and checked.
type JWTConfig struct {
	Audience           string        `json:"audience" yaml:"audience"`
	Issuer             string        `json:"issuer" yaml:"issuer"`
	Secret             string        `json:"secret" yaml:"secret"`
	ExpirationInterval time.Duration `json:"expirationInterval" yaml:"expirationInterval"`
}

// IsProduction reports whether diagnostics must be kept out of responses.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, EnvProduction)
}

// Validate rejects configurations the security components cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Auth.JWT.Secret == "":
		return errors.New("auth.jwt.secret must be provided")
	case c.Auth.JWT.Issuer == "" || c.Auth.JWT.Audience == "":
		return errors.New("auth.jwt.issuer and auth.jwt.audience must be provided")
	case c.Auth.JWT.ExpirationInterval <= 0:
		return errors.New("auth.jwt.expirationInterval must be positive")
	case c.Auth.Argon.HashLength == 0 || c.Auth.Argon.TimeCost == 0 || c.Auth.Argon.MemoryCost == 0:
		return errors.New("auth.argon cost parameters must be positive")
	case c.Auth.MaxDelay < 0:
		return errors.New("auth.maxDelay must not be negative")
	}

	switch c.Persistence.Driver {
	case DriverPostgres:
		if c.Postgres == nil {
			return errors.New("postgres section is required for the postgres driver")
		}
	case DriverMemory:
	default:
		return errors.Errorf("unknown persistence driver: %q", c.Persistence.Driver)
	}

	return nil
}

// LoadWithEnv loads <name>.yaml files through koanf. Later names overlay
// earlier ones; only the first name is mandatory. Environment variables are
// applied last.
func LoadWithEnv[T any](names []string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		searchPaths = searchPaths[:0]
		for _, path := range configPath {
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)
				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for i, name := range names {
		configFile, found := findConfigFile(searchPaths, name)
		if !found {
			if i == 0 {
				return nil, errors.Errorf("config file %s.yaml not found in any search path", name)
			}

			continue
		}

		if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", name)
		}
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: AUTH_JWT_EXPIRATIONINTERVAL -> auth.jwt.expirationInterval
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %v config failed", names)
	}

	return cfg, nil
}

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

// New loads config.yaml, overlays the file named after APP_ENV and checks the result.
func New() (*Config, error) {
	currEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if currEnv == "" {
		currEnv = defaultEnv
	}

	cfg, err := LoadWithEnv[Config]([]string{"config", currEnv}, defaultPath, "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg, currEnv)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config, currEnv string) {
	if strings.TrimSpace(cfg.Env.Env) == "" {
		cfg.Env.Env = currEnv
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Persistence.Driver == "" {
		cfg.Persistence.Driver = DriverPostgres
	}
	if cfg.Auth.Argon.SaltLength == 0 {
		cfg.Auth.Argon.SaltLength = 16
	}
	if cfg.Auth.Argon.Parallelism == 0 {
		cfg.Auth.Argon.Parallelism = 1
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
