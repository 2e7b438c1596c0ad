package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	SourceGoogle = "google"
	SourceXLSX   = "xlsx"

	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Sheets      Sheets      `mapstructure:",squash"`
	Schema      Schema      `mapstructure:",squash"`
	Cache       Cache       `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Cors        Cors        `mapstructure:",squash"`
	FetchLog    FetchLog    `mapstructure:",squash"`
	CacheWarmup CacheWarmup `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel        string `mapstructure:"log_level"`
	DefaultPageSize int    `mapstructure:"default_page_size"`
}

type Sheets struct {
	Source             string        `mapstructure:"sheets_source"`
	SpreadsheetID      string        `mapstructure:"spreadsheet_id"`
	SheetName          string        `mapstructure:"sheet_name"`
	EventSheetName     string        `mapstructure:"event_sheet_name"`
	ServiceAccountJSON string        `mapstructure:"google_service_account_json"`
	XLSXPath           string        `mapstructure:"xlsx_path"`
	XLSXWatch          bool          `mapstructure:"xlsx_watch"`
	UpstreamTimeout    time.Duration `mapstructure:"upstream_timeout"`
}

type Schema struct {
	ValidateHeaders bool `mapstructure:"schema_validate_headers"`
	StrictHeaders   bool `mapstructure:"schema_strict_headers"`
}

type Cache struct {
	Backend     string        `mapstructure:"cache_backend"`
	RedisURL    string        `mapstructure:"redis_url"`
	RedisPrefix string        `mapstructure:"redis_prefix"`
	DefaultTTL  time.Duration `mapstructure:"cache_default_ttl"`
	DataTTL     time.Duration `mapstructure:"cache_data_ttl"`
	LookupTTL   time.Duration `mapstructure:"cache_lookup_ttl"`
}

type Auth struct {
	Secret    string `mapstructure:"auth_secret"`
	Issuer    string `mapstructure:"auth_issuer"`
	Audience  string `mapstructure:"auth_audience"`
	AdminRole string `mapstructure:"auth_admin_role"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type FetchLog struct {
	Enabled bool `mapstructure:"fetch_log_enabled"`
}

type CacheWarmup struct {
	CronSchedule string `mapstructure:"cache_warmup_cron"`
	Enabled      bool   `mapstructure:"cache_warmup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("DEFAULT_PAGE_SIZE", 20)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SHEETS_SOURCE", SourceGoogle)
	viper.SetDefault("SPREADSHEET_ID", "")
	viper.SetDefault("SHEET_NAME", "Sheet1")
	viper.SetDefault("EVENT_SHEET_NAME", "Event 2024")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_JSON", "")
	viper.SetDefault("XLSX_PATH", "")
	viper.SetDefault("XLSX_WATCH", false)
	viper.SetDefault("UPSTREAM_TIMEOUT", "30s")

	viper.SetDefault("SCHEMA_VALIDATE_HEADERS", true)
	viper.SetDefault("SCHEMA_STRICT_HEADERS", false)

	viper.SetDefault("CACHE_BACKEND", CacheBackendMemory)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REDIS_PREFIX", "event-dashboard:")
	viper.SetDefault("CACHE_DEFAULT_TTL", "120s")
	viper.SetDefault("CACHE_DATA_TTL", "900s")
	viper.SetDefault("CACHE_LOOKUP_TTL", "6h")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_ISSUER", "")
	viper.SetDefault("AUTH_AUDIENCE", "")
	viper.SetDefault("AUTH_ADMIN_ROLE", "admin")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("FETCH_LOG_ENABLED", false)

	viper.SetDefault("CACHE_WARMUP_CRON", "*/10 * * * *") // a cada 10 minutos
	viper.SetDefault("CACHE_WARMUP_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	config.Cors.AllowedOrigins = trimAll(config.Cors.AllowedOrigins)
	config.Sheets.Source = strings.ToLower(strings.TrimSpace(config.Sheets.Source))
	config.Cache.Backend = strings.ToLower(strings.TrimSpace(config.Cache.Backend))

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica combinações obrigatórias de configuração
func (c *Config) Validate() error {
	switch c.Sheets.Source {
	case SourceGoogle:
		if c.Sheets.SpreadsheetID == "" {
			return fmt.Errorf("SPREADSHEET_ID é obrigatório quando SHEETS_SOURCE=%s", SourceGoogle)
		}
	case SourceXLSX:
		if c.Sheets.XLSXPath == "" {
			return fmt.Errorf("XLSX_PATH é obrigatório quando SHEETS_SOURCE=%s", SourceXLSX)
		}
	default:
		return fmt.Errorf("SHEETS_SOURCE inválido: %q", c.Sheets.Source)
	}

	switch c.Cache.Backend {
	case CacheBackendMemory:
	case CacheBackendRedis:
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("REDIS_URL é obrigatório quando CACHE_BACKEND=%s", CacheBackendRedis)
		}
	default:
		return fmt.Errorf("CACHE_BACKEND inválido: %q", c.Cache.Backend)
	}

	if c.Auth.Secret == "" {
		return fmt.Errorf("AUTH_SECRET é obrigatório")
	}

	return nil
}

// Credentials aceita o JSON da conta de serviço diretamente ou o caminho para o arquivo
func (s Sheets) Credentials() ([]byte, error) {
	value := strings.TrimSpace(s.ServiceAccountJSON)
	if value == "" {
		return nil, nil
	}
	if strings.HasPrefix(value, "{") {
		return []byte(value), nil
	}

	data, err := os.ReadFile(value)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler GOOGLE_SERVICE_ACCOUNT_JSON: %w", err)
	}
	return data, nil
}

func trimAll(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
