package config

import (
	"errors"
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

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Meta        Meta        `mapstructure:",squash"`
	Fetch       Fetch       `mapstructure:",squash"`
	InsightSync InsightSync `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string   `mapstructure:"meta_base_url"`
	URL         string   `mapstructure:"meta_url"`
	Version     string   `mapstructure:"meta_version"`
	AccessToken string   `mapstructure:"meta_access_token"`
	AccountIDs  []string `mapstructure:"meta_account_ids"`
}

// Fetch agrupa os limites do pipeline de coleta (retry, polling, paginação)
type Fetch struct {
	MaxRetries       int           `mapstructure:"fetch_max_retries"`
	BackoffCap       time.Duration `mapstructure:"fetch_backoff_cap"`
	RateLimitWait    time.Duration `mapstructure:"fetch_rate_limit_wait"`
	PollInterval     time.Duration `mapstructure:"fetch_poll_interval"`
	JobTimeout       time.Duration `mapstructure:"fetch_job_timeout"`
	StatusBatchSize  int           `mapstructure:"fetch_status_batch_size"`
	PageSize         int           `mapstructure:"fetch_page_size"`
	RequestTimeout   time.Duration `mapstructure:"fetch_request_timeout"`
	Deadline         time.Duration `mapstructure:"fetch_deadline"`
	OutputDir        string        `mapstructure:"fetch_output_dir"`
	AuthErrorCodes   []int         `mapstructure:"fetch_auth_error_codes"`
	RateLimitedCodes []int         `mapstructure:"fetch_rate_limit_error_codes"`
}

type InsightSync struct {
	CronSchedule string `mapstructure:"insight_sync_cron"`
	LookbackDays int    `mapstructure:"insight_sync_lookback_days"`
	Enabled      bool   `mapstructure:"insight_sync_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/insights?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_URL", "") // vazio = META_BASE_URL/META_VERSION
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_ACCOUNT_IDS", "")

	// Limites do pipeline de coleta
	viper.SetDefault("FETCH_MAX_RETRIES", 5)
	viper.SetDefault("FETCH_BACKOFF_CAP", "60s")
	viper.SetDefault("FETCH_RATE_LIMIT_WAIT", "5m")
	viper.SetDefault("FETCH_POLL_INTERVAL", "5s")
	viper.SetDefault("FETCH_JOB_TIMEOUT", "5m")
	viper.SetDefault("FETCH_STATUS_BATCH_SIZE", 50)
	viper.SetDefault("FETCH_PAGE_SIZE", 500)
	viper.SetDefault("FETCH_REQUEST_TIMEOUT", "60s")
	viper.SetDefault("FETCH_DEADLINE", "0s") // 0 = sem prazo global
	viper.SetDefault("FETCH_OUTPUT_DIR", "data")
	viper.SetDefault("FETCH_AUTH_ERROR_CODES", "190,10,200")
	viper.SetDefault("FETCH_RATE_LIMIT_ERROR_CODES", "4,17,613,80000,80003,80004,80014")

	viper.SetDefault("INSIGHT_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("INSIGHT_SYNC_LOOKBACK_DAYS", 1)
	viper.SetDefault("INSIGHT_SYNC_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

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

	config.Finalize()

	return config, nil
}

// Finalize deriva os campos calculados a partir dos valores carregados
func (c *Config) Finalize() {
	c.Meta.BaseURL = strings.TrimRight(c.Meta.BaseURL, "/")
	if c.Meta.URL == "" {
		c.Meta.URL = fmt.Sprintf("%s/%s", c.Meta.BaseURL, c.Meta.Version)
	}

	accounts := make([]string, 0, len(c.Meta.AccountIDs))
	for _, id := range c.Meta.AccountIDs {
		if id = strings.TrimSpace(id); id != "" {
			accounts = append(accounts, id)
		}
	}
	c.Meta.AccountIDs = accounts

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

// Validate rejeita configurações com as quais o pipeline não consegue rodar
func (c *Config) Validate() error {
	var errs []error

	if c.Meta.AccessToken == "" {
		errs = append(errs, errors.New("META_ACCESS_TOKEN is required"))
	}
	if c.Meta.URL == "" {
		errs = append(errs, errors.New("META_URL is required"))
	}
	if c.Fetch.MaxRetries < 1 {
		errs = append(errs, fmt.Errorf("FETCH_MAX_RETRIES must be >= 1 (got %d)", c.Fetch.MaxRetries))
	}
	if c.Fetch.StatusBatchSize < 1 {
		errs = append(errs, fmt.Errorf("FETCH_STATUS_BATCH_SIZE must be >= 1 (got %d)", c.Fetch.StatusBatchSize))
	}
	if c.Fetch.PageSize < 1 {
		errs = append(errs, fmt.Errorf("FETCH_PAGE_SIZE must be >= 1 (got %d)", c.Fetch.PageSize))
	}
	if c.Fetch.PollInterval <= 0 {
		errs = append(errs, errors.New("FETCH_POLL_INTERVAL must be positive"))
	}
	if c.Fetch.JobTimeout <= 0 {
		errs = append(errs, errors.New("FETCH_JOB_TIMEOUT must be positive"))
	}
	if c.Fetch.Deadline < 0 {
		errs = append(errs, errors.New("FETCH_DEADLINE must not be negative"))
	}

	return errors.Join(errs...)
}

// loadEnvFile procura um arquivo .env no diretório atual e nos diretórios acima
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
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
