package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Meta           Meta           `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Telegram       Telegram       `mapstructure:",squash"`
	DailyBroadcast DailyBroadcast `mapstructure:",squash"`
	LoginRateLimit LoginRateLimit `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
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
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Meta struct {
	BaseURL               string        `mapstructure:"meta_base_url"`
	URL                   string        `mapstructure:"-"`
	Version               string        `mapstructure:"meta_version"`
	AppID                 string        `mapstructure:"meta_app_id"`
	AppSecret             string        `mapstructure:"meta_app_secret"`
	ActiveStatuses        []string      `mapstructure:"meta_active_statuses"`
	CampaignInsightFields string        `mapstructure:"meta_campaign_insight_fields"`
	AdInsightFields       string        `mapstructure:"meta_ad_insight_fields"`
	RequestTimeout        time.Duration `mapstructure:"meta_request_timeout"`
	MaxConcurrentRequests int           `mapstructure:"meta_max_concurrent_requests"`
}

type Auth struct {
	Secret          string        `mapstructure:"auth_secret"`
	AccessTokenTTL  time.Duration `mapstructure:"auth_access_token_ttl"`
	RefreshTokenTTL time.Duration `mapstructure:"auth_refresh_token_ttl"`
}

type Telegram struct {
	BotToken       string `mapstructure:"telegram_bot_token"`
	BotLink        string `mapstructure:"telegram_bot_link"`
	PollingEnabled bool   `mapstructure:"telegram_polling_enabled"`
	PollingTimeout int    `mapstructure:"telegram_polling_timeout"`
}

type DailyBroadcast struct {
	CronSchedule      string `mapstructure:"daily_broadcast_cron"`
	Period            string `mapstructure:"daily_broadcast_period"`
	MaxConcurrentJobs int    `mapstructure:"daily_broadcast_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"daily_broadcast_enabled"`
}

type LoginRateLimit struct {
	RequestsPerMinute float64 `mapstructure:"login_rate_limit_rpm"`
	Burst             int     `mapstructure:"login_rate_limit_burst"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_ACTIVE_STATUSES", "ACTIVE,PAUSED")
	viper.SetDefault("META_CAMPAIGN_INSIGHT_FIELDS", "spend,impressions,clicks,cpc,cpm,ctr,reach,actions")
	viper.SetDefault("META_AD_INSIGHT_FIELDS", "spend,impressions,clicks,cpc,cpm,ctr,reach")
	viper.SetDefault("META_REQUEST_TIMEOUT", "60s")
	viper.SetDefault("META_MAX_CONCURRENT_REQUESTS", 5) // insights por anúncio

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_ACCESS_TOKEN_TTL", "30m")
	viper.SetDefault("AUTH_REFRESH_TOKEN_TTL", "720h")

	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_BOT_LINK", "https://t.me/your_bot")
	viper.SetDefault("TELEGRAM_POLLING_ENABLED", false)
	viper.SetDefault("TELEGRAM_POLLING_TIMEOUT", 60)

	viper.SetDefault("DAILY_BROADCAST_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("DAILY_BROADCAST_PERIOD", "yesterday")
	viper.SetDefault("DAILY_BROADCAST_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("DAILY_BROADCAST_ENABLED", false)

	viper.SetDefault("LOGIN_RATE_LIMIT_RPM", 10)
	viper.SetDefault("LOGIN_RATE_LIMIT_BURST", 5)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

// Finalize monta os campos derivados a partir dos valores carregados
func (c *Config) Finalize() {
	c.Meta.URL = fmt.Sprintf("%s/%s", c.Meta.BaseURL, c.Meta.Version)

	if c.Meta.MaxConcurrentRequests <= 0 {
		c.Meta.MaxConcurrentRequests = 5
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

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
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
