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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Tiltify      Tiltify      `mapstructure:",squash"`
	CampaignSync CampaignSync `mapstructure:",squash"`
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
}

type Tiltify struct {
	URL          string        `mapstructure:"tiltify_url"`
	AppToken     string        `mapstructure:"tiltify_app_token"`
	PageSize     int           `mapstructure:"tiltify_page_size"`
	FetchTimeout time.Duration `mapstructure:"tiltify_fetch_timeout"`
}

type CampaignSync struct {
	CronSchedule        string `mapstructure:"campaign_sync_cron"`
	Enabled             bool   `mapstructure:"campaign_sync_enabled"`
	RequestDelaySeconds int    `mapstructure:"campaign_sync_request_delay_seconds"`
	// Campaigns to warm up, each as "<account>/<slug>".
	TrackedCampaigns []string `mapstructure:"campaign_sync_tracked_campaigns"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/donations")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("TILTIFY_URL", "https://tiltify.com")
	viper.SetDefault("TILTIFY_APP_TOKEN", "your_app_token")
	viper.SetDefault("TILTIFY_PAGE_SIZE", 100)
	viper.SetDefault("TILTIFY_FETCH_TIMEOUT", "5m")

	viper.SetDefault("CAMPAIGN_SYNC_CRON", "0 5 * * *")
	viper.SetDefault("CAMPAIGN_SYNC_ENABLED", false)
	viper.SetDefault("CAMPAIGN_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("CAMPAIGN_SYNC_TRACKED_CAMPAIGNS", "")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("config: no .env file read by viper, using environment variables: ", err)
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

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: loaded env file from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found, relying on process environment")
}
