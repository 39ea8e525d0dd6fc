package configuration

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"tagtube/infrastructure/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	VendorPostgres = "postgres"
	VendorMySQL    = "mysql"
)

type Config struct {
	App         App         `mapstructure:"app"`
	Database    Database    `mapstructure:"database"`
	Heartbeat   Heartbeat   `mapstructure:"heartbeat"`
	Search      Search      `mapstructure:"search"`
	YouTube     YouTube     `mapstructure:"youtube"`
	RedisClient RedisClient `mapstructure:"redisClient"`
	Pubsub      Pubsub      `mapstructure:"pubsub"`
	ServiceBus  ServiceBus  `mapstructure:"serviceBus"`
	Logger      Logger      `mapstructure:"logger"`
	Cors        Cors        `mapstructure:"cors"`
}

type App struct {
	Port int `mapstructure:"port"`
}

type Database struct {
	Vendor string `mapstructure:"vendor"`
	Psql   Db     `mapstructure:"psql"`
	MySql  Db     `mapstructure:"mysql"`
}

type Db struct {
	Name     string `mapstructure:"name"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslMode"`
}

// Active returns the settings of the configured vendor.
func (d *Database) Active() *Db {
	if d.Vendor == VendorMySQL {
		return &d.MySql
	}
	return &d.Psql
}

// Heartbeat values are seconds.
type Heartbeat struct {
	CheckInterval int `mapstructure:"checkInterval"`
	MaxTime       int `mapstructure:"maxTime"`
}

func (h Heartbeat) CheckIntervalDuration() time.Duration {
	return time.Duration(h.CheckInterval) * time.Second
}

func (h Heartbeat) MaxIdle() time.Duration {
	return time.Duration(h.MaxTime) * time.Second
}

type Search struct {
	DefaultMaxResults int    `mapstructure:"defaultMaxResults"`
	MaxResultsLimit   int    `mapstructure:"maxResultsLimit"`
	VideoDefaultsFile string `mapstructure:"videoDefaultsFile"`
}

type YouTube struct {
	Mode         string `mapstructure:"mode"`
	APIKey       string `mapstructure:"apiKey"`
	ClientID     string `mapstructure:"clientId"`
	ClientSecret string `mapstructure:"clientSecret"`
	RedirectURI  string `mapstructure:"redirectURI"`
	AccessToken  string `mapstructure:"accessToken"`
	RefreshToken string `mapstructure:"refreshToken"`
}

type RedisClient struct {
	Host       string `mapstructure:"host"`
	Port       string `mapstructure:"port"`
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
	TTLSeconds int    `mapstructure:"ttlSeconds"`
}

func (r RedisClient) Addr() string {
	if r.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

func (r RedisClient) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

type Pubsub struct {
	ProjectID string `mapstructure:"projectID"`
	Topic     string `mapstructure:"topic"`
}

type ServiceBus struct {
	Namespace string `mapstructure:"namespace"`
	Queue     string `mapstructure:"queue"`
}

type Logger struct {
	Format string `mapstructure:"format"`
	Level  string `mapstructure:"level"`
}

type Cors struct {
	AllowOrigins []string `mapstructure:"allowOrigins"`
}

var C Config

func init() {
	loadEnvFiles("config.env", ".env")
	cfg, err := Load(viper.GetViper(), configName(), ".", "../", "../../")
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
	C = cfg
	logger.Configure(C.Logger.Format, C.Logger.Level)
}

// loadEnvFiles never overrides variables that are already set.
func loadEnvFiles(paths ...string) {
	for _, p := range paths {
		if err := godotenv.Load(p); err == nil {
			logger.GetLogger().WithField("file", p).Debug("Environment file loaded")
		}
	}
}

func configName() string {
	name := "config"
	if env := os.Getenv("ENV"); env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", 5000)
	v.SetDefault("database.vendor", VendorPostgres)
	v.SetDefault("database.psql.port", "5432")
	v.SetDefault("database.psql.sslMode", "disable")
	v.SetDefault("database.mysql.port", "3306")
	v.SetDefault("heartbeat.checkInterval", 60)
	v.SetDefault("heartbeat.maxTime", 120)
	v.SetDefault("search.defaultMaxResults", 10)
	v.SetDefault("search.maxResultsLimit", 100)
	v.SetDefault("search.videoDefaultsFile", "config/default_video_details.json")
	v.SetDefault("redisClient.port", "6379")
	v.SetDefault("redisClient.ttlSeconds", 300)
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("cors.allowOrigins", []string{"*"})
}

// Load reads the named JSON config from the first matching path and
// applies defaults and environment overrides. A missing file is not an
// error.
func Load(v *viper.Viper, name string, paths ...string) (Config, error) {
	var cfg Config

	setDefaults(v)
	v.SetConfigName(name)
	v.SetConfigType("json")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config %s: %w", name, err)
		}
		logger.GetLogger().WithField("config", name).Warn("Config file not found")
	} else {
		logger.GetLogger().WithField("config", v.ConfigFileUsed()).Info("Config set up successfully")
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(c *Config) {
	if v := os.Getenv("DB_VENDOR"); v != "" {
		c.Database.Vendor = strings.ToLower(v)
	}
	db := c.Database.Active()
	overrideString(&db.Name, "DB_NAME")
	overrideString(&db.Host, "DB_HOST")
	overrideString(&db.Port, "DB_PORT")
	overrideString(&db.User, "DB_USER")
	overrideString(&db.Password, "DB_PASSWORD")
	overrideString(&db.SSLMode, "DB_SSLMODE")

	// APP_PORT wins over PORT
	if !overrideInt(&c.App.Port, "APP_PORT") {
		overrideInt(&c.App.Port, "PORT")
	}
	overrideInt(&c.Heartbeat.CheckInterval, "HEARTBEAT_CHECK_INTERVAL")
	overrideInt(&c.Heartbeat.MaxTime, "HEARTBEAT_MAX_TIME")

	overrideString(&c.RedisClient.Host, "REDIS_HOST")
	overrideString(&c.RedisClient.Port, "REDIS_PORT")
	overrideString(&c.RedisClient.Password, "REDIS_PASSWORD")
	overrideString(&c.Pubsub.ProjectID, "PUBSUB_PROJECT_ID")
	overrideString(&c.ServiceBus.Namespace, "SERVICEBUS_NAMESPACE")
	overrideString(&c.Logger.Format, "LOG_FORMAT")
	overrideString(&c.Logger.Level, "LOG_LEVEL")
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) bool {
	v := os.Getenv(key)
	if v == "" {
		return false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"key": key, "value": v}).Warn("Ignoring non-numeric environment override")
		return false
	}
	*dst = n
	return true
}

// Validate reports every setting the service cannot start without.
func (c Config) Validate() error {
	var errs []error

	switch c.Database.Vendor {
	case VendorPostgres, VendorMySQL:
	default:
		errs = append(errs, fmt.Errorf("database.vendor %q is not supported", c.Database.Vendor))
	}
	db := c.Database.Active()
	if db.Host == "" {
		errs = append(errs, errors.New("database host is required"))
	}
	if db.Name == "" {
		errs = append(errs, errors.New("database name is required"))
	}
	if db.User == "" {
		errs = append(errs, errors.New("database user is required"))
	}
	if c.Heartbeat.CheckInterval <= 0 {
		errs = append(errs, errors.New("heartbeat.checkInterval must be positive"))
	}
	if c.Heartbeat.MaxTime <= 0 {
		errs = append(errs, errors.New("heartbeat.maxTime must be positive"))
	}
	if c.Search.DefaultMaxResults <= 0 || c.Search.MaxResultsLimit < c.Search.DefaultMaxResults {
		errs = append(errs, errors.New("search.defaultMaxResults must be positive and within search.maxResultsLimit"))
	}
	return errors.Join(errs...)
}
