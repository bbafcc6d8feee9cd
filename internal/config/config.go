package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Chart     ChartConfig     `mapstructure:"chart"`
	Storage   StorageConfig
	Cache     CacheConfig `mapstructure:"cache"`
	Redis     RedisConfig
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`

	// 配置文件实际路径（运行时填充，供热加载使用）
	File string `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// DashboardConfig 页面标题与叙述文本开关
type DashboardConfig struct {
	Title     string `mapstructure:"title"`
	Subtitle  string `mapstructure:"subtitle"`
	Narrative bool   `mapstructure:"narrative"`
}

type ChartConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type CacheConfig struct {
	Type       string `mapstructure:"type"`
	Size       int    `mapstructure:"size"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type LogConfig struct {
	Path string `mapstructure:"path"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	MinioSecure   bool   `mapstructure:"minio_secure"`
	OSSEndpoint   string `mapstructure:"oss_endpoint"`
	OSSAccessKey  string `mapstructure:"oss_access_key"`
	OSSSecretKey  string `mapstructure:"oss_secret_key"`
	OSSBucket     string `mapstructure:"oss_bucket"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")

	v.SetDefault("dashboard.title", "Dashboard de Transformación Digital FCC")
	v.SetDefault("dashboard.subtitle", "Aprovechamiento de Oportunidades Digitales (Seizing)")
	v.SetDefault("dashboard.narrative", true)

	v.SetDefault("chart.width", 800)
	v.SetDefault("chart.height", 450)

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_path", "./exports")

	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.size", 64)
	v.SetDefault("cache.ttl_seconds", 3600)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)

	v.SetDefault("rate_limit.max_requests", 600)
	v.SetDefault("rate_limit.window_minutes", 1)

	v.SetDefault("log.path", "logs/app.log")
}

// LoadConfig 从 path 目录读取 config.yaml；文件缺失时使用默认值
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("FCC_DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	// Storage
	v.BindEnv("storage.type", "STORAGE_TYPE")
	v.BindEnv("storage.local_path", "STORAGE_LOCAL_PATH")
	v.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	v.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("storage.minio_bucket", "MINIO_BUCKET")
	v.BindEnv("storage.oss_endpoint", "OSS_ENDPOINT")
	v.BindEnv("storage.oss_access_key", "OSS_ACCESS_KEY")
	v.BindEnv("storage.oss_secret_key", "OSS_SECRET_KEY")
	v.BindEnv("storage.oss_bucket", "OSS_BUCKET")

	// Cache / Redis
	v.BindEnv("cache.type", "CACHE_TYPE")
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart size must be positive, got %dx%d", c.Chart.Width, c.Chart.Height)
	}
	switch c.Cache.Type {
	case "memory", "redis", "none":
	default:
		return fmt.Errorf("unknown cache type %q", c.Cache.Type)
	}
	if c.RateLimit.MaxRequests <= 0 || c.RateLimit.WindowMinutes <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d per %d minutes", c.RateLimit.MaxRequests, c.RateLimit.WindowMinutes)
	}
	return nil
}
