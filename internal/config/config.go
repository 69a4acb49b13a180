package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendMemory   = "memory"
)

// Config holds the configuration for the application.
type Config struct {
	Server struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"server"`
	Storage struct {
		Backend       string `mapstructure:"backend"`
		DemoOrgPrefix string `mapstructure:"demo_org_prefix"`
	} `mapstructure:"storage"`
	DynamoDB struct {
		Region          string        `mapstructure:"region"`
		AccessKeyID     string        `mapstructure:"access_key_id"`
		SecretAccessKey string        `mapstructure:"secret_access_key"`
		Endpoint        string        `mapstructure:"endpoint"`
		Table           string        `mapstructure:"table"`
		Timeout         time.Duration `mapstructure:"timeout"`
	} `mapstructure:"dynamodb"`
	Redis struct {
		Addr           string        `mapstructure:"addr"`
		Password       string        `mapstructure:"password"`
		DB             int           `mapstructure:"db"`
		EventsChannel  string        `mapstructure:"events_channel"`
		IdempotencyTTL time.Duration `mapstructure:"idempotency_ttl"`
	} `mapstructure:"redis"`
	MQTT struct {
		Broker   string `mapstructure:"broker"`
		ClientID string `mapstructure:"client_id"`
		Topic    string `mapstructure:"topic"`
	} `mapstructure:"mqtt"`
	Auth struct {
		Enabled   bool   `mapstructure:"enabled"`
		JWTSecret string `mapstructure:"jwt_secret"`
	} `mapstructure:"auth"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
}

// key -> environment variable, default
var bindings = []struct {
	key string
	env string
	def any
}{
	{"server.port", "PORT", 8080},
	{"storage.backend", "STORAGE_BACKEND", BackendDynamoDB},
	{"storage.demo_org_prefix", "DEMO_ORG_PREFIX", "demo-"},
	{"dynamodb.region", "AWS_REGION", "us-east-1"},
	{"dynamodb.access_key_id", "AWS_ACCESS_KEY_ID", "local"},
	{"dynamodb.secret_access_key", "AWS_SECRET_ACCESS_KEY", "local"},
	{"dynamodb.endpoint", "DYNAMODB_ENDPOINT", ""},
	{"dynamodb.table", "WORK_ORDERS_TABLE", "work_orders"},
	{"dynamodb.timeout", "REMOTE_TIMEOUT", "5s"},
	{"redis.addr", "REDIS_ADDR", ""},
	{"redis.password", "REDIS_PASSWORD", ""},
	{"redis.db", "REDIS_DB", 0},
	{"redis.events_channel", "EVENTS_CHANNEL", "workorders:events"},
	{"redis.idempotency_ttl", "IDEMPOTENCY_TTL", "24h"},
	{"mqtt.broker", "MQTT_BROKER", ""},
	{"mqtt.client_id", "MQTT_CLIENT_ID", "mass-oss-api"},
	{"mqtt.topic", "MQTT_TOPIC", "mass/workorders/events"},
	{"auth.enabled", "AUTH_ENABLED", true},
	{"auth.jwt_secret", "JWT_SECRET", ""},
	{"log.level", "LOG_LEVEL", "info"},
	{"log.format", "LOG_FORMAT", "text"},
}

// LoadConfig reads an optional config.yaml (working dir or ./config) and then
// the environment, which wins.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	for _, b := range bindings {
		v.SetDefault(b.key, b.def)
		if err := v.BindEnv(b.key, b.env); err != nil {
			return nil, err
		}
	}

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
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendDynamoDB, BackendMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_BACKEND %q", c.Storage.Backend)
	}
	if c.Storage.DemoOrgPrefix == "" {
		return errors.New("DEMO_ORG_PREFIX cannot be empty")
	}
	if c.Auth.Enabled && strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("JWT_SECRET is required when AUTH_ENABLED is true")
	}
	if c.DynamoDB.Timeout <= 0 {
		return errors.New("REMOTE_TIMEOUT must be positive")
	}
	return nil
}
