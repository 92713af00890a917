package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Parser   ParserConfig   `yaml:"parser"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Steps    StepsConfig    `yaml:"steps"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type ParserConfig struct {
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
}

// APIKey resolves the parser API key from the configured environment variable.
func (p ParserConfig) APIKey() string {
	env := p.APIKeyEnv
	if env == "" {
		env = "GEMINI_API_KEY"
	}
	return os.Getenv(env)
}

type ScheduleConfig struct {
	HorizonDays          int      `yaml:"horizon_days"`
	Courts               []string `yaml:"courts"`
	Times                []string `yaml:"times"`
	SlotMinutes          int      `yaml:"slot_minutes"`
	AvailabilityCacheTTL int      `yaml:"availability_cache_ttl_seconds"`
}

type StepsConfig struct {
	ParserURL       string `yaml:"parser_url"`
	AvailabilityURL string `yaml:"availability_url"`
	BookingURL      string `yaml:"booking_url"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Schedule.HorizonDays == 0 {
		c.Schedule.HorizonDays = 7
	}
	if len(c.Schedule.Courts) == 0 {
		c.Schedule.Courts = []string{"Court A", "Court B", "Court C"}
	}
	if len(c.Schedule.Times) == 0 {
		c.Schedule.Times = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}
	}
	if c.Schedule.SlotMinutes == 0 {
		c.Schedule.SlotMinutes = 60
	}
	if c.Steps.TimeoutSeconds == 0 {
		c.Steps.TimeoutSeconds = 30
	}
}
