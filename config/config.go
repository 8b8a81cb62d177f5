package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Server   ServerConfig   `yaml:"server"`
	Mongo    MongoConfig    `yaml:"mongo"`
	LLM      LLMConfig      `yaml:"llm"`
	LLMQuota LLMQuotaConfig `yaml:"llm_quota"`
	Cache    CacheConfig    `yaml:"cache"`
	Analysis AnalysisConfig `yaml:"analysis"`
	EventBus EventBusConfig `yaml:"eventbus"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	BodyLimitMB    int      `yaml:"body_limit_mb"`
}

// MongoConfig holds the database name; the connection string is read from MONGO_URI.
type MongoConfig struct {
	Database string `yaml:"database"`
}

// LLMConfig describes the narrative generation model. The API key is read
// from GEMINI_API_KEY and never stored in config.yaml.
type LLMConfig struct {
	Provider  string           `yaml:"provider"`
	ModelName string           `yaml:"model_name"`
	Dashboard GenerationConfig `yaml:"dashboard"`
	Keywords  GenerationConfig `yaml:"keywords"`
}

type GenerationConfig struct {
	Temperature     float32 `yaml:"temperature"`
	MaxOutputTokens int32   `yaml:"max_output_tokens"`
	TimeoutSeconds  int     `yaml:"timeout_seconds"`
}

// Timeout returns the per-call timeout, defaulting to 30 seconds.
func (g GenerationConfig) Timeout() time.Duration {
	if g.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// LLMQuotaConfig limits narrative generation calls.
// A value of 0 or less disables the corresponding limit.
type LLMQuotaConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	RequestsPerDay    int `yaml:"requests_per_day"`
}

type CacheConfig struct {
	// Backend is "memory" (default) or "redis". The redis address is read from REDIS_ADDR.
	Backend    string `yaml:"backend"`
	TTLSeconds int    `yaml:"ttl_seconds"`
	KeyPrefix  string `yaml:"key_prefix"`
}

func (c CacheConfig) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.TTLSeconds) * time.Second
}

type AnalysisConfig struct {
	KeywordSampleLimit int `yaml:"keyword_sample_limit"`
	TopKeywords        int `yaml:"top_keywords"`
	NegativeSampleSize int `yaml:"negative_sample_size"`
	RecentSampleSize   int `yaml:"recent_sample_size"`
	ClassifyBatchSize  int `yaml:"classify_batch_size"`
}

// EventBusConfig toggles asynchronous classification of new reviews.
// Brokers and group id are read from KAFKA_BOOTSTRAP_SERVERS and KAFKA_GROUP_ID.
type EventBusConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Topic      string `yaml:"topic"`
	Partitions int    `yaml:"partitions"`
	// PublishTimeoutSeconds bounds a single publish before the API falls
	// back to inline classification.
	PublishTimeoutSeconds int `yaml:"publish_timeout_seconds"`
}

func (e EventBusConfig) PublishTimeout() time.Duration {
	return time.Duration(e.PublishTimeoutSeconds) * time.Second
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	config = c
}

// Parse decodes a config.yaml document and fills in defaults.
func Parse(data []byte) (*AppConfig, error) {
	var c AppConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	return &c, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":5000"
	}
	if c.Server.BodyLimitMB <= 0 {
		c.Server.BodyLimitMB = 10
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "ecommerce"
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "google"
	}
	if c.LLM.ModelName == "" {
		c.LLM.ModelName = "gemini-2.0-flash"
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "memory"
	}
	if c.Cache.KeyPrefix == "" {
		c.Cache.KeyPrefix = "review-insight:"
	}
	a := &c.Analysis
	if a.KeywordSampleLimit <= 0 {
		a.KeywordSampleLimit = 1000
	}
	if a.TopKeywords <= 0 {
		a.TopKeywords = 7
	}
	if a.NegativeSampleSize <= 0 {
		a.NegativeSampleSize = 100
	}
	if a.RecentSampleSize <= 0 {
		a.RecentSampleSize = 3
	}
	if a.ClassifyBatchSize <= 0 {
		a.ClassifyBatchSize = 500
	}
	if c.EventBus.Topic == "" {
		c.EventBus.Topic = "review-insight.review.events"
	}
	if c.EventBus.Partitions <= 0 {
		c.EventBus.Partitions = 3
	}
	if c.EventBus.PublishTimeoutSeconds <= 0 {
		c.EventBus.PublishTimeoutSeconds = 5
	}
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
