package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig     `yaml:"logging"`
	Server      ServerConfig      `yaml:"server"`
	Ingest      IngestConfig      `yaml:"ingest"`
	Embedder    EmbedderConfig    `yaml:"embedder"`
	Sources     SourcesConfig     `yaml:"sources"`
	Aggregation AggregationConfig `yaml:"aggregation"`

	// Values below come from the environment, not config.yaml.
	MongoURI        string `yaml:"-"`
	MongoDBName     string `yaml:"-"`
	KafkaBrokers    string `yaml:"-"`
	EmbedderAPIKey  string `yaml:"-"`
	GeminiAPIKey    string `yaml:"-"`
	RedditUserAgent string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// IngestConfig controls the ingestion pipeline.
type IngestConfig struct {
	// DefaultLimit is the fetch size used when the caller passes limit <= 0.
	DefaultLimit int `yaml:"default_limit"`

	// Concurrency bounds the enrichment worker pool. 0 or less means 4.
	Concurrency int `yaml:"concurrency"`

	// FetchTimeoutSeconds caps the source connector call (step 1).
	FetchTimeoutSeconds int `yaml:"fetch_timeout_seconds"`

	// StoreTimeoutSeconds caps each store round-trip (steps 3 and 4).
	StoreTimeoutSeconds int `yaml:"store_timeout_seconds"`
}

// EmbedderConfig selects and configures the embedding model provider.
type EmbedderConfig struct {
	// Provider is one of "openai", "ollama", "gemini".
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIURL   string `yaml:"api_url"`
}

type SourcesConfig struct {
	Reddit RedditSourceConfig `yaml:"reddit"`
	RSS    RSSSourceConfig    `yaml:"rss"`
}

type RedditSourceConfig struct {
	BaseURL string `yaml:"base_url"`
}

// RSSSourceConfig lists the feeds the RSS connector searches through.
type RSSSourceConfig struct {
	Feeds []string `yaml:"feeds"`
}

type AggregationConfig struct {
	// MaxPosts caps the window read used for aggregate views.
	MaxPosts int `yaml:"max_posts"`
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

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyDefaults(&c)
	applyEnv(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func applyDefaults(c *AppConfig) {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Ingest.DefaultLimit <= 0 {
		c.Ingest.DefaultLimit = 100
	}
	if c.Ingest.Concurrency <= 0 {
		c.Ingest.Concurrency = 4
	}
	if c.Ingest.FetchTimeoutSeconds <= 0 {
		c.Ingest.FetchTimeoutSeconds = 30
	}
	if c.Ingest.StoreTimeoutSeconds <= 0 {
		c.Ingest.StoreTimeoutSeconds = 10
	}
	if c.Sources.Reddit.BaseURL == "" {
		c.Sources.Reddit.BaseURL = "https://www.reddit.com"
	}
	if c.Aggregation.MaxPosts <= 0 {
		c.Aggregation.MaxPosts = 500
	}
}

func applyEnv(c *AppConfig) {
	c.MongoURI = os.Getenv("MONGO_URI")
	c.MongoDBName = os.Getenv("MONGO_DB_NAME")
	c.KafkaBrokers = os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	c.EmbedderAPIKey = os.Getenv("EMBEDDER_API_KEY")
	c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	c.RedditUserAgent = os.Getenv("REDDIT_USER_AGENT")
	if c.RedditUserAgent == "" {
		c.RedditUserAgent = "trenddit/0.1"
	}
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
