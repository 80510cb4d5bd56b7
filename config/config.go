package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"wiki-analyzer/analysis"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	Database  DatabaseConfig  `yaml:"database"`
	Wikipedia WikipediaConfig `yaml:"wikipedia"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Mongo     MongoConfig     `yaml:"mongo"`
	Kafka     KafkaConfig     `yaml:"kafka"`
}

type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ShutdownTimeout int    `yaml:"shutdown_timeout_secs"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DatabaseConfig 는 저장된 아티클/분석 결과를 보관하는 SQLite 설정이다.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// WikipediaConfig 는 MediaWiki Action API / REST API 호출 설정이다.
// 테스트에서는 httptest 서버 주소로 교체한다.
type WikipediaConfig struct {
	APIURL          string `yaml:"api_url"`
	RESTURL         string `yaml:"rest_url"`
	FeaturedFeedURL string `yaml:"featured_feed_url"`
	UserAgent       string `yaml:"user_agent"`
	TimeoutSecs     int    `yaml:"timeout_secs"`
	SearchLimit     int    `yaml:"search_limit"`
}

// AnalysisConfig 는 분석 엔진의 고정 어휘/상위 단어 수를 정의한다.
// topics 가 비어 있으면 엔진 내장 스페인어 키워드 테이블을 사용한다.
type AnalysisConfig struct {
	TopWords int                  `yaml:"top_words"`
	Topics   []analysis.TopicRule `yaml:"topics"`
}

// MongoConfig 는 audit log 워커가 사용하는 MongoDB 설정이다.
type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

// KafkaConfig 는 아티클 이벤트 버스 설정이다. Brokers 가 비어 있으면 이벤트는 로그로만 남는다.
type KafkaConfig struct {
	Brokers string `yaml:"brokers"`
	GroupID string `yaml:"group_id"`
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
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// Parse decodes a config.yaml document, then applies defaults and environment overrides.
func Parse(data []byte) (AppConfig, error) {
	var c AppConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return AppConfig{}, err
	}
	applyEnvironmentOverrides(&c)
	applyDefaults(&c)
	return c, nil
}

// EngineOptions converts the analysis section into engine options.
func (c AppConfig) EngineOptions() analysis.Options {
	return analysis.Options{
		TopWords: c.Analysis.TopWords,
		Topics:   c.Analysis.Topics,
	}
}

func applyDefaults(c *AppConfig) {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Database.Path == "" {
		c.Database.Path = "wiki-analyzer.db"
	}
	if c.Wikipedia.APIURL == "" {
		c.Wikipedia.APIURL = "https://en.wikipedia.org/w/api.php"
	}
	if c.Wikipedia.RESTURL == "" {
		c.Wikipedia.RESTURL = "https://en.wikipedia.org/api/rest_v1"
	}
	if c.Wikipedia.FeaturedFeedURL == "" {
		c.Wikipedia.FeaturedFeedURL = "https://en.wikipedia.org/w/api.php?action=featuredfeed&feed=featured&feedformat=atom"
	}
	if c.Wikipedia.UserAgent == "" {
		c.Wikipedia.UserAgent = "wiki-analyzer/1.0"
	}
	if c.Wikipedia.TimeoutSecs <= 0 {
		c.Wikipedia.TimeoutSecs = 10
	}
	if c.Wikipedia.SearchLimit <= 0 {
		c.Wikipedia.SearchLimit = 10
	}
	if c.Analysis.TopWords <= 0 {
		c.Analysis.TopWords = analysis.DefaultTopWords
	}
	if c.Mongo.DBName == "" {
		c.Mongo.DBName = "wiki_analyzer"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "wiki-analyzer-auditlog"
	}
}

func applyEnvironmentOverrides(c *AppConfig) {
	overrides := []struct {
		key string
		dst *string
	}{
		{"SERVER_ADDR", &c.Server.Addr},
		{"LOG_LEVEL", &c.Logging.Level},
		{"DATABASE_PATH", &c.Database.Path},
		{"WIKIPEDIA_API_URL", &c.Wikipedia.APIURL},
		{"WIKIPEDIA_REST_URL", &c.Wikipedia.RESTURL},
		{"MONGO_URI", &c.Mongo.URI},
		{"MONGO_DB_NAME", &c.Mongo.DBName},
		{"KAFKA_BOOTSTRAP_SERVERS", &c.Kafka.Brokers},
		{"KAFKA_GROUP_ID", &c.Kafka.GroupID},
	}
	for _, o := range overrides {
		if v := strings.TrimSpace(os.Getenv(o.key)); v != "" {
			*o.dst = v
		}
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
