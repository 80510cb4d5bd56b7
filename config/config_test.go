package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiki-analyzer/analysis"
	"wiki-analyzer/config"
)

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(""))
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "wiki-analyzer.db", cfg.Database.Path)
	assert.Equal(t, "https://en.wikipedia.org/w/api.php", cfg.Wikipedia.APIURL)
	assert.Equal(t, 10, cfg.Wikipedia.TimeoutSecs)
	assert.Equal(t, analysis.DefaultTopWords, cfg.Analysis.TopWords)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "wiki-analyzer-auditlog", cfg.Kafka.GroupID)
}

func TestParseReadsYAML(t *testing.T) {
	data := []byte(`
server:
  addr: ":9090"
database:
  path: /tmp/articles.db
analysis:
  top_words: 5
  topics:
    - label: Deporte
      keywords: [fútbol, tenis]
kafka:
  brokers: localhost:9092
`)
	cfg, err := config.Parse(data)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/tmp/articles.db", cfg.Database.Path)
	assert.Equal(t, "localhost:9092", cfg.Kafka.Brokers)

	opts := cfg.EngineOptions()
	assert.Equal(t, 5, opts.TopWords)
	require.Len(t, opts.Topics, 1)
	assert.Equal(t, "Deporte", opts.Topics[0].Label)
	assert.Equal(t, []string{"fútbol", "tenis"}, opts.Topics[0].Keywords)
}

func TestParseEnvironmentOverrides(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/data/env.db")
	t.Setenv("KAFKA_BOOTSTRAP_SERVERS", "broker:29092")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Parse([]byte("database:\n  path: from-file.db\n"))
	require.NoError(t, err)

	assert.Equal(t, "/data/env.db", cfg.Database.Path)
	assert.Equal(t, "broker:29092", cfg.Kafka.Brokers)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := config.Parse([]byte("server: [unclosed"))
	assert.Error(t, err)
}
