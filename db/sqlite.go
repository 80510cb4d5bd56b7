package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// schema 는 저장된 아티클과 1:1 로 소유되는 분석 결과 테이블이다.
// 아티클을 삭제하면 분석 결과도 함께 삭제된다(ON DELETE CASCADE).
const schema = `
CREATE TABLE IF NOT EXISTS saved_articles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	url TEXT NOT NULL,
	summary TEXT NOT NULL,
	note TEXT,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_saved_articles_created_at ON saved_articles(created_at DESC);

CREATE TABLE IF NOT EXISTS article_analyses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	article_id INTEGER NOT NULL UNIQUE REFERENCES saved_articles(id) ON DELETE CASCADE,
	frequent_words TEXT NOT NULL DEFAULT '[]',
	polarity REAL NOT NULL DEFAULT 0,
	subjectivity REAL NOT NULL DEFAULT 0,
	topics TEXT NOT NULL DEFAULT '[]',
	complexity TEXT NOT NULL,
	word_count INTEGER NOT NULL DEFAULT 0,
	sentences INTEGER NOT NULL DEFAULT 0,
	avg_words_per_sentence INTEGER NOT NULL DEFAULT 0,
	estimated_reading_time INTEGER NOT NULL DEFAULT 1,
	key_insights TEXT NOT NULL DEFAULT '[]',
	named_entities TEXT NOT NULL DEFAULT '[]'
);
`

// OpenSQLite opens (or creates) the database file at path and ensures the schema.
// Foreign keys are enabled on every pooled connection through the DSN pragma.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return conn, nil
}
