package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wiki-analyzer/analysis"
	"wiki-analyzer/models"
)

// ErrNotFound is returned when a saved article does not exist.
var ErrNotFound = errors.New("saved article not found")

type SavedArticleRepository struct {
	db *sql.DB
}

func NewSavedArticleRepository(db *sql.DB) *SavedArticleRepository {
	return &SavedArticleRepository{db: db}
}

const selectArticleWithAnalysis = `
SELECT a.id, a.title, a.url, a.summary, a.note, a.created_at,
	an.id, an.frequent_words, an.polarity, an.subjectivity, an.topics, an.complexity,
	an.word_count, an.sentences, an.avg_words_per_sentence, an.estimated_reading_time,
	an.key_insights, an.named_entities
FROM saved_articles a
LEFT JOIN article_analyses an ON an.article_id = a.id
`

// Create inserts the article and its analysis in one transaction and fills the generated ids.
func (r *SavedArticleRepository) Create(ctx context.Context, a *models.SavedArticle) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	a.CreatedAt = a.CreatedAt.UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO saved_articles (title, url, summary, note, created_at) VALUES (?, ?, ?, ?, ?)`,
		a.Title, a.URL, a.Summary, a.Note, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert saved article: %w", err)
	}
	if a.ID, err = res.LastInsertId(); err != nil {
		return err
	}

	if a.Analysis != nil {
		a.Analysis.ArticleID = a.ID
		if err := insertAnalysis(ctx, tx, a.Analysis); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertAnalysis(ctx context.Context, tx *sql.Tx, an *models.ArticleAnalysis) error {
	cols, err := encodeJSONColumns(an.FrequentWords, an.Topics, an.KeyInsights, an.NamedEntities)
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `
	INSERT INTO article_analyses (
		article_id, frequent_words, polarity, subjectivity, topics, complexity,
		word_count, sentences, avg_words_per_sentence, estimated_reading_time,
		key_insights, named_entities
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		an.ArticleID, cols[0], an.Sentiment.Polarity, an.Sentiment.Subjectivity, cols[1], an.Complexity,
		an.WordCount, an.Sentences, an.AvgWordsPerSentence, an.EstimatedReadingTime,
		cols[2], cols[3],
	)
	if err != nil {
		return fmt.Errorf("insert article analysis: %w", err)
	}
	an.ID, err = res.LastInsertId()
	return err
}

// GetByID returns the article with its analysis. Missing rows yield ErrNotFound.
func (r *SavedArticleRepository) GetByID(ctx context.Context, id int64) (*models.SavedArticle, error) {
	row := r.db.QueryRowContext(ctx, selectArticleWithAnalysis+` WHERE a.id = ?`, id)
	a, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List returns one page of saved articles, newest first, and the total row count.
// page is 1-based.
func (r *SavedArticleRepository) List(ctx context.Context, page, pageSize int) ([]models.SavedArticle, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM saved_articles`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count saved articles: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		selectArticleWithAnalysis+` ORDER BY a.created_at DESC, a.id DESC LIMIT ? OFFSET ?`,
		pageSize, (page-1)*pageSize,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list saved articles: %w", err)
	}
	defer rows.Close()

	out := make([]models.SavedArticle, 0, pageSize)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *a)
	}
	return out, total, rows.Err()
}

// UpdateNote replaces the note, the only field that may change after creation.
func (r *SavedArticleRepository) UpdateNote(ctx context.Context, id int64, note string) (*models.SavedArticle, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE saved_articles SET note = ? WHERE id = ?`, note, id)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes the article; its analysis is removed by the foreign key cascade.
func (r *SavedArticleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM saved_articles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete saved article: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(s rowScanner) (*models.SavedArticle, error) {
	var (
		a                                                         models.SavedArticle
		note                                                      sql.NullString
		analysisID                                                sql.NullInt64
		frequentWords, topics, complexity, keyInsights, entities sql.NullString
		polarity, subjectivity                                    sql.NullFloat64
		wordCount, sentences, avg, readingTime                    sql.NullInt64
	)
	err := s.Scan(
		&a.ID, &a.Title, &a.URL, &a.Summary, &note, &a.CreatedAt,
		&analysisID, &frequentWords, &polarity, &subjectivity, &topics, &complexity,
		&wordCount, &sentences, &avg, &readingTime,
		&keyInsights, &entities,
	)
	if err != nil {
		return nil, err
	}
	if note.Valid {
		a.Note = &note.String
	}
	if !analysisID.Valid {
		return &a, nil
	}

	an := &models.ArticleAnalysis{
		ID:        analysisID.Int64,
		ArticleID: a.ID,
		Result: analysis.Result{
			Sentiment: analysis.Sentiment{
				Polarity:     polarity.Float64,
				Subjectivity: subjectivity.Float64,
			},
			Complexity:           complexity.String,
			WordCount:            int(wordCount.Int64),
			Sentences:            int(sentences.Int64),
			AvgWordsPerSentence:  int(avg.Int64),
			EstimatedReadingTime: int(readingTime.Int64),
		},
	}
	if err := decodeJSONColumn(frequentWords.String, &an.FrequentWords); err != nil {
		return nil, err
	}
	if err := decodeJSONColumn(topics.String, &an.Topics); err != nil {
		return nil, err
	}
	if err := decodeJSONColumn(keyInsights.String, &an.KeyInsights); err != nil {
		return nil, err
	}
	if err := decodeJSONColumn(entities.String, &an.NamedEntities); err != nil {
		return nil, err
	}
	a.Analysis = an
	return &a, nil
}

func encodeJSONColumns(values ...any) ([]string, error) {
	out := make([]string, len(values))
	for i, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal json column: %w", err)
		}
		out[i] = string(b)
	}
	return out, nil
}

func decodeJSONColumn[T any](raw string, dst *[]T) error {
	*dst = []T{}
	if raw == "" || raw == "null" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("unmarshal json column: %w", err)
	}
	if *dst == nil {
		*dst = []T{}
	}
	return nil
}
