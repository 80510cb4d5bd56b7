package models

import (
	"time"

	"wiki-analyzer/analysis"
)

// SavedArticle is a Wikipedia article the user chose to keep.
// Table: saved_articles
type SavedArticle struct {
	ID        int64            `json:"id"`
	Title     string           `json:"title"`
	URL       string           `json:"url"`
	Summary   string           `json:"summary"`
	Note      *string          `json:"note"`
	CreatedAt time.Time        `json:"created_at"`
	Analysis  *ArticleAnalysis `json:"analysis,omitempty"`
}

// ArticleAnalysis is the analysis record owned by exactly one SavedArticle.
// Table: article_analyses (article_id is unique, ON DELETE CASCADE)
type ArticleAnalysis struct {
	ID        int64 `json:"id"`
	ArticleID int64 `json:"article_id"`
	analysis.Result
}
