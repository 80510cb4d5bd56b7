package dto

import (
	"time"

	"wiki-analyzer/analysis"
)

type SearchResultDTO struct {
	PageID    int64  `json:"pageid" example:"534366"`
	Title     string `json:"title" example:"Barack Obama"`
	Extract   string `json:"extract"`
	URL       string `json:"url" example:"https://en.wikipedia.org/wiki/Barack_Obama"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// ArticleDTO 는 위키백과 문서 본문(요약 또는 전문)과 그 분석 결과다.
type ArticleDTO struct {
	Title    string          `json:"title" example:"Barack Obama"`
	URL      string          `json:"url" example:"https://en.wikipedia.org/wiki/Barack_Obama"`
	Summary  string          `json:"summary"`
	Analysis analysis.Result `json:"analysis"`
}

type FeaturedArticleDTO struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Summary     string    `json:"summary"`
	PublishedAt time.Time `json:"published_at"`
}

// AnalyzeRequestDTO 는 POST /analyze 요청 본문이다. 빈 문자열도 허용한다.
type AnalyzeRequestDTO struct {
	Text string `json:"text" example:"Barack Obama was the 44th president of the United States."`
}
