package dto

import (
	"time"

	"wiki-analyzer/analysis"
)

type CreateSavedArticleRequestDTO struct {
	Title   string  `json:"title" example:"Barack Obama"`
	URL     string  `json:"url" example:"https://en.wikipedia.org/wiki/Barack_Obama"`
	Summary string  `json:"summary" example:"Barack Obama is an American politician who served as the 44th president of the United States."`
	Note    *string `json:"note,omitempty" example:"leer más tarde"`
}

// UpdateNoteRequestDTO 의 note 는 필수다. 빈 문자열은 메모를 비우는 것으로 본다.
type UpdateNoteRequestDTO struct {
	Note *string `json:"note" binding:"required" example:"revisar la sección de política"`
}

type SavedArticleDTO struct {
	ID        int64            `json:"id" example:"1"`
	Title     string           `json:"title"`
	URL       string           `json:"url"`
	Summary   string           `json:"summary"`
	Note      *string          `json:"note"`
	CreatedAt time.Time        `json:"created_at"`
	Analysis  *analysis.Result `json:"analysis"`
}
