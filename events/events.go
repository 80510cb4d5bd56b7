package events

import (
	"time"

	"github.com/google/uuid"

	"wiki-analyzer/models"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	ArticleAnalyzed    EventType = "article.analyzed"
	ArticleSaved       EventType = "article.saved"
	ArticleNoteUpdated EventType = "article.note_updated"
	ArticleDeleted     EventType = "article.deleted"
)

const (
	SourceAPI    = "api"
	EventVersion = "1"
)

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

func NewBaseEvent(t EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now().UTC(),
		Source:    SourceAPI,
		Version:   EventVersion,
	}
}

// ArticleEvent 는 아티클 분석/저장/메모 수정/삭제 시 발행된다.
// article.analyzed 는 아직 저장되지 않은 아티클이라 ArticleID 가 0 이다.
type ArticleEvent struct {
	BaseEvent
	ArticleID  int64    `json:"article_id,omitempty"`
	Title      string   `json:"title,omitempty"`
	URL        string   `json:"url,omitempty"`
	Note       *string  `json:"note,omitempty"`
	Topics     []string `json:"topics,omitempty"`
	Complexity string   `json:"complexity,omitempty"`
	WordCount  int      `json:"word_count"`
	Sentiment  string   `json:"sentiment,omitempty"`
}

// FromSavedArticle 은 저장된 아티클로 이벤트를 만든다. 분석 결과가 있으면 요약 필드를 채운다.
func FromSavedArticle(t EventType, a *models.SavedArticle) ArticleEvent {
	ev := ArticleEvent{
		BaseEvent: NewBaseEvent(t),
		ArticleID: a.ID,
		Title:     a.Title,
		URL:       a.URL,
		Note:      a.Note,
	}
	if a.Analysis != nil {
		ev.Topics = a.Analysis.Topics
		ev.Complexity = a.Analysis.Complexity
		ev.WordCount = a.Analysis.WordCount
		ev.Sentiment = a.Analysis.Sentiment.Label()
	}
	return ev
}

// AuditRecord 는 이벤트를 article_events 컬렉션 문서로 변환한다.
func (e ArticleEvent) AuditRecord(retry int) models.ArticleEvent {
	return models.ArticleEvent{
		EventID:    e.ID,
		Type:       string(e.Type),
		ArticleID:  e.ArticleID,
		Title:      e.Title,
		URL:        e.URL,
		Note:       e.Note,
		Topics:     e.Topics,
		Complexity: e.Complexity,
		WordCount:  e.WordCount,
		Sentiment:  e.Sentiment,
		Retry:      retry,
		OccurredAt: e.Timestamp,
	}
}
