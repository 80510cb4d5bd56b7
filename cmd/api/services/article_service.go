package services

import (
	"context"
	"fmt"
	"strings"

	"wiki-analyzer/analysis"
	"wiki-analyzer/cmd/api/clients/wikiclient"
	"wiki-analyzer/cmd/api/dto"
	"wiki-analyzer/eventbus"
	"wiki-analyzer/events"
	"wiki-analyzer/feeder"
)

const maxSearchLimit = 50

// WikiClient 는 ArticleService 가 사용하는 위키백과 호출 집합이다.
type WikiClient interface {
	Search(ctx context.Context, query string, limit int) ([]wikiclient.SearchResult, error)
	Summary(ctx context.Context, title string) (wikiclient.Summary, error)
	FullText(ctx context.Context, title string) (wikiclient.Summary, error)
}

// FeaturedFeed 는 오늘의 알찬 글 피드를 limit 개까지 읽는다.
type FeaturedFeed func(ctx context.Context, limit int) ([]feeder.FeaturedArticle, error)

// ArticleService 는 위키백과 검색/조회와 분석 엔진을 묶는다.
//
// - engine: 시작 시 한 번 만들어 모든 요청이 공유한다 (읽기 전용).
// - bus: 문서 분석 시 article.analyzed 이벤트를 발행한다.
type ArticleService struct {
	client      WikiClient
	featured    FeaturedFeed
	engine      *analysis.Engine
	bus         eventbus.EventBus
	searchLimit int
}

func NewArticleService(client WikiClient, featured FeaturedFeed, engine *analysis.Engine, bus eventbus.EventBus, searchLimit int) *ArticleService {
	if searchLimit <= 0 {
		searchLimit = 10
	}
	return &ArticleService{
		client:      client,
		featured:    featured,
		engine:      engine,
		bus:         bus,
		searchLimit: searchLimit,
	}
}

// Search 는 q 로 위키백과를 검색한다. limit 이 0 이하이면 설정값, 최대 50.
func (s *ArticleService) Search(ctx context.Context, q string, limit int) ([]dto.SearchResultDTO, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, fmt.Errorf("%w: query parameter q is required", ErrValidation)
	}
	limit = clampLimit(limit, s.searchLimit)

	results, err := s.client.Search(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SearchResultDTO, 0, len(results))
	for _, r := range results {
		out = append(out, dto.SearchResultDTO{
			PageID:    r.PageID,
			Title:     r.Title,
			Extract:   r.Extract,
			URL:       r.URL,
			Thumbnail: r.Thumbnail,
		})
	}
	return out, nil
}

// Get 은 문서 요약(REST summary)을 가져와 분석한다.
func (s *ArticleService) Get(ctx context.Context, title string) (dto.ArticleDTO, error) {
	summary, err := s.client.Summary(ctx, title)
	if err != nil {
		return dto.ArticleDTO{}, err
	}
	return s.analyzed(ctx, title, summary), nil
}

// GetFull 은 문서 전문을 가져와 분석한다.
func (s *ArticleService) GetFull(ctx context.Context, title string) (dto.ArticleDTO, error) {
	full, err := s.client.FullText(ctx, title)
	if err != nil {
		return dto.ArticleDTO{}, err
	}
	return s.analyzed(ctx, title, full), nil
}

func (s *ArticleService) analyzed(ctx context.Context, requested string, src wikiclient.Summary) dto.ArticleDTO {
	title := src.Title
	if title == "" {
		title = requested
	}
	result := s.engine.Analyze(src.Extract)

	ev := events.ArticleEvent{
		BaseEvent:  events.NewBaseEvent(events.ArticleAnalyzed),
		Title:      title,
		URL:        src.URL,
		Topics:     result.Topics,
		Complexity: result.Complexity,
		WordCount:  result.WordCount,
		Sentiment:  result.Sentiment.Label(),
	}
	publishArticleEvent(ctx, s.bus, ev)

	return dto.ArticleDTO{
		Title:    title,
		URL:      src.URL,
		Summary:  src.Extract,
		Analysis: result,
	}
}

// Analyze 는 임의의 텍스트를 분석한다. 엔진은 실패하지 않는다.
func (s *ArticleService) Analyze(text string) analysis.Result {
	return s.engine.Analyze(text)
}

func (s *ArticleService) Featured(ctx context.Context, limit int) ([]dto.FeaturedArticleDTO, error) {
	items, err := s.featured(ctx, clampLimit(limit, s.searchLimit))
	if err != nil {
		return nil, err
	}
	out := make([]dto.FeaturedArticleDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.FeaturedArticleDTO{
			Title:       it.Title,
			Link:        it.Link,
			Summary:     it.Summary,
			PublishedAt: it.PublishedAt,
		})
	}
	return out, nil
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		limit = fallback
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	return limit
}
