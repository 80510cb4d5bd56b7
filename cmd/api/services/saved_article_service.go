package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"wiki-analyzer/analysis"
	"wiki-analyzer/cmd/api/dto"
	"wiki-analyzer/eventbus"
	"wiki-analyzer/events"
	"wiki-analyzer/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// SavedArticleStore 는 저장 아티클 영속화 계층이다.
type SavedArticleStore interface {
	Create(ctx context.Context, a *models.SavedArticle) error
	List(ctx context.Context, page, pageSize int) ([]models.SavedArticle, int64, error)
	GetByID(ctx context.Context, id int64) (*models.SavedArticle, error)
	UpdateNote(ctx context.Context, id int64, note string) (*models.SavedArticle, error)
	Delete(ctx context.Context, id int64) error
}

// SavedArticleService 는 저장 아티클 CRUD 를 담당한다.
// 분석 결과는 클라이언트가 보낸 값을 믿지 않고 저장 시점에 summary 로 다시 계산한다.
type SavedArticleService struct {
	store  SavedArticleStore
	engine *analysis.Engine
	bus    eventbus.EventBus
}

func NewSavedArticleService(store SavedArticleStore, engine *analysis.Engine, bus eventbus.EventBus) *SavedArticleService {
	return &SavedArticleService{store: store, engine: engine, bus: bus}
}

func (s *SavedArticleService) Create(ctx context.Context, in dto.CreateSavedArticleRequestDTO) (dto.SavedArticleDTO, error) {
	title := strings.TrimSpace(in.Title)
	link := strings.TrimSpace(in.URL)
	if title == "" {
		return dto.SavedArticleDTO{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if err := validateURL(link); err != nil {
		return dto.SavedArticleDTO{}, err
	}

	result := s.engine.Analyze(in.Summary)
	a := &models.SavedArticle{
		Title:    title,
		URL:      link,
		Summary:  in.Summary,
		Note:     in.Note,
		Analysis: &models.ArticleAnalysis{Result: result},
	}
	if err := s.store.Create(ctx, a); err != nil {
		return dto.SavedArticleDTO{}, err
	}

	publishArticleEvent(ctx, s.bus, events.FromSavedArticle(events.ArticleSaved, a))
	return mapSavedArticle(a), nil
}

// List 는 최신순 페이지를 반환한다. page 는 1부터, page_size 는 1~100 (기본 20).
func (s *SavedArticleService) List(ctx context.Context, page, pageSize int) (dto.Pagination[dto.SavedArticleDTO], error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	items, total, err := s.store.List(ctx, page, pageSize)
	if err != nil {
		return dto.Pagination[dto.SavedArticleDTO]{}, err
	}
	out := make([]dto.SavedArticleDTO, 0, len(items))
	for i := range items {
		out = append(out, mapSavedArticle(&items[i]))
	}
	return dto.Pagination[dto.SavedArticleDTO]{
		Data:     out,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

func (s *SavedArticleService) Get(ctx context.Context, id int64) (dto.SavedArticleDTO, error) {
	a, err := s.store.GetByID(ctx, id)
	if err != nil {
		return dto.SavedArticleDTO{}, err
	}
	return mapSavedArticle(a), nil
}

// UpdateNote 는 메모만 바꾼다. 다른 필드는 생성 후 변경할 수 없다.
func (s *SavedArticleService) UpdateNote(ctx context.Context, id int64, note string) (dto.SavedArticleDTO, error) {
	a, err := s.store.UpdateNote(ctx, id, note)
	if err != nil {
		return dto.SavedArticleDTO{}, err
	}
	publishArticleEvent(ctx, s.bus, events.FromSavedArticle(events.ArticleNoteUpdated, a))
	return mapSavedArticle(a), nil
}

// Delete 는 아티클을 삭제한다. 분석 결과는 FK cascade 로 함께 지워진다.
func (s *SavedArticleService) Delete(ctx context.Context, id int64) error {
	a, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	publishArticleEvent(ctx, s.bus, events.FromSavedArticle(events.ArticleDeleted, a))
	return nil
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: url is required", ErrValidation)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: url must be an absolute http(s) url", ErrValidation)
	}
	return nil
}

func mapSavedArticle(a *models.SavedArticle) dto.SavedArticleDTO {
	out := dto.SavedArticleDTO{
		ID:        a.ID,
		Title:     a.Title,
		URL:       a.URL,
		Summary:   a.Summary,
		Note:      a.Note,
		CreatedAt: a.CreatedAt,
	}
	if a.Analysis != nil {
		r := a.Analysis.Result
		out.Analysis = &r
	}
	return out
}
