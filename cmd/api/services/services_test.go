package services_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiki-analyzer/analysis"
	"wiki-analyzer/cmd/api/clients/wikiclient"
	"wiki-analyzer/cmd/api/dto"
	"wiki-analyzer/cmd/api/services"
	"wiki-analyzer/db"
	"wiki-analyzer/eventbus"
	"wiki-analyzer/events"
	"wiki-analyzer/feeder"
	"wiki-analyzer/repositories"
)

const obamaText = "Barack Obama was the 44th president of the United States. He served two terms from 2009 to 2017."

type fakeWiki struct {
	searchLimit int
	summaries   map[string]wikiclient.Summary
	err         error
}

func (f *fakeWiki) Search(_ context.Context, query string, limit int) ([]wikiclient.SearchResult, error) {
	f.searchLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return []wikiclient.SearchResult{{PageID: 1, Title: query, URL: "https://en.wikipedia.org/wiki/" + query}}, nil
}

func (f *fakeWiki) Summary(_ context.Context, title string) (wikiclient.Summary, error) {
	if f.err != nil {
		return wikiclient.Summary{}, f.err
	}
	s, ok := f.summaries[title]
	if !ok {
		return wikiclient.Summary{}, wikiclient.ErrNotFound
	}
	return s, nil
}

func (f *fakeWiki) FullText(ctx context.Context, title string) (wikiclient.Summary, error) {
	s, err := f.Summary(ctx, title)
	s.Extract += " " + s.Extract
	return s, err
}

// recordingBus 는 발행된 이벤트를 기억한다.
type recordingBus struct {
	eventbus.NopEventBus
	mu     sync.Mutex
	events []eventbus.Event
	err    error
}

func (b *recordingBus) Publish(_ context.Context, _ string, e eventbus.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
	return b.err
}

func (b *recordingBus) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Type)
	}
	return out
}

func newArticleService(wiki *fakeWiki, bus eventbus.EventBus) *services.ArticleService {
	feed := func(_ context.Context, limit int) ([]feeder.FeaturedArticle, error) {
		items := []feeder.FeaturedArticle{
			{Title: "A", PublishedAt: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)},
			{Title: "B"},
			{Title: "C"},
		}
		if limit < len(items) {
			items = items[:limit]
		}
		return items, nil
	}
	return services.NewArticleService(wiki, feed, analysis.Default(), bus, 10)
}

func TestSearchValidatesQuery(t *testing.T) {
	svc := newArticleService(&fakeWiki{}, &recordingBus{})
	_, err := svc.Search(context.Background(), "   ", 0)
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestSearchClampsLimit(t *testing.T) {
	wiki := &fakeWiki{}
	svc := newArticleService(wiki, &recordingBus{})

	res, err := svc.Search(context.Background(), "Obama", 0)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 10, wiki.searchLimit)

	_, err = svc.Search(context.Background(), "Obama", 500)
	require.NoError(t, err)
	assert.Equal(t, 50, wiki.searchLimit)
}

func TestGetAnalyzesSummaryAndPublishes(t *testing.T) {
	wiki := &fakeWiki{summaries: map[string]wikiclient.Summary{
		"Barack_Obama": {Title: "Barack Obama", Extract: obamaText, URL: "https://en.wikipedia.org/wiki/Barack_Obama"},
	}}
	bus := &recordingBus{}
	svc := newArticleService(wiki, bus)

	got, err := svc.Get(context.Background(), "Barack_Obama")
	require.NoError(t, err)
	assert.Equal(t, "Barack Obama", got.Title)
	assert.Equal(t, obamaText, got.Summary)
	assert.Equal(t, analysis.Default().Analyze(obamaText), got.Analysis)
	assert.Equal(t, []string{string(events.ArticleAnalyzed)}, bus.types())
}

func TestGetFullUsesFullText(t *testing.T) {
	wiki := &fakeWiki{summaries: map[string]wikiclient.Summary{"X": {Title: "X", Extract: "One. Two."}}}
	svc := newArticleService(wiki, &recordingBus{})

	got, err := svc.GetFull(context.Background(), "X")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Analysis.Sentences)
}

func TestGetPropagatesClientErrors(t *testing.T) {
	svc := newArticleService(&fakeWiki{summaries: map[string]wikiclient.Summary{}}, &recordingBus{})
	_, err := svc.Get(context.Background(), "Missing")
	assert.ErrorIs(t, err, wikiclient.ErrNotFound)

	svc = newArticleService(&fakeWiki{err: wikiclient.ErrUpstream}, &recordingBus{})
	_, err = svc.Get(context.Background(), "Any")
	assert.ErrorIs(t, err, wikiclient.ErrUpstream)
}

func TestPublishFailureDoesNotFailRequest(t *testing.T) {
	wiki := &fakeWiki{summaries: map[string]wikiclient.Summary{"X": {Title: "X", Extract: "text"}}}
	bus := &recordingBus{err: errors.New("broker down")}
	svc := newArticleService(wiki, bus)

	_, err := svc.Get(context.Background(), "X")
	assert.NoError(t, err)
	assert.Len(t, bus.types(), 1)
}

func TestFeatured(t *testing.T) {
	svc := newArticleService(&fakeWiki{}, &recordingBus{})
	items, err := svc.Featured(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].Title)
}

func TestAnalyzeEmpty(t *testing.T) {
	svc := newArticleService(&fakeWiki{}, nil)
	r := svc.Analyze("")
	assert.Equal(t, []string{analysis.GeneralTopic}, r.Topics)
	assert.Equal(t, 1, r.EstimatedReadingTime)
}

func newSavedService(t *testing.T, bus eventbus.EventBus) *services.SavedArticleService {
	t.Helper()
	conn, err := db.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "svc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return services.NewSavedArticleService(repositories.NewSavedArticleRepository(conn), analysis.Default(), bus)
}

func TestSavedArticleLifecycle(t *testing.T) {
	bus := &recordingBus{}
	svc := newSavedService(t, bus)
	ctx := context.Background()

	note := "primera nota"
	created, err := svc.Create(ctx, dto.CreateSavedArticleRequestDTO{
		Title:   "Barack Obama",
		URL:     "https://en.wikipedia.org/wiki/Barack_Obama",
		Summary: obamaText,
		Note:    &note,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	require.NotNil(t, created.Analysis)
	assert.Equal(t, analysis.Default().Analyze(obamaText), *created.Analysis)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "primera nota", *got.Note)

	updated, err := svc.UpdateNote(ctx, created.ID, "segunda nota")
	require.NoError(t, err)
	assert.Equal(t, "segunda nota", *updated.Note)
	assert.Equal(t, created.Summary, updated.Summary)

	page, err := svc.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)
	assert.EqualValues(t, 1, page.Total)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), repositories.ErrNotFound)

	assert.Equal(t, []string{
		string(events.ArticleSaved),
		string(events.ArticleNoteUpdated),
		string(events.ArticleDeleted),
	}, bus.types())
}

func TestCreateValidation(t *testing.T) {
	svc := newSavedService(t, &recordingBus{})
	tests := []struct {
		name string
		in   dto.CreateSavedArticleRequestDTO
	}{
		{"missing title", dto.CreateSavedArticleRequestDTO{URL: "https://en.wikipedia.org/wiki/X"}},
		{"missing url", dto.CreateSavedArticleRequestDTO{Title: "X"}},
		{"relative url", dto.CreateSavedArticleRequestDTO{Title: "X", URL: "/wiki/X"}},
		{"bad scheme", dto.CreateSavedArticleRequestDTO{Title: "X", URL: "ftp://example.org/x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.in)
			assert.ErrorIs(t, err, services.ErrValidation)
		})
	}
}

func TestListClampsPageSize(t *testing.T) {
	svc := newSavedService(t, nil)
	page, err := svc.List(context.Background(), 3, 1000)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 100, page.PageSize)
	assert.Empty(t, page.Data)
}
