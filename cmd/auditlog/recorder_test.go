package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiki-analyzer/eventbus"
	"wiki-analyzer/events"
	"wiki-analyzer/models"
)

type memoryStore struct {
	docs map[string]models.ArticleEvent
	err  error
}

func (m *memoryStore) Insert(_ context.Context, ev models.ArticleEvent) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.docs[ev.EventID]; ok {
		return false, nil
	}
	m.docs[ev.EventID] = ev
	return true, nil
}

func TestRecorderStoresEvent(t *testing.T) {
	store := &memoryStore{docs: map[string]models.ArticleEvent{}}
	rec := NewRecorder(store)

	ev := events.ArticleEvent{
		BaseEvent: events.NewBaseEvent(events.ArticleSaved),
		ArticleID: 12,
		Title:     "Barack Obama",
		Topics:    []string{"General"},
		WordCount: 14,
	}
	meta, err := eventbus.NewJSONEvent(ev.ID, string(ev.Type), ev, 0)
	require.NoError(t, err)
	meta.Retry = 1

	payload, err := eventbus.DecodeJSON[events.ArticleEvent](meta)
	require.NoError(t, err)
	require.NoError(t, rec.Handle(context.Background(), payload, meta))

	doc, ok := store.docs[ev.ID]
	require.True(t, ok)
	assert.Equal(t, "article.saved", doc.Type)
	assert.EqualValues(t, 12, doc.ArticleID)
	assert.Equal(t, 14, doc.WordCount)
	assert.Equal(t, 1, doc.Retry)
	assert.True(t, ev.Timestamp.Equal(doc.OccurredAt))

	// 재주입된 같은 이벤트는 한 번만 기록된다.
	require.NoError(t, rec.Handle(context.Background(), payload, meta))
	assert.Len(t, store.docs, 1)
}

func TestRecorderFillsMissingIDFromEnvelope(t *testing.T) {
	store := &memoryStore{docs: map[string]models.ArticleEvent{}}
	rec := NewRecorder(store)

	require.NoError(t, rec.Handle(context.Background(), events.ArticleEvent{}, eventbus.Event{ID: "env-1", Type: "article.deleted"}))
	assert.Equal(t, "article.deleted", store.docs["env-1"].Type)
}

func TestRecorderPropagatesStoreError(t *testing.T) {
	rec := NewRecorder(&memoryStore{err: errors.New("mongo down")})
	err := rec.Handle(context.Background(), events.ArticleEvent{BaseEvent: events.NewBaseEvent(events.ArticleDeleted)}, eventbus.Event{})
	assert.Error(t, err)
}
