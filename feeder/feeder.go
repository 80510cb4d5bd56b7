package feeder

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeaturedArticle 은 위키백과 "오늘의 알찬 글" 피드 항목이다.
type FeaturedArticle struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Summary     string    `json:"summary"`
	PublishedAt time.Time `json:"published_at"`
}

// FetchFeaturedArticles 는 feedURL 의 RSS/Atom 피드를 읽어 최신순 그대로 반환한다.
// description 의 HTML 은 평문으로 바꾼다. limit 이 0 보다 크면 앞에서 limit 개만 돌려준다.
// client 가 nil 이면 http.DefaultClient 를 쓴다.
func FetchFeaturedArticles(ctx context.Context, client *http.Client, feedURL string, limit int) ([]FeaturedArticle, error) {
	fp := gofeed.NewParser()
	if client != nil {
		fp.Client = client
	}

	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	items := make([]FeaturedArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		body := item.Description
		if body == "" {
			body = item.Content
		}

		items = append(items, FeaturedArticle{
			Title:       strings.TrimSpace(item.Title),
			Link:        item.Link,
			Summary:     PlainText(body),
			PublishedAt: published,
		})
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
