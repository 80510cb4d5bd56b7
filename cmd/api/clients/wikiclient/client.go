package wikiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"wiki-analyzer/cmd/api/httpclient"
)

// Client 는 위키백과 MediaWiki Action API 와 REST API 를 호출하는 얇은 클라이언트다.
//
// apiURL 예: https://en.wikipedia.org/w/api.php
// restURL 예: https://en.wikipedia.org/api/rest_v1
type Client struct {
	api  *httpclient.BaseClient
	rest *httpclient.BaseClient
}

var (
	ErrNotFound = errors.New("wikipedia article not found")
	// ErrUpstream 은 위키백과가 응답하지 않거나 예상하지 못한 상태 코드를 돌려준 경우다.
	ErrUpstream = errors.New("wikipedia unavailable")
)

func New(httpClient *http.Client, apiURL, restURL string) *Client {
	return &Client{
		api:  httpclient.NewBaseClientWithClient(httpClient, apiURL),
		rest: httpclient.NewBaseClientWithClient(httpClient, restURL),
	}
}

// SearchResult 는 검색 결과 한 건이다. Extract 는 도입부 평문이다.
type SearchResult struct {
	PageID    int64  `json:"pageid"`
	Title     string `json:"title"`
	Extract   string `json:"extract"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Summary 는 REST page/summary 응답에서 사용하는 필드다.
type Summary struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
	URL     string `json:"url"`
}

type queryResponse struct {
	Query struct {
		Pages map[string]page `json:"pages"`
	} `json:"query"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

type page struct {
	PageID    int64  `json:"pageid"`
	Title     string `json:"title"`
	Index     int    `json:"index"`
	Extract   string `json:"extract"`
	FullURL   string `json:"fullurl"`
	Missing   *any   `json:"missing"`
	Invalid   *any   `json:"invalid"`
	Thumbnail *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

type summaryResponse struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// Search 는 generator=search 로 검색하고 검색 순위(index) 순으로 정렬해 반환한다.
// 결과가 없으면 빈 슬라이스를 반환한다.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("format", "json")
	q.Set("generator", "search")
	q.Set("gsrsearch", query)
	q.Set("prop", "extracts|pageimages|info")
	q.Set("inprop", "url")
	q.Set("exintro", "1")
	q.Set("explaintext", "1")
	q.Set("exlimit", "max")
	q.Set("piprop", "thumbnail")
	q.Set("pithumbsize", "200")
	if limit > 0 {
		q.Set("gsrlimit", strconv.Itoa(limit))
	}

	var out queryResponse
	if err := getJSON(ctx, c.api, q, &out, "Search"); err != nil {
		return nil, err
	}
	if out.Error != nil {
		return nil, fmt.Errorf("%w: Search: %s: %s", ErrUpstream, out.Error.Code, out.Error.Info)
	}

	pages := make([]page, 0, len(out.Query.Pages))
	for _, p := range out.Query.Pages {
		pages = append(pages, p)
	}
	sort.SliceStable(pages, func(i, j int) bool { return pages[i].Index < pages[j].Index })

	results := make([]SearchResult, 0, len(pages))
	for _, p := range pages {
		r := SearchResult{
			PageID:  p.PageID,
			Title:   p.Title,
			Extract: p.Extract,
			URL:     p.FullURL,
		}
		if p.Thumbnail != nil {
			r.Thumbnail = p.Thumbnail.Source
		}
		results = append(results, r)
	}
	return results, nil
}

// Summary 는 REST page/summary/{title} 로 도입부 요약과 데스크톱 URL 을 가져온다.
func (c *Client) Summary(ctx context.Context, title string) (Summary, error) {
	title = normalizeTitle(title)
	if title == "" {
		return Summary{}, ErrNotFound
	}

	req, err := c.rest.NewRequest(ctx, http.MethodGet, "/page/summary", nil, nil)
	if err != nil {
		return Summary{}, err
	}
	// 제목에 '/' 나 '?' 가 들어갈 수 있어 경로 세그먼트를 직접 이스케이프한다.
	req.URL.RawPath = req.URL.EscapedPath() + "/" + url.PathEscape(title)
	req.URL.Path += "/" + title
	req.Header.Set("Accept", "application/json")

	var out summaryResponse
	if err := doJSON(c.rest, req, &out, "Summary"); err != nil {
		return Summary{}, err
	}
	return Summary{
		Title:   out.Title,
		Extract: out.Extract,
		URL:     out.ContentURLs.Desktop.Page,
	}, nil
}

// FullText 는 문서 전체를 평문(explaintext)으로 가져온다.
// 문서가 없으면 ErrNotFound 를 반환한다.
func (c *Client) FullText(ctx context.Context, title string) (Summary, error) {
	title = normalizeTitle(title)
	if title == "" {
		return Summary{}, ErrNotFound
	}

	q := url.Values{}
	q.Set("action", "query")
	q.Set("format", "json")
	q.Set("prop", "extracts|info")
	q.Set("inprop", "url")
	q.Set("explaintext", "1")
	q.Set("redirects", "1")
	q.Set("titles", title)

	var out queryResponse
	if err := getJSON(ctx, c.api, q, &out, "FullText"); err != nil {
		return Summary{}, err
	}
	if out.Error != nil {
		return Summary{}, fmt.Errorf("%w: FullText: %s: %s", ErrUpstream, out.Error.Code, out.Error.Info)
	}
	for _, p := range out.Query.Pages {
		if p.Missing != nil || p.Invalid != nil {
			return Summary{}, ErrNotFound
		}
		return Summary{Title: p.Title, Extract: p.Extract, URL: p.FullURL}, nil
	}
	return Summary{}, ErrNotFound
}

func getJSON(ctx context.Context, base *httpclient.BaseClient, q url.Values, out any, op string) error {
	req, err := base.NewRequest(ctx, http.MethodGet, "", q, nil)
	if err != nil {
		return err
	}
	return doJSON(base, req, out, op)
}

// doJSON 은 200 이면 out 으로 디코딩하고, 404 는 ErrNotFound, 나머지는 ErrUpstream 으로 감싼다.
func doJSON(base *httpclient.BaseClient, req *http.Request, out any, op string) error {
	resp, err := base.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s: %v", ErrUpstream, op, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: %s: decode: %v", ErrUpstream, op, err)
		}
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("%w: %s: status=%d body=%s", ErrUpstream, op, resp.StatusCode, string(body))
	}
}

// normalizeTitle 은 위키백과 URL 표기처럼 공백을 밑줄로 바꾼다.
func normalizeTitle(title string) string {
	return strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
}
