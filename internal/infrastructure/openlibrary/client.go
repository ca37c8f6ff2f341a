package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bookbuddy/server/internal/infrastructure/config"
	"github.com/bookbuddy/server/pkg/circuitbreaker"
	apperrors "github.com/bookbuddy/server/pkg/errors"
	"github.com/bookbuddy/server/pkg/metrics"
)

// BookResult Open Library搜索结果条目
// 设计说明：
// 1. OpenLibraryID取自作品key（/works/OL82563W → OL82563W），
//    是目录去重的依据
// 2. 封面URL由cover_i拼接（covers.openlibrary.org）
type BookResult struct {
	Title            string `json:"title"`
	Author           string `json:"author"`
	CoverURL         string `json:"cover_url"`
	OpenLibraryID    string `json:"open_library_id"`
	FirstPublishYear int    `json:"first_publish_year,omitempty"`
}

// Client Open Library搜索客户端
// 设计说明：
// 1. 外部HTTP依赖用熔断器保护：连续失败后快速失败，
//    避免慢请求拖垮整个服务
// 2. 每次请求带超时（http.Client.Timeout）
// 3. 搜索QPS与耗时上报Prometheus
type Client struct {
	baseURL    string
	limit      int
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// NewClient 创建Open Library客户端
func NewClient(cfg *config.Config) *Client {
	breaker := circuitbreaker.NewCircuitBreaker("openlibrary", circuitbreaker.Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	// 状态变化记录日志并上报监控
	breaker.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		log.Printf("熔断器[%s]状态变化: %s → %s", name, from, to)
		metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(to))
	})

	return &Client{
		baseURL: strings.TrimRight(cfg.OpenLibrary.BaseURL, "/"),
		limit:   cfg.OpenLibrary.SearchLimit,
		httpClient: &http.Client{
			Timeout: cfg.OpenLibrary.Timeout,
		},
		breaker: breaker,
	}
}

// Search 通用搜索（书名、作者、ISBN等任意关键词）
func (c *Client) Search(ctx context.Context, query string, page int) ([]BookResult, error) {
	params := url.Values{}
	params.Set("q", query)
	return c.doSearch(ctx, params, page)
}

// SearchByTitle 按书名搜索
func (c *Client) SearchByTitle(ctx context.Context, title string, page int) ([]BookResult, error) {
	params := url.Values{}
	params.Set("title", title)
	return c.doSearch(ctx, params, page)
}

// SearchByAuthor 按作者搜索
func (c *Client) SearchByAuthor(ctx context.Context, author string, page int) ([]BookResult, error) {
	params := url.Values{}
	params.Set("author", author)
	return c.doSearch(ctx, params, page)
}

// searchResponse Open Library /search.json响应（只解析需要的字段）
type searchResponse struct {
	NumFound int `json:"numFound"`
	Docs     []struct {
		Key              string   `json:"key"`
		Title            string   `json:"title"`
		AuthorName       []string `json:"author_name"`
		CoverID          int      `json:"cover_i"`
		FirstPublishYear int      `json:"first_publish_year"`
	} `json:"docs"`
}

// doSearch 执行搜索请求（经过熔断器）
func (c *Client) doSearch(ctx context.Context, params url.Values, page int) ([]BookResult, error) {
	if page < 1 {
		page = 1
	}
	params.Set("page", fmt.Sprintf("%d", page))
	params.Set("limit", fmt.Sprintf("%d", c.limit))
	// fields限制返回字段，明显减小响应体
	params.Set("fields", "key,title,author_name,cover_i,first_publish_year")

	endpoint := fmt.Sprintf("%s/search.json?%s", c.baseURL, params.Encode())

	var results []BookResult
	start := time.Now()

	err := c.breaker.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("open library返回状态码%d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		var parsed searchResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return err
		}

		results = toBookResults(&parsed)
		return nil
	})

	metrics.ObserveHistogram(metrics.SearchRequestDuration, time.Since(start).Seconds())

	if err != nil {
		metrics.IncCounterVec(metrics.SearchRequestsTotal, map[string]string{"result": "error"})
		if err == circuitbreaker.ErrOpenState {
			return nil, apperrors.New(apperrors.ErrCodeCircuitOpen, "图书搜索服务暂时不可用，请稍后再试")
		}
		return nil, apperrors.Wrap(err, "图书搜索失败")
	}

	metrics.IncCounterVec(metrics.SearchRequestsTotal, map[string]string{"result": "success"})
	return results, nil
}

// toBookResults 响应文档 → 搜索结果
func toBookResults(parsed *searchResponse) []BookResult {
	results := make([]BookResult, 0, len(parsed.Docs))
	for _, doc := range parsed.Docs {
		author := ""
		if len(doc.AuthorName) > 0 {
			author = doc.AuthorName[0]
		}

		coverURL := ""
		if doc.CoverID > 0 {
			coverURL = fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-L.jpg", doc.CoverID)
		}

		results = append(results, BookResult{
			Title:            doc.Title,
			Author:           author,
			CoverURL:         coverURL,
			OpenLibraryID:    workKey(doc.Key),
			FirstPublishYear: doc.FirstPublishYear,
		})
	}
	return results
}

// workKey 从作品key提取外部ID（/works/OL82563W → OL82563W）
func workKey(key string) string {
	return strings.TrimPrefix(key, "/works/")
}
