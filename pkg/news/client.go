package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"crux/pkg/models"

	"github.com/google/uuid"
)

// Client fetches headlines from the upstream NewsAPI service
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates a news client for the given API key and base URL
func New(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// TopHeadlines fetches up to limit articles. When search is non-empty
// the everything endpoint is queried instead of top headlines.
func (c *Client) TopHeadlines(ctx context.Context, limit int, search string) ([]models.Article, int, error) {
	endpoint := c.baseURL + "/v2/top-headlines"
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("pageSize", strconv.Itoa(limit))

	if search != "" {
		endpoint = c.baseURL + "/v2/everything"
		params.Set("q", search)
		params.Set("sortBy", "publishedAt")
		params.Set("language", "en")
	} else {
		params.Set("country", "us")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("newsapi request: %w", err)
	}
	req.Header.Set("User-Agent", "CruX-News-App/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("newsapi fetch: unexpected status %d", resp.StatusCode)
	}

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, 0, fmt.Errorf("newsapi decode: %w", err)
	}

	if raw.Status != "ok" {
		return nil, 0, fmt.Errorf("newsapi error: %s", raw.Message)
	}

	articles := make([]models.Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		// NewsAPI redacts some entries instead of omitting them
		if item.Title == "" || item.Title == "[Removed]" {
			continue
		}

		content := item.Content
		if content == "" {
			content = item.Description
		}
		description := item.Description
		if description == "" {
			description = "No description available"
		}
		author := item.Author
		if author == "" {
			author = "Unknown Author"
		}

		articles = append(articles, models.Article{
			ID:          "news-" + uuid.NewString(),
			Title:       item.Title,
			Description: description,
			Content:     content,
			Author:      author,
			PublishedAt: item.PublishedAt,
			URLToImage:  item.URLToImage,
			URL:         item.URL,
			Source: models.ArticleSource{
				ID:   item.Source.ID,
				Name: item.Source.Name,
			},
		})
		if len(articles) == limit {
			break
		}
	}

	return articles, raw.TotalResults, nil
}

type newsAPIResponse struct {
	Status       string           `json:"status"`
	Message      string           `json:"message"`
	TotalResults int              `json:"totalResults"`
	Articles     []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Content     string        `json:"content"`
	Author      string        `json:"author"`
	PublishedAt string        `json:"publishedAt"`
	URLToImage  string        `json:"urlToImage"`
	URL         string        `json:"url"`
	Source      newsAPISource `json:"source"`
}

type newsAPISource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
