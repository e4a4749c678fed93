package models

// ArticleSource identifies the publisher of an article
type ArticleSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Article represents a news article, either from the upstream news API
// (request-scoped) or from the built-in mock set (static).
type Article struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Content     string        `json:"content"`
	Author      string        `json:"author"`
	PublishedAt string        `json:"publishedAt"`
	URLToImage  string        `json:"urlToImage"`
	URL         string        `json:"url"`
	Source      ArticleSource `json:"source"`
}

// FeedResponse represents the article feed response body
type FeedResponse struct {
	Articles []Article `json:"articles"`
	Total    int       `json:"total"`
}
