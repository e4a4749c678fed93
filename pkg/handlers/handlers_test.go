package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"crux/pkg/ai"
	"crux/pkg/auth"
	"crux/pkg/config"
	"crux/pkg/models"
	"crux/pkg/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

// newTestRouter wires the real store, auth and a generator-less AI
// gateway (always fallback) behind the production route table.
func newTestRouter() *gin.Engine {
	return newTestRouterWithNews(nil)
}

func newTestRouterWithNews(news NewsFetcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	authService := auth.New(&config.AuthConfig{JWTSecret: "test-secret", TokenTTLHour: 24})
	dataStore := store.New()
	gateway := ai.NewGateway(nil, log)

	h := New(authService, dataStore, dataStore, news, gateway, log)

	r := gin.New()
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)
	r.GET("/articles/:id", func(c *gin.Context) {
		if c.Param("id") == "feed" {
			h.ArticleFeed(c)
			return
		}
		h.ArticleByID(c)
	})

	protected := r.Group("/", authService.Middleware())
	protected.POST("/articles/analyze", h.AnalyzeArticle)
	protected.POST("/chat/contextual", h.ChatContextual)
	protected.POST("/chat/global", h.ChatGlobal)

	return r
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signupAndGetToken(t *testing.T, r *gin.Engine) string {
	w := doJSON(r, "POST", "/auth/signup", "", gin.H{
		"username": "u1", "email": "u1@x.com", "password": "p",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var res models.AuthResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.NotEqual(t, "", res.Token)
	assert.Equal(t, "u1", res.User.Username)
	assert.Equal(t, "u1@x.com", res.User.Email)
	return res.Token
}

func TestSignupThenGlobalChat(t *testing.T) {
	r := newTestRouter()
	token := signupAndGetToken(t, r)

	w := doJSON(r, "POST", "/chat/global", token, gin.H{"userQuery": "hello"})
	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Response string `json:"response"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.NotEqual(t, "", res.Response)

	// The same call without a token is rejected
	w = doJSON(r, "POST", "/chat/global", "", gin.H{"userQuery": "hello"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignup_Validation(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, "POST", "/auth/signup", "", gin.H{"username": "u1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	r := newTestRouter()
	signupAndGetToken(t, r)

	w := doJSON(r, "POST", "/auth/signup", "", gin.H{
		"username": "other", "email": "u1@x.com", "password": "p2",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin(t *testing.T) {
	r := newTestRouter()
	signupAndGetToken(t, r)

	w := doJSON(r, "POST", "/auth/login", "", gin.H{"email": "u1@x.com", "password": "p"})
	assert.Equal(t, http.StatusOK, w.Code)

	var res models.AuthResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.NotEqual(t, "", res.Token)

	// Wrong password
	w = doJSON(r, "POST", "/auth/login", "", gin.H{"email": "u1@x.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown email
	w = doJSON(r, "POST", "/auth/login", "", gin.H{"email": "ghost@x.com", "password": "p"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Missing fields
	w = doJSON(r, "POST", "/auth/login", "", gin.H{"email": "u1@x.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestArticleFeed_MockLimitAndOrder(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, "GET", "/articles/feed?limit=2", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var res models.FeedResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, len(res.Articles))
	assert.Equal(t, "1", res.Articles[0].ID)
	assert.Equal(t, "2", res.Articles[1].ID)
	assert.Equal(t, 2, res.Total)
}

// brokenNews simulates an unreachable upstream news API
type brokenNews struct{}

func (brokenNews) TopHeadlines(_ context.Context, _ int, _ string) ([]models.Article, int, error) {
	return nil, 0, errors.New("upstream down")
}

func TestArticleFeed_UpstreamFailureFallsBackToMock(t *testing.T) {
	r := newTestRouterWithNews(brokenNews{})

	w := doJSON(r, "GET", "/articles/feed?limit=2", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var res models.FeedResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, len(res.Articles))
	assert.Equal(t, "1", res.Articles[0].ID)
	assert.Equal(t, "2", res.Articles[1].ID)
}

func TestArticleFeed_Search(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, "GET", "/articles/feed?search=climate", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var res models.FeedResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res.Articles))
	assert.Equal(t, "2", res.Articles[0].ID)
}

func TestArticleFeed_BadLimitDefaults(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, "GET", "/articles/feed?limit=zero", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var res models.FeedResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	// The whole mock set fits under the default limit
	assert.Equal(t, 3, len(res.Articles))
}

func TestArticleByID(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, "GET", "/articles/1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Article models.Article `json:"article"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Revolutionary AI Breakthrough in Medical Diagnosis", res.Article.Title)

	w = doJSON(r, "GET", "/articles/404", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatContextual(t *testing.T) {
	r := newTestRouter()
	token := signupAndGetToken(t, r)

	w := doJSON(r, "POST", "/chat/contextual", token, gin.H{
		"articleId": "2", "userQuery": "what was agreed?",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Response           string                    `json:"response"`
		StructuredResponse models.ContextualResponse `json:"structuredResponse"`
		ArticleTitle       string                    `json:"articleTitle"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.NotEqual(t, "", res.Response)
	assert.Equal(t, res.StructuredResponse.Answer, res.Response)
	// The generator-less gateway serves the medium-confidence fallback
	assert.Equal(t, models.ConfidenceMedium, res.StructuredResponse.Confidence)
	assert.Equal(t, "Global Climate Summit Reaches Historic Agreement", res.ArticleTitle)
}

func TestChatContextual_Errors(t *testing.T) {
	r := newTestRouter()
	token := signupAndGetToken(t, r)

	// Unknown article
	w := doJSON(r, "POST", "/chat/contextual", token, gin.H{
		"articleId": "999", "userQuery": "anything",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Missing fields
	w = doJSON(r, "POST", "/chat/contextual", token, gin.H{"articleId": "1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No token
	w = doJSON(r, "POST", "/chat/contextual", "", gin.H{
		"articleId": "1", "userQuery": "anything",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAnalyzeArticle(t *testing.T) {
	r := newTestRouter()
	token := signupAndGetToken(t, r)

	w := doJSON(r, "POST", "/articles/analyze", token, gin.H{
		"content": "Some article content.", "analysisType": "fact_check",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Analysis models.NewsAnalysis `json:"analysis"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.NotEqual(t, "", res.Analysis.Headline)
	assert.Equal(t, models.SentimentNeutral, res.Analysis.Sentiment)

	// Missing content
	w = doJSON(r, "POST", "/articles/analyze", token, gin.H{"analysisType": "summary"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unauthenticated
	w = doJSON(r, "POST", "/articles/analyze", "", gin.H{"content": "text"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTamperedTokenRejected(t *testing.T) {
	r := newTestRouter()
	token := signupAndGetToken(t, r)

	w := doJSON(r, "POST", "/chat/global", token+"x", gin.H{"userQuery": "hello"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
