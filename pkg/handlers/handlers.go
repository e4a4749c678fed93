package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"crux/pkg/auth"
	"crux/pkg/models"
	"crux/pkg/prompts"

	"github.com/gin-gonic/gin"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100
)

// UserStore is the user repository capability set handlers depend on
type UserStore interface {
	FindUserByEmail(email string) (*models.User, bool)
	FindUserByID(id string) (*models.User, bool)
	CreateUser(username, email, passwordHash string) (models.User, error)
}

// ArticleStore is the article repository capability set
type ArticleStore interface {
	GetArticles(limit int) []models.Article
	GetArticleByID(id string) (*models.Article, bool)
	SearchArticles(query string) []models.Article
}

// NewsFetcher fetches live headlines from the upstream news API
type NewsFetcher interface {
	TopHeadlines(ctx context.Context, limit int, search string) ([]models.Article, int, error)
}

// AIService generates structured AI responses with built-in fallbacks
type AIService interface {
	GenerateContextualResponse(ctx context.Context, articleContent, userQuery string, pctx *prompts.Context) models.ContextualResponse
	GenerateGlobalResponse(ctx context.Context, userQuery string, pctx *prompts.Context) models.GlobalResponse
	GenerateNewsAnalysis(ctx context.Context, articleContent string, analysisType prompts.AnalysisType) models.NewsAnalysis
}

// Handlers contains all HTTP handlers
type Handlers struct {
	auth     *auth.Auth
	users    UserStore
	articles ArticleStore
	news     NewsFetcher // nil when no upstream key is configured
	ai       AIService
	log      *slog.Logger
}

// New creates a new Handlers instance
func New(authService *auth.Auth, users UserStore, articles ArticleStore, news NewsFetcher, ai AIService, log *slog.Logger) *Handlers {
	return &Handlers{
		auth:     authService,
		users:    users,
		articles: articles,
		news:     news,
		ai:       ai,
		log:      log,
	}
}

// ============== Auth Handlers ==============

// Signup registers a new user and returns a session token
func (h *Handlers) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email, and password are required"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.Error("password hashing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// The store enforces email uniqueness under its write lock
	user, err := h.users.CreateUser(req.Username, req.Email, hash)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "user with this email already exists"})
		return
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		h.log.Error("token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Message: "user created successfully",
		Token:   token,
		User:    user.Public(),
	})
}

// Login authenticates a user and returns a session token
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, found := h.users.FindUserByEmail(req.Email)
	if !found || !auth.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.auth.GenerateToken(*user)
	if err != nil {
		h.log.Error("token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Message: "login successful",
		Token:   token,
		User:    user.Public(),
	})
}

// ============== Article Handlers ==============

// ArticleFeed returns the news feed, live when an upstream key is
// configured and the mock set otherwise. Upstream failures fall back
// to the mock set rather than surfacing an error.
func (h *Handlers) ArticleFeed(c *gin.Context) {
	limit := feedLimit(c)
	search := c.Query("search")

	if h.news != nil {
		articles, total, err := h.news.TopHeadlines(c.Request.Context(), limit, search)
		if err == nil {
			c.JSON(http.StatusOK, models.FeedResponse{Articles: articles, Total: total})
			return
		}
		h.log.Error("news upstream failed, falling back to mock set", "error", err)
	}

	var articles []models.Article
	if search != "" {
		articles = h.articles.SearchArticles(search)
		if len(articles) > limit {
			articles = articles[:limit]
		}
	} else {
		articles = h.articles.GetArticles(limit)
	}

	c.JSON(http.StatusOK, models.FeedResponse{Articles: articles, Total: len(articles)})
}

// ArticleByID returns a single article
func (h *Handlers) ArticleByID(c *gin.Context) {
	article, found := h.articles.GetArticleByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// AnalyzeArticleRequest represents the analyze request body
type AnalyzeArticleRequest struct {
	Content      string `json:"content" binding:"required"`
	AnalysisType string `json:"analysisType"`
}

// AnalyzeArticle produces a structured analysis of article content
func (h *Handlers) AnalyzeArticle(c *gin.Context) {
	var req AnalyzeArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "article content is required"})
		return
	}

	analysisType := prompts.NormalizeAnalysisType(req.AnalysisType)
	analysis := h.ai.GenerateNewsAnalysis(c.Request.Context(), req.Content, analysisType)

	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

// ============== Chat Handlers ==============

// ContextualChatRequest represents the article-context chat request body
type ContextualChatRequest struct {
	ArticleID string `json:"articleId" binding:"required"`
	UserQuery string `json:"userQuery" binding:"required"`
}

// ChatContextual answers a query about a specific article
func (h *Handlers) ChatContextual(c *gin.Context) {
	var req ContextualChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "article ID and user query are required"})
		return
	}

	article, found := h.articles.GetArticleByID(req.ArticleID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	pctx := &prompts.Context{
		Now:           time.Now(),
		ArticleTitle:  article.Title,
		ArticleSource: article.Source.Name,
	}
	structured := h.ai.GenerateContextualResponse(c.Request.Context(), article.Content, req.UserQuery, pctx)

	c.JSON(http.StatusOK, gin.H{
		"response":           structured.Answer,
		"structuredResponse": structured,
		"articleTitle":       article.Title,
	})
}

// GlobalChatRequest represents the global chat request body
type GlobalChatRequest struct {
	UserQuery string `json:"userQuery" binding:"required"`
}

// ChatGlobal answers a general news query
func (h *Handlers) ChatGlobal(c *gin.Context) {
	var req GlobalChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user query is required"})
		return
	}

	structured := h.ai.GenerateGlobalResponse(c.Request.Context(), req.UserQuery, &prompts.Context{Now: time.Now()})

	c.JSON(http.StatusOK, gin.H{"response": structured.Answer})
}

// Health reports service liveness
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// feedLimit parses the limit query parameter, clamping to [1, 100]
func feedLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return defaultFeedLimit
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return defaultFeedLimit
	}
	if limit > maxFeedLimit {
		return maxFeedLimit
	}
	return limit
}
