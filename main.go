package main

import (
	"context"
	"fmt"
	"log"

	"crux/pkg/ai"
	"crux/pkg/auth"
	"crux/pkg/config"
	"crux/pkg/handlers"
	"crux/pkg/logger"
	"crux/pkg/news"
	"crux/pkg/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(logger.ParseLevel(cfg.LogLevel))
	logg := logger.Get()

	// Initialize store and auth
	dataStore := store.New()
	seedDemoUser(dataStore)
	authService := auth.New(&cfg.Auth)

	// Initialize the upstream news client; absent key means mock feed
	var newsClient handlers.NewsFetcher
	if cfg.News.APIKey != "" {
		newsClient = news.New(cfg.News.APIKey, cfg.News.BaseURL)
	} else {
		logg.Info("no news API key configured, serving mock articles")
	}

	// Initialize the AI gateway; absent key means fallback responses
	var generator ai.Generator
	if cfg.AI.APIKey != "" {
		generator, err = ai.NewGeminiGenerator(context.Background(), cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
	} else {
		logg.Info("no Gemini API key configured, serving fallback responses")
	}
	gateway := ai.NewGateway(generator, logg)

	// Initialize handlers
	h := handlers.New(authService, dataStore, dataStore, newsClient, gateway, logg)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.Server.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.Server.FrontendURL)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	// Public routes
	r.GET("/health", h.Health)
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)
	// gin's route tree rejects a static sibling of :id, so the feed
	// path is dispatched inside the param route
	r.GET("/articles/:id", func(c *gin.Context) {
		if c.Param("id") == "feed" {
			h.ArticleFeed(c)
			return
		}
		h.ArticleByID(c)
	})

	// Authenticated routes
	protected := r.Group("/", authService.Middleware())
	{
		protected.POST("/articles/analyze", h.AnalyzeArticle)
		protected.POST("/chat/contextual", h.ChatContextual)
		protected.POST("/chat/global", h.ChatGlobal)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logg.Info("starting CruX news service", "addr", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedDemoUser creates the built-in demo account
func seedDemoUser(s *store.Store) {
	hash, err := auth.HashPassword("demo123")
	if err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}
	if _, err := s.CreateUser("demo", "demo@crux.com", hash); err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}
}
