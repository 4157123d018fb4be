package main

import (
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog/log"

	"github.com/zamanlab/bank-advisor-be/internal/catalog"
	"github.com/zamanlab/bank-advisor-be/internal/config"
	"github.com/zamanlab/bank-advisor-be/internal/core/llm"
	"github.com/zamanlab/bank-advisor-be/internal/handlers"
	"github.com/zamanlab/bank-advisor-be/internal/services"
	"github.com/zamanlab/bank-advisor-be/internal/session"
	"github.com/zamanlab/bank-advisor-be/internal/utils"
)

func main() {
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)

	productCatalog := catalog.New()
	engine := catalog.NewRecommendationEngine(productCatalog)

	sessions := session.NewStore(cfg.SessionIdleTTL)
	janitor := session.NewJanitor(sessions)
	if err := janitor.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start session janitor")
	}
	defer janitor.Stop()

	llmClient := llm.NewClient(llm.Options{
		APIKey:       cfg.OpenAIKey,
		BaseURL:      cfg.OpenAIBaseURL,
		ChatModel:    cfg.ChatModel,
		EmbedModel:   cfg.EmbeddingModel,
		WhisperModel: cfg.WhisperModel,
		Timeout:      cfg.LLMTimeout,
	})
	prompts := llm.NewPromptBuilder(productCatalog)

	chatService := services.NewChatService(sessions, llmClient, prompts)
	goalService := services.NewGoalService()
	expenseService := services.NewExpenseService()
	motivationService := services.NewMotivationService(rand.New(rand.NewSource(time.Now().UnixNano())))

	sessionHandler := handlers.NewSessionHandler(sessions, engine)
	chatHandler := handlers.NewChatHandler(chatService, llmClient)
	productHandler := handlers.NewProductHandler(productCatalog)
	advisorHandler := handlers.NewAdvisorHandler(sessions, goalService, expenseService, motivationService)

	app := fiber.New()
	app.Use(cors.New())

	// Sessions
	app.Post("/api/sessions", sessionHandler.InitSession)
	app.Delete("/api/sessions/:id", sessionHandler.DestroySession)
	app.Post("/api/sessions/:id/clear", sessionHandler.ClearTranscript)
	app.Get("/api/sessions/:id/profile", sessionHandler.GetProfile)
	app.Patch("/api/sessions/:id/profile", sessionHandler.UpdateProfile)
	app.Post("/api/sessions/:id/goals", sessionHandler.AddGoal)
	app.Get("/api/sessions/:id/recommendations", sessionHandler.GetRecommendations)

	// Chat
	app.Post("/api/chat", chatHandler.Chat)
	app.Post("/api/chat/audio", chatHandler.ChatAudio)
	app.Post("/api/embedding", chatHandler.CreateEmbedding)

	// Products
	app.Get("/api/products", productHandler.ListProducts)
	app.Get("/api/products/search", productHandler.SearchProducts)
	app.Get("/api/products/categories", productHandler.GetCategories)
	app.Get("/api/products/islamic", productHandler.GetIslamicProducts)
	app.Get("/api/products/retail", productHandler.GetRetailProducts)
	app.Get("/api/products/sme", productHandler.GetSMEProducts)
	app.Get("/api/products/by-amount", productHandler.GetProductsByAmount)
	app.Get("/api/products/by-age", productHandler.GetProductsByAge)
	app.Get("/api/products/:id", productHandler.GetProduct)

	// Advisor
	app.Post("/api/goals/analyze", advisorHandler.AnalyzeGoal)
	app.Post("/api/expenses/analyze", advisorHandler.AnalyzeExpenses)
	app.Post("/api/goals/motivation", advisorHandler.Motivate)

	log.Info().Str("port", cfg.Port).Int("products", productCatalog.Stats().TotalProducts).Msg("🏦 bank advisor API running")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
