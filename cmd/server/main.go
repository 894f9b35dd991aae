package main

import (
	"fmt"
	"log"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/config"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/handler"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/llm/perplexity"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/repository/postgres"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/router"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	caseRepo := postgres.NewCaseRepo(db)
	analysisRepo := postgres.NewAnalysisRepo(db)

	// Initialize the completion client
	completionClient := perplexity.NewClient(&cfg.LLM)
	if cfg.LLM.APIKey == "" {
		log.Printf("warning: no completion API key configured; AI flows will report a configuration error")
	}

	// Initialize services
	caseSvc := service.NewCaseService(caseRepo, analysisRepo)
	analysisSvc := service.NewAnalysisService(completionClient, &cfg.Prompt)
	chatSvc := service.NewChatService(completionClient, &cfg.Prompt)

	// Initialize handlers
	caseH := handler.NewCaseHandler(caseSvc)
	analysisH := handler.NewAnalysisHandler(analysisSvc)
	chatH := handler.NewChatHandler(chatSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, caseH, analysisH, chatH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
