package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"polaris/internal/config"
	"polaris/internal/conversations"
	"polaris/internal/database"
	"polaris/internal/events"
	"polaris/internal/llm/client"
	"polaris/internal/repositories"
	"polaris/internal/scrape"
	"polaris/internal/server"
	"polaris/internal/store"
	"polaris/internal/suggest"
	"polaris/internal/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.InternalKey == "" {
		log.Fatal("POLARIS_INTERNAL_KEY is not configured")
	}

	events.EnableLogEmitter()

	db, err := database.Init(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	st := store.New(cfg.InternalKey,
		repositories.NewConversationRepository(db),
		repositories.NewMessageRepository(db),
		repositories.NewFileNodeRepository(db),
		repositories.NewProjectRepository(db),
	)

	ctx := context.Background()

	codingModel, err := client.NewClient(ctx, cfg.Provider, cfg.APIKey, client.ModelOptions{
		Model:       cfg.CodingModel,
		Temperature: 0.3,
		MaxTokens:   16000,
	})
	if err != nil {
		log.Fatalf("create coding model: %v", err)
	}
	titleModel, err := client.NewClient(ctx, cfg.Provider, cfg.APIKey, client.ModelOptions{
		Model:       cfg.TitleModel,
		Temperature: 0,
		MaxTokens:   50,
	})
	if err != nil {
		log.Fatalf("create title model: %v", err)
	}
	suggestModel, err := client.NewClient(ctx, cfg.Provider, cfg.APIKey, client.ModelOptions{
		Model:       cfg.TitleModel,
		Temperature: 0,
		MaxTokens:   200,
	})
	if err != nil {
		log.Fatalf("create suggestion model: %v", err)
	}

	engine := workflow.NewEngine()
	processor := conversations.NewProcessor(conversations.Options{
		Store:         st,
		CodingModel:   codingModel,
		TitleModel:    titleModel,
		Scraper:       scrape.NewFetcher(15 * time.Second),
		InternalKey:   cfg.InternalKey,
		MaxIterations: cfg.MaxIterations,
		HistoryLimit:  cfg.HistoryLimit,
	})
	if err := engine.Register(processor.Function()); err != nil {
		log.Fatalf("register workflow: %v", err)
	}

	srv := server.New(server.Options{
		Store:          st,
		Engine:         engine,
		SuggestModel:   suggestModel,
		SuggestLimiter: suggest.NewLimiter(cfg.SuggestionRateMax, cfg.SuggestionRateEvery),
		InternalKey:    cfg.InternalKey,
	})

	go func() {
		if err := srv.Start(cfg.Addr); err != nil {
			log.Printf("server stopped: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	engine.Wait()
}
