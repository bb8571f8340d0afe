// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/spocklabs/spock-admin/internal/config"
	"github.com/spocklabs/spock-admin/internal/db"
	"github.com/spocklabs/spock-admin/internal/handler"
	"github.com/spocklabs/spock-admin/internal/metrics"
	"github.com/spocklabs/spock-admin/internal/repository"
	"github.com/spocklabs/spock-admin/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	database, err := db.New(ctx, &cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	defer database.Close()

	campaignRepo := &repository.CampaignRepository{DB: database.Postgres}
	contentRepo := &repository.ContentRepository{DB: database.Postgres}

	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
		ContentRepo:  contentRepo,
	}
	contentService := &service.ContentService{
		ContentRepo:  contentRepo,
		CampaignRepo: campaignRepo,
	}

	campaignHandler := handler.NewCampaignHandler(campaignService)
	contentHandler := handler.NewContentHandler(contentService)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.App.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(metrics.Middleware)

	r.Handle("/metrics", metrics.Handler())
	r.Mount("/", handler.Routes(campaignHandler, contentHandler))

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	log.Println("🚀 Server running on", cfg.Server.Addr())
	log.Fatal(srv.ListenAndServe())
}
