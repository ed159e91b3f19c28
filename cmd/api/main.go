package main

import (
	"game-library/api"
	"game-library/internal/adapter"
	"game-library/internal/config"
	"game-library/internal/core"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	store, closeStore, err := adapter.OpenStore(cfg.Store, cfg.DataDir, cfg.DBPath, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	vocab, err := adapter.LoadVocabulary(cfg.VocabularyPath)
	if err != nil {
		log.Fatal(err)
	}

	cards := core.CardMapper{TopBucket: vocab.TopBucket(), Unit: cfg.PlayerCountUnit, Units: cfg.PlayerCountUnits}
	if cfg.PlayerCountTopBucket != nil {
		cards.TopBucket = *cfg.PlayerCountTopBucket
	}
	catalog := core.NewCatalog(
		core.NewRepository(store, logger),
		core.Sorter{Order: core.SortOrder(cfg.SortOrder)},
		cards,
	)
	admin := core.NewAdminService(store, logger)
	images := core.NewImageValidator(cfg.ImageMaxBytes, cfg.ImageRequireAttribution)
	h := adapter.NewHTTPHandler(catalog, admin, images, vocab, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	api.HandlerWithOptions(h, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: adapter.ParamErrorHandler,
	})

	logger.Info("starting server", "port", cfg.Port, "store", cfg.Store)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
