package main

import (
	"context"
	"errors"
	"flag"
	"game-library/internal/adapter"
	"game-library/internal/config"
	"game-library/internal/core"
	"game-library/internal/core/model"
	"game-library/pkg/http_client"
	"log"
	"log/slog"
	"os"
	"time"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	dir := flag.String("dir", "", "directory of <id>.json game files to import")
	file := flag.String("file", "", "JSON file holding an array of games to import")
	url := flag.String("url", "", "base URL of a published catalog (<url>/games.json)")
	storeKind := flag.String("store", cfg.Store, "target store: file or sqlite")
	dataDir := flag.String("data", cfg.DataDir, "target directory for the file store")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	overwrite := flag.Bool("overwrite", false, "replace games that already exist")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	var source core.Loader
	switch {
	case *dir != "":
		source = adapter.NewFileStore(*dir, logger)
	case *file != "":
		source = core.LoaderFunc(func(context.Context) ([]model.RawGame, error) {
			data, err := os.ReadFile(*file)
			if err != nil {
				return nil, err
			}
			return model.DecodeRawGames(data)
		})
	case *url != "":
		source = adapter.NewRemoteCatalogClient(*url, cfg.RemoteRetry, http_client.CreateHTTPClient(10*time.Second))
	default:
		log.Fatal("one of -dir, -file or -url is required")
	}
	if *storeKind == config.StoreMemory {
		log.Fatal("seeding the memory store has no effect; use file or sqlite")
	}

	target, closeStore, err := adapter.OpenStore(*storeKind, *dataDir, *dbPath, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	ctx := context.Background()
	// invalid records are logged and skipped by the repository
	games, err := core.NewRepository(source, logger).GetAllGames(ctx, model.Admin)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	var imported, skipped int
	for _, g := range games {
		_, err := target.GetByID(ctx, g.ID)
		switch {
		case err == nil && !*overwrite:
			logger.Info("game exists, skipping", "id", g.ID)
			skipped++
			continue
		case err != nil && !errors.Is(err, model.ErrGameNotFound):
			logger.Warn("cannot read existing game, skipping", "id", g.ID, "err", err)
			skipped++
			continue
		}
		if err := target.Save(ctx, g); err != nil {
			log.Fatalf("Failed to save %s: %v", g.ID, err)
		}
		imported++
	}
	logger.Info("seed complete", "imported", imported, "skipped", skipped, "store", *storeKind)
}
