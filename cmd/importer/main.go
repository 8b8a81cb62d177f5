package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"review-insight/cache"
	"review-insight/config"
	"review-insight/dataset"
	"review-insight/db"
	"review-insight/repositories"
	"review-insight/services"
)

// importer loads a scraped marketplace dataset into MongoDB, replacing the
// product and review collections, and classifies every review.
//
//	go run ./cmd/importer -products data/produk.json -reviews data/ulasan.json
func main() {
	productsPath := flag.String("products", "", "path to the products JSON array (optional)")
	reviewsPath := flag.String("reviews", "", "path to the reviews JSON array")
	flag.Parse()

	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Logging)

	if *reviewsPath == "" {
		config.Logger.Error("-reviews is required")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.Init(ctx); err != nil {
		config.Logger.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}
	defer db.Disconnect(context.Background())

	var productsFile io.Reader
	if *productsPath != "" {
		f, err := os.Open(*productsPath)
		if err != nil {
			config.Logger.Errorf("open products file: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		productsFile = f
	}
	reviewsFile, err := os.Open(*reviewsPath)
	if err != nil {
		config.Logger.Errorf("open reviews file: %v", err)
		os.Exit(1)
	}
	defer reviewsFile.Close()

	database := db.Database()
	productRepo := repositories.NewProductRepository(database)
	reviewRepo := repositories.NewReviewRepository(database)
	sentimentRepo := repositories.NewSentimentRepository(database)

	// a private cache: the API's entries expire by TTL after an import
	c := cache.NewMemory(cfg.Cache.TTL(), cache.SystemClock)
	classifier := services.NewClassificationService(reviewRepo, sentimentRepo, productRepo, c, cfg.Analysis.ClassifyBatchSize)

	report, err := dataset.NewImporter(productRepo, reviewRepo, sentimentRepo, classifier).Run(ctx, productsFile, reviewsFile)
	if err != nil {
		config.Logger.Errorf("import failed: %v", err)
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(report, "", "  ")
	config.InfoWithFields("import finished", config.Fields{"report": string(out)})
}
