// cmd/ledger/main.go
package main

import (
	"context"
	"log"
	"time"

	"ledger-service/internal/api/handlers"
	"ledger-service/internal/api/responses"
	"ledger-service/internal/config"
	"ledger-service/internal/core/ledger"
	"ledger-service/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Falha ao carregar configuração: ", err)
	}
	logger := responses.InitLogger()
	defer logger.Sync()

	store, err := openStore(cfg)
	if err != nil {
		logger.Fatal("falha ao abrir armazenamento de documentos", zap.Error(err))
	}
	defer store.Close()

	archive, err := openArchive(cfg)
	if err != nil {
		logger.Fatal("falha ao configurar arquivo de uploads", zap.Error(err))
	}

	policy, err := cfg.Ledger.Policy()
	if err != nil {
		logger.Fatal("política de agrupamento inválida", zap.Error(err))
	}

	ledgerService := ledger.NewService(ledger.Options{
		Policy:          policy,
		Provenance:      cfg.Ledger.Provenance,
		SourceEncoding:  cfg.SourceEncoding,
		ExportEncoding:  cfg.ExportEncoding,
		StrictCodeWidth: cfg.StrictCodeWidth,
		MaxFileSize:     cfg.MaxFileSize,
		Workers:         cfg.Workers,
		TagProvenance:   cfg.TagProvenance,
		Store:           store,
		Archive:         archive,
		Logger:          logger,
	})
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handlers.NewRouter(ledgerHandler, gin.Logger(), gin.Recovery())
	router.MaxMultipartMemory = 32 << 20

	log.Printf("🚀 Ledger Service (Go) iniciado e escutando na porta %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Falha ao iniciar o servidor de planilhas: ", err)
	}
}

func openStore(cfg *config.Config) (storage.DocumentStore, error) {
	var store storage.DocumentStore = storage.NewMemoryStore()
	if cfg.DocumentStoreDSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pg, err := storage.NewPostgres(ctx, cfg.DocumentStoreDSN)
		if err != nil {
			return nil, err
		}
		store = pg
	}
	if cfg.DocumentCacheSize > 0 {
		return storage.NewCachedStore(store, cfg.DocumentCacheSize)
	}
	return store, nil
}

func openArchive(cfg *config.Config) (storage.Archive, error) {
	if !cfg.Artifact.Enabled {
		return storage.NopArchive{}, nil
	}
	return storage.NewS3Archive(storage.S3Config{
		Endpoint:  cfg.Artifact.Endpoint,
		Region:    cfg.Artifact.Region,
		AccessKey: cfg.Artifact.AccessKey,
		SecretKey: cfg.Artifact.SecretKey,
		Bucket:    cfg.Artifact.Bucket,
		UseSSL:    cfg.Artifact.UseSSL,
	})
}
