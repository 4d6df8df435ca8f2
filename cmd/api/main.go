package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"spendo/internal/auth"
	"spendo/internal/config"
	"spendo/internal/database"
	spendoHttp "spendo/internal/http"
	authHandler "spendo/internal/http/auth"
	exportHandler "spendo/internal/http/export"
	receiptHandler "spendo/internal/http/receipt"
	reportHandler "spendo/internal/http/report"
	txHandler "spendo/internal/http/transaction"
	voiceHandler "spendo/internal/http/voice"
	"spendo/internal/notify"
	"spendo/internal/receipt"
	"spendo/internal/storage"
	"spendo/internal/transaction"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	kv, err := openStorage(ctx, cfg)
	if err != nil {
		slog.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	var storeOpts []transaction.Option

	if cfg.AMQP.URL != "" {
		publisher, err := notify.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
		if err != nil {
			slog.Error("failed to connect to broker", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()

		storeOpts = append(storeOpts, transaction.WithNotifier(publisher))
	}

	var (
		persister   = storage.NewTransactionPersister(kv)
		authService = auth.NewService(auth.Demo{}, kv, []byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	)

	var (
		authH    = authHandler.NewHandler(authService)
		txH      = txHandler.NewHandler(persister, storeOpts...)
		reportH  = reportHandler.NewHandler(persister)
		voiceH   = voiceHandler.NewHandler()
		exportH  = exportHandler.NewHandler(persister)
		receiptH = receiptHandler.NewHandler(receipt.Stub{Delay: cfg.Receipt.StubDelay})
	)

	router := spendoHttp.New(authService, authH, txH, reportH, voiceH, exportH, receiptH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port, "storage", cfg.Storage.Backend)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.KV, error) {
	switch cfg.Storage.Backend {
	case "postgres":
		db, err := database.NewPostgres(cfg.ConnectionString())
		if err != nil {
			return nil, err
		}

		return storage.NewPostgres(ctx, db)
	case "sqlite":
		db, err := database.NewSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}

		return storage.NewSQLite(ctx, db)
	case "file":
		return storage.OpenFile(cfg.Storage.FilePath)
	case "memory":
		return storage.NewMemory(), nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
