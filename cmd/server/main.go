package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/review-platform/internal/config"
	"github.com/ignatzorin/review-platform/internal/db"
	httpHandlers "github.com/ignatzorin/review-platform/internal/http/handlers"
	httpRouter "github.com/ignatzorin/review-platform/internal/http/router"
	"github.com/ignatzorin/review-platform/internal/logger"
	"github.com/ignatzorin/review-platform/internal/moderation"
	"github.com/ignatzorin/review-platform/internal/service"
	"github.com/ignatzorin/review-platform/internal/store"
	"github.com/ignatzorin/review-platform/internal/ws"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logger.Init(cfg.Env)

	// Хранилище сущностей: память или PostgreSQL.
	var entityStore store.EntityStore
	var dbConn *sqlx.DB
	if cfg.StoreDriver == config.StoreDriverPostgres {
		dbConn, err = db.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("main: ошибка подключения к базе: %v", err)
		}
		defer safeClose(dbConn)

		if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
			log.Fatalf("main: ошибка миграций: %v", err)
		}
		entityStore = store.NewPostgresStore(dbConn)
	} else {
		entityStore = store.NewMemoryStore()
	}

	// Ядро модерации: фильтр терминов, очередь жалоб, фасад.
	termFilter := moderation.NewTermFilter(cfg.TermMatchMode)
	reportQueue := moderation.NewReportQueue()
	facade := moderation.NewFacade(termFilter, reportQueue)

	// Лента жалоб для модераторов.
	hub := ws.NewHub()
	go hub.Run()
	reportQueue.SetPublisher(ws.NewReportFeed(hub))

	// Сервисы.
	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)
	authService := service.NewAuthService(entityStore, tokenManager)
	contentService := service.NewContentService(entityStore)
	reviewService := service.NewReviewService(entityStore, termFilter, cfg.ScoreMin, cfg.ScoreMax)

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService)
	contentHandler := httpHandlers.NewContentHandler(contentService)
	reviewHandler := httpHandlers.NewReviewHandler(reviewService)
	reportHandler := httpHandlers.NewReportHandler(reportQueue)
	moderationHandler := httpHandlers.NewModerationHandler(facade)
	wsHandler := httpHandlers.NewWSHandler(hub)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authHandler, contentHandler, reviewHandler, reportHandler, moderationHandler, wsHandler, healthHandler, tokenManager)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
