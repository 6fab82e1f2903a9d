package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/auth"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/config"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/budget"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/domain/policy"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/repository/postgres"
	httpTransport "github.com/renudeshmukh940/TaskHive-sub000/internal/transport/http"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/transport/http/handler"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/usecase"
)

func main() {
	// Локальный .env, если он есть; в контейнере конфиг приходит из окружения
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Подключаемся к базе данных
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Проверяем подключение
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	log.Println("Successfully connected to database")

	// Применяем миграции
	if err := runMigrations(cfg.GetDSN()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations applied successfully")

	// Инициализируем репозитории
	userRepo := postgres.NewUserRepository(pool)
	teamRepo := postgres.NewTeamRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	summaryRepo := postgres.NewSummaryRepository(pool)
	txManager := postgres.NewTransactionManager(pool)

	// Доменное ядро: политика доступа и валидатор дневного бюджета
	accessPolicy := policy.NewAccessPolicy(userRepo)
	validator := budget.NewValidator()

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)

	// Инициализируем use cases
	profileUseCase := usecase.NewProfileUseCase(userRepo, teamRepo, txManager, tokens)
	taskUseCase := usecase.NewTaskUseCase(taskRepo, teamRepo, catalogRepo, txManager, accessPolicy, validator)
	teamUseCase := usecase.NewTeamUseCase(teamRepo, userRepo, catalogRepo, accessPolicy)
	summaryUseCase := usecase.NewSummaryUseCase(summaryRepo, accessPolicy)

	// Инициализируем handlers
	authHandler := handler.NewAuthHandler(profileUseCase)
	taskHandler := handler.NewTaskHandler(taskUseCase)
	teamHandler := handler.NewTeamHandler(teamUseCase)
	summaryHandler := handler.NewSummaryHandler(summaryUseCase)
	healthHandler := handler.NewHealthHandler()

	// Создаем роутер
	router := httpTransport.NewRouter(httpTransport.RouterConfig{
		AuthHandler:    authHandler,
		TaskHandler:    taskHandler,
		TeamHandler:    teamHandler,
		SummaryHandler: summaryHandler,
		HealthHandler:  healthHandler,
		ProfileUseCase: profileUseCase,
		VerifyToken:    tokens.Verify,
	})

	// Создаем HTTP сервер
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Запускаем сервер в отдельной горутине
	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// Применяем миграции базы данных
func runMigrations(dsn string) error {
	m, err := migrate.New(
		"file://migrations",
		dsn,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
