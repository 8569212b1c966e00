package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog"

	"github.com/dewatanation/admin-panel/app/repository"
	"github.com/dewatanation/admin-panel/internal/pkg/auth"
	"github.com/dewatanation/admin-panel/internal/pkg/cache"
	"github.com/dewatanation/admin-panel/internal/pkg/config"
	"github.com/dewatanation/admin-panel/internal/pkg/database"
	"github.com/dewatanation/admin-panel/internal/pkg/env"
	"github.com/dewatanation/admin-panel/internal/pkg/logger"
	"github.com/dewatanation/admin-panel/internal/pkg/router"
	"github.com/dewatanation/admin-panel/internal/pkg/session"
)

func main() {
	env.SetupEnvFile()
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDev(),
	})

	app, pool := NewApplication(cfg, log)
	defer pool.Close()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("Shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	log.Info().Str("addr", cfg.Addr()).Msg("Starting admin panel")
	if err := app.Listen(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func NewApplication(cfg *config.Config, log zerolog.Logger) (*fiber.App, *database.Pool) {
	pool := database.NewPool(database.Settings{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
	}, log)

	// Not fatal: the panel shows the DB modal and /api/db-connect retries.
	connectCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	if err := pool.Connect(connectCtx); err != nil {
		log.Error().Err(err).Msg("Starting without game database")
	}
	cancel()

	sessions := session.NewSessionStore(cfg.Session, cache.SetupCache(cfg.Cache, log))
	repos := repository.NewRepositories(pool)
	verifier := auth.NewVerifier(repos.Account, auth.NewAdminKeyStore(cfg.Security.AdminKeyMode, repos.Admin))

	basePath := findBasePath()

	// init fiber app
	app := fiber.New(fiber.Config{
		AppName:   "dewata-admin-panel",
		Views:     html.New(basePath+"views", ".html"),
		BodyLimit: 64 * 1024,
	})

	// ignore favicon requests
	app.Use(favicon.New())

	// recovery and logging
	app.Use(recover.New(), fiberlogger.New())

	// static files
	app.Static("/", basePath+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// SWAGGER / OPENAPI
	docPath := basePath + router.APIDocPath
	doc, err := router.LoadAPIDoc(context.Background(), docPath)
	if err != nil {
		log.Warn().Err(err).Str("file", docPath).Msg("API document is invalid")
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/docs/api/",
		FilePath: docPath,
		Path:     "v1",
	}))

	// ROUTER
	router.InstallRouter(app, router.Dependencies{
		Config:   cfg,
		Sessions: sessions,
		Verifier: verifier,
		Pool:     pool,
		Repos:    repos,
	})

	if doc != nil {
		for _, route := range router.UndocumentedRoutes(app, doc) {
			log.Warn().Str("route", route).Msg("route missing from API document")
		}
	}

	return app, pool
}

// findBasePath locates the directory holding views/ so the binary runs from
// the project root as well as from cmd/panel.
func findBasePath() string {
	basePaths := []string{
		"./",
		"../../",
		"../../../",
	}
	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			return path
		}
	}
	panic("Could not find project root directory")
}
