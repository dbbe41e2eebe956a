package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	_ "github.com/Shriii19/TaskFlow/docs" // swagger docs

	"github.com/Shriii19/TaskFlow/internal/cache"
	"github.com/Shriii19/TaskFlow/internal/config"
	"github.com/Shriii19/TaskFlow/internal/db"
	"github.com/Shriii19/TaskFlow/internal/handler"
	"github.com/Shriii19/TaskFlow/internal/logger"
	"github.com/Shriii19/TaskFlow/internal/model"
	"github.com/Shriii19/TaskFlow/internal/repository"
	"github.com/Shriii19/TaskFlow/internal/router"
	"github.com/Shriii19/TaskFlow/internal/service"
)

// @title TaskFlow API
// @version 1.0
// @description Project management API with users, projects, tasks and password-based authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel})

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Task{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	authService := service.NewAuthService(userRepo, cacheClient)
	userService := service.NewUserService(userRepo, cacheClient)
	projectService := service.NewProjectService(projectRepo, cacheClient)
	taskService := service.NewTaskService(taskRepo, cacheClient)

	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	userHandler := handler.NewUserHandler(userService)

	e := echo.New()
	router.Register(e, log, authHandler, projectHandler, taskHandler, userHandler)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
