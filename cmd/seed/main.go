package main

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Shriii19/TaskFlow/internal/config"
	"github.com/Shriii19/TaskFlow/internal/db"
	"github.com/Shriii19/TaskFlow/internal/logger"
	"github.com/Shriii19/TaskFlow/internal/model"
	"github.com/Shriii19/TaskFlow/internal/repository"
)

type seedUser struct {
	Username string
	Email    string
	Password string
	Role     model.Role
}

var demoUsers = []seedUser{
	{Username: "Ava Admin", Email: "ava@taskflow.dev", Password: "admin-demo-1", Role: model.RoleAdmin},
	{Username: "Pat Manager", Email: "pat@taskflow.dev", Password: "manager-demo-1", Role: model.RoleProjectManager},
	{Username: "Sam Dev", Email: "sam@taskflow.dev", Password: "member-demo-1", Role: model.RoleTeamMember},
}

var demoProjects = []model.Project{
	{Name: "Website Redesign", Description: "Marketing site refresh", Status: "in_progress", ManagerID: "2", Deadline: "2026-10-15", Progress: 40, Color: "#3b82f6"},
	{Name: "Mobile App", Description: "Companion app MVP", Status: "todo", ManagerID: "2", Deadline: "2026-12-01", Progress: 0, Color: "#8b5cf6"},
}

var demoTasks = []model.Task{
	{Title: "Draft new landing page", ProjectID: "1", AssignedTo: "3", Priority: "high", Status: "in_progress", DueDate: "2026-09-20"},
	{Title: "Set up CI pipeline", ProjectID: "2", AssignedTo: "3", Priority: "medium", Status: "todo", DueDate: "2026-09-30"},
	{Title: "Review color palette", ProjectID: "1", AssignedTo: "2", Priority: "low", Status: "review", DueDate: "2026-09-10"},
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Project{}, &model.Task{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)

	created := 0
	for _, su := range demoUsers {
		_, err := userRepo.FindByEmail(ctx, su.Email)
		if err == nil {
			continue // already seeded
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal().Err(err).Str("email", su.Email).Msg("check user")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash password")
		}
		user := &model.User{
			Username:     su.Username,
			Email:        su.Email,
			PasswordHash: string(hash),
			Role:         su.Role,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatal().Err(err).Str("email", su.Email).Msg("create user")
		}
		created++
	}
	log.Info().Int("created", created).Int("total", len(demoUsers)).Msg("users seeded")

	projectRepo := repository.NewProjectRepository(gormDB)
	if n, err := seedProjects(ctx, gormDB, projectRepo); err != nil {
		log.Fatal().Err(err).Msg("seed projects")
	} else {
		log.Info().Int("created", n).Msg("projects seeded")
	}

	taskRepo := repository.NewTaskRepository(gormDB)
	if n, err := seedTasks(ctx, gormDB, taskRepo); err != nil {
		log.Fatal().Err(err).Msg("seed tasks")
	} else {
		log.Info().Int("created", n).Msg("tasks seeded")
	}

	log.Info().Msg("seed completed")
}

func seedProjects(ctx context.Context, gormDB *gorm.DB, repo repository.ProjectRepository) (int, error) {
	created := 0
	for i := range demoProjects {
		p := demoProjects[i]
		var count int64
		if err := gormDB.WithContext(ctx).Model(&model.Project{}).Where("name = ?", p.Name).Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}
		if err := repo.Create(ctx, &p); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func seedTasks(ctx context.Context, gormDB *gorm.DB, repo repository.TaskRepository) (int, error) {
	created := 0
	for i := range demoTasks {
		t := demoTasks[i]
		var count int64
		if err := gormDB.WithContext(ctx).Model(&model.Task{}).Where("title = ?", t.Title).Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}
		if err := repo.Create(ctx, &t); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
