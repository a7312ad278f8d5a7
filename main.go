package main

import (
	"fmt"
	"log"
	"os"

	"tasksahead/handler"
	"tasksahead/middleware"
	"tasksahead/repository"
	"tasksahead/usecase"
	"tasksahead/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	utils.InitValidator()
}

// stores groups the in-memory repositories. Everything is constructed once
// here and handed to the handlers; there is no global storage state.
type stores struct {
	users    *repository.UsersRepo
	tasks    *repository.TasksRepo
	projects *repository.ProjectsRepo
	streaks  *repository.StreaksRepo
}

func newStores() *stores {
	return &stores{
		users:    repository.NewUsersRepo(),
		tasks:    repository.NewTasksRepo(),
		projects: repository.NewProjectsRepo(),
		streaks:  repository.NewStreaksRepo(),
	}
}

func setupRouter(s *stores, userID string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// Initialize services
	streakService := usecase.NewStreakService(s.streaks, s.users)
	taskService := usecase.NewTaskService(s.tasks, streakService)
	projectService := usecase.NewProjectService(s.projects)
	userService := usecase.NewUserService(s.users)
	statsService := usecase.NewStatsService(s.tasks, s.users)

	// Initialize handlers
	taskHandler := handler.NewTaskHandler(taskService, projectService, userID)
	projectHandler := handler.NewProjectHandler(projectService, userID)
	streakHandler := handler.NewStreakHandler(streakService, userID)
	statsHandler := handler.NewStatsHandler(statsService, userID)
	settingsHandler := handler.NewSettingsHandler(userService, userID)
	healthHandler := handler.NewHealthHandler()

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.GetHealth)

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.GetProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		api.GET("/user/stats", statsHandler.GetUserStats)
		api.PUT("/user/settings", settingsHandler.UpdateSettings)
		api.GET("/streaks", streakHandler.GetStreaks)
	}

	return router
}

func main() {
	s := newStores()

	// Provision the single account all requests operate on.
	user := repository.ProvisionDefaultUser(
		s.users,
		utils.GetEnvAsString("DEMO_USERNAME", "demo"),
		utils.GetEnvAsString("DEMO_EMAIL", "demo@tasksahead.com"),
		utils.GetEnvAsString("DEMO_PASSWORD", "demo123"),
	)
	if utils.GetEnvAsBool("SEED_DEMO_DATA", true) {
		repository.SeedSampleData(s.tasks, s.projects, user.UserID)
	}

	router := setupRouter(s, user.UserID)

	port := utils.GetEnvAsString("PORT", "8080")
	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
