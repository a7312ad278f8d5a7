package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"tasksahead/model"
	"tasksahead/repository"
	"tasksahead/usecase"
	"tasksahead/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitValidator()
}

type testApp struct {
	router *gin.Engine
	userID string
}

// setupTestApp wires the full API against fresh in-memory stores with one
// provisioned user, mirroring the production router.
func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	users := repository.NewUsersRepo()
	tasks := repository.NewTasksRepo()
	projects := repository.NewProjectsRepo()
	streaks := repository.NewStreaksRepo()

	user := users.CreateUser(&model.User{
		Username:            "demo",
		Email:               "demo@tasksahead.com",
		CurrentStreak:       7,
		LongestStreak:       15,
		TotalTasksCompleted: 42,
	})

	streakService := usecase.NewStreakService(streaks, users)
	taskService := usecase.NewTaskService(tasks, streakService)
	projectService := usecase.NewProjectService(projects)
	userService := usecase.NewUserService(users)
	statsService := usecase.NewStatsService(tasks, users)

	taskHandler := NewTaskHandler(taskService, projectService, user.UserID)
	projectHandler := NewProjectHandler(projectService, user.UserID)
	streakHandler := NewStreakHandler(streakService, user.UserID)
	statsHandler := NewStatsHandler(statsService, user.UserID)
	settingsHandler := NewSettingsHandler(userService, user.UserID)

	router := gin.New()
	api := router.Group("/api")
	{
		api.GET("/tasks", taskHandler.GetTasks)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.POST("/tasks", taskHandler.CreateTask)
		api.PUT("/tasks/:id", taskHandler.UpdateTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)

		api.GET("/projects", projectHandler.GetProjects)
		api.POST("/projects", projectHandler.CreateProject)
		api.PUT("/projects/:id", projectHandler.UpdateProject)
		api.DELETE("/projects/:id", projectHandler.DeleteProject)

		api.GET("/user/stats", statsHandler.GetUserStats)
		api.PUT("/user/settings", settingsHandler.UpdateSettings)
		api.GET("/streaks", streakHandler.GetStreaks)
	}

	return &testApp{router: router, userID: user.UserID}
}

func (app *testApp) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
}

func assertErrorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	decodeJSON(t, w, &body)
	message, ok := body["message"].(string)
	if !ok || message == "" {
		t.Fatalf("Expected error body with message, got %q", w.Body.String())
	}
	return message
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("Expected status %d, got %d (body %q)", want, w.Code, w.Body.String())
	}
}
