package v1

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/devtrack-simple/database"
	"github.com/devtrack-simple/dto"
	"github.com/devtrack-simple/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite" // pure Go SQLite driver (no CGO required)
)

func setupTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dbPath := filepath.Join(t.TempDir(), "test.db")
	sqlDB, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_time_format=sqlite")
	require.NoError(t, err)

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.DB = db
	t.Cleanup(func() {
		database.DB = nil
		sqlDB.Close()
	})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api"))
	return router
}

// registerUser creates an account straight through the service layer
// and returns a bearer token for it
func registerUser(t *testing.T, email string) string {
	t.Helper()

	user, err := services.Register(dto.RegisterRequest{Email: email, Password: "hunter22"})
	require.NoError(t, err)

	token, _, err := services.GenerateToken(user.ID, user.Email)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestProjectEndpointsContract(t *testing.T) {
	router := setupTestAPI(t)
	token := registerUser(t, "owner@example.com")

	// Unauthenticated requests never reach the store
	w := doJSON(t, router, http.MethodGet, "/api/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Create: server assigns id/userId/createdAt even if supplied
	w = doJSON(t, router, http.MethodPost, "/api/projects", token, map[string]interface{}{
		"id":     999,
		"userId": "someone-else",
		"name":   "Task Manager",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID     uint   `json:"id"`
		Name   string `json:"name"`
		UserID string `json:"userId"`
	}
	decode(t, w, &created)
	assert.NotEqual(t, uint(999), created.ID)
	assert.NotEqual(t, "someone-else", created.UserID)
	assert.Equal(t, "Task Manager", created.Name)

	// Validation failure names the offending field
	w = doJSON(t, router, http.MethodPost, "/api/projects", token, map[string]string{"name": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// List is scoped to the caller and carries the children arrays
	w = doJSON(t, router, http.MethodGet, "/api/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []map[string]interface{}
	decode(t, w, &listed)
	require.Len(t, listed, 1)
	assert.Contains(t, listed[0], "features")
	assert.Contains(t, listed[0], "bugs")
	assert.Contains(t, listed[0], "improvements")

	// Update
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/projects/%d", created.ID), token,
		map[string]string{"description": "tracker"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Another user's view: 404, nothing leaked
	otherToken := registerUser(t, "other@example.com")
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/projects/%d", created.ID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Delete, then the id is gone
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/projects/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/projects/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskEndpointsContract(t *testing.T) {
	router := setupTestAPI(t)
	token := registerUser(t, "owner@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/projects", token, map[string]string{"name": "Task Manager"})
	require.Equal(t, http.StatusCreated, w.Code)
	var project struct {
		ID uint `json:"id"`
	}
	decode(t, w, &project)

	// Bug defaults to open
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/projects/%d/bugs", project.ID), token,
		map[string]string{"description": "UI fix for mobiles"})
	require.Equal(t, http.StatusCreated, w.Code)
	var bug struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	decode(t, w, &bug)
	assert.Equal(t, "open", bug.Status)

	// Flip it to fixed through the generic update
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/bugs/%d", bug.ID), token,
		map[string]string{"status": "fixed"})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &bug)
	assert.Equal(t, "fixed", bug.Status)

	// Feature with tags and rank round-trips
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/projects/%d/features", project.ID), token,
		map[string]interface{}{"description": "Add checklist", "tags": []string{"ui", "mobile"}, "rank": 5})
	require.Equal(t, http.StatusCreated, w.Code)
	var feature struct {
		ID   uint     `json:"id"`
		Tags []string `json:"tags"`
		Rank int      `json:"rank"`
	}
	decode(t, w, &feature)
	assert.Equal(t, []string{"ui", "mobile"}, feature.Tags)
	assert.Equal(t, 5, feature.Rank)

	// Status endpoint flips the feature
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/features/%d/status", feature.ID), token,
		map[string]string{"status": "completed"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Deleting a task that never existed is a uniform 204 no-op
	for _, family := range []string{"features", "bugs", "improvements"} {
		w = doJSON(t, router, http.MethodDelete, "/api/"+family+"/424242", token, nil)
		assert.Equal(t, http.StatusNoContent, w.Code, family)
	}

	// Invalid status for the kind is a 400
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/projects/%d/bugs", project.ID), token,
		map[string]string{"description": "nope", "status": "pending"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActivityFeedEndpoint(t *testing.T) {
	router := setupTestAPI(t)
	token := registerUser(t, "owner@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/projects", token, map[string]string{"name": "Task Manager"})
	require.Equal(t, http.StatusCreated, w.Code)
	var project struct {
		ID uint `json:"id"`
	}
	decode(t, w, &project)

	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/projects/%d/features", project.ID), token,
		map[string]string{"description": "Add checklist", "status": "pending"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/projects/%d/activities", project.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var activities []struct {
		Type        string `json:"type"`
		Entity      string `json:"entity"`
		Description string `json:"description"`
	}
	decode(t, w, &activities)
	require.Len(t, activities, 2)
	assert.Equal(t, `Added new feature: "Add checklist"`, activities[0].Description)
	assert.Equal(t, `Created project "Task Manager"`, activities[1].Description)

	// Another user's feed request is a 404
	otherToken := registerUser(t, "other@example.com")
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/projects/%d/activities", project.ID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSeedEndpoint(t *testing.T) {
	router := setupTestAPI(t)
	token := registerUser(t, "fresh@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/seed", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []map[string]interface{}
	decode(t, w, &listed)
	assert.Len(t, listed, 3)

	// Seeding twice does not duplicate
	w = doJSON(t, router, http.MethodPost, "/api/seed", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	decode(t, w, &resp)
	assert.Equal(t, "Already seeded", resp["message"])
}

func TestAuthEndpoints(t *testing.T) {
	router := setupTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "",
		map[string]string{"email": "dev@example.com", "password": "hunter22"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "dev@example.com", "password": "hunter22"})
	require.Equal(t, http.StatusOK, w.Code)
	var auth struct {
		Token string `json:"token"`
	}
	decode(t, w, &auth)
	require.NotEmpty(t, auth.Token)

	w = doJSON(t, router, http.MethodGet, "/api/auth/me", auth.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		Email string `json:"email"`
	}
	decode(t, w, &me)
	assert.Equal(t, "dev@example.com", me.Email)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "dev@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
