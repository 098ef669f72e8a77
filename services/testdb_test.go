package services

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/devtrack-simple/database"
	"github.com/devtrack-simple/models"
	"github.com/devtrack-simple/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite" // pure Go SQLite driver (no CGO required)
)

// setupTestDB points the global connection at a throwaway SQLite
// database so service logic runs against the real GORM models.
func setupTestDB(t *testing.T) {
	t.Helper()

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
}

func createTestUser(t *testing.T, email string) models.User {
	t.Helper()

	user := models.User{
		Email:    email,
		Password: "not-a-real-hash",
	}
	require.NoError(t, repositories.NewUserRepository(database.DB).Create(&user))
	return user
}

func projectActivities(t *testing.T, projectID uint) []models.Activity {
	t.Helper()

	activities, err := repositories.NewActivityRepository(database.DB).
		FindRecentByProjectID(projectID, 50)
	require.NoError(t, err)
	return activities
}
