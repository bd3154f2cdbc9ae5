package services

import (
	"path/filepath"
	"testing"

	"github.com/iffanyt/ChugCheck/config"
	"github.com/iffanyt/ChugCheck/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package-level DB at a throwaway sqlite file
// so service tests run without Postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "chugcheck_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.IntakeRecord{},
		&models.Alert{},
		&models.UserDevice{},
	))

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })

	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{
		UserID:    "tester42",
		Email:     "tester@example.com",
		Password:  "irrelevant-hash",
		IsNewUser: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
