package services

import (
	"errors"
	"testing"

	"github.com/devfolio/devfolio/internal/models"
	"github.com/devfolio/devfolio/pkg/response"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Project{},
		&models.Technology{},
		&models.ProjectStar{},
		&models.ProjectView{},
		&models.Review{},
		&models.SystemConfig{},
		&models.SystemLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username, Role: "user"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %q: %v", username, err)
	}
	return user
}

func createProject(t *testing.T, db *gorm.DB, ownerID uint, title string, isPublic bool) *models.Project {
	t.Helper()

	project := &models.Project{OwnerID: ownerID, Title: title, IsPublic: isPublic}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create project %q: %v", title, err)
	}
	return project
}

// assertAppError fails unless err is an *response.AppError with the given
// HTTP status.
func assertAppError(t *testing.T, err error, wantStatus int) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error with status %d, got nil", wantStatus)
	}

	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *response.AppError, got %T: %v", err, err)
	}
	if appErr.HTTPStatus != wantStatus {
		t.Fatalf("expected HTTP status %d, got %d (%s)", wantStatus, appErr.HTTPStatus, appErr.Message)
	}
}
