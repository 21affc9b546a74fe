package services

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/models"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/storage"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory SQLite database with the same GORM config the
// server uses, so unique-violation translation behaves like production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	// An in-memory SQLite database exists per connection; keep the pool at
	// one so every query sees the same schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}))
	return db
}

func newTestResumeStore(t *testing.T) *storage.ResumeStore {
	t.Helper()
	store, err := storage.NewResumeStore(t.TempDir())
	require.NoError(t, err)
	return store
}

// resumeFileHeader builds a real multipart.FileHeader the way a request
// parser would produce it.
func resumeFileHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("candidate resume content"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	files := form.File["resume"]
	require.Len(t, files, 1)
	return files[0]
}

func createUser(t *testing.T, db *gorm.DB, name, email string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, PasswordHash: "x", Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createJob(t *testing.T, db *gorm.DB, title string, employerID uint) *models.Job {
	t.Helper()
	job := &models.Job{
		Title:       title,
		Description: "desc",
		Company:     "Acme",
		Location:    "Remote",
		EmployerID:  employerID,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}
