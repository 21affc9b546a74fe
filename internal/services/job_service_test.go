package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/apperrors"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/dtos"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/models"
)

func TestCreateJobStampsEmployer(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	employer := createUser(t, db, "Boss", "boss@acme.com", models.RoleEmployer)

	salary := 90000.0
	job, err := svc.Create(&dtos.JobCreationRequest{
		Title:       "Backend Engineer",
		Description: "Go services",
		Company:     "Acme",
		Location:    "Berlin",
		Salary:      &salary,
	}, employer.ID)
	require.NoError(t, err)
	assert.Equal(t, employer.ID, job.EmployerID)
	assert.NotZero(t, job.ID)
	require.NotNil(t, job.Salary)
	assert.Equal(t, 90000.0, *job.Salary)
}

func TestCreateJobRejectsNegativeSalary(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	employer := createUser(t, db, "Boss", "boss@acme.com", models.RoleEmployer)

	salary := -1.0
	_, err := svc.Create(&dtos.JobCreationRequest{
		Title:       "X",
		Description: "X",
		Company:     "X",
		Location:    "X",
		Salary:      &salary,
	}, employer.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestListAllNewestFirstWithEmployerName(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	employer := createUser(t, db, "Boss", "boss@acme.com", models.RoleEmployer)

	older := createJob(t, db, "Older", employer.ID)
	newer := createJob(t, db, "Newer", employer.ID)
	// Make the ordering unambiguous
	require.NoError(t, db.Model(newer).Update("created_at", older.CreatedAt.Add(time.Minute)).Error)

	jobs, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Newer", jobs[0].Title)
	assert.Equal(t, "Older", jobs[1].Title)
	assert.Equal(t, "Boss", jobs[0].Employer.Name)
}

func TestGetByIDJoinsEmployerAndIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	employer := createUser(t, db, "Boss", "boss@acme.com", models.RoleEmployer)
	job := createJob(t, db, "Role", employer.ID)

	first, err := svc.GetByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Boss", first.Employer.Name)
	assert.Equal(t, "boss@acme.com", first.Employer.Email)

	second, err := svc.GetByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Employer, second.Employer)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewJobService(newTestDB(t))
	_, err := svc.GetByID(12345)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListForEmployerFiltersByOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	a := createUser(t, db, "A", "a@acme.com", models.RoleEmployer)
	b := createUser(t, db, "B", "b@acme.com", models.RoleEmployer)
	createJob(t, db, "A's job", a.ID)
	createJob(t, db, "B's job", b.ID)

	jobs, err := svc.ListForEmployer(a.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "A's job", jobs[0].Title)
}
