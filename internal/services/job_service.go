package services

import (
	"errors"

	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/apperrors"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/dtos"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// Create persists a new posting owned by the given employer. Required
// fields are enforced by the binding tags before this is reached; the
// salary check covers clients that bypass binding validation.
func (s *JobService) Create(req *dtos.JobCreationRequest, employerID uint) (*models.Job, error) {
	if req.Salary != nil && *req.Salary < 0 {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "Salary must be non-negative")
	}

	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
		Salary:      req.Salary,
		EmployerID:  employerID,
	}
	if err := s.DB.Create(job).Error; err != nil {
		logger.Error().Err(err).Msg("Error creating job")
		return nil, err
	}
	return job, nil
}

// ListAll returns every posting newest-first with the employer's name joined.
func (s *JobService) ListAll() ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.
		Preload("Employer", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		logger.Error().Err(err).Msg("Error listing jobs")
		return nil, err
	}
	return jobs, nil
}

// GetByID returns one posting with the employer's name and email joined.
func (s *JobService) GetByID(id uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.
		Preload("Employer", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrNotFound, "Job not found")
		}
		logger.Error().Err(err).Msgf("Error fetching job %d", id)
		return nil, err
	}
	return &job, nil
}

// ListForEmployer returns the postings owned by one employer, newest-first.
func (s *JobService) ListForEmployer(employerID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing jobs for employer %d", employerID)
		return nil, err
	}
	return jobs, nil
}
