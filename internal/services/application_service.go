package services

import (
	"errors"
	"mime/multipart"

	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/apperrors"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/dtos"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/models"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/storage"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB      *gorm.DB
	Resumes *storage.ResumeStore
}

func NewApplicationService(db *gorm.DB, resumes *storage.ResumeStore) *ApplicationService {
	return &ApplicationService{DB: db, Resumes: resumes}
}

// Apply submits an application for a job on behalf of a candidate.
//
// The resume file is written before the record insert. If the insert then
// fails the file is orphaned; there is no cleanup pass. The duplicate
// pre-check gives a friendly early answer, but the unique index on
// (job_id, candidate_id) is what actually holds under concurrent applies:
// the losing insert comes back as gorm.ErrDuplicatedKey.
func (s *ApplicationService) Apply(jobID uint, applicant *models.User, resume *multipart.FileHeader) error {
	if applicant.Role != models.RoleCandidate {
		return apperrors.New(apperrors.ErrForbidden, "Only candidates can apply for jobs.")
	}
	if resume == nil {
		return apperrors.New(apperrors.ErrInvalidInput, "Resume file is required.")
	}

	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.ErrNotFound, "Job not found.")
		}
		logger.Error().Err(err).Msgf("Error fetching job %d for apply", jobID)
		return err
	}

	var count int64
	err := s.DB.Model(&models.Application{}).
		Where("job_id = ? AND candidate_id = ?", jobID, applicant.ID).
		Count(&count).Error
	if err != nil {
		logger.Error().Err(err).Msg("Error checking existing application")
		return err
	}
	if count > 0 {
		return apperrors.New(apperrors.ErrConflict, "You have already applied for this job.")
	}

	path, err := s.Resumes.Save(resume)
	if err != nil {
		logger.Error().Err(err).Msg("Error saving resume file")
		return err
	}

	application := &models.Application{
		JobID:       jobID,
		CandidateID: applicant.ID,
		Status:      models.StatusApplied,
		Resume:      path,
	}
	if err := s.DB.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent apply for the same pair.
			return apperrors.New(apperrors.ErrConflict, "You have already applied for this job.")
		}
		logger.Error().Err(err).Msg("Error creating application")
		return err
	}
	return nil
}

// ListForCandidate returns the candidate's applications newest-first, each
// joined with the job's title, company and location.
func (s *ApplicationService) ListForCandidate(candidateID uint) ([]dtos.CandidateApplication, error) {
	var applications []models.Application
	err := s.DB.
		Preload("Job", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "company", "location")
		}).
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing applications for candidate %d", candidateID)
		return nil, err
	}

	out := make([]dtos.CandidateApplication, 0, len(applications))
	for _, a := range applications {
		var row dtos.CandidateApplication
		row.ID = a.ID
		row.Status = string(a.Status)
		row.Resume = a.Resume
		row.CreatedAt = a.CreatedAt
		row.Job.ID = a.Job.ID
		row.Job.Title = a.Job.Title
		row.Job.Company = a.Job.Company
		row.Job.Location = a.Job.Location
		out = append(out, row)
	}
	return out, nil
}

// ListForJob returns the applications for one of the employer's jobs, each
// joined with the candidate's name and email. A missing job and a job owned
// by someone else get the same answer, so employers can't probe each
// other's postings.
func (s *ApplicationService) ListForJob(jobID, employerID uint) ([]dtos.JobApplication, error) {
	var job models.Job
	err := s.DB.First(&job, jobID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error().Err(err).Msgf("Error fetching job %d", jobID)
		return nil, err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || job.EmployerID != employerID {
		return nil, apperrors.New(apperrors.ErrNotFound, "Job not found or you are not authorized.")
	}

	var applications []models.Application
	err = s.DB.
		Preload("Candidate", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing applications for job %d", jobID)
		return nil, err
	}

	out := make([]dtos.JobApplication, 0, len(applications))
	for _, a := range applications {
		var row dtos.JobApplication
		row.ID = a.ID
		row.Status = string(a.Status)
		row.Resume = a.Resume
		row.CreatedAt = a.CreatedAt
		row.Candidate.ID = a.Candidate.ID
		row.Candidate.Name = a.Candidate.Name
		row.Candidate.Email = a.Candidate.Email
		out = append(out, row)
	}
	return out, nil
}
