package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is the closed set of account types. Stored as a string column,
// compared as a type so handlers can't drift into ad-hoc string checks.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleEmployer:
		return true
	}
	return false
}

// ApplicationStatus tracks where an application sits in the employer's
// pipeline. Only "applied" is ever written today; the rest of the enum
// exists for the review flow.
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusReviewed    ApplicationStatus = "reviewed"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"type:varchar(16);not null" json:"role"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string   `gorm:"not null" json:"title"`
	Description string   `gorm:"type:text;not null" json:"description"`
	Company     string   `gorm:"not null" json:"company"`
	Location    string   `gorm:"not null" json:"location"`
	Salary      *float64 `json:"salary,omitempty"`

	// Foreign Key: the employer who posted the job. Fixed at creation.
	EmployerID uint `gorm:"not null;index" json:"employer_id"`
	// Association: GORM needs Preload() to fill this
	Employer User `json:"employer"`
}

type Application struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Composite unique index: at most one application per (job, candidate).
	// The pre-insert existence check alone is racy; the index makes the
	// second concurrent insert fail with a duplicate-key error.
	JobID       uint `gorm:"not null;uniqueIndex:idx_job_candidate" json:"job_id"`
	CandidateID uint `gorm:"not null;uniqueIndex:idx_job_candidate" json:"candidate_id"`

	Job       Job  `json:"job"`
	Candidate User `json:"candidate"`

	Status ApplicationStatus `gorm:"type:varchar(16);not null;default:'applied'" json:"status"`
	// Resume is the stored file path under the uploads directory.
	Resume string `gorm:"not null" json:"resume"`
}
