package dtos

import "time"

// CandidateApplication is one row of a candidate's "my applications" list:
// the application joined with the job it targets.
type CandidateApplication struct {
	ID        uint      `json:"id"`
	Status    string    `json:"status"`
	Resume    string    `json:"resume"`
	CreatedAt time.Time `json:"created_at"`
	Job       struct {
		ID       uint   `json:"id"`
		Title    string `json:"title"`
		Company  string `json:"company"`
		Location string `json:"location"`
	} `json:"job"`
}

// JobApplication is one row of an employer's per-job applicant list:
// the application joined with the candidate who sent it.
type JobApplication struct {
	ID        uint      `json:"id"`
	Status    string    `json:"status"`
	Resume    string    `json:"resume"`
	CreatedAt time.Time `json:"created_at"`
	Candidate struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"candidate"`
}
