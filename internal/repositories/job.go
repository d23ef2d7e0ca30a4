package repositories

import (
	"github.com/cockroachdb/errors"

	"alfredoptarigan/resume-screener/internal/models"
)

var ErrJobNotFound = errors.New("job description not found")

type JobRepository interface {
	Create(job *models.JobDescription) error
	FindByID(id string) (*models.JobDescription, error)
	FindAll() []*models.JobDescription
}

type jobRepository struct {
	session *Session
}

func NewJobRepository(session *Session) JobRepository {
	return &jobRepository{session: session}
}

// Create implements JobRepository.
func (r *jobRepository) Create(job *models.JobDescription) error {
	if job == nil {
		return errors.New("failed to create job description: nil record")
	}

	r.session.mu.Lock()
	defer r.session.mu.Unlock()

	r.session.jobs = append(r.session.jobs, job)
	return nil
}

// FindByID implements JobRepository.
func (r *jobRepository) FindByID(id string) (*models.JobDescription, error) {
	r.session.mu.RLock()
	defer r.session.mu.RUnlock()

	for _, job := range r.session.jobs {
		if job.ID == id {
			return job, nil
		}
	}

	return nil, errors.Wrapf(ErrJobNotFound, "id %s", id)
}

// FindAll implements JobRepository.
func (r *jobRepository) FindAll() []*models.JobDescription {
	r.session.mu.RLock()
	defer r.session.mu.RUnlock()

	jobs := make([]*models.JobDescription, len(r.session.jobs))
	copy(jobs, r.session.jobs)
	return jobs
}
