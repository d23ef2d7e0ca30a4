package repositories

import (
	"github.com/cockroachdb/errors"

	"alfredoptarigan/resume-screener/internal/models"
)

var ErrEvaluationNotFound = errors.New("evaluation not found")

type EvaluationRepository interface {
	Create(eval *models.EvaluationResult) error
	FindByID(id string) (*models.EvaluationResult, error)
	FindAll() []*models.EvaluationResult
}

type evaluationRepository struct {
	session *Session
}

func NewEvaluationRepository(session *Session) EvaluationRepository {
	return &evaluationRepository{session: session}
}

func (r *evaluationRepository) Create(eval *models.EvaluationResult) error {
	if eval == nil {
		return errors.New("failed to create evaluation: nil record")
	}

	r.session.mu.Lock()
	defer r.session.mu.Unlock()

	r.session.evaluations = append(r.session.evaluations, eval)
	return nil
}

func (r *evaluationRepository) FindByID(id string) (*models.EvaluationResult, error) {
	r.session.mu.RLock()
	defer r.session.mu.RUnlock()

	for _, eval := range r.session.evaluations {
		if eval.ID == id {
			return eval, nil
		}
	}

	return nil, errors.Wrapf(ErrEvaluationNotFound, "id %s", id)
}

func (r *evaluationRepository) FindAll() []*models.EvaluationResult {
	r.session.mu.RLock()
	defer r.session.mu.RUnlock()

	evals := make([]*models.EvaluationResult, len(r.session.evaluations))
	copy(evals, r.session.evaluations)
	return evals
}
