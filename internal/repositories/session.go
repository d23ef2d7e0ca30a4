package repositories

import (
	"sync"

	"alfredoptarigan/resume-screener/internal/models"
)

// Session is the process-lifetime application state: every parsed job
// description and every evaluation result, in submission order. It is created
// once at startup and only ever appended to.
type Session struct {
	mu          sync.RWMutex
	jobs        []*models.JobDescription
	evaluations []*models.EvaluationResult
}

func NewSession() *Session {
	return &Session{}
}

// Reset drops everything the session holds.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = nil
	s.evaluations = nil
}
