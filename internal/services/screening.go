package services

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
)

var ErrInvalidInput = errors.New("invalid input")

const previewLength = 500

// JobInput is one job description submission: pasted text or an uploaded file.
type JobInput struct {
	Company  string
	Location string
	Text     string
	Filename string
	Data     []byte
}

// ResumeInput is one uploaded résumé to score against a stored job.
type ResumeInput struct {
	JobID    string
	Filename string
	Data     []byte
}

type ScreeningService interface {
	SubmitJob(input JobInput) (*models.JobResponse, error)
	EvaluateResume(input ResumeInput) (*models.EvaluateResponse, error)
	Summary() models.ResultsSummary
}

type screeningService struct {
	jobRepo      repositories.JobRepository
	evalRepo     repositories.EvaluationRepository
	extractor    TextExtractor
	jobParser    JobParser
	resumeParser ResumeParser
	evaluator    EvaluatorService
	logger       *zap.Logger
}

func NewScreeningService(
	jobRepo repositories.JobRepository,
	evalRepo repositories.EvaluationRepository,
	extractor TextExtractor,
	jobParser JobParser,
	resumeParser ResumeParser,
	evaluator EvaluatorService,
	logger *zap.Logger,
) ScreeningService {
	return &screeningService{
		jobRepo:      jobRepo,
		evalRepo:     evalRepo,
		extractor:    extractor,
		jobParser:    jobParser,
		resumeParser: resumeParser,
		evaluator:    evaluator,
		logger:       logger,
	}
}

// SubmitJob validates the submission, parses it and appends the job to the
// session. Nothing is stored when any step fails.
func (s *screeningService) SubmitJob(input JobInput) (*models.JobResponse, error) {
	company := strings.TrimSpace(input.Company)
	if company == "" {
		return nil, invalidInput("company is required", "Company name is required!")
	}

	text := input.Text
	preview := ""
	if input.Filename != "" {
		extracted, err := s.extractor.Extract(input.Filename, input.Data)
		if err != nil {
			return nil, err
		}
		text = extracted
		preview = previewText(text, previewLength)
	}

	if strings.TrimSpace(text) == "" {
		return nil, invalidInput("job description text is empty",
			"Please provide job description text or upload a file!")
	}

	job := s.jobParser.Parse(text, company, strings.TrimSpace(input.Location))
	if err := s.jobRepo.Create(job); err != nil {
		return nil, errors.Wrap(err, "failed to store job description")
	}

	s.logger.Info("job description parsed",
		zap.String("job_id", job.ID),
		zap.String("title", job.Title),
		zap.String("company", job.Company),
		zap.Int("must_have", len(job.MustHaveSkills)),
		zap.Int("good_to_have", len(job.GoodToHaveSkills)),
	)

	return &models.JobResponse{Job: job, TextPreview: preview}, nil
}

// EvaluateResume extracts and parses the résumé, scores it against the
// selected job and appends the result to the session.
func (s *screeningService) EvaluateResume(input ResumeInput) (*models.EvaluateResponse, error) {
	if strings.TrimSpace(input.JobID) == "" {
		return nil, invalidInput("job_id is required", "Please select a job description first!")
	}

	job, err := s.jobRepo.FindByID(input.JobID)
	if err != nil {
		return nil, errors.WithHint(err, "Please upload at least one job description first!")
	}

	if input.Filename == "" {
		return nil, invalidInput("resume file is required", "Please upload a resume file!")
	}

	text, err := s.extractor.Extract(input.Filename, input.Data)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.WithHint(
			errors.Wrapf(ErrEmptyText, "resume %s", input.Filename),
			"Could not extract text from the resume. Please try a different file.",
		)
	}

	resume := s.resumeParser.Parse(text)
	result := s.evaluator.Evaluate(resume, job)

	if err := s.evalRepo.Create(result); err != nil {
		return nil, errors.Wrap(err, "failed to store evaluation")
	}

	return &models.EvaluateResponse{
		Evaluation: result,
		Resume:     models.NewResumeDetails(resume),
	}, nil
}

func (s *screeningService) Summary() models.ResultsSummary {
	return BuildSummary(s.evalRepo.FindAll(), s.jobRepo.FindAll())
}

func invalidInput(msg, hint string) error {
	return errors.WithHint(errors.Wrap(ErrInvalidInput, msg), hint)
}
