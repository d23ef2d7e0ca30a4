// Package app assembles the screening pipeline shared by the API server and
// the command line tool.
package app

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/config"
	"alfredoptarigan/resume-screener/internal/repositories"
	"alfredoptarigan/resume-screener/internal/services"
)

type Components struct {
	Session     *repositories.Session
	Jobs        repositories.JobRepository
	Evaluations repositories.EvaluationRepository
	Storage     services.StorageService
	Screening   services.ScreeningService
}

// Build loads the vocabulary, prepares the temp dir and wires a fresh session
// into the screening service.
func Build(cfg *config.Config, logger *zap.Logger) (*Components, error) {
	vocab, err := config.LoadVocabulary(cfg.Vocabulary.File)
	if err != nil {
		return nil, err
	}

	patterns, err := vocab.Compile()
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile vocabulary patterns")
	}
	logger.Debug("vocabulary loaded",
		zap.Int("version", vocab.Version),
		zap.String("file", cfg.Vocabulary.File),
		zap.Int("skills", len(vocab.ResumeSkills)),
	)

	storage := services.NewStorageService(cfg.Storage.TempDir)
	if err := storage.EnsureTempDir(); err != nil {
		return nil, err
	}

	session := repositories.NewSession()
	jobs := repositories.NewJobRepository(session)
	evals := repositories.NewEvaluationRepository(session)

	extractor := services.NewTextExtractor(
		storage,
		services.NewPDFParserService(logger),
		services.NewDocxParserService(),
		logger,
	)

	screening := services.NewScreeningService(
		jobs,
		evals,
		extractor,
		services.NewJobParser(vocab, patterns),
		services.NewResumeParser(vocab, patterns),
		services.NewEvaluatorService(logger),
		logger,
	)

	return &Components{
		Session:     session,
		Jobs:        jobs,
		Evaluations: evals,
		Storage:     storage,
		Screening:   screening,
	}, nil
}
