package main

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/app"
	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/services"
)

const defaultCompany = "Unknown Company"

type evaluateOutput struct {
	Job        *models.JobDescription   `json:"job"`
	Evaluation *models.EvaluationResult `json:"evaluation"`
	Resume     models.ResumeDetails     `json:"resume"`
}

func newEvaluateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a resume file against a job description file",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEvaluate(cmd, v)
		},
	}

	cmd.Flags().String("job", "", "job description file (pdf, docx, doc or txt)")
	cmd.Flags().String("resume", "", "resume file (pdf, docx, doc or txt)")
	addJobFlags(cmd)

	return cmd
}

func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().String("company", defaultCompany, "company the job belongs to")
	cmd.Flags().String("location", "", "job location")
}

func runEvaluate(cmd *cobra.Command, v *viper.Viper) error {
	jobPath, resumePath := v.GetString("job"), v.GetString("resume")
	if jobPath == "" || resumePath == "" {
		return errors.WithHint(
			errors.Mark(errors.New("job and resume files are required"), services.ErrInvalidInput),
			"Both --job and --resume are required.",
		)
	}

	c, zlog, err := components(v)
	if err != nil {
		return err
	}
	defer zlog.Sync()

	job, err := submitJobFile(c, v, jobPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(resumePath)
	if err != nil {
		return errors.Wrapf(err, "failed to read resume file %s", resumePath)
	}

	resp, err := c.Screening.EvaluateResume(services.ResumeInput{
		JobID:    job.ID,
		Filename: filepath.Base(resumePath),
		Data:     data,
	})
	if err != nil {
		return err
	}

	zlog.Debug("resume evaluated",
		zap.String("file", resumePath),
		zap.Float64("score", resp.Evaluation.RelevanceScore),
		zap.String("verdict", string(resp.Evaluation.Verdict)),
	)

	return printJSON(cmd.OutOrStdout(), evaluateOutput{
		Job:        job,
		Evaluation: resp.Evaluation,
		Resume:     resp.Resume,
	})
}

func submitJobFile(c *app.Components, v *viper.Viper, path string) (*models.JobDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read job description file %s", path)
	}

	resp, err := c.Screening.SubmitJob(services.JobInput{
		Company:  v.GetString("company"),
		Location: v.GetString("location"),
		Filename: filepath.Base(path),
		Data:     data,
	})
	if err != nil {
		return nil, err
	}
	return resp.Job, nil
}
