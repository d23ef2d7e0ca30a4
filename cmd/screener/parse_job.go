package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"alfredoptarigan/resume-screener/internal/services"
)

func newParseJobCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse-job",
		Short: "Print the fields extracted from a job description",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runParseJob(cmd, v)
		},
	}

	cmd.Flags().String("job", "", "job description file (pdf, docx, doc or txt)")
	cmd.Flags().String("text", "", "job description text, used when --job is not set")
	addJobFlags(cmd)

	return cmd
}

func runParseJob(cmd *cobra.Command, v *viper.Viper) error {
	c, zlog, err := components(v)
	if err != nil {
		return err
	}
	defer zlog.Sync()

	if path := v.GetString("job"); path != "" {
		job, err := submitJobFile(c, v, path)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), job)
	}

	resp, err := c.Screening.SubmitJob(services.JobInput{
		Company:  v.GetString("company"),
		Location: v.GetString("location"),
		Text:     v.GetString("text"),
	})
	if err != nil {
		return errors.Wrap(err, "parse job description")
	}
	return printJSON(cmd.OutOrStdout(), resp.Job)
}
