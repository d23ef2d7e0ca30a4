package main

import (
	"encoding/json"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/app"
	"alfredoptarigan/resume-screener/internal/config"
	"alfredoptarigan/resume-screener/internal/logger"
)

const (
	appName   = "screener"
	envPrefix = "SCREENER"
)

// Actual version can be specified in build command.
var version = "unknown"

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           appName,
		Short:         "screener scores resumes against job descriptions from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	root.PersistentFlags().String("tmp-dir", "", "directory for scoped temp files (default is TMP_DIR or the os temp dir)")
	root.PersistentFlags().String("vocabulary", "", "vocabulary yaml file (default is the embedded one)")

	bindFlags(v, root.PersistentFlags().Lookup, "debug", "json", "tmp-dir", "vocabulary")

	root.AddCommand(
		newEvaluateCmd(v),
		newParseJobCmd(v),
		newVersionCmd(),
	)

	return root
}

func bindFlags(v *viper.Viper, lookup func(string) *pflag.Flag, names ...string) {
	for _, name := range names {
		if err := v.BindPFlag(name, lookup(name)); err != nil {
			log.Fatalf("binding %s flag: %v", name, err)
		}
	}
}

// components builds the pipeline from the environment config with flag
// overrides applied. Logs go to stderr so stdout stays valid JSON.
func components(v *viper.Viper) (*app.Components, *zap.Logger, error) {
	zlog, err := logger.New(v.GetBool("json"), v.GetBool("debug"), "stderr")
	if err != nil {
		return nil, nil, err
	}

	cfg := config.Load()
	if dir := v.GetString("tmp-dir"); dir != "" {
		cfg.Storage.TempDir = dir
	}
	if file := v.GetString("vocabulary"); file != "" {
		cfg.Vocabulary.File = file
	}

	c, err := app.Build(cfg, zlog)
	if err != nil {
		return nil, nil, err
	}
	return c, zlog, nil
}

func printJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
