package cmd

import (
	"database/sql"
	"os"

	"github.com/spf13/cobra"

	"github.com/glottalab/glotta/internal/classifier"
	"github.com/glottalab/glotta/internal/config"
	"github.com/glottalab/glotta/internal/lang"
	"github.com/glottalab/glotta/internal/logger"
	"github.com/glottalab/glotta/internal/store"
	"github.com/glottalab/glotta/internal/tokenizer"
)

// openDBFunc opens the run-history database on demand, after config is
// loaded. Path precedence: GLOTTA_DB env var, then db_path from the
// config file, then the default cache-dir location.
type openDBFunc func() (*sql.DB, error)

// NewRootCmd builds the CLI. A non-nil db bypasses lazy opening; tests
// inject their own handle this way.
func NewRootCmd(db *sql.DB) *cobra.Command {
	var cfgPath string
	var logLevel string
	cfg := config.Default()

	opened := db
	openedHere := false
	openDB := func() (*sql.DB, error) {
		if opened != nil {
			return opened, nil
		}
		path := os.Getenv("GLOTTA_DB")
		if path == "" {
			path = cfg.DBPath
		}
		d, err := store.Open(path)
		if err != nil {
			return nil, err
		}
		opened = d
		openedHere = true
		return opened, nil
	}

	cmd := &cobra.Command{
		Use:           "glotta",
		Short:         "Semi-supervised natural-language identification",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			cfg = loaded
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			return logger.Init(cfg.LogFile, cfg.LogLevel)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if openedHere {
				opened.Close()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "glotta.toml", "path to TOML config file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error|none)")

	cmd.AddCommand(newTrainCmd(&cfg))
	cmd.AddCommand(newClassifyCmd(&cfg))
	cmd.AddCommand(newEvalCmd(&cfg, openDB))
	cmd.AddCommand(newVocabCmd(&cfg))
	cmd.AddCommand(newRunsCmd(openDB))

	return cmd
}

func Execute() error {
	return NewRootCmd(nil).Execute()
}

// buildClassifier assembles a classifier from config: epsilon, token
// filtering, and the optional kagome policy for Japanese.
func buildClassifier(cfg *config.Config) (*classifier.Classifier, error) {
	opts := []classifier.Option{}
	if cfg.Epsilon > 0 {
		opts = append(opts, classifier.WithEpsilon(cfg.Epsilon))
	}
	if cfg.MinTokenRunes > 1 {
		opts = append(opts, classifier.WithMinTokenRunes(cfg.MinTokenRunes))
	}
	if cfg.UseKagome {
		morpheme, err := tokenizer.NewMorpheme(lang.Japanese.GetConfig().Alphabet)
		if err != nil {
			return nil, err
		}
		opts = append(opts, classifier.WithPolicy(lang.Japanese, morpheme))
	}
	return classifier.New(opts...), nil
}
