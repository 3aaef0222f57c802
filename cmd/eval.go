package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glottalab/glotta/internal/analyzer"
	"github.com/glottalab/glotta/internal/classifier"
	"github.com/glottalab/glotta/internal/config"
	"github.com/glottalab/glotta/internal/dataset"
	"github.com/glottalab/glotta/internal/lang"
	"github.com/glottalab/glotta/internal/logger"
	"github.com/glottalab/glotta/internal/plot"
	"github.com/glottalab/glotta/internal/report"
	"github.com/glottalab/glotta/internal/store"
	"github.com/glottalab/glotta/internal/trainer"
)

// eval runs the semi-supervised loop: part of the dataset becomes
// axioms, the rest is classified with labels withheld, and accuracy is
// scored against the withheld labels. The run is recorded in the
// history database.
func newEvalCmd(cfg *config.Config, openDB openDBFunc) *cobra.Command {
	var file string
	var ratio float64
	var track string
	var plotPath string

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Semi-supervised evaluation over a labeled CSV dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := dataset.LoadCSV(file)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("ratio") {
				ratio = cfg.AxiomRatio
			}
			if ratio < 0 || ratio > 1 {
				return fmt.Errorf("ratio must be between 0 and 1, got %v", ratio)
			}

			cls, err := buildClassifier(cfg)
			if err != nil {
				return err
			}

			traces, err := parseTraces(track)
			if err != nil {
				return err
			}

			opts := []trainer.Option{}
			if cfg.Seed != 0 {
				opts = append(opts, trainer.WithSeed(cfg.Seed))
			}
			if len(traces) > 0 {
				opts = append(opts, trainer.WithObserver(func(round int, rec trainer.Record, res classifier.Result) {
					for i := range traces {
						traces[i].Observe(cls.Vocabulary(traces[i].Language))
					}
				}))
			}

			tr := trainer.New(cls, opts...)
			outcomes := tr.IngestUnlabeledBatch(records, ratio)
			sum := analyzer.Summarize(outcomes)
			fmt.Print(report.RenderSummary(sum))

			if db, err := openDB(); err != nil {
				logger.Warn("run history unavailable: %v", err)
			} else if err := recordRun(db, file, ratio, outcomes, sum); err != nil {
				logger.Warn("failed to record run: %v", err)
			}

			if plotPath != "" && len(traces) > 0 {
				ctx, cancel := context.WithTimeout(cmd.Context(), plot.DefaultTimeout)
				defer cancel()
				if err := plot.Render(ctx, traces, plotPath); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", plotPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "labeled CSV dataset (language,text)")
	cmd.Flags().Float64VarP(&ratio, "ratio", "r", 0, "fraction ingested as axioms in [0,1] (default from config)")
	cmd.Flags().StringVar(&track, "track", "", "comma-separated word:language pairs to trace per round")
	cmd.Flags().StringVar(&plotPath, "plot", "", "write a gnuplot convergence chart to this PNG path")
	cmd.MarkFlagRequired("file")

	return cmd
}

func parseTraces(track string) ([]analyzer.Trace, error) {
	if track == "" {
		return nil, nil
	}
	var traces []analyzer.Trace
	for _, pair := range strings.Split(track, ",") {
		word, name, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			return nil, fmt.Errorf("bad --track entry %q, want word:language", pair)
		}
		code, err := lang.Parse(name)
		if err != nil {
			return nil, err
		}
		traces = append(traces, analyzer.Trace{Word: word, Language: code})
	}
	return traces, nil
}

func recordRun(db *sql.DB, datasetPath string, ratio float64, outcomes []analyzer.Outcome, sum analyzer.Summary) error {
	if db == nil {
		return nil
	}
	rs := store.NewRunStore(db)
	runID, err := rs.CreateRun(datasetPath, ratio)
	if err != nil {
		return err
	}
	for _, o := range outcomes {
		predicted := "none"
		score := 0.0
		if best, ok := o.Result.Best(); ok {
			predicted = best.Language.String()
			score = best.Score
		}
		if err := rs.SaveSample(runID, o.Text, o.Expected.String(), predicted, score, o.Correct()); err != nil {
			return err
		}
	}
	return rs.FinishRun(runID, sum.Total, sum.Correct, sum.Accuracy())
}
