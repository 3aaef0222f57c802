package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glottalab/glotta/internal/analyzer"
	"github.com/glottalab/glotta/internal/config"
	"github.com/glottalab/glotta/internal/dataset"
	"github.com/glottalab/glotta/internal/lang"
	"github.com/glottalab/glotta/internal/report"
	"github.com/glottalab/glotta/internal/trainer"
)

func newVocabCmd(cfg *config.Config) *cobra.Command {
	var file string
	var language string
	var top int

	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Train from a labeled CSV and print one language's vocabulary report",
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := lang.Parse(language)
			if err != nil {
				return err
			}
			records, err := dataset.LoadCSV(file)
			if err != nil {
				return err
			}
			cls, err := buildClassifier(cfg)
			if err != nil {
				return err
			}
			tr := trainer.New(cls)
			for _, rec := range records {
				tr.IngestLabeled(rec.Language, rec.Text)
			}

			rep := analyzer.ReportVocabulary(cls.Vocabulary(code), top)
			fmt.Print(report.RenderVocab(rep))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "labeled CSV dataset (language,text)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "language to report")
	cmd.Flags().IntVar(&top, "top", 20, "number of top-weighted inductions to show")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("language")

	return cmd
}
