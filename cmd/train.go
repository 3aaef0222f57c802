package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glottalab/glotta/internal/config"
	"github.com/glottalab/glotta/internal/dataset"
	"github.com/glottalab/glotta/internal/trainer"
)

// train is a dry run over a labeled dataset: it ingests every record
// as axioms and reports what each vocabulary ends up holding. Useful
// for validating a dataset before eval.
func newTrainCmd(cfg *config.Config) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Ingest a labeled CSV dataset and report vocabulary sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := dataset.LoadCSV(file)
			if err != nil {
				return err
			}
			cls, err := buildClassifier(cfg)
			if err != nil {
				return err
			}
			tr := trainer.New(cls)

			axioms := 0
			for _, rec := range records {
				axioms += tr.IngestLabeled(rec.Language, rec.Text)
			}

			fmt.Printf("ingested %d records (%d axioms)\n", len(records), axioms)
			for _, code := range cls.Languages() {
				if n := cls.Vocabulary(code).Len(); n > 0 {
					fmt.Printf("  %-10s %d words\n", code, n)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "labeled CSV dataset (language,text)")
	cmd.MarkFlagRequired("file")

	return cmd
}
