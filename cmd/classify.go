package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glottalab/glotta/internal/config"
	"github.com/glottalab/glotta/internal/dataset"
	"github.com/glottalab/glotta/internal/report"
	"github.com/glottalab/glotta/internal/trainer"
)

func newClassifyCmd(cfg *config.Config) *cobra.Command {
	var file string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "classify [samples...]",
		Short: "Train from a labeled CSV, then classify samples or a stdin prompt loop",
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
			for _, rec := range records {
				tr.IngestLabeled(rec.Language, rec.Text)
			}

			for _, sample := range args {
				fmt.Print(report.RenderResult(sample, cls.Classify(sample)))
			}

			if !interactive && len(args) > 0 {
				return nil
			}

			// Prompt loop; empty line or EOF ends it.
			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					break
				}
				sample := scanner.Text()
				if sample == "" {
					break
				}
				fmt.Print(report.RenderResult(sample, cls.Classify(sample)))
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "labeled CSV dataset (language,text)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "always enter the prompt loop")
	cmd.MarkFlagRequired("file")

	return cmd
}
